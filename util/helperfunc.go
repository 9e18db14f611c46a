package util

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse wraps every successful response body.
type APIResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Fecha   string `json:"fecha" example:"24/12/2023 18:45:10"`
	Codigo  int    `json:"codigo" example:"404"`
	Estado  string `json:"estado" example:"NOT_FOUND"`
	Mensaje string `json:"mensaje" example:"no doctor exists with ID 7"`
}

// ValidationErrorResponse is an ErrorResponse carrying one message per offending field.
type ValidationErrorResponse struct {
	ErrorResponse
	Errores map[string]string `json:"errores"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

// now is swapped in tests to freeze the envelope timestamp.
var now = time.Now

// StatusName returns the upper snake case name of an HTTP status, e.g. NOT_FOUND.
func StatusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "UNKNOWN"
	}
	text = strings.ReplaceAll(text, "-", "_")
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// NewErrorResponse builds the generic error envelope for the given status.
func NewErrorResponse(code int, msg string) ErrorResponse {
	return ErrorResponse{
		Fecha:   FormatDateTime(now()),
		Codigo:  code,
		Estado:  StatusName(code),
		Mensaje: msg,
	}
}

func errorMessage(params APIErrorParams) string {
	if params.Msg != "" {
		return params.Msg
	}
	if params.Err != nil {
		return params.Err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

func callError(c *gin.Context, code int, params APIErrorParams) {
	evt := Logger().Warn()
	if code >= http.StatusInternalServerError {
		evt = Logger().Error()
	}
	evt.Err(params.Err).
		Int("status", code).
		Str("path", c.Request.URL.Path).
		Msg(errorMessage(params))

	c.AbortWithStatusJSON(code, NewErrorResponse(code, errorMessage(params)))
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusNotFound, params)
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusBadRequest, params)
}

// CallConflict is for return API response when the request clashes with stored data
func CallConflict(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusConflict, params)
}

// CallTooManyRequests is for return API response when the caller is rate limited
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusTooManyRequests, params)
}

// CallServerError is for return API response server error
func CallServerError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusInternalServerError, params)
}

// CallValidationError is for return the validation envelope, errs maps JSON field names to messages
func CallValidationError(c *gin.Context, code int, msg string, errs map[string]string) {
	Logger().Warn().
		Int("status", code).
		Str("path", c.Request.URL.Path).
		Interface("errores", errs).
		Msg(msg)

	c.AbortWithStatusJSON(code, ValidationErrorResponse{
		ErrorResponse: NewErrorResponse(code, msg),
		Errores:       errs,
	})
}

// CallSuccessOK is for return API response with status code 200, you need to specify msg, and data as function parameter
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Msg:     params.Msg,
		Data:    params.Data,
	})
}

// CallSuccessCreated is for return API response with status code 201
func CallSuccessCreated(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Msg:     params.Msg,
		Data:    params.Data,
	})
}

// CallSuccessNoBody answers 200 with an empty body.
func CallSuccessNoBody(c *gin.Context) {
	c.Status(http.StatusOK)
}
