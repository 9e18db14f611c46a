package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ariebrainware/hospital-api/mapper"
	"github.com/ariebrainware/hospital-api/service"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const validationFailed = "validation failed"

// UnresolvedReferenceError reports a payload ID that matches no stored record.
type UnresolvedReferenceError struct {
	Field string
	ID    uint
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not match any record", e.Field, e.ID)
}

type notFoundError struct {
	entity string
	id     uint
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("no %s exists with ID %d", e.entity, e.id)
}

func (e *notFoundError) Unwrap() error { return service.ErrNotFound }

// lookupFailed names the missing record when err is a not-found error.
func lookupFailed(entity string, id uint, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return &notFoundError{entity: entity, id: id}
	}
	return err
}

// checkReference fails when a requested ID did not end up linked.
func checkReference(field string, requested, linked *uint) error {
	if requested == nil {
		return nil
	}
	if linked == nil || *linked != *requested {
		return &UnresolvedReferenceError{Field: field, ID: *requested}
	}
	return nil
}

// respondError writes the error envelope matching err.
func respondError(c *gin.Context, err error) {
	var (
		verrs    validator.ValidationErrors
		fieldErr *mapper.FieldError
		refErr   *UnresolvedReferenceError
	)
	switch {
	case errors.As(err, &verrs):
		util.CallValidationError(c, http.StatusBadRequest, validationFailed, util.ValidationMessages(verrs))
	case errors.As(err, &fieldErr):
		util.CallValidationError(c, http.StatusBadRequest, validationFailed, map[string]string{
			fieldErr.Field: fieldErr.Err.Error(),
		})
	case errors.As(err, &refErr):
		util.CallValidationError(c, http.StatusUnprocessableEntity, "referenced record does not exist", map[string]string{
			refErr.Field: fmt.Sprintf("no record exists with ID %d", refErr.ID),
		})
	case errors.Is(err, service.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: err.Error(), Err: err})
	case errors.Is(err, service.ErrDoctorHasPatients):
		util.CallConflict(c, util.APIErrorParams{Msg: "doctor still has assigned patients", Err: err})
	case errors.Is(err, mapper.ErrMissingRelation):
		util.CallServerError(c, util.APIErrorParams{Msg: err.Error(), Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "internal server error", Err: err})
	}
}

// respondBindError answers a failed ShouldBind call: field violations get the
// validation envelope, anything else is a malformed body.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondError(c, err)
		return
	}
	util.CallUserError(c, util.APIErrorParams{Msg: "malformed JSON body", Err: err})
}

type idParam struct {
	ID uint `uri:"id" json:"id" binding:"required,min=1"`
}

func bindID(c *gin.Context) (uint, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(c, err)
		} else {
			util.CallValidationError(c, http.StatusBadRequest, validationFailed, map[string]string{
				"id": "must be a positive integer",
			})
		}
		return 0, false
	}
	return p.ID, true
}

// enumValue is a closed string enum with an empty unrecognized value.
type enumValue interface {
	~string
	Recognized() bool
}

// enumFilter validates an optional query value against the enum parse
// accepts, ignoring case. An absent value is valid.
func enumFilter[T enumValue](c *gin.Context, key string, parse func(string) T, allowed []T) (string, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return "", true
	}
	if parse(strings.ToUpper(raw)).Recognized() {
		return raw, true
	}
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	util.CallValidationError(c, http.StatusBadRequest, validationFailed, map[string]string{
		key: "must be one of: " + strings.Join(names, ", "),
	})
	return "", false
}
