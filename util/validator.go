package util

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

var (
	dateRe     = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[012])/((19|20)\d\d)$`)
	clockRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	dateTimeRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[012])/((19|20)\d\d) ([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	phoneRe    = regexp.MustCompile(`^[69][0-9]{8}$`)
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom binding tags (dni, fecha, hora,
// fechahora, telefono) on gin's validator and makes validation errors report
// JSON field names. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)

		custom := map[string]validator.Func{
			"dni":       func(fl validator.FieldLevel) bool { return ValidDNI(fl.Field().String()) },
			"fecha":     matchField(dateRe),
			"hora":      matchField(clockRe),
			"fechahora": matchField(dateTimeRe),
			"telefono":  matchField(phoneRe),
		}
		for tag, fn := range custom {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s validator: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

// ValidDNI reports whether value is a Spanish national ID: eight digits
// followed by the control letter for that number. Case, surrounding and
// embedded spaces are ignored.
func ValidDNI(value string) bool {
	dni := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))
	if len(dni) != 9 {
		return false
	}
	num := 0
	for _, r := range dni[:8] {
		if r < '0' || r > '9' {
			return false
		}
		num = num*10 + int(r-'0')
	}
	return dni[8] == dniLetters[num%23]
}

func matchField(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// ValidationMessages turns validator errors into a JSON field name to message map.
func ValidationMessages(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "dni":
		return "must be 8 digits followed by the matching control letter"
	case "fecha":
		return "must use the dd/MM/yyyy format"
	case "hora":
		return "must use the HH:mm:ss format"
	case "fechahora":
		return "must use the dd/MM/yyyy HH:mm:ss format"
	case "telefono":
		return "must be 9 digits starting with 6 or 9"
	}
	return fmt.Sprintf("failed the %s check", fe.Tag())
}
