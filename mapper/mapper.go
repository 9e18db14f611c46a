// Package mapper converts between request payloads, stored entities and
// response payloads. Create and merge resolve foreign-key IDs through the
// lookup services; an ID that matches nothing leaves the relation unset.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/service"
	"github.com/ariebrainware/hospital-api/util"
	"gorm.io/datatypes"
)

// DoctorFinder looks up doctors by ID.
type DoctorFinder interface {
	FindByID(ctx context.Context, id uint) (*model.Doctor, error)
}

// PatientFinder looks up patients by ID.
type PatientFinder interface {
	FindByID(ctx context.Context, id uint) (*model.Patient, error)
}

// RoomFinder looks up rooms by ID.
type RoomFinder interface {
	FindByID(ctx context.Context, id uint) (*model.Room, error)
}

// FieldError reports a payload field whose value could not be converted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// ErrMissingRelation matches every MissingRelationError.
var ErrMissingRelation = errors.New("missing relation")

// MissingRelationError is returned when a projection needs a related entity
// that is not linked, e.g. an appointment whose patient has no doctor.
type MissingRelationError struct {
	Entity   string
	ID       uint
	Relation string
}

func (e *MissingRelationError) Error() string {
	return fmt.Sprintf("%s %d has no %s assigned", e.Entity, e.ID, e.Relation)
}

func (e *MissingRelationError) Is(target error) bool { return target == ErrMissingRelation }

// present returns the trimmed value of an optional field and whether it is
// worth applying: nil and whitespace-only values count as absent.
func present(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// normalizeDNI stores the control letter upper case, the form the dni tag
// checks against.
func normalizeDNI(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// resolve fetches the entity behind id. A nil id or a not-found lookup
// yields nil without error.
func resolve[T any](ctx context.Context, id *uint, find func(context.Context, uint) (*T, error)) (*T, error) {
	if id == nil {
		return nil, nil
	}
	found, err := find(ctx, *id)
	if errors.Is(err, service.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

func parseDate(field, value string) (datatypes.Date, error) {
	d, err := util.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return datatypes.Date{}, &FieldError{Field: field, Err: err}
	}
	return datatypes.Date(d), nil
}

func parseDateTime(field, value string) (time.Time, error) {
	t, err := util.ParseDateTime(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

func parseClock(field, value string) (datatypes.Time, error) {
	c, err := util.ParseClock(strings.TrimSpace(value))
	if err != nil {
		return 0, &FieldError{Field: field, Err: err}
	}
	return c, nil
}

func formatDate(d datatypes.Date) string {
	return util.FormatDate(time.Time(d))
}
