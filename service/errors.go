package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every per-entity not-found error, so callers can
// test for any of them with errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("record not found")

var (
	ErrDoctorNotFound      = fmt.Errorf("doctor %w", ErrNotFound)
	ErrPatientNotFound     = fmt.Errorf("patient %w", ErrNotFound)
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
)

// ErrDoctorHasPatients is returned when deleting a doctor that patients still point at.
var ErrDoctorHasPatients = errors.New("doctor still has assigned patients")
