package mapper

import (
	"context"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
)

type AppointmentMapper struct {
	patients PatientFinder
	rooms    RoomFinder
}

func NewAppointmentMapper(patients PatientFinder, rooms RoomFinder) *AppointmentMapper {
	return &AppointmentMapper{patients: patients, rooms: rooms}
}

// FromCreateRequest builds a new appointment, linking the patient and room
// that exist. A nil request yields nil.
func (m *AppointmentMapper) FromCreateRequest(ctx context.Context, req *model.AppointmentCreateRequest) (*model.Appointment, error) {
	if req == nil {
		return nil, nil
	}
	date, err := parseDate("fechaCita", req.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseClock("horaEntrada", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock("horaSalida", req.EndTime)
	if err != nil {
		return nil, err
	}

	appt := &model.Appointment{Date: date, StartTime: start, EndTime: end}
	if err := m.link(ctx, appt, req.PatientID, req.RoomID); err != nil {
		return nil, err
	}
	return appt, nil
}

// MergeUpdateRequest copies every present, non-blank field of req onto appt
// and re-resolves any patient or room ID given. Either argument being nil
// yields nil.
func (m *AppointmentMapper) MergeUpdateRequest(ctx context.Context, appt *model.Appointment, req *model.AppointmentUpdateRequest) (*model.Appointment, error) {
	if appt == nil || req == nil {
		return nil, nil
	}
	if v, ok := present(req.Date); ok {
		d, err := parseDate("fechaCita", v)
		if err != nil {
			return nil, err
		}
		appt.Date = d
	}
	if v, ok := present(req.StartTime); ok {
		c, err := parseClock("horaEntrada", v)
		if err != nil {
			return nil, err
		}
		appt.StartTime = c
	}
	if v, ok := present(req.EndTime); ok {
		c, err := parseClock("horaSalida", v)
		if err != nil {
			return nil, err
		}
		appt.EndTime = c
	}
	if err := m.link(ctx, appt, req.PatientID, req.RoomID); err != nil {
		return nil, err
	}
	return appt, nil
}

func (m *AppointmentMapper) link(ctx context.Context, appt *model.Appointment, patientID, roomID *uint) error {
	patient, err := resolve(ctx, patientID, m.patients.FindByID)
	if err != nil {
		return err
	}
	if patient != nil {
		appt.Patient = patient
		appt.PatientID = &patient.ID
	} else if patientID != nil {
		util.Logger().Debug().Uint("pacienteId", *patientID).Msg("patient not found, appointment link left unchanged")
	}

	room, err := resolve(ctx, roomID, m.rooms.FindByID)
	if err != nil {
		return err
	}
	if room != nil {
		appt.Room = room
		appt.RoomID = &room.ID
	} else if roomID != nil {
		util.Logger().Debug().Uint("salaId", *roomID).Msg("room not found, appointment link left unchanged")
	}
	return nil
}

// ToResponse renders appt with the patient's name and severity and the
// patient's doctor's name and specialty. A missing patient, doctor or room
// yields a MissingRelationError.
func (m *AppointmentMapper) ToResponse(appt *model.Appointment) (*model.AppointmentResponse, error) {
	if appt == nil {
		return nil, nil
	}
	if appt.Patient == nil {
		return nil, &MissingRelationError{Entity: "appointment", ID: appt.ID, Relation: "patient"}
	}
	if appt.Patient.Doctor == nil {
		return nil, &MissingRelationError{Entity: "patient", ID: appt.Patient.ID, Relation: "doctor"}
	}
	if appt.Room == nil {
		return nil, &MissingRelationError{Entity: "appointment", ID: appt.ID, Relation: "room"}
	}
	return &model.AppointmentResponse{
		ID:         appt.ID,
		Doctor:     appt.Patient.Doctor.FullName(),
		Patient:    appt.Patient.FullName(),
		RoomNumber: appt.Room.Number,
		Specialty:  appt.Patient.Doctor.Specialty,
		Severity:   appt.Patient.Severity,
		Date:       formatDate(appt.Date),
		StartTime:  util.FormatClock(appt.StartTime),
		EndTime:    util.FormatClock(appt.EndTime),
	}, nil
}
