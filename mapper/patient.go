package mapper

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
)

type PatientMapper struct {
	doctors DoctorFinder
}

func NewPatientMapper(doctors DoctorFinder) *PatientMapper {
	return &PatientMapper{doctors: doctors}
}

// FromCreateRequest builds a new patient and links the doctor named by
// medicoId when it exists. A nil request yields nil.
func (m *PatientMapper) FromCreateRequest(ctx context.Context, req *model.PatientCreateRequest) (*model.Patient, error) {
	if req == nil {
		return nil, nil
	}
	born, err := parseDateTime("fechaNacimiento", req.BirthDate)
	if err != nil {
		return nil, err
	}
	admitted, err := parseDateTime("fechaIngreso", req.AdmissionDate)
	if err != nil {
		return nil, err
	}

	patient := &model.Patient{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		NationalID:    normalizeDNI(req.NationalID),
		Gender:        model.ParseGender(strings.TrimSpace(req.Gender)),
		Severity:      model.ParseSeverity(strings.TrimSpace(req.Severity)),
		Address:       strings.TrimSpace(req.Address),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		BirthDate:     born,
		AdmissionDate: admitted,
	}
	if err := m.linkDoctor(ctx, patient, req.DoctorID); err != nil {
		return nil, err
	}
	return patient, nil
}

// MergeUpdateRequest copies every present, non-blank field of req onto
// patient. A present medicoId is re-resolved; if it matches no doctor the
// current link is kept. Either argument being nil yields nil.
func (m *PatientMapper) MergeUpdateRequest(ctx context.Context, patient *model.Patient, req *model.PatientUpdateRequest) (*model.Patient, error) {
	if patient == nil || req == nil {
		return nil, nil
	}
	if v, ok := present(req.FirstName); ok {
		patient.FirstName = v
	}
	if v, ok := present(req.LastName); ok {
		patient.LastName = v
	}
	if v, ok := present(req.NationalID); ok {
		patient.NationalID = normalizeDNI(v)
	}
	if v, ok := present(req.Gender); ok {
		patient.Gender = model.ParseGender(v)
	}
	if v, ok := present(req.Severity); ok {
		patient.Severity = model.ParseSeverity(v)
	}
	if v, ok := present(req.Address); ok {
		patient.Address = v
	}
	if v, ok := present(req.Email); ok {
		patient.Email = v
	}
	if v, ok := present(req.Phone); ok {
		patient.Phone = v
	}
	if v, ok := present(req.BirthDate); ok {
		t, err := parseDateTime("fechaNacimiento", v)
		if err != nil {
			return nil, err
		}
		patient.BirthDate = t
	}
	if v, ok := present(req.AdmissionDate); ok {
		t, err := parseDateTime("fechaIngreso", v)
		if err != nil {
			return nil, err
		}
		patient.AdmissionDate = t
	}
	if err := m.linkDoctor(ctx, patient, req.DoctorID); err != nil {
		return nil, err
	}
	return patient, nil
}

func (m *PatientMapper) linkDoctor(ctx context.Context, patient *model.Patient, doctorID *uint) error {
	doctor, err := resolve(ctx, doctorID, m.doctors.FindByID)
	if err != nil {
		return err
	}
	if doctor == nil {
		if doctorID != nil {
			util.Logger().Debug().Uint("medicoId", *doctorID).Msg("doctor not found, patient link left unchanged")
		}
		return nil
	}
	patient.Doctor = doctor
	patient.DoctorID = &doctor.ID
	return nil
}

// ToResponse renders patient with its doctor's name and specialty. A patient
// without a doctor yields a MissingRelationError.
func (m *PatientMapper) ToResponse(patient *model.Patient) (*model.PatientResponse, error) {
	if patient == nil {
		return nil, nil
	}
	if patient.Doctor == nil {
		return nil, &MissingRelationError{Entity: "patient", ID: patient.ID, Relation: "doctor"}
	}
	return &model.PatientResponse{
		ID:                   patient.ID,
		FirstName:            patient.FirstName,
		LastName:             patient.LastName,
		NationalID:           patient.NationalID,
		Gender:               patient.Gender,
		Address:              patient.Address,
		Email:                patient.Email,
		Phone:                patient.Phone,
		BirthDate:            util.FormatDateTime(patient.BirthDate),
		AdmissionDate:        util.FormatDateTime(patient.AdmissionDate),
		AssignedDoctor:       patient.Doctor.FullName(),
		TreatmentArea:        patient.Doctor.Specialty,
		Severity:             patient.Severity,
		RecordedAppointments: len(patient.Appointments),
	}, nil
}

// ToSummary renders the short form listed under a doctor.
func (m *PatientMapper) ToSummary(patient *model.Patient) *model.PatientSummary {
	if patient == nil {
		return nil
	}
	return &model.PatientSummary{
		ID:            patient.ID,
		FullName:      patient.FullName(),
		Gender:        patient.Gender,
		Severity:      patient.Severity,
		Address:       patient.Address,
		Email:         patient.Email,
		Phone:         patient.Phone,
		BirthDate:     util.FormatDateTime(patient.BirthDate),
		AdmissionDate: util.FormatDateTime(patient.AdmissionDate),
	}
}
