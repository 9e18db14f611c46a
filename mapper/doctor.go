package mapper

import (
	"strings"

	"github.com/ariebrainware/hospital-api/model"
)

type DoctorMapper struct{}

func NewDoctorMapper() *DoctorMapper {
	return &DoctorMapper{}
}

// FromCreateRequest builds a new doctor. A nil request yields nil.
func (m *DoctorMapper) FromCreateRequest(req *model.DoctorCreateRequest) (*model.Doctor, error) {
	if req == nil {
		return nil, nil
	}
	graduated, err := parseDate("fechaGraduacion", req.GraduationDate)
	if err != nil {
		return nil, err
	}
	hired, err := parseDate("fechaIncorporacion", req.HireDate)
	if err != nil {
		return nil, err
	}
	return &model.Doctor{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		NationalID:     normalizeDNI(req.NationalID),
		Email:          strings.TrimSpace(req.Email),
		Specialty:      model.ParseSpecialty(strings.TrimSpace(req.Specialty)),
		GraduationDate: graduated,
		HireDate:       hired,
	}, nil
}

// MergeUpdateRequest copies every present, non-blank field of req onto doctor.
// Either argument being nil yields nil.
func (m *DoctorMapper) MergeUpdateRequest(doctor *model.Doctor, req *model.DoctorUpdateRequest) (*model.Doctor, error) {
	if doctor == nil || req == nil {
		return nil, nil
	}
	if v, ok := present(req.FirstName); ok {
		doctor.FirstName = v
	}
	if v, ok := present(req.LastName); ok {
		doctor.LastName = v
	}
	if v, ok := present(req.NationalID); ok {
		doctor.NationalID = normalizeDNI(v)
	}
	if v, ok := present(req.Email); ok {
		doctor.Email = v
	}
	if v, ok := present(req.Specialty); ok {
		doctor.Specialty = model.ParseSpecialty(v)
	}
	if v, ok := present(req.GraduationDate); ok {
		d, err := parseDate("fechaGraduacion", v)
		if err != nil {
			return nil, err
		}
		doctor.GraduationDate = d
	}
	if v, ok := present(req.HireDate); ok {
		d, err := parseDate("fechaIncorporacion", v)
		if err != nil {
			return nil, err
		}
		doctor.HireDate = d
	}
	return doctor, nil
}

// ToResponse renders doctor, counting its assigned patients.
func (m *DoctorMapper) ToResponse(doctor *model.Doctor) *model.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &model.DoctorResponse{
		ID:               doctor.ID,
		FirstName:        doctor.FirstName,
		LastName:         doctor.LastName,
		NationalID:       doctor.NationalID,
		Email:            doctor.Email,
		GraduationDate:   formatDate(doctor.GraduationDate),
		HireDate:         formatDate(doctor.HireDate),
		Specialty:        doctor.Specialty,
		AssignedPatients: len(doctor.Patients),
	}
}
