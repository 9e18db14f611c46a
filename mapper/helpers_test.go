package mapper

import (
	"context"
	"time"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/service"
	"gorm.io/datatypes"
)

// fakeFinder serves entities from a map; lookupErr, when set, is returned for every call.
type fakeFinder[T any] struct {
	items     map[uint]*T
	lookupErr error
	calls     int
}

func (f *fakeFinder[T]) FindByID(_ context.Context, id uint) (*T, error) {
	f.calls++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, service.ErrNotFound
}

func ptr[T any](v T) *T { return &v }

func sampleDoctor() *model.Doctor {
	return &model.Doctor{
		ID:             1,
		FirstName:      "Daniel",
		LastName:       "Ruiz Soto",
		NationalID:     "12345678Z",
		Email:          "daniel@hospital.es",
		Specialty:      model.SpecialtyCardiology,
		GraduationDate: datatypes.Date(time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)),
		HireDate:       datatypes.Date(time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func samplePatient(doctor *model.Doctor) *model.Patient {
	p := &model.Patient{
		ID:            4,
		FirstName:     "Lucia",
		LastName:      "Martin Gil",
		NationalID:    "11111111H",
		Gender:        model.GenderFemale,
		Severity:      model.SeverityMild,
		Address:       "Calle Mayor 1",
		Email:         "lucia@correo.es",
		Phone:         "612345678",
		BirthDate:     time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		AdmissionDate: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
	}
	if doctor != nil {
		p.Doctor = doctor
		p.DoctorID = &doctor.ID
	}
	return p
}

var ctx = context.Background()

func formatDateTimeForTest(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
