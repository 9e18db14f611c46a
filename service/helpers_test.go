package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB, name string, specialty model.Specialty) *model.Doctor {
	t.Helper()
	d := &model.Doctor{
		FirstName:      name,
		LastName:       "Ruiz",
		NationalID:     "12345678Z",
		Email:          name + "@hospital.es",
		Specialty:      specialty,
		GraduationDate: datatypes.Date(time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)),
		HireDate:       datatypes.Date(time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func seedPatient(t *testing.T, db *gorm.DB, name string, severity model.Severity, doctor *model.Doctor) *model.Patient {
	t.Helper()
	p := &model.Patient{
		FirstName:     name,
		LastName:      "Martin",
		NationalID:    "11111111H",
		Gender:        model.GenderFemale,
		Severity:      severity,
		BirthDate:     time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		AdmissionDate: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
	}
	if doctor != nil {
		p.DoctorID = &doctor.ID
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedRoom(t *testing.T, db *gorm.DB, number int) *model.Room {
	t.Helper()
	r := &model.Room{Number: number}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedAppointment(t *testing.T, db *gorm.DB, patient *model.Patient, room *model.Room) *model.Appointment {
	t.Helper()
	a := &model.Appointment{
		PatientID: &patient.ID,
		RoomID:    &room.ID,
		Date:      datatypes.Date(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)),
		StartTime: datatypes.NewTime(9, 30, 0, 0),
		EndTime:   datatypes.NewTime(10, 15, 0, 0),
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

var ctx = context.Background()
