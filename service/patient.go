package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/hospital-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PatientService reads and writes patients. Deleting a patient deletes its appointments.
type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

// FindByID returns the patient with its doctor and appointments loaded, each
// appointment carrying its room and the patient's doctor.
func (s *PatientService) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	err := s.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Appointments.Room").
		Preload("Appointments.Patient.Doctor").
		First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find patient %d: %w", id, err)
	}
	return &patient, nil
}

func (s *PatientService) List(ctx context.Context) ([]model.Patient, error) {
	var patients []model.Patient
	if err := s.db.WithContext(ctx).Preload("Doctor").Preload("Appointments").Order("id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// FilterBySeverity returns patients whose severity equals severity, ignoring case.
func (s *PatientService) FilterBySeverity(ctx context.Context, severity string) ([]model.Patient, error) {
	patients, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(patients, func(p *model.Patient) bool {
		return strings.EqualFold(string(p.Severity), severity)
	}), nil
}

// Save inserts the patient when it has no ID yet and updates it otherwise.
// Only the doctor_id column of the doctor link is written.
func (s *PatientService) Save(ctx context.Context, patient *model.Patient) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(patient).Error; err != nil {
			return fmt.Errorf("save patient: %w", err)
		}
		return nil
	})
}

func (s *PatientService) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return fmt.Errorf("delete appointments of patient %d: %w", id, err)
		}
		if err := tx.Delete(&model.Patient{}, id).Error; err != nil {
			return fmt.Errorf("delete patient %d: %w", id, err)
		}
		return nil
	})
}

func (s *PatientService) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id IS NOT NULL").Delete(&model.Appointment{}).Error; err != nil {
			return fmt.Errorf("delete patient appointments: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.Patient{}).Error; err != nil {
			return fmt.Errorf("delete all patients: %w", err)
		}
		return nil
	})
}
