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

// DoctorService reads and writes doctors.
type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

// FindByID returns the doctor with its patients loaded, or ErrDoctorNotFound.
func (s *DoctorService) FindByID(ctx context.Context, id uint) (*model.Doctor, error) {
	var doctor model.Doctor
	err := s.db.WithContext(ctx).Preload("Patients").First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor %d: %w", id, err)
	}
	return &doctor, nil
}

func (s *DoctorService) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := s.db.WithContext(ctx).Preload("Patients").Order("id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

// FilterByName returns doctors whose first name equals name, ignoring case.
func (s *DoctorService) FilterByName(ctx context.Context, name string) ([]model.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(doctors, func(d *model.Doctor) bool {
		return strings.EqualFold(d.FirstName, name)
	}), nil
}

// FilterBySpecialty returns doctors whose specialty equals specialty, ignoring case.
func (s *DoctorService) FilterBySpecialty(ctx context.Context, specialty string) ([]model.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(doctors, func(d *model.Doctor) bool {
		return strings.EqualFold(string(d.Specialty), specialty)
	}), nil
}

func (s *DoctorService) FilterByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(doctors, func(d *model.Doctor) bool {
		return strings.EqualFold(d.FirstName, name) && strings.EqualFold(string(d.Specialty), specialty)
	}), nil
}

// Save inserts the doctor when it has no ID yet and updates it otherwise.
// The patient collection is never written through the doctor.
func (s *DoctorService) Save(ctx context.Context, doctor *model.Doctor) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(doctor).Error; err != nil {
			return fmt.Errorf("save doctor: %w", err)
		}
		return nil
	})
}

// DeleteByID removes the doctor. An unknown id is not an error; a doctor that
// still has patients is refused with ErrDoctorHasPatients.
func (s *DoctorService) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned int64
		if err := tx.Model(&model.Patient{}).Where("doctor_id = ?", id).Count(&assigned).Error; err != nil {
			return fmt.Errorf("count patients of doctor %d: %w", id, err)
		}
		if assigned > 0 {
			return fmt.Errorf("delete doctor %d: %w", id, ErrDoctorHasPatients)
		}
		if err := tx.Delete(&model.Doctor{}, id).Error; err != nil {
			return fmt.Errorf("delete doctor %d: %w", id, err)
		}
		return nil
	})
}

// DeleteAll removes every doctor, unless any patient still has one assigned.
func (s *DoctorService) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned int64
		if err := tx.Model(&model.Patient{}).Where("doctor_id IS NOT NULL").Count(&assigned).Error; err != nil {
			return fmt.Errorf("count assigned patients: %w", err)
		}
		if assigned > 0 {
			return fmt.Errorf("delete all doctors: %w", ErrDoctorHasPatients)
		}
		if err := tx.Where("1 = 1").Delete(&model.Doctor{}).Error; err != nil {
			return fmt.Errorf("delete all doctors: %w", err)
		}
		return nil
	})
}
