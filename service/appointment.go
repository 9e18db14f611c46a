package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariebrainware/hospital-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentService reads and writes appointments.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// FindByID returns the appointment with its room and its patient's doctor loaded.
func (s *AppointmentService) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appt model.Appointment
	err := s.db.WithContext(ctx).Preload("Patient.Doctor").Preload("Room").First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment %d: %w", id, err)
	}
	return &appt, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	var appts []model.Appointment
	if err := s.db.WithContext(ctx).Preload("Patient.Doctor").Preload("Room").Order("id").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *AppointmentService) Save(ctx context.Context, appt *model.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(appt).Error; err != nil {
			return fmt.Errorf("save appointment: %w", err)
		}
		return nil
	})
}

func (s *AppointmentService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error; err != nil {
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}
	return nil
}

func (s *AppointmentService) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&model.Appointment{}).Error; err != nil {
		return fmt.Errorf("delete all appointments: %w", err)
	}
	return nil
}
