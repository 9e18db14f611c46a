package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariebrainware/hospital-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomService reads and writes rooms. Deleting a room deletes its appointments.
type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).
		Preload("Appointments.Room").
		Preload("Appointments.Patient.Doctor").
		First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Preload("Appointments").Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Save(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(room).Error; err != nil {
			return fmt.Errorf("save room: %w", err)
		}
		return nil
	})
}

func (s *RoomService) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return fmt.Errorf("delete appointments of room %d: %w", id, err)
		}
		if err := tx.Delete(&model.Room{}, id).Error; err != nil {
			return fmt.Errorf("delete room %d: %w", id, err)
		}
		return nil
	})
}

func (s *RoomService) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id IS NOT NULL").Delete(&model.Appointment{}).Error; err != nil {
			return fmt.Errorf("delete room appointments: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.Room{}).Error; err != nil {
			return fmt.Errorf("delete all rooms: %w", err)
		}
		return nil
	})
}
