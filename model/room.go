package model

import "time"

// Room hosts appointments and owns them.
type Room struct {
	ID           uint          `gorm:"primaryKey"`
	Number       int           `gorm:"column:number;not null"`
	Appointments []Appointment `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoomCreateRequest is the body of POST /salas.
type RoomCreateRequest struct {
	Number int `json:"numSala" binding:"required,min=1" example:"101"`
}

// RoomUpdateRequest is the body of PUT /salas/:id.
type RoomUpdateRequest struct {
	Number *int `json:"numSala" binding:"omitempty,min=1" example:"102"`
}

// RoomResponse is how a room is rendered.
type RoomResponse struct {
	ID                   uint `json:"id" example:"1"`
	Number               int  `json:"numSala" example:"101"`
	AssignedAppointments int  `json:"citasAsignadas" example:"0"`
}
