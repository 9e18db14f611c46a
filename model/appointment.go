package model

import (
	"time"

	"gorm.io/datatypes"
)

// Appointment books one patient into one room for a time slot.
type Appointment struct {
	ID        uint           `gorm:"primaryKey"`
	PatientID *uint          `gorm:"column:patient_id;index"`
	Patient   *Patient       `gorm:"foreignKey:PatientID"`
	RoomID    *uint          `gorm:"column:room_id;index"`
	Room      *Room          `gorm:"foreignKey:RoomID"`
	Date      datatypes.Date `gorm:"column:date"`
	StartTime datatypes.Time `gorm:"column:start_time"`
	EndTime   datatypes.Time `gorm:"column:end_time"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentCreateRequest is the body of POST /citas.
type AppointmentCreateRequest struct {
	PatientID *uint  `json:"pacienteId" binding:"required" example:"4"`
	RoomID    *uint  `json:"salaId" binding:"required" example:"1"`
	Date      string `json:"fechaCita" binding:"required,fecha" example:"20/05/2024"`
	StartTime string `json:"horaEntrada" binding:"required,hora" example:"09:30:00"`
	EndTime   string `json:"horaSalida" binding:"required,hora" example:"10:15:00"`
}

// AppointmentUpdateRequest is the body of PUT /citas/:id. Absent or blank fields are left
// untouched; non-blank dates and times are checked when merged.
type AppointmentUpdateRequest struct {
	PatientID *uint   `json:"pacienteId" example:"4"`
	RoomID    *uint   `json:"salaId" example:"1"`
	Date      *string `json:"fechaCita" example:"20/05/2024"`
	StartTime *string `json:"horaEntrada" example:"09:30:00"`
	EndTime   *string `json:"horaSalida" example:"10:15:00"`
}

// AppointmentResponse is how an appointment is rendered, with the patient's
// doctor and severity copied in.
type AppointmentResponse struct {
	ID         uint      `json:"id" example:"9"`
	Doctor     string    `json:"medico" example:"Daniel Ruiz Soto"`
	Patient    string    `json:"paciente" example:"Lucia Martin Gil"`
	RoomNumber int       `json:"numSala" example:"101"`
	Specialty  Specialty `json:"especialidad" example:"CARDIOLOGIA"`
	Severity   Severity  `json:"gravedad" example:"LEVE"`
	Date       string    `json:"fechaCita" example:"20/05/2024"`
	StartTime  string    `json:"horaEntrada" example:"09:30:00"`
	EndTime    string    `json:"horaSalida" example:"10:15:00"`
}
