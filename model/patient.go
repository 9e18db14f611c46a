package model

import (
	"strings"
	"time"
)

// Patient is admitted under one doctor and owns its appointments.
type Patient struct {
	ID            uint          `gorm:"primaryKey"`
	FirstName     string        `gorm:"column:first_name;type:varchar(20);not null"`
	LastName      string        `gorm:"column:last_name;type:varchar(50);not null"`
	NationalID    string        `gorm:"column:national_id;type:varchar(9);not null"`
	Gender        Gender        `gorm:"column:gender;type:varchar(20)"`
	Severity      Severity      `gorm:"column:severity;type:varchar(20)"`
	Address       string        `gorm:"column:address;type:varchar(50)"`
	Email         string        `gorm:"column:email;type:varchar(35)"`
	Phone         string        `gorm:"column:phone;type:varchar(9)"`
	BirthDate     time.Time     `gorm:"column:birth_date"`
	AdmissionDate time.Time     `gorm:"column:admission_date"`
	DoctorID      *uint         `gorm:"column:doctor_id;index"`
	Doctor        *Doctor       `gorm:"foreignKey:DoctorID"`
	Appointments  []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName joins first and last name.
func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PatientCreateRequest is the body of POST /pacientes.
type PatientCreateRequest struct {
	FirstName     string `json:"nombre" binding:"required,min=3,max=20" example:"Lucia"`
	LastName      string `json:"apellidos" binding:"required,min=3,max=50" example:"Martin Gil"`
	NationalID    string `json:"dni" binding:"required,len=9,dni" example:"11111111H"`
	Gender        string `json:"genero" binding:"required,oneof=MASCULINO FEMENINO NO_ESPECIFICADO" example:"FEMENINO"`
	Address       string `json:"direccion" binding:"required,max=50" example:"Calle Mayor 1, Madrid"`
	Email         string `json:"email" binding:"required,email,max=35" example:"lucia@correo.es"`
	Phone         string `json:"telefono" binding:"required,telefono" example:"612345678"`
	BirthDate     string `json:"fechaNacimiento" binding:"required,fechahora" example:"02/03/1985 00:00:00"`
	AdmissionDate string `json:"fechaIngreso" binding:"required,fechahora" example:"10/01/2024 08:30:00"`
	DoctorID      *uint  `json:"medicoId" binding:"required" example:"1"`
	Severity      string `json:"gravedad" binding:"required,oneof=ASINTOMATICA LEVE MODERADA GRAVE CRITICA" example:"LEVE"`
}

// PatientUpdateRequest is the body of PUT /pacientes/:id. Absent or blank fields are left untouched.
type PatientUpdateRequest struct {
	FirstName     *string `json:"nombre" binding:"omitempty,min=3,max=20"`
	LastName      *string `json:"apellidos" binding:"omitempty,min=3,max=50"`
	NationalID    *string `json:"dni" binding:"omitempty,len=9,dni"`
	Gender        *string `json:"genero" binding:"omitempty,oneof=MASCULINO FEMENINO NO_ESPECIFICADO"`
	Address       *string `json:"direccion" binding:"omitempty,max=50"`
	Email         *string `json:"email" binding:"omitempty,email,max=35"`
	Phone         *string `json:"telefono" binding:"omitempty,telefono"`
	BirthDate     *string `json:"fechaNacimiento"`
	AdmissionDate *string `json:"fechaIngreso"`
	DoctorID      *uint   `json:"medicoId"`
	Severity      *string `json:"gravedad" binding:"omitempty,oneof=ASINTOMATICA LEVE MODERADA GRAVE CRITICA"`
}

// PatientResponse is how a patient is rendered.
type PatientResponse struct {
	ID                   uint      `json:"id" example:"4"`
	FirstName            string    `json:"nombre" example:"Lucia"`
	LastName             string    `json:"apellidos" example:"Martin Gil"`
	NationalID           string    `json:"dni" example:"11111111H"`
	Gender               Gender    `json:"genero" example:"FEMENINO"`
	Address              string    `json:"direccion" example:"Calle Mayor 1, Madrid"`
	Email                string    `json:"email" example:"lucia@correo.es"`
	Phone                string    `json:"telefono" example:"612345678"`
	BirthDate            string    `json:"fechaNacimiento" example:"02/03/1985 00:00:00"`
	AdmissionDate        string    `json:"fechaIngreso" example:"10/01/2024 08:30:00"`
	AssignedDoctor       string    `json:"medicoAsignado" example:"Daniel Ruiz Soto"`
	TreatmentArea        Specialty `json:"areaTratamiento" example:"CARDIOLOGIA"`
	Severity             Severity  `json:"gravedad" example:"LEVE"`
	RecordedAppointments int       `json:"citasRegistradas" example:"2"`
}

// PatientSummary is the patient shape listed under a doctor.
type PatientSummary struct {
	ID            uint     `json:"id" example:"4"`
	FullName      string   `json:"nombre" example:"Lucia Martin Gil"`
	Gender        Gender   `json:"genero" example:"FEMENINO"`
	Severity      Severity `json:"gravedad" example:"LEVE"`
	Address       string   `json:"direccion" example:"Calle Mayor 1, Madrid"`
	Email         string   `json:"email" example:"lucia@correo.es"`
	Phone         string   `json:"telefono" example:"612345678"`
	BirthDate     string   `json:"fechaNacimiento" example:"02/03/1985 00:00:00"`
	AdmissionDate string   `json:"fechaIngreso" example:"10/01/2024 08:30:00"`
}
