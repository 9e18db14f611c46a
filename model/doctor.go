package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Doctor is a member of the medical staff. Patients point at their doctor;
// the doctor does not own them.
type Doctor struct {
	ID             uint           `gorm:"primaryKey"`
	FirstName      string         `gorm:"column:first_name;type:varchar(20);not null"`
	LastName       string         `gorm:"column:last_name;type:varchar(50);not null"`
	NationalID     string         `gorm:"column:national_id;type:varchar(9);not null"`
	Email          string         `gorm:"column:email;type:varchar(35)"`
	Specialty      Specialty      `gorm:"column:specialty;type:varchar(20)"`
	GraduationDate datatypes.Date `gorm:"column:graduation_date"`
	HireDate       datatypes.Date `gorm:"column:hire_date"`
	Patients       []Patient      `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first and last name.
func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// DoctorCreateRequest is the body of POST /medicos.
type DoctorCreateRequest struct {
	FirstName      string `json:"nombre" binding:"required,min=3,max=20" example:"Daniel"`
	LastName       string `json:"apellidos" binding:"required,min=3,max=50" example:"Ruiz Soto"`
	NationalID     string `json:"dni" binding:"required,len=9,dni" example:"12345678Z"`
	Email          string `json:"email" binding:"required,email,max=35" example:"daniel.ruiz@hospital.es"`
	GraduationDate string `json:"fechaGraduacion" binding:"required,fecha" example:"15/06/2010"`
	HireDate       string `json:"fechaIncorporacion" binding:"required,fecha" example:"01/09/2015"`
	Specialty      string `json:"especialidad" binding:"required,oneof=CIRUGIA PEDIATRIA ONCOLOGIA CARDIOLOGIA GINECOLOGIA TRAUMATOLOGIA DERMATOLOGIA PSIQUIATRIA OFTALMOLOGIA" example:"CARDIOLOGIA"`
}

// DoctorUpdateRequest is the body of PUT /medicos/:id. Absent or blank fields are left untouched.
type DoctorUpdateRequest struct {
	FirstName      *string `json:"nombre" binding:"omitempty,min=3,max=20" example:"Daniel"`
	LastName       *string `json:"apellidos" binding:"omitempty,min=3,max=50" example:"Ruiz Soto"`
	NationalID     *string `json:"dni" binding:"omitempty,len=9,dni" example:"12345678Z"`
	Email          *string `json:"email" binding:"omitempty,email,max=35" example:"daniel.ruiz@hospital.es"`
	GraduationDate *string `json:"fechaGraduacion" binding:"omitempty,fecha" example:"15/06/2010"`
	HireDate       *string `json:"fechaIncorporacion" binding:"omitempty,fecha" example:"01/09/2015"`
	Specialty      *string `json:"especialidad" binding:"omitempty,oneof=CIRUGIA PEDIATRIA ONCOLOGIA CARDIOLOGIA GINECOLOGIA TRAUMATOLOGIA DERMATOLOGIA PSIQUIATRIA OFTALMOLOGIA" example:"CARDIOLOGIA"`
}

// DoctorResponse is how a doctor is rendered.
type DoctorResponse struct {
	ID               uint      `json:"id" example:"1"`
	FirstName        string    `json:"nombre" example:"Daniel"`
	LastName         string    `json:"apellidos" example:"Ruiz Soto"`
	NationalID       string    `json:"dni" example:"12345678Z"`
	Email            string    `json:"email" example:"daniel.ruiz@hospital.es"`
	GraduationDate   string    `json:"fechaGraduacion" example:"15/06/2010"`
	HireDate         string    `json:"fechaIncorporacion" example:"01/09/2015"`
	Specialty        Specialty `json:"especialidad" example:"CARDIOLOGIA"`
	AssignedPatients int       `json:"pacientesAsignados" example:"3"`
}
