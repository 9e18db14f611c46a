package model

// Specialty is the medical area a doctor practises.
type Specialty string

const (
	SpecialtyUnrecognized  Specialty = ""
	SpecialtySurgery       Specialty = "CIRUGIA"
	SpecialtyPediatrics    Specialty = "PEDIATRIA"
	SpecialtyOncology      Specialty = "ONCOLOGIA"
	SpecialtyCardiology    Specialty = "CARDIOLOGIA"
	SpecialtyGynecology    Specialty = "GINECOLOGIA"
	SpecialtyTraumatology  Specialty = "TRAUMATOLOGIA"
	SpecialtyDermatology   Specialty = "DERMATOLOGIA"
	SpecialtyPsychiatry    Specialty = "PSIQUIATRIA"
	SpecialtyOphthalmology Specialty = "OFTALMOLOGIA"
)

// Specialties lists every recognised specialty.
var Specialties = []Specialty{
	SpecialtySurgery,
	SpecialtyPediatrics,
	SpecialtyOncology,
	SpecialtyCardiology,
	SpecialtyGynecology,
	SpecialtyTraumatology,
	SpecialtyDermatology,
	SpecialtyPsychiatry,
	SpecialtyOphthalmology,
}

type Gender string

const (
	GenderUnrecognized Gender = ""
	GenderMale         Gender = "MASCULINO"
	GenderFemale       Gender = "FEMENINO"
	GenderUnspecified  Gender = "NO_ESPECIFICADO"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderUnspecified}

// Severity grades how serious a patient's condition is.
type Severity string

const (
	SeverityUnrecognized Severity = ""
	SeverityAsymptomatic Severity = "ASINTOMATICA"
	SeverityMild         Severity = "LEVE"
	SeverityModerate     Severity = "MODERADA"
	SeveritySevere       Severity = "GRAVE"
	SeverityCritical     Severity = "CRITICA"
)

var Severities = []Severity{
	SeverityAsymptomatic,
	SeverityMild,
	SeverityModerate,
	SeveritySevere,
	SeverityCritical,
}

// parseEnum matches s exactly, including case, against values and returns
// the zero value when nothing matches.
func parseEnum[T ~string](s string, values []T) T {
	for _, v := range values {
		if string(v) == s {
			return v
		}
	}
	var unrecognized T
	return unrecognized
}

// ParseSpecialty returns SpecialtyUnrecognized for anything outside Specialties.
func ParseSpecialty(s string) Specialty { return parseEnum(s, Specialties) }

// ParseGender returns GenderUnrecognized for anything outside Genders.
func ParseGender(s string) Gender { return parseEnum(s, Genders) }

// ParseSeverity returns SeverityUnrecognized for anything outside Severities.
func ParseSeverity(s string) Severity { return parseEnum(s, Severities) }

func (s Specialty) Recognized() bool { return s != SpecialtyUnrecognized }
func (g Gender) Recognized() bool    { return g != GenderUnrecognized }
func (s Severity) Recognized() bool  { return s != SeverityUnrecognized }
