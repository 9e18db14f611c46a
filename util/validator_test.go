package util

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDNI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "12345678Z", true},
		{"valid all zeros", "00000000T", true},
		{"valid lower case", "11111111h", true},
		{"valid with spaces", " 1234 5678Z ", true},
		{"wrong letter", "12345678A", false},
		{"too short", "1234567Z", false},
		{"too long", "123456789Z", false},
		{"letter inside digits", "1234A678Z", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDNI(tt.input))
		})
	}
}

type sampleRequest struct {
	Name     string  `json:"nombre" binding:"required,min=3,max=20"`
	DNI      string  `json:"dni" binding:"required,dni"`
	Date     string  `json:"fechaCita" binding:"required,fecha"`
	Clock    string  `json:"horaEntrada" binding:"required,hora"`
	Admitted string  `json:"fechaIngreso" binding:"required,fechahora"`
	Phone    string  `json:"telefono" binding:"required,telefono"`
	Optional *string `json:"direccion" binding:"omitempty,max=5"`
}

func TestRegisterValidators_CustomTags(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators(), "second call must be a no-op")

	ok := sampleRequest{
		Name:     "Daniel",
		DNI:      "12345678Z",
		Date:     "15/06/2010",
		Clock:    "09:30:00",
		Admitted: "15/06/2010 09:30:00",
		Phone:    "612345678",
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	long := "far too long"
	bad := sampleRequest{
		Name:     "Da",
		DNI:      "12345678A",
		Date:     "15-06-2010",
		Clock:    "9:30",
		Admitted: "15/06/2010",
		Phone:    "512345678",
		Optional: &long,
	}
	err := binding.Validator.ValidateStruct(&bad)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	msgs := ValidationMessages(verrs)
	assert.Equal(t, map[string]string{
		"nombre":       "must have at least 3 characters",
		"dni":          "must be 8 digits followed by the matching control letter",
		"fechaCita":    "must use the dd/MM/yyyy format",
		"horaEntrada":  "must use the HH:mm:ss format",
		"fechaIngreso": "must use the dd/MM/yyyy HH:mm:ss format",
		"telefono":     "must be 9 digits starting with 6 or 9",
		"direccion":    "must have at most 5 characters",
	}, msgs)
}
