package mapper

import (
	"testing"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorMapper_NilInputs(t *testing.T) {
	m := NewDoctorMapper()

	d, err := m.FromCreateRequest(nil)
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = m.MergeUpdateRequest(nil, &model.DoctorUpdateRequest{})
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = m.MergeUpdateRequest(sampleDoctor(), nil)
	assert.NoError(t, err)
	assert.Nil(t, d)

	assert.Nil(t, m.ToResponse(nil))
}

func TestDoctorMapper_FromCreateRequest(t *testing.T) {
	m := NewDoctorMapper()
	d, err := m.FromCreateRequest(&model.DoctorCreateRequest{
		FirstName:      "  Daniel ",
		LastName:       "Ruiz Soto",
		NationalID:     " 12345678z",
		Email:          " daniel@hospital.es",
		GraduationDate: "15/06/2010",
		HireDate:       "01/09/2015",
		Specialty:      "CARDIOLOGIA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Daniel", d.FirstName)
	assert.Equal(t, "daniel@hospital.es", d.Email)
	assert.Equal(t, "12345678Z", d.NationalID)
	assert.Equal(t, model.SpecialtyCardiology, d.Specialty)
	assert.Equal(t, "15/06/2010", formatDate(d.GraduationDate))
	assert.Equal(t, "01/09/2015", formatDate(d.HireDate))
	assert.Zero(t, d.ID)
}

func TestDoctorMapper_FromCreateRequest_BadDate(t *testing.T) {
	_, err := NewDoctorMapper().FromCreateRequest(&model.DoctorCreateRequest{
		GraduationDate: "31/02/2010",
		HireDate:       "01/09/2015",
	})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "fechaGraduacion", fieldErr.Field)
	assert.ErrorIs(t, err, util.ErrMalformedDateTime)
}

func TestDoctorMapper_MergeKeepsAbsentAndBlankFields(t *testing.T) {
	m := NewDoctorMapper()
	orig := *sampleDoctor()
	d := sampleDoctor()

	merged, err := m.MergeUpdateRequest(d, &model.DoctorUpdateRequest{
		FirstName: ptr("   "),
		Email:     ptr(""),
		LastName:  ptr(" Ruiz Perez "),
		HireDate:  ptr("02/02/2020"),
	})
	require.NoError(t, err)
	assert.Same(t, d, merged)
	assert.Equal(t, orig.FirstName, merged.FirstName)
	assert.Equal(t, orig.Email, merged.Email)
	assert.Equal(t, orig.NationalID, merged.NationalID)
	assert.Equal(t, orig.Specialty, merged.Specialty)
	assert.Equal(t, orig.GraduationDate, merged.GraduationDate)
	assert.Equal(t, "Ruiz Perez", merged.LastName)
	assert.Equal(t, "02/02/2020", formatDate(merged.HireDate))
}

func TestDoctorMapper_MergeEmptyPayloadChangesNothing(t *testing.T) {
	d := sampleDoctor()
	merged, err := NewDoctorMapper().MergeUpdateRequest(d, &model.DoctorUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, sampleDoctor(), merged)
}

func TestDoctorMapper_ToResponse(t *testing.T) {
	m := NewDoctorMapper()
	d := sampleDoctor()

	resp := m.ToResponse(d)
	assert.Equal(t, &model.DoctorResponse{
		ID:               1,
		FirstName:        "Daniel",
		LastName:         "Ruiz Soto",
		NationalID:       "12345678Z",
		Email:            "daniel@hospital.es",
		GraduationDate:   "15/06/2010",
		HireDate:         "01/09/2015",
		Specialty:        model.SpecialtyCardiology,
		AssignedPatients: 0,
	}, resp)

	for _, n := range []int{0, 1, 5} {
		d.Patients = make([]model.Patient, n)
		assert.Equal(t, n, m.ToResponse(d).AssignedPatients)
	}
}
