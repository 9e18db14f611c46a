package endpoint

import (
	"context"

	"github.com/ariebrainware/hospital-api/mapper"
	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
)

// DoctorStore is the persistence the doctor handlers need.
type DoctorStore interface {
	FindByID(ctx context.Context, id uint) (*model.Doctor, error)
	List(ctx context.Context) ([]model.Doctor, error)
	FilterByName(ctx context.Context, name string) ([]model.Doctor, error)
	FilterBySpecialty(ctx context.Context, specialty string) ([]model.Doctor, error)
	FilterByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error)
	Save(ctx context.Context, doctor *model.Doctor) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type DoctorHandler struct {
	doctors  DoctorStore
	mapper   *mapper.DoctorMapper
	patients *mapper.PatientMapper
}

func NewDoctorHandler(doctors DoctorStore) *DoctorHandler {
	return &DoctorHandler{
		doctors:  doctors,
		mapper:   mapper.NewDoctorMapper(),
		patients: mapper.NewPatientMapper(doctors),
	}
}

// RegisterRoutes mounts the /medicos routes; write runs before every mutating route.
func (h *DoctorHandler) RegisterRoutes(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	g := rg.Group("/medicos")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/pacientes", h.ListPatients)
	g.POST("", guarded(write, h.Create)...)
	g.PUT("/:id", guarded(write, h.Update)...)
	g.DELETE("", guarded(write, h.DeleteAll)...)
	g.DELETE("/:id", guarded(write, h.Delete)...)
}

// Get godoc
// @Summary      Get a doctor
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.DoctorResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /medicos/{id} [get]
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	doctor, err := h.doctors.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("doctor", id, err))
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor retrieved", Data: h.mapper.ToResponse(doctor)})
}

// List godoc
// @Summary      List doctors
// @Description  Lists every doctor, optionally filtered by first name and/or specialty (case-insensitive).
// @Tags         Doctor
// @Produce      json
// @Param        nombre query string false "First name"
// @Param        especialidad query string false "Specialty"
// @Success      200 {object} util.APIResponse{data=[]model.DoctorResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Router       /medicos [get]
func (h *DoctorHandler) List(c *gin.Context) {
	specialty, ok := enumFilter(c, "especialidad", model.ParseSpecialty, model.Specialties)
	if !ok {
		return
	}
	name := c.Query("nombre")
	ctx := c.Request.Context()

	var (
		doctors []model.Doctor
		err     error
	)
	switch {
	case name != "" && specialty != "":
		doctors, err = h.doctors.FilterByNameAndSpecialty(ctx, name, specialty)
	case name != "":
		doctors, err = h.doctors.FilterByName(ctx, name)
	case specialty != "":
		doctors, err = h.doctors.FilterBySpecialty(ctx, specialty)
	default:
		doctors, err = h.doctors.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if len(doctors) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no doctors found"})
		return
	}

	out := make([]*model.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, h.mapper.ToResponse(&doctors[i]))
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctors retrieved", Data: out})
}

// ListPatients godoc
// @Summary      List a doctor's patients
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=[]model.PatientSummary}
// @Failure      404 {object} util.ErrorResponse
// @Router       /medicos/{id}/pacientes [get]
func (h *DoctorHandler) ListPatients(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	doctor, err := h.doctors.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("doctor", id, err))
		return
	}
	out := make([]*model.PatientSummary, 0, len(doctor.Patients))
	for i := range doctor.Patients {
		out = append(out, h.patients.ToSummary(&doctor.Patients[i]))
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patients retrieved", Data: out})
}

// Create godoc
// @Summary      Create a doctor
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body model.DoctorCreateRequest true "Doctor"
// @Success      201 {object} util.APIResponse{data=model.DoctorResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Router       /medicos [post]
func (h *DoctorHandler) Create(c *gin.Context) {
	var req model.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	doctor, err := h.mapper.FromCreateRequest(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.doctors.Save(c.Request.Context(), doctor); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessCreated(c, util.APISuccessParams{Msg: "Doctor created", Data: h.mapper.ToResponse(doctor)})
}

// Update godoc
// @Summary      Update a doctor
// @Description  Only fields present and non-blank in the body are changed.
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body model.DoctorUpdateRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.DoctorResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Router       /medicos/{id} [put]
func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.DoctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	doctor, err := h.doctors.FindByID(ctx, id)
	if err != nil {
		respondError(c, lookupFailed("doctor", id, err))
		return
	}
	doctor, err = h.mapper.MergeUpdateRequest(doctor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.doctors.Save(ctx, doctor); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor updated", Data: h.mapper.ToResponse(doctor)})
}

// Delete godoc
// @Summary      Delete a doctor
// @Description  Refused with 409 while patients are still assigned.
// @Tags         Doctor
// @Param        id path int true "Doctor ID"
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Failure      409 {object} util.ErrorResponse
// @Router       /medicos/{id} [delete]
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.doctors.FindByID(ctx, id); err != nil {
		respondError(c, lookupFailed("doctor", id, err))
		return
	}
	if err := h.doctors.DeleteByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}

// DeleteAll godoc
// @Summary      Delete every doctor
// @Tags         Doctor
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Failure      409 {object} util.ErrorResponse
// @Router       /medicos [delete]
func (h *DoctorHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	doctors, err := h.doctors.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(doctors) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no doctors to delete"})
		return
	}
	if err := h.doctors.DeleteAll(ctx); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}
