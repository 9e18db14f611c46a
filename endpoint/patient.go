package endpoint

import (
	"context"

	"github.com/ariebrainware/hospital-api/mapper"
	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
)

// PatientStore is the persistence the patient handlers need.
type PatientStore interface {
	FindByID(ctx context.Context, id uint) (*model.Patient, error)
	List(ctx context.Context) ([]model.Patient, error)
	FilterBySeverity(ctx context.Context, severity string) ([]model.Patient, error)
	Save(ctx context.Context, patient *model.Patient) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type PatientHandler struct {
	patients     PatientStore
	mapper       *mapper.PatientMapper
	appointments *mapper.AppointmentMapper
}

func NewPatientHandler(patients PatientStore, doctors mapper.DoctorFinder, rooms mapper.RoomFinder) *PatientHandler {
	return &PatientHandler{
		patients:     patients,
		mapper:       mapper.NewPatientMapper(doctors),
		appointments: mapper.NewAppointmentMapper(patients, rooms),
	}
}

// RegisterRoutes mounts the /pacientes routes; write runs before every mutating route.
func (h *PatientHandler) RegisterRoutes(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	g := rg.Group("/pacientes")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/citas", h.ListAppointments)
	g.POST("", guarded(write, h.Create)...)
	g.PUT("/:id", guarded(write, h.Update)...)
	g.DELETE("", guarded(write, h.DeleteAll)...)
	g.DELETE("/:id", guarded(write, h.Delete)...)
}

func (h *PatientHandler) respond(c *gin.Context, patient *model.Patient, send func(*gin.Context, util.APISuccessParams), msg string) {
	resp, err := h.mapper.ToResponse(patient)
	if err != nil {
		respondError(c, err)
		return
	}
	send(c, util.APISuccessParams{Msg: msg, Data: resp})
}

// Get godoc
// @Summary      Get a patient
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.PatientResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /pacientes/{id} [get]
func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	patient, err := h.patients.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("patient", id, err))
		return
	}
	h.respond(c, patient, util.CallSuccessOK, "Patient retrieved")
}

// List godoc
// @Summary      List patients
// @Tags         Patient
// @Produce      json
// @Param        gravedad query string false "Severity (case-insensitive)"
// @Success      200 {object} util.APIResponse{data=[]model.PatientResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Router       /pacientes [get]
func (h *PatientHandler) List(c *gin.Context) {
	severity, ok := enumFilter(c, "gravedad", model.ParseSeverity, model.Severities)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		patients []model.Patient
		err      error
	)
	if severity != "" {
		patients, err = h.patients.FilterBySeverity(ctx, severity)
	} else {
		patients, err = h.patients.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if len(patients) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no patients found"})
		return
	}

	out := make([]*model.PatientResponse, 0, len(patients))
	for i := range patients {
		resp, err := h.mapper.ToResponse(&patients[i])
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, resp)
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patients retrieved", Data: out})
}

// ListAppointments godoc
// @Summary      List a patient's appointments
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=[]model.AppointmentResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /pacientes/{id}/citas [get]
func (h *PatientHandler) ListAppointments(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	patient, err := h.patients.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("patient", id, err))
		return
	}
	out, err := appointmentResponses(h.appointments, patient.Appointments)
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointments retrieved", Data: out})
}

// Create godoc
// @Summary      Admit a patient
// @Description  medicoId must reference an existing doctor.
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body model.PatientCreateRequest true "Patient"
// @Success      201 {object} util.APIResponse{data=model.PatientResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      422 {object} util.ValidationErrorResponse
// @Router       /pacientes [post]
func (h *PatientHandler) Create(c *gin.Context) {
	var req model.PatientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	patient, err := h.mapper.FromCreateRequest(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := checkReference("medicoId", req.DoctorID, patient.DoctorID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.patients.Save(ctx, patient); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, patient, util.CallSuccessCreated, "Patient created")
}

// Update godoc
// @Summary      Update a patient
// @Description  Only fields present and non-blank in the body are changed.
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body model.PatientUpdateRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.PatientResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Failure      422 {object} util.ValidationErrorResponse
// @Router       /pacientes/{id} [put]
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.PatientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	patient, err := h.patients.FindByID(ctx, id)
	if err != nil {
		respondError(c, lookupFailed("patient", id, err))
		return
	}
	patient, err = h.mapper.MergeUpdateRequest(ctx, patient, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := checkReference("medicoId", req.DoctorID, patient.DoctorID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.patients.Save(ctx, patient); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, patient, util.CallSuccessOK, "Patient updated")
}

// Delete godoc
// @Summary      Delete a patient and its appointments
// @Tags         Patient
// @Param        id path int true "Patient ID"
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /pacientes/{id} [delete]
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.patients.FindByID(ctx, id); err != nil {
		respondError(c, lookupFailed("patient", id, err))
		return
	}
	if err := h.patients.DeleteByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}

// DeleteAll godoc
// @Summary      Delete every patient and appointment
// @Tags         Patient
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /pacientes [delete]
func (h *PatientHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	patients, err := h.patients.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(patients) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no patients to delete"})
		return
	}
	if err := h.patients.DeleteAll(ctx); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}
