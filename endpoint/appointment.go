package endpoint

import (
	"context"

	"github.com/ariebrainware/hospital-api/mapper"
	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
)

// AppointmentStore is the persistence the appointment handlers need.
type AppointmentStore interface {
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Save(ctx context.Context, appt *model.Appointment) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type AppointmentHandler struct {
	appointments AppointmentStore
	mapper       *mapper.AppointmentMapper
}

func NewAppointmentHandler(appointments AppointmentStore, patients mapper.PatientFinder, rooms mapper.RoomFinder) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		mapper:       mapper.NewAppointmentMapper(patients, rooms),
	}
}

// RegisterRoutes mounts the /citas routes; write runs before every mutating route.
func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	g := rg.Group("/citas")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", guarded(write, h.Create)...)
	g.PUT("/:id", guarded(write, h.Update)...)
	g.DELETE("", guarded(write, h.DeleteAll)...)
	g.DELETE("/:id", guarded(write, h.Delete)...)
}

func appointmentResponses(m *mapper.AppointmentMapper, appts []model.Appointment) ([]*model.AppointmentResponse, error) {
	out := make([]*model.AppointmentResponse, 0, len(appts))
	for i := range appts {
		resp, err := m.ToResponse(&appts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// checkAppointmentReferences rejects a patient or room ID that was not
// linked, and a patient that has no doctor to attend the appointment.
func checkAppointmentReferences(appt *model.Appointment, patientID, roomID *uint) error {
	if err := checkReference("pacienteId", patientID, appt.PatientID); err != nil {
		return err
	}
	if err := checkReference("salaId", roomID, appt.RoomID); err != nil {
		return err
	}
	if appt.Patient != nil && appt.Patient.DoctorID == nil {
		return &UnresolvedReferenceError{Field: "pacienteId", ID: appt.Patient.ID}
	}
	return nil
}

func (h *AppointmentHandler) respond(c *gin.Context, appt *model.Appointment, send func(*gin.Context, util.APISuccessParams), msg string) {
	resp, err := h.mapper.ToResponse(appt)
	if err != nil {
		respondError(c, err)
		return
	}
	send(c, util.APISuccessParams{Msg: msg, Data: resp})
}

// Get godoc
// @Summary      Get an appointment
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse{data=model.AppointmentResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /citas/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	appt, err := h.appointments.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("appointment", id, err))
		return
	}
	h.respond(c, appt, util.CallSuccessOK, "Appointment retrieved")
}

// List godoc
// @Summary      List appointments
// @Tags         Appointment
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.AppointmentResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /citas [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.appointments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(appts) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no appointments found"})
		return
	}
	out, err := appointmentResponses(h.mapper, appts)
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointments retrieved", Data: out})
}

// Create godoc
// @Summary      Book an appointment
// @Description  pacienteId and salaId must reference existing records.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body model.AppointmentCreateRequest true "Appointment"
// @Success      201 {object} util.APIResponse{data=model.AppointmentResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      422 {object} util.ValidationErrorResponse
// @Router       /citas [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req model.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	appt, err := h.mapper.FromCreateRequest(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := checkAppointmentReferences(appt, req.PatientID, req.RoomID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.appointments.Save(ctx, appt); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, appt, util.CallSuccessCreated, "Appointment created")
}

// Update godoc
// @Summary      Update an appointment
// @Description  Only fields present and non-blank in the body are changed.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        request body model.AppointmentUpdateRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.AppointmentResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Failure      422 {object} util.ValidationErrorResponse
// @Router       /citas/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	appt, err := h.appointments.FindByID(ctx, id)
	if err != nil {
		respondError(c, lookupFailed("appointment", id, err))
		return
	}
	appt, err = h.mapper.MergeUpdateRequest(ctx, appt, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := checkAppointmentReferences(appt, req.PatientID, req.RoomID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.appointments.Save(ctx, appt); err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, appt, util.CallSuccessOK, "Appointment updated")
}

// Delete godoc
// @Summary      Cancel an appointment
// @Tags         Appointment
// @Param        id path int true "Appointment ID"
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /citas/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.appointments.FindByID(ctx, id); err != nil {
		respondError(c, lookupFailed("appointment", id, err))
		return
	}
	if err := h.appointments.DeleteByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}

// DeleteAll godoc
// @Summary      Cancel every appointment
// @Tags         Appointment
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /citas [delete]
func (h *AppointmentHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	appts, err := h.appointments.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(appts) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no appointments to delete"})
		return
	}
	if err := h.appointments.DeleteAll(ctx); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}
