package endpoint

import (
	"context"

	"github.com/ariebrainware/hospital-api/mapper"
	"github.com/ariebrainware/hospital-api/model"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
)

// RoomStore is the persistence the room handlers need.
type RoomStore interface {
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Save(ctx context.Context, room *model.Room) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type RoomHandler struct {
	rooms        RoomStore
	mapper       *mapper.RoomMapper
	appointments *mapper.AppointmentMapper
}

func NewRoomHandler(rooms RoomStore, patients mapper.PatientFinder) *RoomHandler {
	return &RoomHandler{
		rooms:        rooms,
		mapper:       mapper.NewRoomMapper(),
		appointments: mapper.NewAppointmentMapper(patients, rooms),
	}
}

// RegisterRoutes mounts the /salas routes; write runs before every mutating route.
func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	g := rg.Group("/salas")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/citas", h.ListAppointments)
	g.POST("", guarded(write, h.Create)...)
	g.PUT("/:id", guarded(write, h.Update)...)
	g.DELETE("", guarded(write, h.DeleteAll)...)
	g.DELETE("/:id", guarded(write, h.Delete)...)
}

// Get godoc
// @Summary      Get a room
// @Tags         Room
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200 {object} util.APIResponse{data=model.RoomResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	room, err := h.rooms.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("room", id, err))
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Room retrieved", Data: h.mapper.ToResponse(room)})
}

// List godoc
// @Summary      List rooms
// @Tags         Room
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.RoomResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rooms) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no rooms found"})
		return
	}
	out := make([]*model.RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, h.mapper.ToResponse(&rooms[i]))
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Rooms retrieved", Data: out})
}

// ListAppointments godoc
// @Summary      List the appointments booked in a room
// @Tags         Room
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200 {object} util.APIResponse{data=[]model.AppointmentResponse}
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas/{id}/citas [get]
func (h *RoomHandler) ListAppointments(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	room, err := h.rooms.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, lookupFailed("room", id, err))
		return
	}
	out, err := appointmentResponses(h.appointments, room.Appointments)
	if err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointments retrieved", Data: out})
}

// Create godoc
// @Summary      Create a room
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        request body model.RoomCreateRequest true "Room"
// @Success      201 {object} util.APIResponse{data=model.RoomResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Router       /salas [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req model.RoomCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	room := h.mapper.FromCreateRequest(&req)
	if err := h.rooms.Save(c.Request.Context(), room); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessCreated(c, util.APISuccessParams{Msg: "Room created", Data: h.mapper.ToResponse(room)})
}

// Update godoc
// @Summary      Update a room
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Param        request body model.RoomUpdateRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.RoomResponse}
// @Failure      400 {object} util.ValidationErrorResponse
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.RoomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()
	room, err := h.rooms.FindByID(ctx, id)
	if err != nil {
		respondError(c, lookupFailed("room", id, err))
		return
	}
	room = h.mapper.MergeUpdateRequest(room, &req)
	if err := h.rooms.Save(ctx, room); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Room updated", Data: h.mapper.ToResponse(room)})
}

// Delete godoc
// @Summary      Delete a room and its appointments
// @Tags         Room
// @Param        id path int true "Room ID"
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.rooms.FindByID(ctx, id); err != nil {
		respondError(c, lookupFailed("room", id, err))
		return
	}
	if err := h.rooms.DeleteByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}

// DeleteAll godoc
// @Summary      Delete every room and appointment
// @Tags         Room
// @Success      200
// @Failure      404 {object} util.ErrorResponse
// @Router       /salas [delete]
func (h *RoomHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	rooms, err := h.rooms.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rooms) == 0 {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "no rooms to delete"})
		return
	}
	if err := h.rooms.DeleteAll(ctx); err != nil {
		respondError(c, err)
		return
	}
	util.CallSuccessNoBody(c)
}
