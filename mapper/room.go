package mapper

import "github.com/ariebrainware/hospital-api/model"

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) FromCreateRequest(req *model.RoomCreateRequest) *model.Room {
	if req == nil {
		return nil
	}
	return &model.Room{Number: req.Number}
}

func (m *RoomMapper) MergeUpdateRequest(room *model.Room, req *model.RoomUpdateRequest) *model.Room {
	if room == nil || req == nil {
		return nil
	}
	if req.Number != nil {
		room.Number = *req.Number
	}
	return room
}

func (m *RoomMapper) ToResponse(room *model.Room) *model.RoomResponse {
	if room == nil {
		return nil
	}
	return &model.RoomResponse{
		ID:                   room.ID,
		Number:               room.Number,
		AssignedAppointments: len(room.Appointments),
	}
}
