package dto

import (
	"teammeet/internal/domains/room/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type CreateRoomRequest struct {
	Name         string `json:"name"          validate:"required,max=63"`
	Capacity     int    `json:"capacity"      validate:"required,min=1,max=100"`
	HasProjector *bool  `json:"has_projector" validate:"omitempty"`
	IsSoundproof *bool  `json:"is_soundproof" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	hasProjector := false
	if c.HasProjector != nil {
		hasProjector = *c.HasProjector
	}

	isSoundproof := false
	if c.IsSoundproof != nil {
		isSoundproof = *c.IsSoundproof
	}

	return model.Room{
		Name:         c.Name,
		Capacity:     c.Capacity,
		HasProjector: hasProjector,
		IsSoundproof: isSoundproof,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=63"`
	Capacity     *int   `db:"capacity"      json:"capacity"      validate:"omitempty,min=1,max=100"`
	HasProjector *bool  `db:"has_projector" json:"has_projector" validate:"omitempty"`
	IsSoundproof *bool  `db:"is_soundproof" json:"is_soundproof" validate:"omitempty"`
}

type RoomResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	HasProjector bool   `json:"has_projector"`
	IsSoundproof bool   `json:"is_soundproof"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.HasProjector = model.HasProjector
	r.IsSoundproof = model.IsSoundproof
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
