package dto

import (
	"teammeet/internal/domains/meetingtype/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type CreateMeetingTypeRequest struct {
	Name string `json:"name" validate:"omitempty,oneof=DAILY WEEKLY URGENT CLIENT CELEBRATION"`
}

func (c *CreateMeetingTypeRequest) ToModel(user string) model.MeetingType {
	name := c.Name
	if name == "" {
		name = model.DefaultType
	}

	return model.MeetingType{
		Name: name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMeetingTypeRequest struct {
	Name string `db:"name" json:"name" validate:"required,oneof=DAILY WEEKLY URGENT CLIENT CELEBRATION"`
}

type MeetingTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *MeetingTypeResponse) FromModel(model model.MeetingType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Metadata.FromModel(model.Metadata)
}

type GetMeetingTypesResponse struct {
	MeetingTypes []MeetingTypeResponse `json:"meeting_types"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetMeetingTypesResponse) FromModels(models []model.MeetingType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MeetingTypes = make([]MeetingTypeResponse, len(models))
	for i, mod := range models {
		r.MeetingTypes[i].FromModel(mod)
	}
}
