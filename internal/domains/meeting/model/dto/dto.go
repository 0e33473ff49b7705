package dto

import (
	"teammeet/internal/domains/meeting/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type CreateMeetingRequest struct {
	TeamID          int64 `json:"team_id"            validate:"required"`
	TypeOfMeetingID int64 `json:"type_of_meeting_id" validate:"required"`
}

// ToModel builds a meeting without a room requirement. The flag flips only
// when a booking is created for the meeting.
func (c *CreateMeetingRequest) ToModel(user string) model.Meeting {
	return model.Meeting{
		TeamID:              c.TeamID,
		TypeOfMeetingID:     c.TypeOfMeetingID,
		RequiresMeetingRoom: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMeetingRequest struct {
	TeamID          *int64 `db:"team_id"            json:"team_id"            validate:"omitempty"`
	TypeOfMeetingID *int64 `db:"type_of_meeting_id" json:"type_of_meeting_id" validate:"omitempty"`
}

type MeetingResponse struct {
	ID                  int64  `json:"id"`
	TeamID              int64  `json:"team_id"`
	TeamName            string `json:"team_name"`
	ProjectID           int64  `json:"project_id"`
	TypeOfMeetingID     int64  `json:"type_of_meeting_id"`
	TypeName            string `json:"type_name"`
	RequiresMeetingRoom bool   `json:"requires_meeting_room"`
	gDto.Metadata
}

func (r *MeetingResponse) FromModel(model model.Meeting) {
	r.ID = model.ID
	r.TeamID = model.TeamID
	r.TeamName = model.TeamName
	r.ProjectID = model.ProjectID
	r.TypeOfMeetingID = model.TypeOfMeetingID
	r.TypeName = model.TypeName
	r.RequiresMeetingRoom = model.RequiresMeetingRoom
	r.Metadata.FromModel(model.Metadata)
}

type GetMeetingsResponse struct {
	Meetings  []MeetingResponse `json:"meetings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMeetingsResponse) FromModels(models []model.Meeting, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Meetings = make([]MeetingResponse, len(models))
	for i, mod := range models {
		r.Meetings[i].FromModel(mod)
	}
}
