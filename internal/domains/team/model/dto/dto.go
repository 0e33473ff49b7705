package dto

import (
	"teammeet/internal/domains/team/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type CreateTeamRequest struct {
	Name         string `json:"name"           validate:"required,max=63"`
	NumOfMembers int    `json:"num_of_members" validate:"required,min=1"`
	ProjectID    int64  `json:"project_id"     validate:"required"`
}

func (c *CreateTeamRequest) ToModel(user string) model.Team {
	return model.Team{
		Name:         c.Name,
		NumOfMembers: c.NumOfMembers,
		ProjectID:    c.ProjectID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTeamRequest struct {
	Name         string `db:"name"           json:"name"           validate:"omitempty,max=63"`
	NumOfMembers *int   `db:"num_of_members" json:"num_of_members" validate:"omitempty,min=1"`
	ProjectID    *int64 `db:"project_id"     json:"project_id"     validate:"omitempty"`
}

type TeamResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	NumOfMembers int    `json:"num_of_members"`
	ProjectID    int64  `json:"project_id"`
	ProjectName  string `json:"project_name"`
	gDto.Metadata
}

func (r *TeamResponse) FromModel(model model.Team) {
	r.ID = model.ID
	r.Name = model.Name
	r.NumOfMembers = model.NumOfMembers
	r.ProjectID = model.ProjectID
	r.ProjectName = model.ProjectName
	r.Metadata.FromModel(model.Metadata)
}

type GetTeamsResponse struct {
	Teams     []TeamResponse `json:"teams"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTeamsResponse) FromModels(models []model.Team, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Teams = make([]TeamResponse, len(models))
	for i, mod := range models {
		r.Teams[i].FromModel(mod)
	}
}
