package dto

import (
	"mime/multipart"

	"teammeet/internal/domains/project/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type CreateProjectRequest struct {
	Name        string `json:"name"        validate:"required,max=63"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateProjectRequest) ToModel(user string) model.Project {
	return model.Project{
		Name:        c.Name,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProjectRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=63"`
	Description string `db:"description" json:"description" validate:"omitempty"`
}

type UploadProjectImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type ProjectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
