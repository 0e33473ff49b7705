package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teammeet/infras/otel"
	"teammeet/internal/domains/project/model"
	"teammeet/internal/domains/project/model/dto"
	"teammeet/internal/domains/project/service"
	"teammeet/shared"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	"teammeet/shared/validator"
	"teammeet/transport/http/response"
)

type Handler struct {
	service service.Project
	otel    otel.Otel
}

func New(service service.Project, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/projects", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProject)
		routerGroup.Get("/", handler.GetProjects)
		routerGroup.Get("/{id}", handler.GetProjectByID)
		routerGroup.Put("/{id}", handler.UpdateProject)
		routerGroup.Delete("/{id}", handler.DeleteProject)
		routerGroup.Post("/{id}/upload-image", handler.UploadProjectImage)
	})
}

// CreateProject handles the creation of a new meeting project.
// @Summary Create a new project
// @Description Create a new meeting project with the provided details.
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} response.Message "Project created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects [post]
// @Security BearerAuth
func (handler *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project created successfully")

	response.WithMessage(w, http.StatusCreated, "Project created successfully")
}

// GetProjects retrieves all projects based on query parameters.
// @Summary Get all projects
// @Description Retrieve all projects ordered by name, with optional filtering and pagination.
// @Tags Project
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by project name"
// @Success 200 {object} response.Data[dto.GetProjectsResponse] "List of projects"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects [get]
// @Security BearerAuth
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.FieldName, gDto.SortDirAsc)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	projects, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Projects retrieved successfully")

	response.WithJSON(w, http.StatusOK, projects)
}

// GetProjectByID retrieves a project by its ID.
// @Summary Get a project by ID
// @Description Retrieve a project by its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Data[dto.ProjectResponse] "Project details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectByID")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	project, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project retrieved successfully")

	response.WithJSON(w, http.StatusOK, project)
}

// UpdateProject updates an existing project by its ID.
// @Summary Update a project by ID
// @Description Update the details of an existing project.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Update Project Request"
// @Success 200 {object} response.Message "Project updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProject")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project updated successfully")

	response.WithMessage(w, http.StatusOK, "Project updated successfully")
}

// DeleteProject deletes a project by its ID.
// @Summary Delete a project by ID
// @Description Delete a project using its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Message "Project deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project deleted successfully")

	response.WithMessage(w, http.StatusOK, "Project deleted successfully")
}


// UploadProjectImage replaces the image of a project.
// @Summary Upload a project image
// @Description Upload an image for a project and store it in object storage.
// @Tags Project
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Project ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[string] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id}/upload-image [post]
// @Security BearerAuth
func (handler *Handler) UploadProjectImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadProjectImage")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadProjectImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	url, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload project image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project image uploaded successfully")

	response.WithJSON(w, http.StatusOK, url)
}
