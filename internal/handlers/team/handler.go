package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teammeet/infras/otel"
	projectModel "teammeet/internal/domains/project/model"
	"teammeet/internal/domains/team/model"
	"teammeet/internal/domains/team/model/dto"
	"teammeet/internal/domains/team/service"
	"teammeet/shared"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	"teammeet/shared/validator"
	"teammeet/transport/http/response"
)

type Handler struct {
	service service.Team
	otel    otel.Otel
}

func New(service service.Team, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/teams", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTeam)
		routerGroup.Get("/", handler.GetTeams)
		routerGroup.Get("/{id}", handler.GetTeamByID)
		routerGroup.Put("/{id}", handler.UpdateTeam)
		routerGroup.Delete("/{id}", handler.DeleteTeam)
	})
}

// CreateTeam handles the creation of a new meeting team.
// @Summary Create a new team
// @Description Create a new meeting team with the provided details.
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Create Team Request"
// @Success 201 {object} response.Message "Team created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams [post]
// @Security BearerAuth
func (handler *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTeam")
	defer scope.End()

	req := dto.CreateTeamRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create team")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team created successfully")

	response.WithMessage(w, http.StatusCreated, "Team created successfully")
}

// GetTeams retrieves all teams based on query parameters.
// @Summary Get all teams
// @Description Retrieve all teams ordered by name, with optional filtering and pagination.
// @Tags Team
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by team name"
// @Param project query string false "Filter by project ID"
// @Success 200 {object} response.Data[dto.GetTeamsResponse] "List of teams"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams [get]
// @Security BearerAuth
func (handler *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeams")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.TableName+"."+model.FieldName, gDto.SortDirAsc)

	filterGroup := filtersFromRequest(r)

	teams, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get teams")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Teams retrieved successfully")

	response.WithJSON(w, http.StatusOK, teams)
}

// GetTeamByID retrieves a team by its ID.
// @Summary Get a team by ID
// @Description Retrieve a team by its unique identifier.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.Data[dto.TeamResponse] "Team details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeamByID")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	team, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get team by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team retrieved successfully")

	response.WithJSON(w, http.StatusOK, team)
}

// UpdateTeam updates an existing team by its ID.
// @Summary Update a team by ID
// @Description Update the details of an existing team.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Update Team Request"
// @Success 200 {object} response.Message "Team updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTeam")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateTeamRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update team")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team updated successfully")

	response.WithMessage(w, http.StatusOK, "Team updated successfully")
}

// DeleteTeam deletes a team by its ID.
// @Summary Delete a team by ID
// @Description Delete a team using its unique identifier.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.Message "Team deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTeam")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete team")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team deleted successfully")

	response.WithMessage(w, http.StatusOK, "Team deleted successfully")
}


func filtersFromRequest(r *http.Request) gDto.FilterGroup {
	name := r.URL.Query().Get(model.FieldName)
	project := r.URL.Query().Get(constant.RequestParamProject)

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

	if project != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    projectModel.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    project,
			Table:    projectModel.TableName,
		})
	}

	return filterGroup
}
