package meeting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teammeet/infras/otel"
	"teammeet/internal/domains/meeting/model"
	"teammeet/internal/domains/meeting/model/dto"
	"teammeet/internal/domains/meeting/service"
	projectModel "teammeet/internal/domains/project/model"
	"teammeet/shared"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	"teammeet/shared/validator"
	"teammeet/transport/http/response"
)

type Handler struct {
	service service.Meeting
	otel    otel.Otel
}

func New(service service.Meeting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/meetings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMeeting)
		routerGroup.Get("/", handler.GetMeetings)
		routerGroup.Get("/{id}", handler.GetMeetingByID)
		routerGroup.Put("/{id}", handler.UpdateMeeting)
		routerGroup.Delete("/{id}", handler.DeleteMeeting)
	})
}

// CreateMeeting handles the creation of a new meeting meeting.
// @Summary Create a new meeting
// @Description Create a new meeting meeting with the provided details.
// @Tags Meeting
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Create Meeting Request"
// @Success 201 {object} response.Message "Meeting created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meetings [post]
// @Security BearerAuth
func (handler *Handler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMeeting")
	defer scope.End()

	req := dto.CreateMeetingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create meeting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting created successfully")

	response.WithMessage(w, http.StatusCreated, "Meeting created successfully")
}

// GetMeetings retrieves all meetings based on query parameters.
// @Summary Get all meetings
// @Description Retrieve all meetings with optional filtering and pagination.
// @Tags Meeting
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param team query string false "Filter by team ID"
// @Param project query string false "Filter by project ID"
// @Success 200 {object} response.Data[dto.GetMeetingsResponse] "List of meetings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meetings [get]
// @Security BearerAuth
func (handler *Handler) GetMeetings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeetings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.TableName+"."+model.FieldID, gDto.SortDirAsc)

	filterGroup := filtersFromRequest(r)

	meetings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meetings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meetings retrieved successfully")

	response.WithJSON(w, http.StatusOK, meetings)
}

// GetMeetingByID retrieves a meeting by its ID.
// @Summary Get a meeting by ID
// @Description Retrieve a meeting by its unique identifier.
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} response.Data[dto.MeetingResponse] "Meeting details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meetings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMeetingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeetingByID")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	meeting, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meeting by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting retrieved successfully")

	response.WithJSON(w, http.StatusOK, meeting)
}

// UpdateMeeting updates an existing meeting by its ID.
// @Summary Update a meeting by ID
// @Description Update the details of an existing meeting.
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body dto.UpdateMeetingRequest true "Update Meeting Request"
// @Success 200 {object} response.Message "Meeting updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meetings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMeeting")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateMeetingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update meeting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting updated successfully")

	response.WithMessage(w, http.StatusOK, "Meeting updated successfully")
}

// DeleteMeeting deletes a meeting by its ID.
// @Summary Delete a meeting by ID
// @Description Delete a meeting using its unique identifier.
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} response.Message "Meeting deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meetings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMeeting")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete meeting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting deleted successfully")

	response.WithMessage(w, http.StatusOK, "Meeting deleted successfully")
}


func filtersFromRequest(r *http.Request) gDto.FilterGroup {
	team := r.URL.Query().Get(constant.RequestParamTeam)
	project := r.URL.Query().Get(constant.RequestParamProject)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if team != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTeamID,
			Operator: gDto.FilterOperatorEq,
			Value:    team,
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
