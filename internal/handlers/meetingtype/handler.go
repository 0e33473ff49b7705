package meetingtype

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teammeet/infras/otel"
	"teammeet/internal/domains/meetingtype/model"
	"teammeet/internal/domains/meetingtype/model/dto"
	"teammeet/internal/domains/meetingtype/service"
	"teammeet/shared"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	"teammeet/shared/validator"
	"teammeet/transport/http/response"
)

type Handler struct {
	service service.MeetingType
	otel    otel.Otel
}

func New(service service.MeetingType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/meeting-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMeetingType)
		routerGroup.Get("/", handler.GetMeetingTypes)
		routerGroup.Get("/{id}", handler.GetMeetingTypeByID)
		routerGroup.Put("/{id}", handler.UpdateMeetingType)
		routerGroup.Delete("/{id}", handler.DeleteMeetingType)
	})
}

// CreateMeetingType handles the creation of a new meeting meeting type.
// @Summary Create a new meeting type
// @Description Create a new meeting meeting type with the provided details.
// @Tags MeetingType
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingTypeRequest true "Create MeetingType Request"
// @Success 201 {object} response.Message "Meeting type created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meeting-types [post]
// @Security BearerAuth
func (handler *Handler) CreateMeetingType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMeetingType")
	defer scope.End()

	req := dto.CreateMeetingTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create meeting type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting type created successfully")

	response.WithMessage(w, http.StatusCreated, "Meeting type created successfully")
}

// GetMeetingTypes retrieves all meeting types based on query parameters.
// @Summary Get all meeting types
// @Description Retrieve all meeting types with optional filtering and pagination.
// @Tags MeetingType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by meeting type name"
// @Success 200 {object} response.Data[dto.GetMeetingTypesResponse] "List of meeting types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meeting-types [get]
// @Security BearerAuth
func (handler *Handler) GetMeetingTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeetingTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.FieldID, gDto.SortDirAsc)

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

	meetingTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meeting types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting types retrieved successfully")

	response.WithJSON(w, http.StatusOK, meetingTypes)
}

// GetMeetingTypeByID retrieves a meeting type by its ID.
// @Summary Get a meeting type by ID
// @Description Retrieve a meeting type by its unique identifier.
// @Tags MeetingType
// @Accept json
// @Produce json
// @Param id path int true "MeetingType ID"
// @Success 200 {object} response.Data[dto.MeetingTypeResponse] "MeetingType details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meeting-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMeetingTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMeetingTypeByID")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	meetingType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get meeting type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting type retrieved successfully")

	response.WithJSON(w, http.StatusOK, meetingType)
}

// UpdateMeetingType updates an existing meeting type by its ID.
// @Summary Update a meeting type by ID
// @Description Update the details of an existing meeting type.
// @Tags MeetingType
// @Accept json
// @Produce json
// @Param id path int true "MeetingType ID"
// @Param request body dto.UpdateMeetingTypeRequest true "Update MeetingType Request"
// @Success 200 {object} response.Message "Meeting type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meeting-types/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateMeetingType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMeetingType")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateMeetingTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update meeting type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting type updated successfully")

	response.WithMessage(w, http.StatusOK, "Meeting type updated successfully")
}

// DeleteMeetingType deletes a meeting type by its ID.
// @Summary Delete a meeting type by ID
// @Description Delete a meeting type using its unique identifier.
// @Tags MeetingType
// @Accept json
// @Produce json
// @Param id path int true "MeetingType ID"
// @Success 200 {object} response.Message "Meeting type deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/meeting-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMeetingType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMeetingType")
	defer scope.End()

	id, err := shared.ParseIDParam(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete meeting type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting type deleted successfully")

	response.WithMessage(w, http.StatusOK, "Meeting type deleted successfully")
}

