package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"teammeet/config"
	"teammeet/infras/kafka"
	"teammeet/infras/otel"
	"teammeet/infras/postgres"
	"teammeet/internal/domains/booking/model"
	"teammeet/internal/domains/booking/model/dto"
	"teammeet/internal/domains/booking/repository"
	meetingModel "teammeet/internal/domains/meeting/model"
	meetingRepo "teammeet/internal/domains/meeting/repository"
	typeModel "teammeet/internal/domains/meetingtype/model"
	typeRepo "teammeet/internal/domains/meetingtype/repository"
	roomModel "teammeet/internal/domains/room/model"
	roomRepo "teammeet/internal/domains/room/repository"
	teamModel "teammeet/internal/domains/team/model"
	teamRepo "teammeet/internal/domains/team/repository"
	"teammeet/shared"
	"teammeet/shared/cache"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventCreated = "booking.created"
	eventUpdated = "booking.updated"
	eventDeleted = "booking.deleted"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	MyBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Booking
	meetings     meetingRepo.Meeting
	rooms        roomRepo.Room
	teams        teamRepo.Team
	meetingTypes typeRepo.MeetingType
	txRunner     postgres.TxRunner
	producer     kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	meetings meetingRepo.Meeting,
	rooms roomRepo.Room,
	teams teamRepo.Team,
	meetingTypes typeRepo.MeetingType,
	txRunner postgres.TxRunner,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		meetings:     meetings,
		rooms:        rooms,
		teams:        teams,
		meetingTypes: meetingTypes,
		txRunner:     txRunner,
		producer:     producer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a room for a brand new meeting. The meeting row, the conflict
// check and the booking row form one transaction: a failed check leaves no
// meeting behind.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	day, err := time.Parse(model.DayFormat, req.Day)
	if err != nil {
		return 0, failure.BadRequestFromString("day must be in YYYY-MM-DD format")
	}

	if err = s.checkReferences(ctx, req.RoomID, req.TeamID, req.TypeOfMeetingID); err != nil {
		return 0, err
	}

	var meetingID int64

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		var txErr error

		meetingID, txErr = s.meetings.InsertTx(ctx, tx, meetingModel.Meeting{
			TeamID:              req.TeamID,
			TypeOfMeetingID:     req.TypeOfMeetingID,
			RequiresMeetingRoom: true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to create meeting for booking")

			return fmt.Errorf("failed to create meeting for booking: %w", txErr)
		}

		if txErr = s.validateSlot(ctx, tx, slot{
			roomID:    req.RoomID,
			day:       day,
			startHour: req.StartHour,
			endHour:   req.EndHour,
		}); txErr != nil {
			return txErr
		}

		id, txErr = s.repo.InsertTx(ctx, tx, req.ToModel(meetingID, userID, user))
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to create booking")

			return translateConstraint(txErr)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, 0)
	s.publish(ctx, dto.BookingEvent{
		Action:    eventCreated,
		BookingID: id,
		MeetingID: meetingID,
		RoomID:    req.RoomID,
		UserID:    userID,
		Day:       req.Day,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	})

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// MyBookings narrows the listing to the bookings owned by the caller.
func (s *serviceImpl) MyBookings(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Table:    model.TableName,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
	})

	return s.GetAll(ctx, req, filter)
}

// Update reschedules a booking. Only the slot fields may change and the new
// slot is re-validated on the transaction with the booking's own row excluded.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return failure.Forbidden("only the booking owner can modify it") // nolint:wrapcheck
	}

	cand := slot{
		excludingID: id,
		roomID:      booking.RoomID,
		day:         booking.Day,
		startHour:   booking.StartHour,
		endHour:     booking.EndHour,
	}

	if req.RoomID != nil {
		cand.roomID = *req.RoomID

		roomExist, err := s.rooms.Exist(ctx, shared.FilterByID(*req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !roomExist {
			return failure.BadRequestFromString("room not found")
		}
	}

	if req.Day != nil {
		cand.day, err = time.Parse(model.DayFormat, *req.Day)
		if err != nil {
			return failure.BadRequestFromString("day must be in YYYY-MM-DD format")
		}
	}

	if req.StartHour != nil {
		cand.startHour = *req.StartHour
	}

	if req.EndHour != nil {
		cand.endHour = *req.EndHour
	}

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if txErr := s.validateSlot(ctx, tx, cand); txErr != nil {
			return txErr
		}

		updatedFields := shared.TransformFields(req, user)
		if txErr := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to update booking")

			return translateConstraint(txErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, dto.BookingEvent{
		Action:    eventUpdated,
		BookingID: id,
		MeetingID: booking.MeetingID,
		RoomID:    cand.roomID,
		UserID:    userID,
		Day:       cand.day.Format(model.DayFormat),
		StartHour: cand.startHour,
		EndHour:   cand.endHour,
	})

	return nil
}

// Delete removes a booking together with its meeting in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return failure.Forbidden("only the booking owner can modify it") // nolint:wrapcheck
	}

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if txErr := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", txErr)
		}

		if txErr := s.meetings.DeleteTx(ctx, tx, shared.FilterByID(booking.MeetingID, meetingModel.FieldID, meetingModel.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to delete meeting of booking")

			return fmt.Errorf("failed to delete meeting of booking: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, dto.BookingEvent{
		Action:    eventDeleted,
		BookingID: id,
		MeetingID: booking.MeetingID,
		RoomID:    booking.RoomID,
		UserID:    booking.UserID,
		Day:       booking.Day.Format(model.DayFormat),
		StartHour: booking.StartHour,
		EndHour:   booking.EndHour,
	})

	return nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, roomID, teamID, typeID int64) error {
	roomExist, err := s.rooms.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExist {
		return failure.BadRequestFromString("room not found")
	}

	teamExist, err := s.teams.Exist(ctx, shared.FilterByID(teamID, teamModel.FieldID, teamModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if team exists")

		return fmt.Errorf("failed to check if team exists: %w", err)
	}

	if !teamExist {
		return failure.BadRequestFromString("team not found")
	}

	typeExist, err := s.meetingTypes.Exist(ctx, shared.FilterByID(typeID, typeModel.FieldID, typeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meeting type exists")

		return fmt.Errorf("failed to check if meeting type exists: %w", err)
	}

	if !typeExist {
		return failure.BadRequestFromString("meeting type not found")
	}

	return nil
}

// translateConstraint maps the exclusion constraint on bookings to a conflict
// response. The constraint closes the race between two transactions validating
// the same free slot at once.
func translateConstraint(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("room is already booked for this slot") // nolint:wrapcheck
	}

	return fmt.Errorf("failed to write booking: %w", err)
}

func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   fmt.Sprintf("%d", event.BookingID),
			Value: event,
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("action", event.Action).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, fmt.Sprintf("%d", id))); err != nil {
				log.Error().Err(err).Msg("failed to delete booking cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		// Bookings move the requires_meeting_room flag on meetings.
		shared.InvalidateCaches(c, s.cache, "meeting")
	}()
}
