package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"teammeet/config"
	"teammeet/infras/otel"
	"teammeet/internal/domains/meetingtype/model"
	"teammeet/internal/domains/meetingtype/model/dto"
	"teammeet/internal/domains/meetingtype/repository"
	"teammeet/shared"
	"teammeet/shared/cache"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
)

const (
	cacheGetMeetingType    = "meeting_type:get"
	cacheGetAllMeetingType = "meeting_type:gets"
	cacheCountMeetingType  = "meeting_type:count"
)

type MeetingType interface {
	Create(ctx context.Context, req dto.CreateMeetingTypeRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMeetingTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.MeetingTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateMeetingTypeRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.MeetingType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.MeetingType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) MeetingType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMeetingTypeRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	id, err = s.repo.Insert(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create meeting type")

		return 0, fmt.Errorf("failed to create meeting type: %w", err)
	}

	s.invalidate(ctx, 0)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMeetingTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMeetingType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meeting types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meeting types")

		return res, fmt.Errorf("failed to count meeting types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meeting types")

		return res, fmt.Errorf("failed to get meeting types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meeting types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMeetingType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meeting type count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meeting types")

		return res, fmt.Errorf("failed to count meeting types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meeting type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.MeetingTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMeetingType, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meeting type")

		return res, nil
	}

	meetingType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get meeting type")

		return res, fmt.Errorf("failed to get meeting type: %w", err)
	}

	if meetingType.ID == 0 {
		return res, failure.NotFound("meeting type not found") // nolint:wrapcheck
	}

	res.FromModel(meetingType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meeting type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMeetingTypeRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check meeting type existence")

		return fmt.Errorf("failed to check meeting type existence: %w", err)
	}

	if !exist {
		log.Error().Msg("meeting type not found")

		return failure.NotFound("meeting type not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update meeting type")

		return fmt.Errorf("failed to update meeting type: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete refuses to remove a type that meetings still reference. The meetings
// FK is declared RESTRICT, so the violation surfaces here as a pq error.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meeting type exists")

		return fmt.Errorf("failed to check if meeting type exists: %w", err)
	}

	if !exist {
		log.Error().Msg("meeting type not found")

		return failure.NotFound("meeting type not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("meeting type is still used by meetings")
		}

		log.Error().Err(err).Msg("failed to delete meeting type")

		return fmt.Errorf("failed to delete meeting type: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMeetingType, fmt.Sprintf("%d", id))); err != nil {
				log.Error().Err(err).Msg("failed to delete meeting type cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMeetingType)
		shared.InvalidateCaches(c, s.cache, cacheCountMeetingType)
	}()
}
