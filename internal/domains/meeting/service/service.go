package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"teammeet/config"
	"teammeet/infras/otel"
	"teammeet/internal/domains/meeting/model"
	"teammeet/internal/domains/meeting/model/dto"
	"teammeet/internal/domains/meeting/repository"
	typeModel "teammeet/internal/domains/meetingtype/model"
	typeRepo "teammeet/internal/domains/meetingtype/repository"
	teamModel "teammeet/internal/domains/team/model"
	teamRepo "teammeet/internal/domains/team/repository"
	"teammeet/shared"
	"teammeet/shared/cache"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
)

const (
	cacheGetMeeting    = "meeting:get"
	cacheGetAllMeeting = "meeting:gets"
	cacheCountMeeting  = "meeting:count"
)

type Meeting interface {
	Create(ctx context.Context, req dto.CreateMeetingRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMeetingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.MeetingResponse, error)
	Update(ctx context.Context, req dto.UpdateMeetingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Meeting
	teams        teamRepo.Team
	meetingTypes typeRepo.MeetingType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Meeting, teams teamRepo.Team, meetingTypes typeRepo.MeetingType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Meeting {
	return &serviceImpl{
		repo:         repo,
		teams:        teams,
		meetingTypes: meetingTypes,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMeetingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	teamExist, err := s.teams.Exist(ctx, shared.FilterByID(req.TeamID, teamModel.FieldID, teamModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if team exists")

		return 0, fmt.Errorf("failed to check if team exists: %w", err)
	}

	if !teamExist {
		return 0, failure.BadRequestFromString("team not found")
	}

	typeExist, err := s.meetingTypes.Exist(ctx, shared.FilterByID(req.TypeOfMeetingID, typeModel.FieldID, typeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meeting type exists")

		return 0, fmt.Errorf("failed to check if meeting type exists: %w", err)
	}

	if !typeExist {
		return 0, failure.BadRequestFromString("meeting type not found")
	}

	id, err = s.repo.Insert(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create meeting")

		return 0, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.invalidate(ctx, 0)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMeetingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMeeting, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meetings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meetings")

		return res, fmt.Errorf("failed to count meetings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meetings")

		return res, fmt.Errorf("failed to get meetings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meetings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMeeting, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meeting count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count meetings")

		return res, fmt.Errorf("failed to count meetings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meeting count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.MeetingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMeeting, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meeting")

		return res, nil
	}

	meeting, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get meeting")

		return res, fmt.Errorf("failed to get meeting: %w", err)
	}

	if meeting.ID == 0 {
		return res, failure.NotFound("meeting not found") // nolint:wrapcheck
	}

	res.FromModel(meeting)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meeting to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMeetingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMeetingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check meeting existence")

		return fmt.Errorf("failed to check meeting existence: %w", err)
	}

	if !exist {
		log.Error().Msg("meeting not found")

		return failure.NotFound("meeting not found")
	}

	if req.TeamID != nil {
		teamExist, err := s.teams.Exist(ctx, shared.FilterByID(*req.TeamID, teamModel.FieldID, teamModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if team exists")

			return fmt.Errorf("failed to check if team exists: %w", err)
		}

		if !teamExist {
			return failure.BadRequestFromString("team not found")
		}
	}

	if req.TypeOfMeetingID != nil {
		typeExist, err := s.meetingTypes.Exist(ctx, shared.FilterByID(*req.TypeOfMeetingID, typeModel.FieldID, typeModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if meeting type exists")

			return fmt.Errorf("failed to check if meeting type exists: %w", err)
		}

		if !typeExist {
			return failure.BadRequestFromString("meeting type not found")
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update meeting")

		return fmt.Errorf("failed to update meeting: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if meeting exists")

		return fmt.Errorf("failed to check if meeting exists: %w", err)
	}

	if !exist {
		log.Error().Msg("meeting not found")

		return failure.NotFound("meeting not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete meeting")

		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMeeting, fmt.Sprintf("%d", id))); err != nil {
				log.Error().Err(err).Msg("failed to delete meeting cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMeeting)
		shared.InvalidateCaches(c, s.cache, cacheCountMeeting)
	}()
}
