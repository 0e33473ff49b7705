package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"teammeet/config"
	"teammeet/infras/otel"
	projectModel "teammeet/internal/domains/project/model"
	projectRepo "teammeet/internal/domains/project/repository"
	"teammeet/internal/domains/team/model"
	"teammeet/internal/domains/team/model/dto"
	"teammeet/internal/domains/team/repository"
	"teammeet/shared"
	"teammeet/shared/cache"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
)

const (
	cacheGetTeam    = "team:get"
	cacheGetAllTeam = "team:gets"
	cacheCountTeam  = "team:count"
)

type Team interface {
	Create(ctx context.Context, req dto.CreateTeamRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTeamsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.TeamResponse, error)
	Update(ctx context.Context, req dto.UpdateTeamRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Team
	projects projectRepo.Project
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Team, projects projectRepo.Project, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Team {
	return &serviceImpl{
		repo:     repo,
		projects: projects,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTeamRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	exist, err := s.projects.Exist(ctx, shared.FilterByID(req.ProjectID, projectModel.FieldID, projectModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if project exists")

		return 0, fmt.Errorf("failed to check if project exists: %w", err)
	}

	if !exist {
		return 0, failure.BadRequestFromString("project not found")
	}

	id, err = s.repo.Insert(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create team")

		return 0, fmt.Errorf("failed to create team: %w", err)
	}

	s.invalidate(ctx, 0)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTeamsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTeam, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for teams")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count teams")

		return res, fmt.Errorf("failed to count teams: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get teams")

		return res, fmt.Errorf("failed to get teams: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save teams to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTeam, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for team count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count teams")

		return res, fmt.Errorf("failed to count teams: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save team count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTeam, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for team")

		return res, nil
	}

	team, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team")

		return res, fmt.Errorf("failed to get team: %w", err)
	}

	if team.ID == 0 {
		return res, failure.NotFound("team not found") // nolint:wrapcheck
	}

	res.FromModel(team)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save team to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTeamRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check team existence")

		return fmt.Errorf("failed to check team existence: %w", err)
	}

	if !exist {
		log.Error().Msg("team not found")

		return failure.NotFound("team not found")
	}

	if req.ProjectID != nil {
		projectExist, err := s.projects.Exist(ctx, shared.FilterByID(*req.ProjectID, projectModel.FieldID, projectModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if project exists")

			return fmt.Errorf("failed to check if project exists: %w", err)
		}

		if !projectExist {
			return failure.BadRequestFromString("project not found")
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update team")

		return fmt.Errorf("failed to update team: %w", err)
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
		log.Error().Err(err).Msg("failed to check if team exists")

		return fmt.Errorf("failed to check if team exists: %w", err)
	}

	if !exist {
		log.Error().Msg("team not found")

		return failure.NotFound("team not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete team")

		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTeam, fmt.Sprintf("%d", id))); err != nil {
				log.Error().Err(err).Msg("failed to delete team cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTeam)
		shared.InvalidateCaches(c, s.cache, cacheCountTeam)
	}()
}
