package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"teammeet/config"
	"teammeet/infras/otel"
	"teammeet/infras/s3"
	"teammeet/internal/domains/project/model"
	"teammeet/internal/domains/project/model/dto"
	"teammeet/internal/domains/project/repository"
	"teammeet/shared"
	"teammeet/shared/cache"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	"teammeet/shared/slug"
)

const (
	cacheGetProject    = "project:get"
	cacheGetAllProject = "project:gets"
	cacheCountProject  = "project:count"
)

type Project interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProjectsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.ProjectResponse, error)
	Update(ctx context.Context, req dto.UpdateProjectRequest, id int64) error
	UploadImage(ctx context.Context, req dto.UploadProjectImageRequest, id int64) (string, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Project
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Project, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Project {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProjectRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	id, err = s.repo.Insert(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create project")

		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProject, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for projects")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return res, fmt.Errorf("failed to count projects: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, fmt.Errorf("failed to get projects: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save projects to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProject, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return res, fmt.Errorf("failed to count projects: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProject, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project")

		return res, nil
	}

	project, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == 0 {
		return res, failure.NotFound("project not found") // nolint:wrapcheck
	}

	res.FromModel(project)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProjectRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check project existence")

		return fmt.Errorf("failed to check project existence: %w", err)
	}

	if !exist {
		log.Error().Msg("project not found")

		return failure.NotFound("project not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update project")

		return fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UploadImage stores the file on S3 and records its public URL on the project.
// A replaced image is removed from the bucket after the row update succeeds.
func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadProjectImageRequest, id int64) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	project, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return constant.Empty, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == 0 {
		return constant.Empty, failure.NotFound("project not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(s.cfg.App.UploadPrefix, model.TableName)

	fileName := fmt.Sprintf("%s-%s", slug.Make(project.Name), uuid.NewString())

	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		fileName = fmt.Sprintf("%s.%s", fileName, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, bucketName, directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdateProjectRequest{}, user)
	updatedFields[model.FieldImage] = url

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update project image")

		_ = s.s3.DeleteFile(ctx, bucketName, directory, fileName)

		return constant.Empty, fmt.Errorf("failed to update project image: %w", err)
	}

	if project.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, project.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, constant.Empty, oldObjectName)
		}
	}

	s.invalidate(ctx, id)

	return url, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	project, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == 0 {
		log.Error().Msg("project not found")

		return failure.NotFound("project not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete project")

		return fmt.Errorf("failed to delete project: %w", err)
	}

	if project.Image != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, project.Image)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProject, fmt.Sprintf("%d", id))); err != nil {
			log.Error().Err(err).Msg("failed to delete project cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()
}
