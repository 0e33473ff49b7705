//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"teammeet/config"
	"teammeet/infras/jwt"
	"teammeet/infras/kafka"
	"teammeet/infras/otel"
	"teammeet/infras/postgres"
	"teammeet/infras/redis"
	"teammeet/infras/s3"
	"teammeet/permissions"
	"teammeet/shared/cache"
	"teammeet/transport/http"
	"teammeet/transport/http/middleware"
	"teammeet/transport/http/router"

	authService "teammeet/internal/domains/auth/service"
	bookingRepository "teammeet/internal/domains/booking/repository"
	bookingService "teammeet/internal/domains/booking/service"
	meetingRepository "teammeet/internal/domains/meeting/repository"
	meetingService "teammeet/internal/domains/meeting/service"
	meetingTypeRepository "teammeet/internal/domains/meetingtype/repository"
	meetingTypeService "teammeet/internal/domains/meetingtype/service"
	projectRepository "teammeet/internal/domains/project/repository"
	projectService "teammeet/internal/domains/project/service"
	roomRepository "teammeet/internal/domains/room/repository"
	roomService "teammeet/internal/domains/room/service"
	teamRepository "teammeet/internal/domains/team/repository"
	teamService "teammeet/internal/domains/team/service"
	userRepository "teammeet/internal/domains/user/repository"
	userService "teammeet/internal/domains/user/service"

	authHandler "teammeet/internal/handlers/auth"
	bookingHandler "teammeet/internal/handlers/booking"
	healthHandler "teammeet/internal/handlers/health"
	meetingHandler "teammeet/internal/handlers/meeting"
	meetingTypeHandler "teammeet/internal/handlers/meetingtype"
	projectHandler "teammeet/internal/handlers/project"
	roomHandler "teammeet/internal/handlers/room"
	teamHandler "teammeet/internal/handlers/team"
	userHandler "teammeet/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTxRunner,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var teamDomain = wire.NewSet(
	teamRepository.New,
	teamService.New,
)

var meetingTypeDomain = wire.NewSet(
	meetingTypeRepository.New,
	meetingTypeService.New,
)

var meetingDomain = wire.NewSet(
	meetingRepository.New,
	meetingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	projectDomain,
	teamDomain,
	meetingTypeDomain,
	meetingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	projectHandler.New,
	teamHandler.New,
	meetingTypeHandler.New,
	meetingHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
