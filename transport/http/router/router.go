package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"teammeet/internal/handlers/auth"
	"teammeet/internal/handlers/booking"
	"teammeet/internal/handlers/health"
	"teammeet/internal/handlers/meeting"
	"teammeet/internal/handlers/meetingtype"
	"teammeet/internal/handlers/project"
	"teammeet/internal/handlers/room"
	"teammeet/internal/handlers/team"
	"teammeet/internal/handlers/user"
)

type DomainHandlers struct {
	Health      health.Handler
	Auth        auth.Handler
	User        user.Handler
	Room        room.Handler
	Project     project.Handler
	Team        team.Handler
	MeetingType meetingtype.Handler
	Meeting     meeting.Handler
	Booking     booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Project.Router(routerGroup)
		r.DomainHandlers.Team.Router(routerGroup)
		r.DomainHandlers.MeetingType.Router(routerGroup)
		r.DomainHandlers.Meeting.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
