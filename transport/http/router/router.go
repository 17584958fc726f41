package router

import (
	"github.com/go-chi/chi/v5"

	"venue/internal/handlers/auth"
	"venue/internal/handlers/booking"
	"venue/internal/handlers/event"
	"venue/internal/handlers/menu"
	"venue/internal/handlers/planner"
	"venue/internal/handlers/rental"
	"venue/internal/handlers/setting"
	"venue/internal/handlers/user"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Event   event.Handler
	Menu    menu.Handler
	Planner planner.Handler
	Rental  rental.Handler
	Setting setting.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Planner.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
