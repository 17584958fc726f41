//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"venue/config"
	"venue/infras/jwt"
	"venue/infras/kafka"
	"venue/infras/mailer"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/infras/redis"
	"venue/infras/s3"
	authService "venue/internal/domains/auth/service"
	bookingRepository "venue/internal/domains/booking/repository"
	bookingService "venue/internal/domains/booking/service"
	eventRepository "venue/internal/domains/event/repository"
	eventService "venue/internal/domains/event/service"
	menuRepository "venue/internal/domains/menu/repository"
	menuService "venue/internal/domains/menu/service"
	notificationService "venue/internal/domains/notification/service"
	plannerRepository "venue/internal/domains/planner/repository"
	plannerService "venue/internal/domains/planner/service"
	rentalRepository "venue/internal/domains/rental/repository"
	rentalService "venue/internal/domains/rental/service"
	settingRepository "venue/internal/domains/setting/repository"
	settingService "venue/internal/domains/setting/service"
	userRepository "venue/internal/domains/user/repository"
	userService "venue/internal/domains/user/service"
	authHandler "venue/internal/handlers/auth"
	bookingHandler "venue/internal/handlers/booking"
	eventHandler "venue/internal/handlers/event"
	menuHandler "venue/internal/handlers/menu"
	plannerHandler "venue/internal/handlers/planner"
	rentalHandler "venue/internal/handlers/rental"
	settingHandler "venue/internal/handlers/setting"
	userHandler "venue/internal/handlers/user"
	"venue/permissions"
	"venue/shared/cache"
	"venue/transport/http"
	"venue/transport/http/middleware"
	"venue/transport/http/router"
	"venue/transport/worker"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
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

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingRepository.NewRecipient,
	settingService.New,
)

var notificationDomain = wire.NewSet(
	wire.Bind(new(notificationService.Recipients), new(settingService.Setting)),
	notificationService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.NewCategory,
	menuRepository.NewItem,
	menuRepository.NewTemplate,
	menuService.New,
)

var plannerDomain = wire.NewSet(
	plannerRepository.New,
	plannerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	settingDomain,
	notificationDomain,
	menuDomain,
	plannerDomain,
	bookingDomain,
	rentalDomain,
	eventDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	eventHandler.New,
	menuHandler.New,
	plannerHandler.New,
	rentalHandler.New,
	settingHandler.New,
	userHandler.New,
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

func InitializeNotifier() *worker.Notifier {
	wire.Build(
		config.Get,
		otel.New,
		postgres.New,
		redis.New,
		kafka.New,
		mailer.New,
		sharedHelpers,
		settingDomain,
		notificationDomain,
		worker.New,
	)

	return &worker.Notifier{}
}
