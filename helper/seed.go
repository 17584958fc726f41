package helper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/user/model/dto"
	userRepository "venue/internal/domains/user/repository"
	userService "venue/internal/domains/user/service"
	"venue/shared/constant"
	"venue/shared/failure"
)

// SeedAdmin creates the bootstrap admin account from App.BootstrapAdmin.
// An existing account with the same e-mail is left untouched.
func SeedAdmin(config *config.Config) error {
	bootstrap := config.App.BootstrapAdmin
	if bootstrap.Email == constant.Empty || bootstrap.Password == constant.Empty {
		return errors.New("bootstrap admin e-mail and password are required")
	}

	db := postgres.New(config)
	defer db.Close()

	tracer := otel.New(config)
	service := userService.New(userRepository.New(db, tracer), tracer)

	role := constant.RoleAdmin

	_, err := service.Create(context.Background(), dto.CreateUserRequest{
		Email:    bootstrap.Email,
		Password: bootstrap.Password,
		Role:     &role,
	})
	if failure.GetCode(err) == http.StatusConflict {
		log.Info().Str("email", bootstrap.Email).Msg("Bootstrap admin already exists")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error seeding bootstrap admin: %w", err)
	}

	log.Info().Str("email", bootstrap.Email).Msg("Bootstrap admin created")

	return nil
}
