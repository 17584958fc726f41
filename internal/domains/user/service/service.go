package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/user/model"
	"venue/internal/domains/user/model/dto"
	"venue/internal/domains/user/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/password"
)

const (
	errEmailTaken   = "email already registered"
	errUserNotFound = "user not found"
	errDeleteSelf   = "cannot delete your own account"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, dto.ByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(errEmailTaken)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(username, hashedPassword)
	role := req.RoleModel(user.ID, username)

	if err = s.repo.CreateWithRole(ctx, user, role); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	withRole := model.UserWithRole{User: user}
	if role != nil {
		withRole.Role = &role.Role
	}

	res.FromModel(withRole)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params.Order = fmt.Sprintf("%s.%s ASC", model.TableName, model.FieldEmail)

	users, err := s.repo.GetAllWithRole(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.Email == nil && req.Role == nil {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound(errUserNotFound)
	}

	if req.Email != nil {
		email := dto.NormalizeEmail(*req.Email)
		req.Email = &email

		if email != current.Email {
			exists, err := s.repo.Exist(ctx, dto.ByEmail(email))
			if err != nil {
				log.Error().Err(err).Msg("failed to check if email is taken")

				return fmt.Errorf("failed to check if email is taken: %w", err)
			}

			if exists {
				return failure.Conflict(errEmailTaken)
			}
		}
	}

	updatedFields := shared.TransformFields(req, username)

	if req.Role == nil {
		err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	} else {
		err = s.repo.UpdateWithRole(ctx, updatedFields, id, dto.NewRole(id, req.Role, username))
	}

	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if caller, _ := ctx.Value(constant.ContextKeyUserID).(string); caller == id {
		return failure.Forbidden(errDeleteSelf)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errUserNotFound)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
