package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/user/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetWithRole(ctx context.Context, filter gDto.FilterGroup) (model.UserWithRole, error)
	GetAllWithRole(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserWithRole, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// Role returns the user's role, or an empty string when none is granted.
	Role(ctx context.Context, userID string) (string, error)
	CreateWithRole(ctx context.Context, user model.User, role *model.UserRole) error
	UpdateWithRole(ctx context.Context, req map[string]any, userID string, role *model.UserRole) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	roles    gRepo.Repository[model.UserRole]
	withRole gRepo.Repository[model.UserWithRole]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		roles:      gRepo.NewRepository[model.UserRole](model.RoleEntityName, model.RoleTableName, model.FieldID, db, otel),
		withRole:   gRepo.NewRepository[model.UserWithRole](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetWithRole(ctx context.Context, filter gDto.FilterGroup) (model.UserWithRole, error) {
	return r.withRole.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllWithRole(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserWithRole, error) {
	return r.withRole.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Role(ctx context.Context, userID string) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Role")
	defer scope.End()

	role, err := r.roles.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.RoleTableName), model.FieldRole)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to get user role: %w", err)
	}

	return role.Role, nil
}

func (r *repositoryImpl) CreateWithRole(ctx context.Context, user model.User, role *model.UserRole) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.CreateWithRole")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		if role == nil {
			return nil
		}

		return r.roles.InsertTx(ctx, tx, *role)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create user with role: %w", err)
	}

	return nil
}

// UpdateWithRole applies req to the user row and replaces its role. A nil
// role removes any granted role.
func (r *repositoryImpl) UpdateWithRole(ctx context.Context, req map[string]any, userID string, role *model.UserRole) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateWithRole")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, req, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if err := r.roles.DeleteTx(ctx, tx, shared.FilterByID(userID, model.FieldUserID, model.RoleTableName)); err != nil {
			return err
		}

		if role == nil {
			return nil
		}

		return r.roles.InsertTx(ctx, tx, *role)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update user with role: %w", err)
	}

	return nil
}
