package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/setting/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const upsertSettingQuery = `INSERT INTO app_settings (key, value, modified_at, modified_by)
VALUES (:key, :value, :modified_at, :modified_by)
ON CONFLICT (key) DO UPDATE SET
	value = EXCLUDED.value,
	modified_at = EXCLUDED.modified_at,
	modified_by = EXCLUDED.modified_by`

type Setting interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AppSetting, error)
	// Upsert writes every setting in one transaction. The last writer wins.
	Upsert(ctx context.Context, settings []model.AppSetting) error
}

type Recipient interface {
	Insert(ctx context.Context, model model.NotificationRecipient) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.NotificationRecipient, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.NotificationRecipient, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type settingRepository struct {
	gRepo.Repository[model.AppSetting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Setting {
	return &settingRepository{
		Repository: gRepo.NewRepository[model.AppSetting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *settingRepository) Upsert(ctx context.Context, settings []model.AppSetting) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setting.Upsert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertSettingQuery)

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, setting := range settings {
			if _, err := tx.NamedExecContext(ctx, upsertSettingQuery, setting); err != nil {
				return fmt.Errorf("failed to upsert setting %q: %w", setting.Key, err)
			}
		}

		return nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

type recipientRepository struct {
	gRepo.Repository[model.NotificationRecipient]
}

func NewRecipient(db *postgres.Connection, otel otel.Otel) Recipient {
	return &recipientRepository{
		Repository: gRepo.NewRepository[model.NotificationRecipient](model.RecipientEntityName, model.RecipientTableName, model.FieldID, db, otel),
	}
}
