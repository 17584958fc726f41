package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/rental/model"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type Rental interface {
	Insert(ctx context.Context, model model.RentalItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RentalItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RentalItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RentalItem]
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RentalItem](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
