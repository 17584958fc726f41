package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	rentalMocks "venue/internal/domains/rental/mocks"
	"venue/internal/domains/rental/model"
	"venue/internal/domains/rental/model/dto"
	"venue/internal/domains/rental/service"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const rentalID = "2d1f0c9e-7b44-4c1e-9a0f-3e5b6c7d8e90"

func newService(t *testing.T) (*rentalMocks.MockRental, *cacheMocks.MockRedisCache, service.Rental) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := rentalMocks.NewMockRental(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, redisCache, service.New(repo, &config.Config{}, redisCache, mocks.NewOtel())
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestRentalService_Create(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item model.RentalItem) error {
			assert.Equal(t, constant.DefaultSortOrder, item.SortOrder)
			assert.True(t, item.Active)
			assert.Nil(t, item.Category)
			assert.Equal(t, "admin-1", item.CreatedBy)

			return nil
		})

		blank := "  "
		res, err := svc.Create(adminContext(), dto.CreateRentalRequest{
			Name:      "Round table",
			PriceMode: model.PriceModePerDay,
			UnitPrice: 12.5,
			Category:  &blank,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, 12.5, res.UnitPrice)
	})

	t.Run("insert failure", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(adminContext(), dto.CreateRentalRequest{Name: "Chair", PriceMode: model.PriceModeFlat})
		assert.Error(t, err)
	})
}

func TestRentalService_GetAll(t *testing.T) {
	t.Run("cache miss uses the catalog order", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RentalItem, error) {
				assert.Equal(t, model.DefaultOrder, params.Order)

				return []model.RentalItem{{ID: "a", Active: true}, {ID: "b"}}, nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Len(t, res.Rentals, 2)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("explicit sort keeps the caller order", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RentalItem, error) {
				assert.Empty(t, params.Order)

				return nil, nil
			})

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: "ASC"}, gDto.FilterGroup{})
		assert.NoError(t, err)
	})

	t.Run("count failure", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestRentalService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RentalItem{}, nil)

		_, err := svc.Get(context.Background(), rentalID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RentalItem{ID: rentalID, Name: "Projector", PriceMode: model.PriceModePerHour}, nil)

		res, err := svc.Get(context.Background(), rentalID)
		require.NoError(t, err)
		assert.Equal(t, "Projector", res.Name)
		assert.Equal(t, model.PriceModePerHour, res.PriceMode)
	})
}

func TestRentalService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		_, _, svc := newService(t)

		err := svc.Update(adminContext(), dto.UpdateRentalRequest{}, rentalID)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, svc := newService(t)

		name := "Tent"
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(adminContext(), dto.UpdateRentalRequest{Name: &name}, rentalID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blank description clears the column", func(t *testing.T) {
		repo, _, svc := newService(t)

		blank := ""
		price := 0.0
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				value, ok := fields[model.FieldDescription]
				assert.True(t, ok)
				assert.Nil(t, value)
				assert.Equal(t, &price, fields[model.FieldUnitPrice])

				return nil
			})

		err := svc.Update(adminContext(), dto.UpdateRentalRequest{Description: &blank, UnitPrice: &price}, rentalID)
		assert.NoError(t, err)
	})
}

func TestRentalService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(adminContext(), rentalID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deleted", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(adminContext(), rentalID))
	})
}
