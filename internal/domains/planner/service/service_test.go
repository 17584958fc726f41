package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	bookingModel "venue/internal/domains/booking/model"
	menuModel "venue/internal/domains/menu/model"
	notificationMocks "venue/internal/domains/notification/mocks"
	notificationDto "venue/internal/domains/notification/model/dto"
	plannerMocks "venue/internal/domains/planner/mocks"
	"venue/internal/domains/planner/model"
	"venue/internal/domains/planner/model/dto"
	"venue/internal/domains/planner/service"
	"venue/shared/constant"
	"venue/shared/failure"
)

const token = "menu-token"

type fixture struct {
	repo     *plannerMocks.MockSelection
	notifier *notificationMocks.MockNotification
	svc      service.Planner
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.App.PublicBaseURL = "https://hall.example.org/"

	f := fixture{
		repo:     plannerMocks.NewMockSelection(ctrl),
		notifier: notificationMocks.NewMockNotification(ctrl),
	}

	f.svc = service.New(f.repo, f.notifier, cfg, mocks.NewOtel())

	return f
}

func openBooking() bookingModel.Booking {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return bookingModel.Booking{
		ID:            "booking-1",
		Status:        constant.BookingStatusMenuOpen,
		EventType:     "Wedding",
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		EventDate:     &start,
	}
}

func offered() []menuModel.ItemWithCategory {
	starters := "Starters"
	startersID := "category-1"

	return []menuModel.ItemWithCategory{
		{Item: menuModel.Item{ID: "item-1", Name: "Samosa", Active: true, CategoryID: &startersID}, CategoryName: &starters},
		{Item: menuModel.Item{ID: "item-2", Name: "Chai", Active: true}},
	}
}

func TestPlannerService_GetPublicMenu(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		booking bookingModel.Booking
	}{
		{name: "blank token", token: " "},
		{name: "unknown token", token: token, booking: bookingModel.Booking{}},
		{name: "menu never opened", token: token, booking: bookingModel.Booking{ID: "booking-1", Status: constant.BookingStatusInquiry}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.token == token {
				f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(tt.booking, nil)
			}

			_, err := f.svc.GetPublicMenu(context.Background(), tt.token)

			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
			assert.Equal(t, constant.ResponseErrorNotAuthorized, err.Error())
		})
	}

	t.Run("locked menu stays readable", func(t *testing.T) {
		f := newFixture(t)
		booking := openBooking()
		booking.Status = constant.BookingStatusMenuLocked

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(booking, nil)
		f.repo.EXPECT().OfferedItems(gomock.Any(), gomock.Nil()).Return(offered(), nil)
		f.repo.EXPECT().Selections(gomock.Any(), "booking-1").Return([]model.SelectionDetail{}, nil)

		res, err := f.svc.GetPublicMenu(context.Background(), token)

		require.NoError(t, err)
		assert.True(t, res.Locked)
		require.Len(t, res.Categories, 2)
		assert.Equal(t, "Starters", res.Categories[0].Name)
		assert.Len(t, res.Categories[0].Items, 1)
		assert.Len(t, res.Categories[1].Items, 1)
		assert.Equal(t, "2025-06-01", res.Booking.EndDate)
	})
}

func TestPlannerService_Save(t *testing.T) {
	t.Run("locked menu", func(t *testing.T) {
		f := newFixture(t)
		booking := openBooking()
		booking.Status = constant.BookingStatusMenuLocked

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(booking, nil)

		_, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{Token: token})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("item not offered and duplicate pair", func(t *testing.T) {
		f := newFixture(t)
		lunch := "LUNCH"

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(openBooking(), nil)
		f.repo.EXPECT().OfferedItems(gomock.Any(), gomock.Nil()).Return(offered(), nil)

		_, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{
			Token: token,
			Items: []dto.SelectionRequest{
				{MenuItemID: "item-1", Qty: 10, Session: &lunch},
				{MenuItemID: "item-9", Qty: 1},
				{MenuItemID: "item-1", Qty: 5, Session: &lunch},
				{MenuItemID: "item-1", Qty: 5},
			},
		})

		require.Error(t, err)
		fields := failure.GetFields(err)
		assert.Len(t, fields, 2)
		assert.Contains(t, fields, "items[1].menu_item_id")
		assert.Contains(t, fields, "items[2].session")
	})

	t.Run("lock lost between read and write", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(openBooking(), nil)
		f.repo.EXPECT().OfferedItems(gomock.Any(), gomock.Nil()).Return(offered(), nil)
		f.repo.EXPECT().ReplaceSelections(gomock.Any(), token, gomock.Any(), false).
			Return(nil, fmt.Errorf("failed to replace menu selections: %w", bookingModel.ErrMenuLocked))

		_, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{Token: token, Items: []dto.SelectionRequest{{MenuItemID: "item-2", Qty: 1}}})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.ResponseErrorMenuLocked, err.Error())
	})

	t.Run("draft save does not notify", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(openBooking(), nil)
		f.repo.EXPECT().OfferedItems(gomock.Any(), gomock.Nil()).Return(offered(), nil)
		f.repo.EXPECT().ReplaceSelections(gomock.Any(), token, gomock.Any(), false).Return(nil, nil)

		res, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{Token: token, Items: []dto.SelectionRequest{{MenuItemID: "item-2", Qty: 3}}})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Saved)
		assert.Nil(t, res.SubmittedAt)
	})

	t.Run("submit notifies after commit", func(t *testing.T) {
		f := newFixture(t)
		submittedAt := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(openBooking(), nil)
		f.repo.EXPECT().OfferedItems(gomock.Any(), gomock.Nil()).Return(offered(), nil)
		f.repo.EXPECT().ReplaceSelections(gomock.Any(), token, gomock.Any(), true).Return(&submittedAt, nil)
		f.notifier.EXPECT().MenuSubmitted(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, payload notificationDto.MenuSubmittedPayload) {
				assert.Equal(t, "asha@example.com", payload.CustomerEmail)
				assert.Equal(t, "https://hall.example.org/menu/"+token, payload.MenuURL)
				require.Len(t, payload.Items, 1)
				assert.Equal(t, "Samosa", payload.Items[0].Name)
				assert.Equal(t, "Starters", payload.Items[0].Category)
			})

		res, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{
			Token:  token,
			Submit: true,
			Items:  []dto.SelectionRequest{{MenuItemID: "item-1", Qty: 25}},
		})

		require.NoError(t, err)
		assert.NotNil(t, res.SubmittedAt)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ResolveToken(gomock.Any(), token).Return(bookingModel.Booking{}, errors.New("connection reset"))

		_, err := f.svc.Save(context.Background(), dto.SaveMenuRequest{Token: token})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
