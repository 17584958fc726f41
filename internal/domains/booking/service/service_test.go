package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	"venue/infras/otel/mocks"
	s3Mocks "venue/infras/s3/mocks"
	bookingMocks "venue/internal/domains/booking/mocks"
	"venue/internal/domains/booking/model"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/service"
	menuMocks "venue/internal/domains/menu/mocks"
	menuModel "venue/internal/domains/menu/model"
	notificationMocks "venue/internal/domains/notification/mocks"
	notificationDto "venue/internal/domains/notification/model/dto"
	plannerMocks "venue/internal/domains/planner/mocks"
	plannerModel "venue/internal/domains/planner/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const bookingID = "3f1c2b7e-9d4a-4c21-8f0e-6a5b4c3d2e1f"

type fixture struct {
	repo       *bookingMocks.MockBooking
	selections *plannerMocks.MockSelection
	templates  *menuMocks.MockTemplate
	notifier   *notificationMocks.MockNotification
	s3         *s3Mocks.MockS3
	svc        service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.App.PublicBaseURL = "https://hall.example.org"

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		selections: plannerMocks.NewMockSelection(ctrl),
		templates:  menuMocks.NewMockTemplate(ctrl),
		notifier:   notificationMocks.NewMockNotification(ctrl),
		s3:         s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.selections, f.templates, f.notifier, f.s3, cfg, mocks.NewOtel())

	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func strPtr(s string) *string {
	return &s
}

func date(value string) *time.Time {
	t, _ := time.Parse(time.DateOnly, value)

	return &t
}

func inquiry() dto.InquiryRequest {
	return dto.InquiryRequest{
		Name:      "Asha Patel",
		Email:     "Asha@Example.com",
		Phone:     "555-0100",
		EventType: "Wedding",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
	}
}

func TestBookingService_CreateInquiry(t *testing.T) {
	t.Run("creates the inquiry and notifies", func(t *testing.T) {
		f := newFixture(t)

		var inserted model.Booking

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) error {
			inserted = booking

			return nil
		})
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, *date("2025-06-01"), fields[model.FieldRequestedStartDate])
				assert.Equal(t, *date("2025-06-03"), fields[model.FieldRequestedEndDate])

				return nil
			})
		f.notifier.EXPECT().InquiryReceived(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, payload notificationDto.InquiryPayload) {
				assert.Equal(t, "asha@example.com", payload.Email)
				assert.Equal(t, "2025-06-03", payload.EndDate)
			})

		res, err := f.svc.CreateInquiry(context.Background(), inquiry())

		require.NoError(t, err)
		assert.Equal(t, inserted.ID, res.BookingID)
		assert.Equal(t, inserted.CustomerToken, res.Token)
		assert.Len(t, res.Token, 43)
		assert.Equal(t, constant.BookingStatusInquiry, inserted.Status)
		assert.Equal(t, date("2025-06-01"), inserted.EventDate)
		assert.Nil(t, inserted.RequestedStartDate)
	})

	t.Run("range write failure is not fatal", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("check violation"))
		f.notifier.EXPECT().InquiryReceived(gomock.Any(), gomock.Any())

		res, err := f.svc.CreateInquiry(context.Background(), inquiry())

		require.NoError(t, err)
		assert.NotEmpty(t, res.BookingID)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFixture(t)

		req := inquiry()
		req.EndDate = "2025-05-30"

		_, err := f.svc.CreateInquiry(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, failure.GetFields(err), "endDate")
	})

	t.Run("insert failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := f.svc.CreateInquiry(context.Background(), inquiry())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Calendar(t *testing.T) {
	t.Run("window too wide", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Calendar(context.Background(), "2025-01-01", "2026-06-01")

		require.Error(t, err)
		assert.Contains(t, failure.GetFields(err), "to")
	})

	t.Run("to before from", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Calendar(context.Background(), "2025-06-10", "2025-06-01")

		assert.Contains(t, failure.GetFields(err), "to")
	})

	t.Run("booked ranges carry no customer data", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Calendar(gomock.Any(), *date("2025-06-01"), *date("2025-06-30")).
			Return([]model.CalendarRange{{StartDate: *date("2025-06-05"), EndDate: *date("2025-06-06")}}, nil)

		res, err := f.svc.Calendar(context.Background(), "2025-06-01", "2025-06-30")

		require.NoError(t, err)
		require.Len(t, res.Events, 1)
		assert.Equal(t, dto.CalendarEvent{Title: "Booked", StartDate: "2025-06-05", EndDate: "2025-06-06"}, res.Events[0])
	})

	t.Run("defaults to ninety days", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Calendar(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) ([]model.CalendarRange, error) {
				assert.Equal(t, 90*24*time.Hour, to.Sub(from))

				return nil, nil
			})

		_, err := f.svc.Calendar(context.Background(), "", "")
		assert.NoError(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, "bookings.created_at DESC", params.Order)
			assert.Equal(t, 200, params.Limit)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, " OR ")
			assert.Len(t, args, 3)

			return []model.Booking{{ID: bookingID, EventDate: date("2025-06-01")}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), "wedding")

	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "2025-06-01", res.Bookings[0].EndDate)
}

func TestBookingService_UpdateIntake(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.UpdateIntake(adminContext(), dto.UpdateIntakeRequest{}, bookingID)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("merged range rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
			ID:                 bookingID,
			RequestedStartDate: date("2025-06-10"),
			RequestedEndDate:   date("2025-06-12"),
		}, nil)

		err := f.svc.UpdateIntake(adminContext(), dto.UpdateIntakeRequest{RequestedEndDate: strPtr("2025-06-01")}, bookingID)

		require.Error(t, err)
		assert.Contains(t, failure.GetFields(err), "requested_end_date")
	})

	t.Run("blank optional fields become null", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				gaam, ok := fields["gaam"]
				assert.True(t, ok)
				assert.Nil(t, gaam)

				start, ok := fields[model.FieldRequestedStartDate]
				assert.True(t, ok)
				assert.Nil(t, start)

				assert.Equal(t, strPtr("Edison"), fields["city"])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		err := f.svc.UpdateIntake(adminContext(), dto.UpdateIntakeRequest{
			Gaam:               strPtr(""),
			City:               strPtr("Edison"),
			RequestedStartDate: strPtr(""),
		}, bookingID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.UpdateIntake(adminContext(), dto.UpdateIntakeRequest{City: strPtr("Edison")}, bookingID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("gate status rejected", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.UpdateStatus(adminContext(), dto.UpdateStatusRequest{Status: "menu open"}, bookingID)

		assert.Contains(t, failure.GetFields(err), "status")
	})

	t.Run("booking inside the gate", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().SetStatus(gomock.Any(), bookingID, "DEPOSIT_PAID", "admin-1").Return(model.ErrStatusGated)

		err := f.svc.UpdateStatus(adminContext(), dto.UpdateStatusRequest{Status: " deposit paid "}, bookingID)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("annotation saved", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().SetStatus(gomock.Any(), bookingID, "CONFIRMED", "admin-1").Return(nil)

		assert.NoError(t, f.svc.UpdateStatus(adminContext(), dto.UpdateStatusRequest{Status: "confirmed"}, bookingID))
	})
}

func TestBookingService_OpenMenu(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode int
	}{
		{name: "locked", repoErr: model.ErrMenuLocked, wantCode: http.StatusConflict},
		{name: "missing", repoErr: model.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "storage failure", repoErr: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().OpenMenu(gomock.Any(), bookingID, gomock.Any(), "admin-1").Return("", tt.repoErr)

			_, err := f.svc.OpenMenu(adminContext(), bookingID)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

	t.Run("keeps the stored token", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().OpenMenu(gomock.Any(), bookingID, gomock.Any(), "admin-1").Return("existing-token", nil)

		res, err := f.svc.OpenMenu(adminContext(), bookingID)

		require.NoError(t, err)
		assert.Equal(t, "existing-token", res.Token)
		assert.Equal(t, "https://hall.example.org/menu/existing-token", res.MenuURL)
	})
}

func TestBookingService_LockMenu(t *testing.T) {
	t.Run("not open", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().LockMenu(gomock.Any(), bookingID, "admin-1").Return(fmt.Errorf("wrapped: %w", model.ErrMenuNotOpen))

		err := f.svc.LockMenu(adminContext(), bookingID)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("locked", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().LockMenu(gomock.Any(), bookingID, "admin-1").Return(nil)

		assert.NoError(t, f.svc.LockMenu(adminContext(), bookingID))
	})
}

func TestBookingService_SetMenuTemplate(t *testing.T) {
	t.Run("unknown template", func(t *testing.T) {
		f := newFixture(t)

		f.templates.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.SetMenuTemplate(adminContext(), dto.SetTemplateRequest{TemplateID: strPtr("tpl-1")}, bookingID)
		assert.Contains(t, failure.GetFields(err), "template_id")
	})

	t.Run("blank clears the template", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().SetTemplate(gomock.Any(), bookingID, gomock.Nil(), "admin-1").Return(nil)

		assert.NoError(t, f.svc.SetMenuTemplate(adminContext(), dto.SetTemplateRequest{TemplateID: strPtr(" ")}, bookingID))
	})

	t.Run("locked menu", func(t *testing.T) {
		f := newFixture(t)

		f.templates.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().SetTemplate(gomock.Any(), bookingID, strPtr("tpl-1"), "admin-1").Return(model.ErrMenuLocked)

		err := f.svc.SetMenuTemplate(adminContext(), dto.SetTemplateRequest{TemplateID: strPtr("tpl-1")}, bookingID)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_GetMenu(t *testing.T) {
	f := newFixture(t)
	submittedAt := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
		ID:                bookingID,
		Status:            constant.BookingStatusMenuLocked,
		MenuCustomerToken: strPtr("menu-token"),
		MenuSubmittedAt:   &submittedAt,
	}, nil)
	f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), menuModel.FieldID, menuModel.FieldName).
		Return([]menuModel.Template{{ID: "tpl-1", Name: "Wedding"}}, nil)
	f.selections.EXPECT().Selections(gomock.Any(), bookingID).Return([]plannerModel.SelectionDetail{
		{Selection: plannerModel.Selection{MenuItemID: "item-1", Qty: 30}, ItemName: "Samosa"},
	}, nil)

	res, err := f.svc.GetMenu(adminContext(), bookingID)

	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.True(t, res.Submitted)
	assert.Equal(t, "https://hall.example.org/menu/menu-token", *res.MenuURL)
	assert.Equal(t, []dto.TemplateOption{{ID: "tpl-1", Name: "Wedding"}}, res.Templates)
	require.Len(t, res.Selections, 1)
	assert.Equal(t, "Uncategorized", res.Selections[0].CategoryName)
}

func TestBookingService_PrepSheet(t *testing.T) {
	t.Run("uploads csv", func(t *testing.T) {
		f := newFixture(t)
		dinner := "DINNER"
		mains := "Mains"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID}, nil)
		f.selections.EXPECT().Selections(gomock.Any(), bookingID).Return([]plannerModel.SelectionDetail{
			{Selection: plannerModel.Selection{MenuItemID: "item-1", Qty: 30, Session: &dinner}, ItemName: "Paneer, tikka", CategoryName: &mains},
		}, nil)
		f.s3.EXPECT().Upload(gomock.Any(), "menu-sheets", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, fileName, _ string, data []byte) (string, error) {
				assert.True(t, strings.HasPrefix(fileName, bookingID+"-"))
				assert.Equal(t, "Category,Item,Session,Qty,Instructions\nMains,\"Paneer, tikka\",DINNER,30,\n", string(data))

				return "https://files.example.org/menu-sheets/" + fileName, nil
			})

		res, err := f.svc.PrepSheet(adminContext(), bookingID)

		require.NoError(t, err)
		assert.Contains(t, res.URL, "https://files.example.org/menu-sheets/")
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID}, nil)
		f.selections.EXPECT().Selections(gomock.Any(), bookingID).Return(nil, nil)
		f.s3.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

		_, err := f.svc.PrepSheet(adminContext(), bookingID)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
