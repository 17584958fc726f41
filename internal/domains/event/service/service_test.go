package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/otel/mocks"
	eventMocks "venue/internal/domains/event/mocks"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/internal/domains/event/service"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const eventID = "7c0e2b1a-4f5d-4a8e-9b3c-1d2e3f4a5b6c"

func newService(t *testing.T) (*eventMocks.MockEvent, service.Event) {
	t.Helper()

	repo := eventMocks.NewMockEvent(gomock.NewController(t))

	return repo, service.New(repo, mocks.NewOtel())
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func storedEvent() model.Event {
	start := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	return model.Event{
		ID:         eventID,
		Visibility: model.VisibilityPrivate,
		Status:     model.StatusDraft,
		StartAt:    start,
		EndAt:      start.Add(12 * time.Hour),
	}
}

func TestEventService_Feed(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
	}{
		{name: "missing start", end: "2025-07-01", wantField: constant.RequestParamStart},
		{name: "missing end", start: "2025-06-01", wantField: constant.RequestParamEnd},
		{name: "malformed end", start: "2025-06-01", end: "July", wantField: constant.RequestParamEnd},
		{name: "end before start", start: "2025-07-01", end: "2025-06-01", wantField: constant.RequestParamEnd},
		{name: "window too wide", start: "2025-01-01", end: "2026-06-01", wantField: constant.RequestParamEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newService(t)

			_, err := svc.Feed(context.Background(), tt.start, tt.end)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.wantField)
		})
	}

	t.Run("queries overlapping events that are not cancelled", func(t *testing.T) {
		repo, svc := newService(t)
		stored := storedEvent()

		repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Order: model.DefaultOrder}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Event, error) {
				where, args := filter.GetWhereClause()

				assert.Equal(t, "(events.status <> :status AND events.end_at > :window_start AND events.start_at < :window_end)", where)
				assert.Equal(t, model.StatusCancelled, args["status"])
				assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), args["window_start"])

				return []model.Event{stored}, nil
			})

		res, err := svc.Feed(context.Background(), "2025-10-01T00:00:00Z", "2025-11-01T00:00:00Z")

		require.NoError(t, err)
		require.Len(t, res.Events, 1)
		assert.Equal(t, model.PrivateTitle, res.Events[0].Title)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Feed(context.Background(), "2025-10-01", "2025-11-01")
		assert.Error(t, err)
	})
}

func TestEventService_Create(t *testing.T) {
	t.Run("stores parsed event", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event model.Event) error {
			assert.Equal(t, model.StatusDraft, event.Status)
			assert.Equal(t, "admin-1", event.CreatedBy)

			return nil
		})

		res, err := svc.Create(adminContext(), dto.CreateEventRequest{
			Visibility: model.VisibilityPublic,
			StartAt:    "2025-10-20T10:00:00Z",
			EndAt:      "2025-10-20T22:00:00Z",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("invalid range never reaches storage", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.Create(adminContext(), dto.CreateEventRequest{
			Visibility: model.VisibilityPublic,
			StartAt:    "2025-10-21",
			EndAt:      "2025-10-20",
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestEventService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		_, svc := newService(t)

		err := svc.Update(adminContext(), dto.UpdateEventRequest{}, eventID)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := newService(t)
		status := model.StatusPublished

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)

		err := svc.Update(adminContext(), dto.UpdateEventRequest{Status: &status}, eventID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("publishes", func(t *testing.T) {
		repo, svc := newService(t)
		status := model.StatusPublished

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedEvent(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &status, fields[model.FieldStatus])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		require.NoError(t, svc.Update(adminContext(), dto.UpdateEventRequest{Status: &status}, eventID))
	})
}

func TestEventService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(adminContext(), eventID)))
	})

	t.Run("deletes", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedEvent(), nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(adminContext(), eventID))
	})
}
