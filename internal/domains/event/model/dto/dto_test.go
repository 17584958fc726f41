package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/shared/failure"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFeedResponse_FromModels(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	slot := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)

	event := func(id, visibility, status string, publishAt *time.Time) model.Event {
		return model.Event{
			ID:         id,
			Title:      ptr("Garba Night"),
			Visibility: visibility,
			Status:     status,
			StartAt:    slot,
			EndAt:      slot.Add(4 * time.Hour),
			PublishAt:  publishAt,
			Category:   ptr("community"),
		}
	}

	events := []model.Event{
		event("public-live", model.VisibilityPublic, model.StatusPublished, nil),
		event("public-due", model.VisibilityPublic, model.StatusPublished, ptr(now.Add(-time.Hour))),
		event("public-scheduled", model.VisibilityPublic, model.StatusPublished, ptr(now.Add(time.Hour))),
		event("public-draft", model.VisibilityPublic, model.StatusDraft, nil),
		event("private-draft", model.VisibilityPrivate, model.StatusDraft, nil),
		event("private-cancelled", model.VisibilityPrivate, model.StatusCancelled, nil),
	}

	res := dto.FeedResponse{}
	res.FromModels(start, end, now, events)

	ids := make([]string, len(res.Events))
	for i, item := range res.Events {
		ids[i] = item.ID
	}

	assert.Equal(t, []string{"public-live", "public-due", "private-draft"}, ids)

	public := res.Events[0]
	assert.Equal(t, "Garba Night", public.Title)
	assert.Equal(t, model.VisibilityPublic, public.Visibility)
	assert.Equal(t, "community", *public.Category)

	private := res.Events[2]
	assert.Equal(t, model.PrivateTitle, private.Title)
	assert.Equal(t, model.VisibilityPrivate, private.Visibility)
	assert.Equal(t, model.PrivateCategory, *private.Category)
}

func TestFeedResponse_FromModels_UntitledPublicEvent(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	res := dto.FeedResponse{}
	res.FromModels(now, now.AddDate(0, 1, 0), now, []model.Event{
		{ID: "e1", Visibility: model.VisibilityPublic, Status: model.StatusPublished, StartAt: now, EndAt: now.Add(time.Hour)},
	})

	require.Len(t, res.Events, 1)
	assert.Equal(t, model.DefaultTitle, res.Events[0].Title)
}

func TestCreateEventRequest_ToModel(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		req := dto.CreateEventRequest{
			Title:      ptr("  Diwali Mela "),
			Visibility: model.VisibilityPublic,
			StartAt:    "2025-10-20T10:00:00Z",
			EndAt:      "2025-10-20T22:00:00Z",
			PublishAt:  ptr(" "),
		}

		event, err := req.ToModel("admin-1")

		require.NoError(t, err)
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, model.StatusDraft, event.Status)
		assert.Equal(t, "Diwali Mela", *event.Title)
		assert.Nil(t, event.PublishAt)
		assert.Equal(t, "admin-1", event.CreatedBy)
	})

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		wantField string
	}{
		{
			name:      "malformed start",
			req:       dto.CreateEventRequest{Visibility: model.VisibilityPrivate, StartAt: "next friday", EndAt: "2025-10-21"},
			wantField: model.FieldStartAt,
		},
		{
			name:      "end before start",
			req:       dto.CreateEventRequest{Visibility: model.VisibilityPrivate, StartAt: "2025-10-21", EndAt: "2025-10-20"},
			wantField: model.FieldEndAt,
		},
		{
			name:      "empty range",
			req:       dto.CreateEventRequest{Visibility: model.VisibilityPrivate, StartAt: "2025-10-21", EndAt: "2025-10-21"},
			wantField: model.FieldEndAt,
		},
		{
			name:      "malformed publish_at",
			req:       dto.CreateEventRequest{Visibility: model.VisibilityPublic, StartAt: "2025-10-20", EndAt: "2025-10-21", PublishAt: ptr("soon")},
			wantField: model.FieldPublishAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel("admin-1")

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.wantField)
		})
	}
}

func TestUpdateEventRequest_ToUpdateFields(t *testing.T) {
	current := model.Event{
		ID:      "e1",
		StartAt: time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 10, 20, 22, 0, 0, 0, time.UTC),
	}

	t.Run("checks the merged range", func(t *testing.T) {
		req := dto.UpdateEventRequest{StartAt: ptr("2025-10-21T10:00:00Z")}

		_, err := req.ToUpdateFields(current, "admin-1")

		require.Error(t, err)
		assert.Contains(t, failure.GetFields(err), model.FieldEndAt)
	})

	t.Run("blank values clear columns", func(t *testing.T) {
		req := dto.UpdateEventRequest{Category: ptr(""), PublishAt: ptr(""), Status: ptr(model.StatusPublished)}

		fields, err := req.ToUpdateFields(current, "admin-1")

		require.NoError(t, err)
		assert.Nil(t, fields[model.FieldCategory])
		assert.Contains(t, fields, model.FieldPublishAt)
		assert.Nil(t, fields[model.FieldPublishAt])
		assert.Equal(t, ptr(model.StatusPublished), fields[model.FieldStatus])
		assert.NotContains(t, fields, model.FieldStartAt)
	})

	t.Run("parses new range", func(t *testing.T) {
		req := dto.UpdateEventRequest{EndAt: ptr("2025-10-21T02:00:00Z")}

		fields, err := req.ToUpdateFields(current, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 21, 2, 0, 0, 0, time.UTC), fields[model.FieldEndAt])
	})
}

func TestParseInstant(t *testing.T) {
	_, ok := dto.ParseInstant("2025-10-20")
	assert.True(t, ok)

	parsed, ok := dto.ParseInstant("2025-10-20T10:00:00+05:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 10, 20, 4, 30, 0, 0, time.UTC), parsed.UTC())

	_, ok = dto.ParseInstant("20/10/2025")
	assert.False(t, ok)
}
