package dto

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue/internal/domains/event/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

// ParseInstant accepts an RFC 3339 timestamp or a YYYY-MM-DD date, which is
// read as midnight in the application timezone.
func ParseInstant(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}

	if t, err := time.ParseInLocation(time.DateOnly, value, timezone.GetLocation()); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func parseField(field, value string) (time.Time, error) {
	t, ok := ParseInstant(value)
	if !ok {
		return t, failure.ValidationField(field, field+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}

	return t, nil
}

func validateRange(start, end time.Time) error {
	if !end.After(start) {
		return failure.ValidationField(model.FieldEndAt, "end_at must be after start_at")
	}

	return nil
}

type CreateEventRequest struct {
	Title      *string `json:"title"      validate:"omitnil,max=200"`
	Visibility string  `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE"`
	Status     string  `json:"status"     validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
	StartAt    string  `json:"start_at"   validate:"required"`
	EndAt      string  `json:"end_at"     validate:"required"`
	AllDay     bool    `json:"all_day"`
	PublishAt  *string `json:"publish_at"`
	Category   *string `json:"category"   validate:"omitnil,max=100"`
}

// ToModel parses the timestamps and applies defaults. New events are drafts
// unless a status is given.
func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	start, err := parseField(model.FieldStartAt, c.StartAt)
	if err != nil {
		return model.Event{}, err
	}

	end, err := parseField(model.FieldEndAt, c.EndAt)
	if err != nil {
		return model.Event{}, err
	}

	if err = validateRange(start, end); err != nil {
		return model.Event{}, err
	}

	var publishAt *time.Time

	if c.PublishAt != nil && strings.TrimSpace(*c.PublishAt) != constant.Empty {
		at, err := parseField(model.FieldPublishAt, *c.PublishAt)
		if err != nil {
			return model.Event{}, err
		}

		publishAt = &at
	}

	status := c.Status
	if status == constant.Empty {
		status = model.StatusDraft
	}

	now := timezone.Now()

	return model.Event{
		ID:         uuid.NewString(),
		Title:      blankToNil(c.Title),
		Visibility: c.Visibility,
		Status:     status,
		StartAt:    start,
		EndAt:      end,
		AllDay:     c.AllDay,
		PublishAt:  publishAt,
		Category:   blankToNil(c.Category),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateEventRequest struct {
	Title      *string `db:"title"      json:"title"      validate:"omitnil,max=200"`
	Visibility *string `db:"visibility" json:"visibility" validate:"omitnil,oneof=PUBLIC PRIVATE"`
	Status     *string `db:"status"     json:"status"     validate:"omitnil,oneof=DRAFT PUBLISHED CANCELLED"`
	AllDay     *bool   `db:"all_day"    json:"all_day"`
	Category   *string `db:"category"   json:"category"   validate:"omitnil,max=100"`
	StartAt    *string `json:"start_at"`
	EndAt      *string `json:"end_at"`
	PublishAt  *string `json:"publish_at"`
}

func (r UpdateEventRequest) IsEmpty() bool {
	value := reflect.ValueOf(r)
	for i := range value.NumField() {
		if !value.Field(i).IsNil() {
			return false
		}
	}

	return true
}

// ToUpdateFields maps the supplied fields to columns. The resulting range is
// checked against the stored event. A blank title, category or publish_at
// clears the column.
func (r *UpdateEventRequest) ToUpdateFields(current model.Event, user string) (map[string]any, error) {
	fields := shared.NullifyBlank(shared.TransformFields(*r, user), model.FieldTitle, model.FieldCategory)

	start, end := current.StartAt, current.EndAt

	if r.StartAt != nil {
		parsed, err := parseField(model.FieldStartAt, *r.StartAt)
		if err != nil {
			return nil, err
		}

		start = parsed
		fields[model.FieldStartAt] = start
	}

	if r.EndAt != nil {
		parsed, err := parseField(model.FieldEndAt, *r.EndAt)
		if err != nil {
			return nil, err
		}

		end = parsed
		fields[model.FieldEndAt] = end
	}

	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	if r.PublishAt != nil {
		if strings.TrimSpace(*r.PublishAt) == constant.Empty {
			fields[model.FieldPublishAt] = nil
		} else {
			parsed, err := parseField(model.FieldPublishAt, *r.PublishAt)
			if err != nil {
				return nil, err
			}

			fields[model.FieldPublishAt] = parsed
		}
	}

	return fields, nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	Title      *string `json:"title"`
	Visibility string  `json:"visibility"`
	Status     string  `json:"status"`
	StartAt    string  `json:"start_at"`
	EndAt      string  `json:"end_at"`
	AllDay     bool    `json:"all_day"`
	PublishAt  *string `json:"publish_at"`
	Category   *string `json:"category"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(event model.Event) {
	r.ID = event.ID
	r.Title = event.Title
	r.Visibility = event.Visibility
	r.Status = event.Status
	r.StartAt = timezone.Format(event.StartAt, constant.DateFormat)
	r.EndAt = timezone.Format(event.EndAt, constant.DateFormat)
	r.AllDay = event.AllDay
	r.Category = event.Category
	r.Metadata.FromModel(event.Metadata)

	if event.PublishAt != nil {
		publishAt := timezone.Format(*event.PublishAt, constant.DateFormat)
		r.PublishAt = &publishAt
	}
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

// FeedEvent is an event as shown on the public calendar. Private events
// carry no details of their own.
type FeedEvent struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	StartAt    string  `json:"start_at"`
	EndAt      string  `json:"end_at"`
	AllDay     bool    `json:"all_day"`
	Visibility string  `json:"visibility"`
	Category   *string `json:"category"`
}

type FeedResponse struct {
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Events []FeedEvent `json:"events"`
}

// FromModels keeps public events that are published and due at now, and
// masks private events that are not cancelled. Everything else is dropped.
func (r *FeedResponse) FromModels(start, end, now time.Time, events []model.Event) {
	r.Start = timezone.Format(start, constant.DateFormat)
	r.End = timezone.Format(end, constant.DateFormat)
	r.Events = []FeedEvent{}

	for _, event := range events {
		item := FeedEvent{
			ID:      event.ID,
			StartAt: timezone.Format(event.StartAt, constant.DateFormat),
			EndAt:   timezone.Format(event.EndAt, constant.DateFormat),
			AllDay:  event.AllDay,
		}

		switch {
		case event.IsPublic(now):
			item.Title = model.DefaultTitle
			if event.Title != nil {
				item.Title = *event.Title
			}

			item.Visibility = model.VisibilityPublic
			item.Category = event.Category
		case event.BlocksCalendar():
			category := model.PrivateCategory

			item.Title = model.PrivateTitle
			item.Visibility = model.VisibilityPrivate
			item.Category = &category
		default:
			continue
		}

		r.Events = append(r.Events, item)
	}
}

func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == constant.Empty {
		return nil
	}

	return &trimmed
}
