package model

import (
	"time"

	"venue/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID         = "id"
	FieldTitle      = "title"
	FieldVisibility = "visibility"
	FieldStatus     = "status"
	FieldStartAt    = "start_at"
	FieldEndAt      = "end_at"
	FieldAllDay     = "all_day"
	FieldPublishAt  = "publish_at"
	FieldCategory   = "category"
)

const (
	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"

	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusCancelled = "CANCELLED"
)

const (
	DefaultTitle    = "Event"
	PrivateTitle    = "Private Event (Booked)"
	PrivateCategory = "private"
)

// DefaultOrder lists events chronologically.
const DefaultOrder = TableName + ".start_at ASC, " + TableName + ".created_at ASC"

type Event struct {
	ID         string     `db:"id"`
	Title      *string    `db:"title"`
	Visibility string     `db:"visibility"`
	Status     string     `db:"status"`
	StartAt    time.Time  `db:"start_at"`
	EndAt      time.Time  `db:"end_at"`
	AllDay     bool       `db:"all_day"`
	PublishAt  *time.Time `db:"publish_at"`
	Category   *string    `db:"category"`
	model.Metadata
}

// IsPublic reports whether the event may be shown with its own details at now.
func (e *Event) IsPublic(now time.Time) bool {
	return e.Visibility == VisibilityPublic &&
		e.Status == StatusPublished &&
		(e.PublishAt == nil || !e.PublishAt.After(now))
}

// BlocksCalendar reports whether a private event occupies its slot. Private
// events do so even as drafts.
func (e *Event) BlocksCalendar() bool {
	return e.Visibility == VisibilityPrivate && e.Status != StatusCancelled
}
