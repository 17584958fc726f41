package model

import (
	"errors"
	"time"

	"venue/shared/constant"
	"venue/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldStatus             = "status"
	FieldEventType          = "event_type"
	FieldCustomerName       = "customer_name"
	FieldRequestedStartDate = "requested_start_date"
	FieldRequestedEndDate   = "requested_end_date"
	FieldEventDate          = "event_date"
	FieldCustomerToken      = "customer_token"
	FieldMenuCustomerToken  = "menu_customer_token"
	FieldMenuTemplateID     = "menu_template_id"
	FieldCreatedAt          = "created_at"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrMenuLocked      = errors.New("menu is locked")
	ErrMenuNotOpen     = errors.New("menu is not open")
	ErrStatusGated     = errors.New("status is controlled by the menu gate")
)

type Booking struct {
	ID                     string     `db:"id"`
	Status                 string     `db:"status"`
	EventType              string     `db:"event_type"`
	Description            *string    `db:"description"`
	MembershipStatus       *string    `db:"membership_status"`
	PrimarySpaceID         *string    `db:"primary_space_id"`
	PrimarySpaceName       *string    `db:"primary_space_name"`
	RequestedStartDate     *time.Time `db:"requested_start_date"`
	RequestedEndDate       *time.Time `db:"requested_end_date"`
	EventDate              *time.Time `db:"event_date"`
	CustomerName           string     `db:"customer_name"`
	CustomerEmail          string     `db:"customer_email"`
	CustomerPhone          string     `db:"customer_phone"`
	Gaam                   *string    `db:"gaam"`
	BookingForName         *string    `db:"booking_for_name"`
	RelationshipToBooker   *string    `db:"relationship_to_booker"`
	AddressLine1           *string    `db:"address_line1"`
	AddressLine2           *string    `db:"address_line2"`
	City                   *string    `db:"city"`
	State                  *string    `db:"state"`
	PostalCode             *string    `db:"postal_code"`
	VendorsDecoratorNeeded bool       `db:"vendors_decorator_needed"`
	VendorsDecoratorNotes  *string    `db:"vendors_decorator_notes"`
	VendorsDJNeeded        bool       `db:"vendors_dj_needed"`
	VendorsDJNotes         *string    `db:"vendors_dj_notes"`
	VendorsCleaningNeeded  bool       `db:"vendors_cleaning_needed"`
	VendorsCleaningNotes   *string    `db:"vendors_cleaning_notes"`
	VendorsOtherNeeded     bool       `db:"vendors_other_needed"`
	VendorsOtherNotes      *string    `db:"vendors_other_notes"`
	CustomerToken          string     `db:"customer_token"`
	MenuCustomerToken      *string    `db:"menu_customer_token"`
	MenuTemplateID         *string    `db:"menu_template_id"`
	MenuSubmittedAt        *time.Time `db:"menu_submitted_at"`
	model.Metadata
}

// StartDate is the requested start, falling back to the legacy event date.
func (b *Booking) StartDate() *time.Time {
	if b.RequestedStartDate != nil {
		return b.RequestedStartDate
	}

	return b.EventDate
}

// EndDate is the requested end, falling back to the start date.
func (b *Booking) EndDate() *time.Time {
	if b.RequestedEndDate != nil {
		return b.RequestedEndDate
	}

	return b.StartDate()
}

// IsMenuGated reports whether the status belongs to the menu open/lock gate.
func IsMenuGated(status string) bool {
	return status == constant.BookingStatusMenuOpen || status == constant.BookingStatusMenuLocked
}

// CalendarRange is one booked span on the public availability calendar.
type CalendarRange struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}
