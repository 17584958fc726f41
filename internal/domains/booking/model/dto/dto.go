package dto

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue/internal/domains/booking/model"
	plannerDto "venue/internal/domains/planner/model/dto"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/failure"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

const (
	calendarTitle = "Booked"

	errEndBeforeStart = "must be on or after the start date"
)

// InquiryRequest is the public inquiry form.
type InquiryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=150"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	Phone       string `json:"phone"       validate:"required,min=7,max=30"`
	EventType   string `json:"eventType"   validate:"required,min=2,max=100"`
	EventDate   string `json:"eventDate"   validate:"omitempty,dateonly"`
	StartDate   string `json:"startDate"   validate:"omitempty,dateonly"`
	EndDate     string `json:"endDate"     validate:"omitempty,dateonly"`
	Description string `json:"description" validate:"max=2000"`
}

// Normalize resolves the requested range. A range given as startDate/endDate
// needs both ends; otherwise eventDate is a one day range.
func (r *InquiryRequest) Normalize() (start, end time.Time, err error) {
	startDate := strings.TrimSpace(r.StartDate)
	endDate := strings.TrimSpace(r.EndDate)

	switch {
	case startDate != constant.Empty || endDate != constant.Empty:
		fields := map[string]string{}

		if startDate == constant.Empty {
			fields["startDate"] = "startDate is required with endDate"
		}

		if endDate == constant.Empty {
			fields["endDate"] = "endDate is required with startDate"
		}

		if len(fields) > 0 {
			return start, end, failure.Validation(fields)
		}
	case strings.TrimSpace(r.EventDate) != constant.Empty:
		startDate = strings.TrimSpace(r.EventDate)
		endDate = startDate
	default:
		return start, end, failure.ValidationField("eventDate", "eventDate or startDate and endDate is required")
	}

	if start, err = timezone.ParseDate(startDate); err != nil {
		return start, end, failure.ValidationField("startDate", "startDate must be a YYYY-MM-DD date")
	}

	if end, err = timezone.ParseDate(endDate); err != nil {
		return start, end, failure.ValidationField("endDate", "endDate must be a YYYY-MM-DD date")
	}

	if end.Before(start) {
		return start, end, failure.ValidationField("endDate", "endDate "+errEndBeforeStart)
	}

	return start, end, nil
}

// ToModel builds the inquiry row. The requested range is written separately.
func (r *InquiryRequest) ToModel(customerToken string, start time.Time) model.Booking {
	now := timezone.Now()

	var description *string
	if d := strings.TrimSpace(r.Description); d != constant.Empty {
		description = &d
	}

	return model.Booking{
		ID:            uuid.NewString(),
		Status:        constant.BookingStatusInquiry,
		EventType:     strings.TrimSpace(r.EventType),
		Description:   description,
		EventDate:     &start,
		CustomerName:  strings.TrimSpace(r.Name),
		CustomerEmail: strings.ToLower(strings.TrimSpace(r.Email)),
		CustomerPhone: strings.TrimSpace(r.Phone),
		CustomerToken: customerToken,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type InquiryResponse struct {
	BookingID string `json:"booking_id"`
	Token     string `json:"token"`
}

// BookingResponse is the staff summary of a booking.
type BookingResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	EventType       string  `json:"event_type"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	MenuTemplateID  *string `json:"menu_template_id"`
	MenuSubmittedAt *string `json:"menu_submitted_at"`
	CreatedAt       string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Status = booking.Status
	r.EventType = booking.EventType
	r.CustomerName = booking.CustomerName
	r.CustomerEmail = booking.CustomerEmail
	r.CustomerPhone = booking.CustomerPhone
	r.StartDate = timezone.FormatDate(booking.StartDate())
	r.EndDate = timezone.FormatDate(booking.EndDate())
	r.MenuTemplateID = booking.MenuTemplateID
	r.MenuSubmittedAt = plannerDto.FormatTimestamp(booking.MenuSubmittedAt)
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

// IntakeResponse is the full intake record.
type IntakeResponse struct {
	ID                     string  `json:"id"`
	Status                 string  `json:"status"`
	EventType              string  `json:"event_type"`
	Description            *string `json:"description"`
	MembershipStatus       *string `json:"membership_status"`
	PrimarySpaceID         *string `json:"primary_space_id"`
	PrimarySpaceName       *string `json:"primary_space_name"`
	RequestedStartDate     string  `json:"requested_start_date"`
	RequestedEndDate       string  `json:"requested_end_date"`
	EventDate              string  `json:"event_date"`
	CustomerName           string  `json:"customer_name"`
	CustomerEmail          string  `json:"customer_email"`
	CustomerPhone          string  `json:"customer_phone"`
	Gaam                   *string `json:"gaam"`
	BookingForName         *string `json:"booking_for_name"`
	RelationshipToBooker   *string `json:"relationship_to_booker"`
	AddressLine1           *string `json:"address_line1"`
	AddressLine2           *string `json:"address_line2"`
	City                   *string `json:"city"`
	State                  *string `json:"state"`
	PostalCode             *string `json:"postal_code"`
	VendorsDecoratorNeeded bool    `json:"vendors_decorator_needed"`
	VendorsDecoratorNotes  *string `json:"vendors_decorator_notes"`
	VendorsDJNeeded        bool    `json:"vendors_dj_needed"`
	VendorsDJNotes         *string `json:"vendors_dj_notes"`
	VendorsCleaningNeeded  bool    `json:"vendors_cleaning_needed"`
	VendorsCleaningNotes   *string `json:"vendors_cleaning_notes"`
	VendorsOtherNeeded     bool    `json:"vendors_other_needed"`
	VendorsOtherNotes      *string `json:"vendors_other_notes"`
	CreatedAt              string  `json:"created_at"`
	ModifiedAt             string  `json:"modified_at"`
}

func (r *IntakeResponse) FromModel(b model.Booking) {
	r.ID = b.ID
	r.Status = b.Status
	r.EventType = b.EventType
	r.Description = b.Description
	r.MembershipStatus = b.MembershipStatus
	r.PrimarySpaceID = b.PrimarySpaceID
	r.PrimarySpaceName = b.PrimarySpaceName
	r.RequestedStartDate = timezone.FormatDate(b.RequestedStartDate)
	r.RequestedEndDate = timezone.FormatDate(b.RequestedEndDate)
	r.EventDate = timezone.FormatDate(b.EventDate)
	r.CustomerName = b.CustomerName
	r.CustomerEmail = b.CustomerEmail
	r.CustomerPhone = b.CustomerPhone
	r.Gaam = b.Gaam
	r.BookingForName = b.BookingForName
	r.RelationshipToBooker = b.RelationshipToBooker
	r.AddressLine1 = b.AddressLine1
	r.AddressLine2 = b.AddressLine2
	r.City = b.City
	r.State = b.State
	r.PostalCode = b.PostalCode
	r.VendorsDecoratorNeeded = b.VendorsDecoratorNeeded
	r.VendorsDecoratorNotes = b.VendorsDecoratorNotes
	r.VendorsDJNeeded = b.VendorsDJNeeded
	r.VendorsDJNotes = b.VendorsDJNotes
	r.VendorsCleaningNeeded = b.VendorsCleaningNeeded
	r.VendorsCleaningNotes = b.VendorsCleaningNotes
	r.VendorsOtherNeeded = b.VendorsOtherNeeded
	r.VendorsOtherNotes = b.VendorsOtherNotes
	r.CreatedAt = timezone.Format(b.CreatedAt, constant.DateFormat)
	r.ModifiedAt = timezone.Format(b.ModifiedAt, constant.DateFormat)
}

// UpdateIntakeRequest is a partial intake edit. Absent fields are left alone;
// an empty string clears an optional text or date field.
type UpdateIntakeRequest struct {
	EventType              *string `db:"event_type"               json:"event_type"               validate:"omitnil,min=2,max=100"`
	Description            *string `db:"description"              json:"description"              validate:"omitnil,max=2000"`
	MembershipStatus       *string `db:"membership_status"        json:"membership_status"        validate:"omitempty,oneof=LIFE_MEMBER TRUSTEE NON_MEMBER"`
	PrimarySpaceID         *string `db:"primary_space_id"         json:"primary_space_id"         validate:"omitnil,max=100"`
	PrimarySpaceName       *string `db:"primary_space_name"       json:"primary_space_name"       validate:"omitnil,max=150"`
	RequestedStartDate     *string `json:"requested_start_date"   validate:"omitempty,dateonly"`
	RequestedEndDate       *string `json:"requested_end_date"     validate:"omitempty,dateonly"`
	CustomerName           *string `db:"customer_name"            json:"customer_name"            validate:"omitnil,min=2,max=150"`
	CustomerEmail          *string `db:"customer_email"           json:"customer_email"           validate:"omitnil,email,max=255"`
	CustomerPhone          *string `db:"customer_phone"           json:"customer_phone"           validate:"omitnil,min=7,max=30"`
	Gaam                   *string `db:"gaam"                     json:"gaam"                     validate:"omitnil,max=150"`
	BookingForName         *string `db:"booking_for_name"         json:"booking_for_name"         validate:"omitnil,max=150"`
	RelationshipToBooker   *string `db:"relationship_to_booker"   json:"relationship_to_booker"   validate:"omitnil,max=100"`
	AddressLine1           *string `db:"address_line1"            json:"address_line1"            validate:"omitnil,max=255"`
	AddressLine2           *string `db:"address_line2"            json:"address_line2"            validate:"omitnil,max=255"`
	City                   *string `db:"city"                     json:"city"                     validate:"omitnil,max=100"`
	State                  *string `db:"state"                    json:"state"                    validate:"omitnil,max=100"`
	PostalCode             *string `db:"postal_code"              json:"postal_code"              validate:"omitnil,max=20"`
	VendorsDecoratorNeeded *bool   `db:"vendors_decorator_needed" json:"vendors_decorator_needed"`
	VendorsDecoratorNotes  *string `db:"vendors_decorator_notes"  json:"vendors_decorator_notes"  validate:"omitnil,max=2000"`
	VendorsDJNeeded        *bool   `db:"vendors_dj_needed"        json:"vendors_dj_needed"`
	VendorsDJNotes         *string `db:"vendors_dj_notes"         json:"vendors_dj_notes"         validate:"omitnil,max=2000"`
	VendorsCleaningNeeded  *bool   `db:"vendors_cleaning_needed"  json:"vendors_cleaning_needed"`
	VendorsCleaningNotes   *string `db:"vendors_cleaning_notes"   json:"vendors_cleaning_notes"   validate:"omitnil,max=2000"`
	VendorsOtherNeeded     *bool   `db:"vendors_other_needed"     json:"vendors_other_needed"`
	VendorsOtherNotes      *string `db:"vendors_other_notes"      json:"vendors_other_notes"      validate:"omitnil,max=2000"`
}

var nullableIntakeColumns = []string{
	"description", "membership_status", "primary_space_id", "primary_space_name", "gaam",
	"booking_for_name", "relationship_to_booker", "address_line1", "address_line2", "city", "state",
	"postal_code", "vendors_decorator_notes", "vendors_dj_notes", "vendors_cleaning_notes", "vendors_other_notes",
}

func (r UpdateIntakeRequest) IsEmpty() bool {
	value := reflect.ValueOf(r)
	for i := range value.NumField() {
		if !value.Field(i).IsNil() {
			return false
		}
	}

	return true
}

// DateEdit is a requested date change. Value nil with Set clears the column.
type DateEdit struct {
	Set   bool
	Value *time.Time
}

func parseDateEdit(raw *string) (DateEdit, error) {
	if raw == nil {
		return DateEdit{}, nil
	}

	value := strings.TrimSpace(*raw)
	if value == constant.Empty {
		return DateEdit{Set: true}, nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return DateEdit{}, err //nolint:wrapcheck
	}

	return DateEdit{Set: true, Value: &date}, nil
}

func (r *UpdateIntakeRequest) ParseDates() (start, end DateEdit, err error) {
	if start, err = parseDateEdit(r.RequestedStartDate); err != nil {
		return start, end, failure.ValidationField("requested_start_date", "requested_start_date must be a YYYY-MM-DD date")
	}

	if end, err = parseDateEdit(r.RequestedEndDate); err != nil {
		return start, end, failure.ValidationField("requested_end_date", "requested_end_date must be a YYYY-MM-DD date")
	}

	return start, end, nil
}

// MergedRange applies the date edits to the stored range.
func MergedRange(current model.Booking, start, end DateEdit) (*time.Time, *time.Time) {
	mergedStart, mergedEnd := current.RequestedStartDate, current.RequestedEndDate

	if start.Set {
		mergedStart = start.Value
	}

	if end.Set {
		mergedEnd = end.Value
	}

	return mergedStart, mergedEnd
}

// ValidateRange rejects an end date before the start date.
func ValidateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return failure.ValidationField("requested_end_date", "requested_end_date "+errEndBeforeStart)
	}

	return nil
}

func (r *UpdateIntakeRequest) ToUpdateFields(username string, start, end DateEdit) map[string]any {
	fields := shared.NullifyBlank(shared.TransformFields(*r, username), nullableIntakeColumns...)

	if start.Set {
		fields[model.FieldRequestedStartDate] = start.Value
	}

	if end.Set {
		fields[model.FieldRequestedEndDate] = end.Value
	}

	return fields
}

// RangeFields sets the requested range written after an inquiry is created.
func RangeFields(start, end time.Time) map[string]any {
	return map[string]any{
		model.FieldRequestedStartDate: start,
		model.FieldRequestedEndDate:   end,
	}
}

type OpenMenuResponse struct {
	Token   string `json:"token"`
	MenuURL string `json:"menu_url"`
}

type SetTemplateRequest struct {
	TemplateID *string `json:"template_id" validate:"omitempty,uuid"`
}

// Normalized treats a blank template id as none.
func (r *SetTemplateRequest) Normalized() *string {
	if r.TemplateID == nil || strings.TrimSpace(*r.TemplateID) == constant.Empty {
		return nil
	}

	id := strings.TrimSpace(*r.TemplateID)

	return &id
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=40"`
}

// Label upper-cases the status and joins words with underscores.
func (r *UpdateStatusRequest) Label() string {
	return strings.ToUpper(strings.Join(strings.Fields(r.Status), "_"))
}

type CalendarEvent struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CalendarResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Events []CalendarEvent `json:"events"`
}

func (r *CalendarResponse) FromModels(from, to time.Time, ranges []model.CalendarRange) {
	r.From = timezone.FormatDate(&from)
	r.To = timezone.FormatDate(&to)
	r.Events = make([]CalendarEvent, len(ranges))

	for i, booked := range ranges {
		r.Events[i] = CalendarEvent{
			Title:     calendarTitle,
			StartDate: timezone.FormatDate(&booked.StartDate),
			EndDate:   timezone.FormatDate(&booked.EndDate),
		}
	}
}

type TemplateOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdminMenuResponse is the staff view of a booking's menu.
type AdminMenuResponse struct {
	Booking        BookingResponse                    `json:"booking"`
	Status         string                             `json:"status"`
	MenuTemplateID *string                            `json:"menu_template_id"`
	MenuToken      *string                            `json:"menu_token"`
	MenuURL        *string                            `json:"menu_url"`
	Locked         bool                               `json:"locked"`
	Submitted      bool                               `json:"submitted"`
	SubmittedAt    *string                            `json:"submitted_at"`
	Templates      []TemplateOption                   `json:"templates"`
	Selections     []plannerDto.SelectionLineResponse `json:"selections"`
}

type PrepSheetResponse struct {
	URL string `json:"url"`
}
