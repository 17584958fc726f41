package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	bookingModel "venue/internal/domains/booking/model"
	menuModel "venue/internal/domains/menu/model"
	"venue/internal/domains/planner/model"
	"venue/shared/constant"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

const uncategorized = "Uncategorized"

// Quantity decodes a JSON number or numeric string, floored at zero.
// Anything else decodes as zero.
type Quantity int

var _ json.Unmarshaler = (*Quantity)(nil)

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 0

	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || value <= 0 {
		return nil
	}

	if value > math.MaxInt32 {
		value = math.MaxInt32
	}

	*q = Quantity(math.Floor(value))

	return nil
}

type SelectionRequest struct {
	MenuItemID   string   `json:"menu_item_id" validate:"required"`
	Qty          Quantity `json:"qty"`
	Session      *string  `json:"session"      validate:"omitempty,oneof=BREAKFAST LUNCH DINNER SNACK OTHER"`
	Instructions *string  `json:"instructions" validate:"omitnil,max=1000"`
}

type SaveMenuRequest struct {
	Token  string             `json:"token"  validate:"required"`
	Items  []SelectionRequest `json:"items"  validate:"max=500,dive"`
	Submit bool               `json:"submit"`
}

// ToModels builds the replacement selection set. A blank session is stored as none.
func (r *SaveMenuRequest) ToModels() []model.Selection {
	now := timezone.Now()
	selections := make([]model.Selection, len(r.Items))

	for i, item := range r.Items {
		selections[i] = model.Selection{
			ID:           uuid.NewString(),
			MenuItemID:   strings.TrimSpace(item.MenuItemID),
			Qty:          int(item.Qty),
			Session:      trimmed(item.Session),
			Instructions: trimmed(item.Instructions),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  constant.ContextGuest,
				ModifiedBy: constant.ContextGuest,
			},
		}
	}

	return selections
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}

	v := strings.TrimSpace(*value)
	if v == constant.Empty {
		return nil
	}

	return &v
}

type SaveMenuResponse struct {
	Saved       int     `json:"saved"`
	SubmittedAt *string `json:"submitted_at"`
}

type SelectionResponse struct {
	Qty          int     `json:"qty"`
	Session      *string `json:"session"`
	Instructions *string `json:"instructions"`
}

type MenuItemResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Vegetarian  bool                `json:"vegetarian"`
	SpiceLevel  *string             `json:"spice_level"`
	Price       *float64            `json:"price"`
	Selections  []SelectionResponse `json:"selections"`
}

type MenuCategoryResponse struct {
	ID    *string            `json:"id"`
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}

type MenuBookingResponse struct {
	EventType    string `json:"event_type"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type PublicMenuResponse struct {
	Booking     MenuBookingResponse    `json:"booking"`
	Locked      bool                   `json:"locked"`
	SubmittedAt *string                `json:"submitted_at"`
	Categories  []MenuCategoryResponse `json:"categories"`
}

// FromModels groups the offered items by category, keeping the storage order,
// and attaches the booking's current selections to each item.
func (r *PublicMenuResponse) FromModels(booking bookingModel.Booking, items []menuModel.ItemWithCategory, selections []model.SelectionDetail) {
	r.Booking = MenuBookingResponse{
		EventType:    booking.EventType,
		CustomerName: booking.CustomerName,
		StartDate:    timezone.FormatDate(booking.StartDate()),
		EndDate:      timezone.FormatDate(booking.EndDate()),
	}
	r.Locked = booking.Status == constant.BookingStatusMenuLocked
	r.SubmittedAt = FormatTimestamp(booking.MenuSubmittedAt)

	chosen := make(map[string][]SelectionResponse, len(selections))
	for _, selection := range selections {
		chosen[selection.MenuItemID] = append(chosen[selection.MenuItemID], SelectionResponse{
			Qty:          selection.Qty,
			Session:      selection.Session,
			Instructions: selection.Instructions,
		})
	}

	r.Categories = []MenuCategoryResponse{}
	index := map[string]int{}

	for _, item := range items {
		key := constant.Empty
		if item.CategoryID != nil {
			key = *item.CategoryID
		}

		i, ok := index[key]
		if !ok {
			name := uncategorized
			if item.CategoryName != nil {
				name = *item.CategoryName
			}

			i = len(r.Categories)
			index[key] = i
			r.Categories = append(r.Categories, MenuCategoryResponse{ID: item.CategoryID, Name: name, Items: []MenuItemResponse{}})
		}

		itemSelections := chosen[item.ID]
		if itemSelections == nil {
			itemSelections = []SelectionResponse{}
		}

		r.Categories[i].Items = append(r.Categories[i].Items, MenuItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Vegetarian:  item.Vegetarian,
			SpiceLevel:  item.SpiceLevel,
			Price:       item.Price,
			Selections:  itemSelections,
		})
	}
}

// SelectionLineResponse is one selection as staff see it.
type SelectionLineResponse struct {
	MenuItemID   string  `json:"menu_item_id"`
	ItemName     string  `json:"item_name"`
	CategoryName string  `json:"category_name"`
	Qty          int     `json:"qty"`
	Session      *string `json:"session"`
	Instructions *string `json:"instructions"`
}

func (r *SelectionLineResponse) FromModel(selection model.SelectionDetail) {
	r.MenuItemID = selection.MenuItemID
	r.ItemName = selection.ItemName
	r.CategoryName = uncategorized

	if selection.CategoryName != nil {
		r.CategoryName = *selection.CategoryName
	}

	r.Qty = selection.Qty
	r.Session = selection.Session
	r.Instructions = selection.Instructions
}

func SelectionLines(selections []model.SelectionDetail) []SelectionLineResponse {
	lines := make([]SelectionLineResponse, len(selections))
	for i, selection := range selections {
		lines[i].FromModel(selection)
	}

	return lines
}

func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
