package model

import (
	"venue/shared/model"
)

const (
	TableName  = "menu_selections"
	EntityName = "menu_selection"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldMenuItemID = "menu_item_id"
	FieldSession    = "session"
)

type Selection struct {
	ID           string  `db:"id"`
	BookingID    string  `db:"booking_id"`
	MenuItemID   string  `db:"menu_item_id"`
	Qty          int     `db:"qty"`
	Session      *string `db:"session"`
	Instructions *string `db:"instructions"`
	model.Metadata
}

// SelectionDetail is a selection with the names needed to print it.
type SelectionDetail struct {
	Selection
	ItemName          string  `db:"item_name"           table:"menu_items"      column:"name"`
	CategoryName      *string `db:"category_name"       table:"menu_categories" column:"name"`
	CategorySortOrder *int    `db:"category_sort_order" table:"menu_categories" column:"sort_order"`
}

func (SelectionDetail) GetJoinQuery() string {
	return "JOIN menu_items ON menu_items.id = menu_selections.menu_item_id " +
		"LEFT JOIN menu_categories ON menu_categories.id = menu_items.category_id"
}

// SessionKey identifies a selection within one booking.
func (s *Selection) SessionKey() string {
	if s.Session == nil {
		return s.MenuItemID + "|"
	}

	return s.MenuItemID + "|" + *s.Session
}
