package model

import "venue/shared/model"

const (
	TableName  = "rental_items"
	EntityName = "rental item"

	FieldID          = "id"
	FieldName        = "name"
	FieldPriceMode   = "price_mode"
	FieldUnitPrice   = "unit_price"
	FieldCategory    = "category"
	FieldActive      = "active"
	FieldSortOrder   = "sort_order"
	FieldDescription = "description"
)

const (
	PriceModeFlat    = "FLAT"
	PriceModePerDay  = "PER_DAY"
	PriceModePerHour = "PER_HOUR"
)

// DefaultOrder lists active items first, then by sort order and insertion.
const DefaultOrder = TableName + ".active DESC, " + TableName + ".sort_order ASC, " + TableName + ".created_at ASC"

type RentalItem struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	PriceMode   string  `db:"price_mode"`
	UnitPrice   float64 `db:"unit_price"`
	Category    *string `db:"category"`
	Active      bool    `db:"active"`
	SortOrder   int     `db:"sort_order"`
	model.Metadata
}
