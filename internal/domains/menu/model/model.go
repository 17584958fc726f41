package model

import "venue/shared/model"

const (
	CategoryTableName     = "menu_categories"
	ItemTableName         = "menu_items"
	TemplateTableName     = "menu_templates"
	TemplateItemTableName = "menu_template_items"

	CategoryEntityName     = "menu_category"
	ItemEntityName         = "menu_item"
	TemplateEntityName     = "menu_template"
	TemplateItemEntityName = "menu_template_item"

	FieldID         = "id"
	FieldName       = "name"
	FieldSortOrder  = "sort_order"
	FieldCategoryID = "category_id"
	FieldActive     = "active"
	FieldTemplateID = "template_id"
	FieldMenuItemID = "menu_item_id"
	FieldPosition   = "position"
)

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	SortOrder *int   `db:"sort_order"`
	model.Metadata
}

type Item struct {
	ID          string   `db:"id"`
	CategoryID  *string  `db:"category_id"`
	Name        string   `db:"name"`
	Description *string  `db:"description"`
	Vegetarian  bool     `db:"vegetarian"`
	SpiceLevel  *string  `db:"spice_level"`
	Price       *float64 `db:"price"`
	Active      bool     `db:"active"`
	model.Metadata
}

// ItemWithCategory is an item joined with its optional category.
type ItemWithCategory struct {
	Item
	CategoryName      *string `db:"category_name"       table:"menu_categories" column:"name"`
	CategorySortOrder *int    `db:"category_sort_order" table:"menu_categories" column:"sort_order"`
}

func (ItemWithCategory) GetJoinQuery() string {
	return "LEFT JOIN menu_categories ON menu_categories.id = menu_items.category_id"
}

type Template struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	model.Metadata
}

// TemplateItem is one membership row; Position keeps the order items were given in.
type TemplateItem struct {
	TemplateID string `db:"template_id"`
	MenuItemID string `db:"menu_item_id"`
	Position   int    `db:"position"`
}
