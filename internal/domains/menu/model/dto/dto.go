package dto

import (
	"strings"

	"github.com/google/uuid"

	"venue/internal/domains/menu/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

func newMetadata(username string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  username,
		ModifiedBy: username,
	}
}

// blankToNil trims a text value and turns a blank one into nil.
func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

type CreateCategoryRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	SortOrder *int   `json:"sort_order" validate:"omitnil,gte=0"`
}

func (r *CreateCategoryRequest) ToModel(username string) model.Category {
	return model.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(r.Name),
		SortOrder: r.SortOrder,
		Metadata:  newMetadata(username),
	}
}

type UpdateCategoryRequest struct {
	Name      *string `db:"name"       json:"name"       validate:"omitnil,min=1,max=100"`
	SortOrder *int    `db:"sort_order" json:"sort_order" validate:"omitnil,gte=0"`
}

func (r *UpdateCategoryRequest) IsEmpty() bool {
	return r.Name == nil && r.SortOrder == nil
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder *int   `json:"sort_order"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(category model.Category) {
	r.ID = category.ID
	r.Name = category.Name
	r.SortOrder = category.SortOrder
	r.Metadata.FromModel(category.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func (r *GetCategoriesResponse) FromModels(categories []model.Category) {
	r.Categories = make([]CategoryResponse, len(categories))
	for i, category := range categories {
		r.Categories[i].FromModel(category)
	}
}

type CreateItemRequest struct {
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	Name        string   `json:"name"        validate:"required,max=150"`
	Description *string  `json:"description" validate:"omitnil,max=2000"`
	Vegetarian  bool     `json:"vegetarian"`
	SpiceLevel  *string  `json:"spice_level" validate:"omitempty,oneof=MILD MEDIUM HOT"`
	Price       *float64 `json:"price"       validate:"omitnil,gte=0"`
	Active      *bool    `json:"active"`
}

func (r *CreateItemRequest) ToModel(username string) model.Item {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return model.Item{
		ID:          uuid.NewString(),
		CategoryID:  blankToNil(r.CategoryID),
		Name:        strings.TrimSpace(r.Name),
		Description: blankToNil(r.Description),
		Vegetarian:  r.Vegetarian,
		SpiceLevel:  blankToNil(r.SpiceLevel),
		Price:       r.Price,
		Active:      active,
		Metadata:    newMetadata(username),
	}
}

// UpdateItemRequest clears category_id, description and spice_level when they are sent as "".
type UpdateItemRequest struct {
	CategoryID  *string  `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Name        *string  `db:"name"        json:"name"        validate:"omitnil,min=1,max=150"`
	Description *string  `db:"description" json:"description" validate:"omitnil,max=2000"`
	Vegetarian  *bool    `db:"vegetarian"  json:"vegetarian"`
	SpiceLevel  *string  `db:"spice_level" json:"spice_level" validate:"omitempty,oneof=MILD MEDIUM HOT"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitnil,gte=0"`
	Active      *bool    `db:"active"      json:"active"`
}

func (r *UpdateItemRequest) IsEmpty() bool {
	return r.CategoryID == nil && r.Name == nil && r.Description == nil && r.Vegetarian == nil &&
		r.SpiceLevel == nil && r.Price == nil && r.Active == nil
}

func (r *UpdateItemRequest) ToUpdateFields(username string) map[string]any {
	return shared.NullifyBlank(shared.TransformFields(*r, username),
		model.FieldCategoryID, "description", "spice_level")
}

type ItemResponse struct {
	ID           string   `json:"id"`
	CategoryID   *string  `json:"category_id"`
	CategoryName *string  `json:"category_name"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Vegetarian   bool     `json:"vegetarian"`
	SpiceLevel   *string  `json:"spice_level"`
	Price        *float64 `json:"price"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(item model.ItemWithCategory) {
	r.ID = item.ID
	r.CategoryID = item.CategoryID
	r.CategoryName = item.CategoryName
	r.Name = item.Name
	r.Description = item.Description
	r.Vegetarian = item.Vegetarian
	r.SpiceLevel = item.SpiceLevel
	r.Price = item.Price
	r.Active = item.Active
	r.Metadata.FromModel(item.Metadata)
}

type GetItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

func (r *GetItemsResponse) FromModels(items []model.ItemWithCategory) {
	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type CreateTemplateRequest struct {
	Name        string   `json:"name"         validate:"required,max=150"`
	Description *string  `json:"description"  validate:"omitnil,max=2000"`
	ItemIDs     []string `json:"menu_item_ids" validate:"dive,uuid"`
}

func (r *CreateTemplateRequest) ToModel(username string) model.Template {
	return model.Template{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(r.Name),
		Description: blankToNil(r.Description),
		Metadata:    newMetadata(username),
	}
}

// UpdateTemplateRequest replaces the membership only when menu_item_ids is present.
type UpdateTemplateRequest struct {
	Name        *string   `db:"name"        json:"name"          validate:"omitnil,min=1,max=150"`
	Description *string   `db:"description" json:"description"   validate:"omitnil,max=2000"`
	ItemIDs     *[]string `json:"menu_item_ids" validate:"omitnil,dive,uuid"`
}

func (r *UpdateTemplateRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.ItemIDs == nil
}

func (r *UpdateTemplateRequest) ToUpdateFields(username string) map[string]any {
	return shared.NullifyBlank(shared.TransformFields(*r, username), "description")
}

// TemplateItems numbers the given item ids in order, dropping repeats.
func TemplateItems(templateID string, itemIDs []string) []model.TemplateItem {
	seen := make(map[string]struct{}, len(itemIDs))
	items := make([]model.TemplateItem, 0, len(itemIDs))

	for _, id := range itemIDs {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		items = append(items, model.TemplateItem{
			TemplateID: templateID,
			MenuItemID: id,
			Position:   len(items),
		})
	}

	return items
}

type TemplateResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ItemIDs     []string `json:"menu_item_ids"`
	gDto.Metadata
}

func (r *TemplateResponse) FromModel(template model.Template, items []model.TemplateItem) {
	r.ID = template.ID
	r.Name = template.Name
	r.Description = template.Description
	r.ItemIDs = make([]string, 0, len(items))

	for _, item := range items {
		if item.TemplateID == template.ID {
			r.ItemIDs = append(r.ItemIDs, item.MenuItemID)
		}
	}

	r.Metadata.FromModel(template.Metadata)
}

type GetTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

func (r *GetTemplatesResponse) FromModels(templates []model.Template, items []model.TemplateItem) {
	r.Templates = make([]TemplateResponse, len(templates))
	for i, template := range templates {
		r.Templates[i].FromModel(template, items)
	}
}
