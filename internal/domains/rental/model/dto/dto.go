package dto

import (
	"reflect"
	"strings"

	"github.com/google/uuid"

	"venue/internal/domains/rental/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

type CreateRentalRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=150"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	PriceMode   string  `json:"price_mode"  validate:"required,oneof=FLAT PER_DAY PER_HOUR"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
	Category    *string `json:"category"    validate:"omitnil,max=100"`
	Active      *bool   `json:"active"`
	SortOrder   *int    `json:"sort_order"`
}

func (c *CreateRentalRequest) ToModel(user string) model.RentalItem {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	sortOrder := constant.DefaultSortOrder
	if c.SortOrder != nil {
		sortOrder = *c.SortOrder
	}

	now := timezone.Now()

	return model.RentalItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(c.Name),
		Description: blankToNil(c.Description),
		PriceMode:   c.PriceMode,
		UnitPrice:   c.UnitPrice,
		Category:    blankToNil(c.Category),
		Active:      active,
		SortOrder:   sortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRentalRequest struct {
	Name        *string  `db:"name"        json:"name"        validate:"omitnil,min=2,max=150"`
	Description *string  `db:"description" json:"description" validate:"omitnil,max=2000"`
	PriceMode   *string  `db:"price_mode"  json:"price_mode"  validate:"omitnil,oneof=FLAT PER_DAY PER_HOUR"`
	UnitPrice   *float64 `db:"unit_price"  json:"unit_price"  validate:"omitnil,gte=0"`
	Category    *string  `db:"category"    json:"category"    validate:"omitnil,max=100"`
	Active      *bool    `db:"active"      json:"active"`
	SortOrder   *int     `db:"sort_order"  json:"sort_order"`
}

func (r UpdateRentalRequest) IsEmpty() bool {
	value := reflect.ValueOf(r)
	for i := range value.NumField() {
		if !value.Field(i).IsNil() {
			return false
		}
	}

	return true
}

// ToUpdateFields maps the supplied fields to columns. Blank description or
// category clears the column.
func (r *UpdateRentalRequest) ToUpdateFields(user string) map[string]any {
	return shared.NullifyBlank(shared.TransformFields(*r, user), model.FieldDescription, model.FieldCategory)
}

type RentalResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PriceMode   string  `json:"price_mode"`
	UnitPrice   float64 `json:"unit_price"`
	Category    *string `json:"category"`
	Active      bool    `json:"active"`
	SortOrder   int     `json:"sort_order"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(item model.RentalItem) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.PriceMode = item.PriceMode
	r.UnitPrice = item.UnitPrice
	r.Category = item.Category
	r.Active = item.Active
	r.SortOrder = item.SortOrder
	r.Metadata.FromModel(item.Metadata)
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.RentalItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
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
