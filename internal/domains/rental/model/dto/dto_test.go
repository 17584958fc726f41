package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/internal/domains/rental/model"
	"venue/internal/domains/rental/model/dto"
	"venue/shared/constant"
)

func TestCreateRentalRequest_ToModel(t *testing.T) {
	inactive := false
	order := 5
	description := " Seats 8 "

	item := (&dto.CreateRentalRequest{
		Name:        " Round table ",
		Description: &description,
		PriceMode:   model.PriceModeFlat,
		UnitPrice:   40,
		Active:      &inactive,
		SortOrder:   &order,
	}).ToModel("admin-1")

	assert.Equal(t, "Round table", item.Name)
	assert.Equal(t, "Seats 8", *item.Description)
	assert.False(t, item.Active)
	assert.Equal(t, 5, item.SortOrder)
	assert.Equal(t, "admin-1", item.ModifiedBy)

	defaults := (&dto.CreateRentalRequest{Name: "Chair", PriceMode: model.PriceModePerDay}).ToModel("admin-1")
	assert.True(t, defaults.Active)
	assert.Equal(t, constant.DefaultSortOrder, defaults.SortOrder)
	assert.Nil(t, defaults.Description)
}

func TestUpdateRentalRequest_IsEmpty(t *testing.T) {
	assert.True(t, dto.UpdateRentalRequest{}.IsEmpty())

	active := false
	assert.False(t, dto.UpdateRentalRequest{Active: &active}.IsEmpty())
}
