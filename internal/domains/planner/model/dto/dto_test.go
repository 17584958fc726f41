package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "venue/internal/domains/booking/model"
	menuModel "venue/internal/domains/menu/model"
	"venue/internal/domains/planner/model"
	"venue/internal/domains/planner/model/dto"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/validator"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected dto.Quantity
	}{
		{name: "integer", input: `3`, expected: 3},
		{name: "fraction is floored", input: `2.9`, expected: 2},
		{name: "negative floors at zero", input: `-4`, expected: 0},
		{name: "numeric string", input: `"12"`, expected: 12},
		{name: "non numeric string", input: `"lots"`, expected: 0},
		{name: "null", input: `null`, expected: 0},
		{name: "boolean", input: `true`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item dto.SelectionRequest

			err := json.Unmarshal([]byte(`{"menu_item_id":"a","qty":`+tt.input+`}`), &item)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, item.Qty)
		})
	}
}

func TestSaveMenuRequest_ToModels(t *testing.T) {
	blank := "  "
	note := " no onions "

	req := dto.SaveMenuRequest{
		Token: "tok",
		Items: []dto.SelectionRequest{
			{MenuItemID: "item-1", Qty: 4, Session: &blank, Instructions: &note},
		},
	}

	selections := req.ToModels()

	require.Len(t, selections, 1)
	assert.Nil(t, selections[0].Session)
	assert.Equal(t, "no onions", *selections[0].Instructions)
	assert.Equal(t, 4, selections[0].Qty)
	assert.Equal(t, constant.ContextGuest, selections[0].CreatedBy)
	assert.NotEmpty(t, selections[0].ID)
}

func TestPublicMenuResponse_FromModels(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	starters := "Starters"
	categoryID := "cat-1"
	lunch := "LUNCH"

	booking := bookingModel.Booking{
		ID:                 "booking-1",
		Status:             constant.BookingStatusMenuLocked,
		EventType:          "Wedding",
		RequestedStartDate: &start,
		RequestedEndDate:   &end,
	}

	items := []menuModel.ItemWithCategory{
		{Item: menuModel.Item{ID: "item-1", Name: "Samosa", CategoryID: &categoryID}, CategoryName: &starters},
		{Item: menuModel.Item{ID: "item-2", Name: "Chai"}},
	}

	selections := []model.SelectionDetail{
		{Selection: model.Selection{MenuItemID: "item-1", Qty: 40, Session: &lunch}},
	}

	var res dto.PublicMenuResponse
	res.FromModels(booking, items, selections)

	assert.True(t, res.Locked)
	assert.Nil(t, res.SubmittedAt)
	assert.Equal(t, "2025-06-01", res.Booking.StartDate)
	assert.Equal(t, "2025-06-02", res.Booking.EndDate)

	require.Len(t, res.Categories, 2)
	assert.Equal(t, "Starters", res.Categories[0].Name)
	assert.Equal(t, "Uncategorized", res.Categories[1].Name)
	assert.Nil(t, res.Categories[1].ID)

	require.Len(t, res.Categories[0].Items[0].Selections, 1)
	assert.Equal(t, 40, res.Categories[0].Items[0].Selections[0].Qty)
	assert.Empty(t, res.Categories[1].Items[0].Selections)
}

func TestSaveMenuRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		wantErr bool
	}{
		{name: "empty selection set", items: 0},
		{name: "at the cap", items: 500},
		{name: "over the cap", items: 501, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SaveMenuRequest{Token: "tok", Items: make([]dto.SelectionRequest, tt.items)}
			for i := range req.Items {
				req.Items[i].MenuItemID = "item"
			}

			err := validator.ValidateStruct(&req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, "items must have at most 500 entries", failure.GetFields(err)["items"])
		})
	}
}
