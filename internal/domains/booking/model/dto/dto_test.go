package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/internal/domains/booking/model"
	"venue/internal/domains/booking/model/dto"
	"venue/shared/failure"
)

func TestInquiryRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.InquiryRequest
		wantStart string
		wantEnd   string
		wantField string
	}{
		{
			name:      "single event date",
			req:       dto.InquiryRequest{EventDate: "2025-06-01"},
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-01",
		},
		{
			name:      "range wins over event date",
			req:       dto.InquiryRequest{EventDate: "2025-05-01", StartDate: "2025-06-01", EndDate: "2025-06-03"},
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-03",
		},
		{
			name:      "same day range",
			req:       dto.InquiryRequest{StartDate: "2025-06-01", EndDate: "2025-06-01"},
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-01",
		},
		{
			name:      "end before start",
			req:       dto.InquiryRequest{StartDate: "2025-06-03", EndDate: "2025-06-01"},
			wantField: "endDate",
		},
		{
			name:      "start without end",
			req:       dto.InquiryRequest{StartDate: "2025-06-03"},
			wantField: "endDate",
		},
		{
			name:      "end without start",
			req:       dto.InquiryRequest{EventDate: "2025-06-01", EndDate: "2025-06-03"},
			wantField: "startDate",
		},
		{
			name:      "no date at all",
			req:       dto.InquiryRequest{},
			wantField: "eventDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Normalize()

			if tt.wantField != "" {
				require.Error(t, err)
				assert.Contains(t, failure.GetFields(err), tt.wantField)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.Format(time.DateOnly))
			assert.Equal(t, tt.wantEnd, end.Format(time.DateOnly))
		})
	}
}

func TestInquiryRequest_ToModel(t *testing.T) {
	req := dto.InquiryRequest{Name: " Asha ", Email: " Asha@Example.COM ", Phone: "555-0100", EventType: "Wedding", Description: "  "}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel("tok", start)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "INQUIRY", booking.Status)
	assert.Equal(t, "Asha", booking.CustomerName)
	assert.Equal(t, "asha@example.com", booking.CustomerEmail)
	assert.Nil(t, booking.Description)
	assert.Equal(t, &start, booking.EventDate)
	assert.Equal(t, "tok", booking.CustomerToken)
}

func TestUpdateIntakeRequest_IsEmpty(t *testing.T) {
	assert.True(t, dto.UpdateIntakeRequest{}.IsEmpty())

	needed := false
	assert.False(t, dto.UpdateIntakeRequest{VendorsDJNeeded: &needed}.IsEmpty())
}

func TestMergedRange(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	current := model.Booking{RequestedStartDate: &start, RequestedEndDate: &end}

	earlier := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mergedStart, mergedEnd := dto.MergedRange(current, dto.DateEdit{}, dto.DateEdit{Set: true, Value: &earlier})
	assert.Error(t, dto.ValidateRange(mergedStart, mergedEnd))

	mergedStart, mergedEnd = dto.MergedRange(current, dto.DateEdit{Set: true}, dto.DateEdit{Set: true, Value: &earlier})
	assert.NoError(t, dto.ValidateRange(mergedStart, mergedEnd))
}

func TestUpdateStatusRequest_Label(t *testing.T) {
	assert.Equal(t, "DEPOSIT_PAID", (&dto.UpdateStatusRequest{Status: "  deposit   paid "}).Label())
	assert.Equal(t, "", (&dto.UpdateStatusRequest{Status: "   "}).Label())
}
