package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/shared/timezone"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, "Asia/Jakarta", timezone.Load("Asia/Jakarta").String())
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, timezone.Now().Format(time.DateOnly), today.Format(time.DateOnly))
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, instant.In(timezone.GetLocation()).Format(time.RFC3339), timezone.Format(instant, time.RFC3339))
}

func TestParseAndFormatDate(t *testing.T) {
	date, err := timezone.ParseDate("2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, "2025-06-01", timezone.FormatDate(&date))
	assert.Empty(t, timezone.FormatDate(nil))

	_, err = timezone.ParseDate("06/01/2025")
	assert.Error(t, err)
}
