package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"venue/config"
)

const defaultTimezone = "UTC"

var (
	appLocation *time.Location
	loadOnce    sync.Once
)

// location loads App.Timezone on first use. An unknown zone falls back to UTC.
func location() *time.Location {
	loadOnce.Do(func() {
		appLocation = Load(config.Get().App.Timezone)
	})

	return appLocation
}

// Load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(location())
}

// Today returns the venue's current calendar date at UTC midnight, the same
// shape ParseDate produces.
func Today() time.Time {
	now := Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Format formats an instant in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate parses a YYYY-MM-DD calendar date. Calendar dates carry no zone
// and are kept at UTC midnight so they round-trip through DATE columns.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

// FormatDate formats a calendar date without zone conversion. Nil yields "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.DateOnly)
}
