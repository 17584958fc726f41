// Package timezone separates the two kinds of time the venue deals with.
//
// Instants (created_at, submitted_at) are shown in the venue's zone, taken
// from APP_TIMEZONE on first use:
//
//	now := timezone.Now()
//	label := timezone.Format(booking.CreatedAt, time.RFC3339)
//
// Calendar dates (event dates, calendar windows) have no zone and are kept
// at UTC midnight:
//
//	day, err := timezone.ParseDate("2025-06-01")
//	today := timezone.Today()
package timezone
