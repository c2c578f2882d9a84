package datemath

import (
	"time"

	"cloud.google.com/go/civil"
)

// DefaultReminderClock is the local time used when a reminder has a date but no time.
var DefaultReminderClock = civil.Time{Hour: 21}

// Build resolves an optional local date and time into the UTC instant to persist.
// A nil date means today in the zone; a nil time means DefaultReminderClock.
// Whether the result lies in the future is for the caller to check.
func (z *Zone) Build(date *civil.Date, clock *civil.Time) time.Time {
	d := z.Today()
	if date != nil {
		d = *date
	}
	t := DefaultReminderClock
	if clock != nil {
		t = *clock
	}
	return z.LocalToUTC(d, t)
}
