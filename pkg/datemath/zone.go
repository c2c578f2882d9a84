package datemath

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
)

// DefaultTimezone is the fixed zone every reminder is entered and displayed in.
const DefaultTimezone = "Europe/Helsinki"

// Zone converts between wall-clock values in a fixed IANA location and UTC instants.
type Zone struct {
	location *time.Location
	now      func() time.Time
}

// NewZone creates a Zone for the given IANA timezone string, e.g. "Europe/Helsinki".
func NewZone(timezone string) (*Zone, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Zone{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of z that reads "now" from the given function.
func (z *Zone) WithClock(now func() time.Time) *Zone {
	return &Zone{location: z.location, now: now}
}

func (z *Zone) Location() *time.Location {
	return z.location
}

// Now returns the current instant in UTC.
func (z *Zone) Now() time.Time {
	return z.now().UTC()
}

// Today returns the current calendar date in the zone.
func (z *Zone) Today() civil.Date {
	return civil.DateOf(z.now().In(z.location))
}

// LocalToUTC interprets d and t as wall-clock values in the zone and returns the UTC instant.
//
// The wall clock is first read as if it were UTC (the probe). The zone's offset at the probe
// instant is then subtracted. Near a DST switch the probe may sit on the other side of the
// transition than the result; the offset reported at the probe wins and the repeated or
// skipped hour is not disambiguated.
func (z *Zone) LocalToUTC(d civil.Date, t civil.Time) time.Time {
	probe := time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, time.UTC)
	_, offset := probe.In(z.location).Zone()
	return probe.Add(-time.Duration(offset) * time.Second)
}

// UTCToLocal returns the zone's calendar date and minute-precision wall clock for instant.
func (z *Zone) UTCToLocal(instant time.Time) (civil.Date, civil.Time) {
	local := instant.In(z.location)
	return civil.DateOf(local), civil.Time{Hour: local.Hour(), Minute: local.Minute()}
}
