package datemath_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"memory-mob/pkg/datemath"
)

func fixedZone(t *testing.T, now time.Time) *datemath.Zone {
	t.Helper()
	z, err := datemath.NewZone(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("NewZone: %v", err)
	}
	return z.WithClock(func() time.Time { return now })
}

func TestNewZone(t *testing.T) {
	if _, err := datemath.NewZone("Europe/Helsinki"); err != nil {
		t.Fatalf("unexpected error creating valid zone: %v", err)
	}
	if _, err := datemath.NewZone("Invalid/Timezone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
	z, err := datemath.NewZone("")
	if err != nil || z.Location().String() != datemath.DefaultTimezone {
		t.Fatalf("empty timezone should default to %s", datemath.DefaultTimezone)
	}
}

func TestLocalToUTC(t *testing.T) {
	z := fixedZone(t, time.Now())

	tests := []struct {
		name string
		date civil.Date
		time civil.Time
		want time.Time
	}{
		{
			name: "winter offset +02",
			date: civil.Date{Year: 2026, Month: 1, Day: 15},
			time: civil.Time{Hour: 21},
			want: time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "summer offset +03",
			date: civil.Date{Year: 2026, Month: 7, Day: 15},
			time: civil.Time{Hour: 21},
			want: time.Date(2026, 7, 15, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "local midnight falls on previous UTC day",
			date: civil.Date{Year: 2026, Month: 2, Day: 20},
			time: civil.Time{Hour: 0, Minute: 30},
			want: time.Date(2026, 2, 19, 22, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := z.LocalToUTC(tt.date, tt.time); !got.Equal(tt.want) {
				t.Errorf("LocalToUTC() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Helsinki switches at 01:00 UTC: 2026-03-29 03:00 EET becomes 04:00 EEST and
// 2026-10-25 04:00 EEST becomes 03:00 EET. The probe offset decides the result.
func TestLocalToUTCAcrossDST(t *testing.T) {
	z := fixedZone(t, time.Now())

	tests := []struct {
		name      string
		date      civil.Date
		time      civil.Time
		want      time.Time
		wantLocal civil.Time
	}{
		{
			name:      "skipped hour reads the summer offset",
			date:      civil.Date{Year: 2026, Month: 3, Day: 29},
			time:      civil.Time{Hour: 3, Minute: 30},
			want:      time.Date(2026, 3, 29, 0, 30, 0, 0, time.UTC),
			wantLocal: civil.Time{Hour: 2, Minute: 30},
		},
		{
			name:      "hour before the spring switch reads the summer offset",
			date:      civil.Date{Year: 2026, Month: 3, Day: 29},
			time:      civil.Time{Hour: 2, Minute: 30},
			want:      time.Date(2026, 3, 28, 23, 30, 0, 0, time.UTC),
			wantLocal: civil.Time{Hour: 1, Minute: 30},
		},
		{
			name:      "repeated hour resolves to the later occurrence",
			date:      civil.Date{Year: 2026, Month: 10, Day: 25},
			time:      civil.Time{Hour: 3, Minute: 30},
			want:      time.Date(2026, 10, 25, 1, 30, 0, 0, time.UTC),
			wantLocal: civil.Time{Hour: 3, Minute: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := z.LocalToUTC(tt.date, tt.time)
			if !got.Equal(tt.want) {
				t.Fatalf("LocalToUTC() = %v, want %v", got, tt.want)
			}
			if _, local := z.UTCToLocal(got); local != tt.wantLocal {
				t.Errorf("UTCToLocal() clock = %v, want %v", local, tt.wantLocal)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	z := fixedZone(t, time.Now())

	dates := []civil.Date{
		{Year: 2026, Month: 1, Day: 1},
		{Year: 2026, Month: 2, Day: 20},
		{Year: 2026, Month: 6, Day: 21},
		{Year: 2026, Month: 10, Day: 19},
		{Year: 2026, Month: 12, Day: 31},
	}
	clocks := []civil.Time{{Hour: 0}, {Hour: 8, Minute: 30}, {Hour: 12}, {Hour: 21}, {Hour: 23, Minute: 59}}

	for _, d := range dates {
		for _, c := range clocks {
			gotDate, gotClock := z.UTCToLocal(z.LocalToUTC(d, c))
			if gotDate != d || gotClock != c {
				t.Errorf("round trip %s %s = %s %s", d, c, gotDate, gotClock)
			}
		}
	}
}

func TestToday(t *testing.T) {
	// 22:30 UTC is already the next day in Helsinki.
	z := fixedZone(t, time.Date(2026, 2, 19, 22, 30, 0, 0, time.UTC))
	if got, want := z.Today(), (civil.Date{Year: 2026, Month: 2, Day: 20}); got != want {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}

func TestFormatDisplay(t *testing.T) {
	z := fixedZone(t, time.Now())
	instant := time.Date(2026, 2, 20, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "fi-FI", want: "20.2.2026 klo 21.00"},
		{locale: "sv-SE", want: "2026-02-20 21:00"},
		{locale: "en-GB", want: "20/02/2026, 21:00"},
		{locale: "en-US", want: "2/20/2026, 9:00 PM"},
		{locale: "xx-XX", want: "20.2.2026 klo 21.00"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := z.FormatDisplay(instant, tt.locale); got != tt.want {
				t.Errorf("FormatDisplay(%s) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}
