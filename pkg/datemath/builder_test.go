package datemath_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestBuild(t *testing.T) {
	// Thursday 2026-02-19 12:00 in Helsinki.
	z := fixedZone(t, time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC))

	date := civil.Date{Year: 2026, Month: 2, Day: 20}
	clock := civil.Time{Hour: 8, Minute: 30}

	tests := []struct {
		name  string
		date  *civil.Date
		clock *civil.Time
		want  time.Time
	}{
		{name: "both empty", want: time.Date(2026, 2, 19, 19, 0, 0, 0, time.UTC)},
		{name: "date only", date: &date, want: time.Date(2026, 2, 20, 19, 0, 0, 0, time.UTC)},
		{name: "time only", clock: &clock, want: time.Date(2026, 2, 19, 6, 30, 0, 0, time.UTC)},
		{name: "both set", date: &date, clock: &clock, want: time.Date(2026, 2, 20, 6, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := z.Build(tt.date, tt.clock); !got.Equal(tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}
