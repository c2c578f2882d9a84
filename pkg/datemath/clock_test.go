package datemath_test

import (
	"testing"

	"cloud.google.com/go/civil"

	"memory-mob/pkg/datemath"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    civil.Time
		wantErr bool
	}{
		{in: "08:30", want: civil.Time{Hour: 8, Minute: 30}},
		{in: "8.30", want: civil.Time{Hour: 8, Minute: 30}},
		{in: "21:00:00", want: civil.Time{Hour: 21}},
		{in: "noon", want: civil.Time{Hour: 12}},
		{in: "puolipäivä", want: civil.Time{Hour: 12}},
		{in: "3 pm", want: civil.Time{Hour: 15}},
		{in: "12am", want: civil.Time{Hour: 0}},
		{in: "half two", want: civil.Time{Hour: 13, Minute: 30}},
		{in: "puoli kaksi", want: civil.Time{Hour: 13, Minute: 30}},
		{in: "half 2", want: civil.Time{Hour: 13, Minute: 30}},
		{in: "half two in the morning", want: civil.Time{Hour: 1, Minute: 30}},
		{in: "puoli kahdeksan aamulla", want: civil.Time{Hour: 7, Minute: 30}},
		{in: "half eight", want: civil.Time{Hour: 7, Minute: 30}},
		{in: "half seven illalla", want: civil.Time{Hour: 18, Minute: 30}},
		{in: "half twelve in the morning", want: civil.Time{Hour: 11, Minute: 30}},
		{in: "puoli kaksitoista aamulla", want: civil.Time{Hour: 11, Minute: 30}},
		{in: "half twelve", want: civil.Time{Hour: 11, Minute: 30}},
		{in: "half twelve in the evening", want: civil.Time{Hour: 23, Minute: 30}},
		{in: "half one", want: civil.Time{Hour: 12, Minute: 30}},
		{in: "half one in the morning", want: civil.Time{Hour: 0, Minute: 30}},
		{in: "25:00", wantErr: true},
		{in: "13 pm", wantErr: true},
		{in: "half past nothing", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := datemath.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := datemath.FormatClock(civil.Time{Hour: 8, Minute: 5}); got != "08:05" {
		t.Errorf("FormatClock() = %q", got)
	}
}
