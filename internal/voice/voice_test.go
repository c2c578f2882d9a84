package voice

import (
	"testing"

	"cloud.google.com/go/civil"
)

func TestMerge(t *testing.T) {
	date := civil.Date{Year: 2026, Month: 2, Day: 20}
	clock := civil.Time{Hour: 13, Minute: 30}
	prevDate := civil.Date{Year: 2026, Month: 3, Day: 1}

	tests := []struct {
		name  string
		draft Draft
		ext   *Extraction
		mode  Mode
		want  Draft
	}{
		{
			name:  "transcript appends with a space",
			draft: Draft{Message: "buy milk"},
			mode:  ModeTranscript,
			want:  Draft{Message: "buy milk and bread"},
		},
		{
			name:  "transcript into empty draft",
			draft: Draft{},
			mode:  ModeTranscript,
			want:  Draft{Message: "and bread"},
		},
		{
			name:  "extract replaces message and sets parts",
			draft: Draft{Message: "old"},
			ext:   &Extraction{Message: "call mum", Date: &date, Time: &clock},
			mode:  ModeExtract,
			want:  Draft{Message: "call mum", Date: &date, Time: &clock},
		},
		{
			name:  "null parts keep draft values",
			draft: Draft{Message: "old", Date: &prevDate},
			ext:   &Extraction{Message: "buy milk"},
			mode:  ModeExtract,
			want:  Draft{Message: "buy milk", Date: &prevDate},
		},
		{
			name:  "empty extracted message falls back to transcript",
			draft: Draft{Message: "note"},
			ext:   &Extraction{},
			mode:  ModeExtract,
			want:  Draft{Message: "note and bread"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.draft, "and bread", tt.ext, tt.mode)
			if got.Message != tt.want.Message {
				t.Errorf("Message = %q, want %q", got.Message, tt.want.Message)
			}
			if !sameDate(got.Date, tt.want.Date) {
				t.Errorf("Date = %v, want %v", got.Date, tt.want.Date)
			}
			if !sameClock(got.Time, tt.want.Time) {
				t.Errorf("Time = %v, want %v", got.Time, tt.want.Time)
			}
		})
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	date := civil.Date{Year: 2026, Month: 2, Day: 20}
	ext := &Extraction{Message: "x", Date: &date}
	got := Merge(Draft{}, "", ext, ModeExtract)
	date.Day = 21
	if got.Date.Day != 20 {
		t.Errorf("draft date changed with extraction: %v", got.Date)
	}
}

func sameDate(a, b *civil.Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameClock(a, b *civil.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
