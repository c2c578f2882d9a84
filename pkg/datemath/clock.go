package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

var (
	numericClockRe = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})(?::(\d{2}))?$`)
	meridiemRe     = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)$`)
	halfRe         = regexp.MustCompile(`^(?:half|puoli)\s+(\S+)(?:\s+(.+))?$`)
)

var hourWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"yksi": 1, "kaksi": 2, "kolme": 3, "neljä": 4, "viisi": 5, "kuusi": 6,
	"seitsemän": 7, "kahdeksan": 8, "yhdeksän": 9, "kymmenen": 10, "yksitoista": 11, "kaksitoista": 12,
}

var morningHints = []string{"morning", "in the morning", "am", "aamulla", "aamupäivällä"}
var eveningHints = []string{"afternoon", "in the afternoon", "evening", "in the evening", "pm", "iltapäivällä", "illalla"}

// ParseClock normalises a spoken or written time of day.
//
// Accepted forms are "HH:MM", "HH.MM", "H am/pm", "noon" and the half-hour form
// "half H" / "puoli H", which means thirty minutes before hour H. A bare hour of 1
// to 7 without a morning hint is read as afternoon, so "half two" is 13:30.
func ParseClock(s string) (civil.Time, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))

	switch s {
	case "noon", "midday", "keskipäivä", "keskipäivällä", "puolipäivä":
		return civil.Time{Hour: 12}, nil
	case "midnight", "keskiyö", "keskiyöllä":
		return civil.Time{}, nil
	}

	if m := numericClockRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		return validClock(h, min, sec, s)
	}

	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 {
			return civil.Time{}, fmt.Errorf("invalid clock %q", s)
		}
		pm := strings.HasPrefix(m[3], "p")
		h %= 12
		if pm {
			h += 12
		}
		return validClock(h, min, 0, s)
	}

	if m := halfRe.FindStringSubmatch(s); m != nil {
		h, ok := hourOf(m[1])
		if !ok {
			return civil.Time{}, fmt.Errorf("invalid clock %q", s)
		}
		// Step back on the 12-hour dial first, then place the result in the day.
		prev := h - 1
		if prev == 0 {
			prev = 12
		}
		h = prev % 12
		if afternoon(m[1], m[2]) {
			h += 12
		}
		return civil.Time{Hour: h, Minute: 30}, nil
	}

	return civil.Time{}, fmt.Errorf("unrecognised clock %q", s)
}

// FormatClock renders t as "HH:MM".
func FormatClock(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func hourOf(word string) (int, bool) {
	if h, ok := hourWords[word]; ok {
		return h, true
	}
	h, err := strconv.Atoi(word)
	if err != nil || h < 1 || h > 12 {
		return 0, false
	}
	return h, true
}

// afternoon decides the half of the day for a spoken hour from the optional
// day-part hint, defaulting bare hours 1 to 7 to the afternoon.
func afternoon(word, hint string) bool {
	hint = strings.TrimSpace(hint)
	for _, m := range morningHints {
		if hint == m {
			return false
		}
	}
	for _, e := range eveningHints {
		if hint == e {
			return true
		}
	}
	h, _ := hourOf(word)
	return h >= 1 && h <= 7
}

func validClock(h, min, sec int, raw string) (civil.Time, error) {
	t := civil.Time{Hour: h, Minute: min, Second: sec}
	if !t.IsValid() {
		return civil.Time{}, fmt.Errorf("invalid clock %q", raw)
	}
	return t, nil
}
