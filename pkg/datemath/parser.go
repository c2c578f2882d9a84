package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// fixedOffsets maps relative day words to their distance from the base date.
var fixedOffsets = map[string]int{
	"today":              0,
	"tänään":             0,
	"tomorrow":           1,
	"huomenna":           1,
	"day after tomorrow": 2,
	"ylihuomenna":        2,
	"yesterday":          -1,
	"eilen":              -1,
	"next week":          7,
	"ensi viikolla":      7,
}

// ResolveDate accepts an ISO "YYYY-MM-DD" date or a relative phrase understood by Parse.
func ResolveDate(s string, base civil.Date) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	return Parse(s, base)
}

// Parse converts a relative date phrase to a calendar date counted from base.
func Parse(relative string, base civil.Date) (civil.Date, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	if days, ok := fixedOffsets[relative]; ok {
		return base.AddDays(days), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return parseInDuration(relative, base)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return parseNextWeekday(relative, base)
	}

	return civil.Date{}, fmt.Errorf("unrecognised date %q", relative)
}

func parseInDuration(relative string, base civil.Date) (civil.Date, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return civil.Date{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return base.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return base.AddDays(amount * 7), nil
	default:
		return civil.DateOf(base.In(time.UTC).AddDate(0, amount, 0)), nil
	}
}

func parseNextWeekday(relative string, base civil.Date) (civil.Date, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return civil.Date{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - base.In(time.UTC).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDays(daysUntil), nil
}
