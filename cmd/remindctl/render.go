package main

import (
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	"memory-mob/internal/voice"
	"memory-mob/pkg/datemath"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func success(msg string) string { return green("✔ " + msg) }
func failure(msg string) string { return red("✘ " + msg) }
func hint(msg string) string    { return gray(msg) }

// printReminder writes one reminder as a single line.
func printReminder(w io.Writer, zone *datemath.Zone, locale string, r model.Reminder) {
	status := yellow(string(r.Status))
	if r.Status == model.StatusSent {
		status = green(string(r.Status))
	}
	if r.Archived() {
		status = gray("archived")
	}
	fmt.Fprintf(w, "%s  %-20s  %-8s  %s\n",
		gray(r.ID), cyan(zone.FormatDisplay(r.ReminderTime, locale)), status, r.Message)
}

// printList writes the counts header followed by every reminder.
func printList(w io.Writer, zone *datemath.Zone, locale string, out reminder.ListOutput, archived bool) {
	if archived {
		fmt.Fprintf(w, "%s %d\n", bold("Archived:"), len(out.Reminders))
	} else {
		fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
			bold("All:"), out.Counts.All,
			bold("Pending:"), out.Counts.Pending,
			bold("Sent:"), out.Counts.Sent)
	}
	if len(out.Reminders) == 0 {
		fmt.Fprintln(w, hint("No reminders."))
		return
	}
	for _, r := range out.Reminders {
		printReminder(w, zone, locale, r)
	}
}

// printDraft writes the editable draft, marking unset fields with their defaults.
func printDraft(w io.Writer, d voice.Draft) {
	msg := d.Message
	if strings.TrimSpace(msg) == "" {
		msg = hint("(empty)")
	}
	date := hint("today")
	if d.Date != nil {
		date = d.Date.String()
	}
	clock := hint(datemath.FormatClock(datemath.DefaultReminderClock))
	if d.Time != nil {
		clock = datemath.FormatClock(*d.Time)
	}
	fmt.Fprintf(w, "%s %s\n%s %s\n%s %s\n", bold("Message:"), msg, bold("Date:   "), date, bold("Time:   "), clock)
}

// parseDateArg accepts an ISO date or a relative phrase such as "tomorrow".
// An empty string means unset.
func parseDateArg(s string, today civil.Date) (*civil.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := datemath.ResolveDate(s, today)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &d, nil
}

// parseClockArg accepts "HH:MM" and the spoken forms ParseClock understands.
// An empty string means unset.
func parseClockArg(s string) (*civil.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := datemath.ParseClock(s)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return &t, nil
}
