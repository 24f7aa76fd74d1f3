// Package schedule holds the pure time/slot arithmetic behind availability:
// fixed daily slots, weekly class windows and occurrence projection. All
// functions take an explicit "now" and location so behaviour is a pure
// function of its inputs.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotStart combines a calendar date and a slot time into the instant the
// slot begins, interpreted in loc.
func SlotStart(date, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot start: %w", err)
	}
	return t, nil
}

// MinutesOfDay parses HH:MM into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed hour in %q", hhmm)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("malformed minute in %q", hhmm)
	}
	return hours*60 + mins, nil
}

// WithinRange reports whether candidate falls inside the half-open window
// [start, end) at minute granularity. Malformed inputs are never in range.
func WithinRange(candidate, start, end string) bool {
	c, err := MinutesOfDay(candidate)
	if err != nil {
		return false
	}
	s, err := MinutesOfDay(start)
	if err != nil {
		return false
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return false
	}
	return c >= s && c < e
}

// NextOccurrences returns the next count calendar dates matching day,
// starting at from's date. When from already falls on day, that date is the
// first occurrence even if its sessions have started; callers filter by
// HasStarted downstream.
func NextOccurrences(from time.Time, day time.Weekday, count int) []time.Time {
	if count <= 0 {
		return nil
	}

	cur := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	offset := (int(day) - int(cur.Weekday()) + 7) % 7
	cur = cur.AddDate(0, 0, offset)

	out := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, cur)
		cur = cur.AddDate(0, 0, 7)
	}
	return out
}
