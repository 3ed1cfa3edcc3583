package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrEmptySchedule = errors.New("at least one weekday and one time slot are required")

// NextOccurrence returns the next future occurrence of the given weekday and
// clock time, seconds zeroed. A slot landing exactly on now counts as passed
// and is pushed a full week out.
func NextOccurrence(now time.Time, day time.Weekday, hour, minute int) time.Time {
	delta := (int(day) - int(now.Weekday()) + 7) % 7
	candidate := time.Date(now.Year(), now.Month(), now.Day()+delta, hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

// ExpandSchedule builds the (weekday x time-of-day) cross product of upload
// slots. Duplicate pairs are kept; the caller may knowingly schedule the same
// slot twice.
func ExpandSchedule(now time.Time, days []int, times []string) ([]time.Time, error) {
	if len(days) == 0 || len(times) == 0 {
		return nil, ErrEmptySchedule
	}
	type clock struct {
		hour   int
		minute int
	}
	clocks := make([]clock, 0, len(times))
	for _, t := range times {
		hour, minute, err := parseClock(t)
		if err != nil {
			return nil, err
		}
		clocks = append(clocks, clock{hour: hour, minute: minute})
	}
	slots := make([]time.Time, 0, len(days)*len(times))
	for _, day := range days {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid weekday %d: must be 0 (Sunday) to 6 (Saturday)", day)
		}
		for _, c := range clocks {
			slots = append(slots, NextOccurrence(now, time.Weekday(day), c.hour, c.minute))
		}
	}
	return slots, nil
}

func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
