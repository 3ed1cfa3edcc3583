package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday 10:00 local time.
func tuesdayMorning() time.Time {
	return time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	t.Run("next weekday in same week", func(t *testing.T) {
		now := tuesdayMorning()
		got := NextOccurrence(now, time.Friday, 9, 30)
		want := time.Date(2025, time.June, 6, 9, 30, 0, 0, time.UTC)
		assert.Equal(t, want, got)
	})

	t.Run("target weekday already passed rolls into next week", func(t *testing.T) {
		// Tuesday 10:00 asking for Monday 09:00 -> next Monday, 6 days later
		now := tuesdayMorning()
		got := NextOccurrence(now, time.Monday, 9, 0)
		want := time.Date(2025, time.June, 9, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, want, got)
		// six calendar days later, not a six-times-24h duration
		assert.Equal(t, time.Monday, got.Weekday())
		assert.Equal(t, 6, got.YearDay()-now.YearDay())
	})

	t.Run("same day later time stays today", func(t *testing.T) {
		// Monday 08:00 asking for Monday 09:00 -> today 09:00
		now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
		got := NextOccurrence(now, time.Monday, 9, 0)
		want := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, want, got)
	})

	t.Run("same day earlier time pushed exactly seven days", func(t *testing.T) {
		now := tuesdayMorning()
		got := NextOccurrence(now, time.Tuesday, 9, 0)
		sameWeek := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, sameWeek.AddDate(0, 0, 7), got)
	})

	t.Run("slot equal to now counts as passed", func(t *testing.T) {
		now := time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
		got := NextOccurrence(now, time.Tuesday, 10, 0)
		assert.Equal(t, now.AddDate(0, 0, 7), got)
	})
}

func TestExpandSchedule(t *testing.T) {
	now := tuesdayMorning()

	t.Run("produces days times cross product strictly in the future", func(t *testing.T) {
		days := []int{0, 1, 3}
		times := []string{"09:00", "18:30"}
		slots, err := ExpandSchedule(now, days, times)
		require.NoError(t, err)
		require.Len(t, slots, len(days)*len(times))
		for _, slot := range slots {
			assert.True(t, slot.After(now), "slot %s is not in the future", slot)
			assert.Zero(t, slot.Second())
		}
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		slots, err := ExpandSchedule(now, []int{1, 1}, []string{"09:00"})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, slots[0], slots[1])
	})

	t.Run("empty days rejected", func(t *testing.T) {
		_, err := ExpandSchedule(now, nil, []string{"09:00"})
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})

	t.Run("empty times rejected", func(t *testing.T) {
		_, err := ExpandSchedule(now, []int{1}, nil)
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})

	t.Run("invalid weekday rejected", func(t *testing.T) {
		_, err := ExpandSchedule(now, []int{7}, []string{"09:00"})
		assert.Error(t, err)
	})

	t.Run("invalid clock rejected", func(t *testing.T) {
		for _, bad := range []string{"9am", "24:00", "09:60", "0900", ""} {
			_, err := ExpandSchedule(now, []int{1}, []string{bad})
			assert.Error(t, err, "expected %q to be rejected", bad)
		}
	})
}
