package analytics

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/brk3/habittracker/pkg/habit"
)

var ErrHabitNotFound = errors.New("habit not found")

// AllowedGap is the number of days that must separate two check-ins for them
// to count as consecutive.
func AllowedGap(p habit.Periodicity) (int, error) {
	switch p {
	case habit.Daily:
		return 1, nil
	case habit.Weekly:
		return 7, nil
	}
	return 0, fmt.Errorf("%w: %q", habit.ErrInvalidPeriodicity, p)
}

// checkInDates parses every check-in of h and returns the dates ascending.
func checkInDates(h habit.Habit) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(h.CheckIns))
	for _, c := range h.CheckIns {
		d, err := habit.ParseCheckInDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", h.Name, err)
		}
		dates = append(dates, d)
	}
	slices.SortStableFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates, nil
}

// StreakFor returns the active streak of h as of now. The run ending at the
// most recent check-in is only reported while that check-in is no older than
// the allowed gap.
func StreakFor(h habit.Habit, now time.Time) (int, error) {
	gap, err := AllowedGap(h.Periodicity)
	if err != nil {
		return 0, fmt.Errorf("habit %q: %w", h.Name, err)
	}
	if len(h.CheckIns) == 0 {
		return 0, nil
	}
	dates, err := checkInDates(h)
	if err != nil {
		return 0, err
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if habit.DaysBetween(dates[i-1], dates[i]) == gap {
			streak++
		} else {
			streak = 1
		}
	}

	if habit.DaysBetween(dates[len(dates)-1], now) > gap {
		return 0, nil
	}
	return streak, nil
}

// StreakForHabit looks up name case-insensitively and returns its active
// streak. A missing habit yields ErrHabitNotFound rather than 0.
func StreakForHabit(habits []habit.Habit, name string, now time.Time) (int, error) {
	key := habit.NameKey(name)
	for _, h := range habits {
		if h.Key() == key {
			return StreakFor(h, now)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrHabitNotFound, name)
}

func LongestStreak(habits []habit.Habit, now time.Time) (int, error) {
	longest := 0
	for _, h := range habits {
		s, err := StreakFor(h, now)
		if err != nil {
			return 0, err
		}
		longest = max(longest, s)
	}
	return longest, nil
}

// HabitsWithLongestStreak returns every habit sharing the longest active
// streak. Broken or empty habits never qualify, so a maximum of 0 yields an
// empty list.
func HabitsWithLongestStreak(habits []habit.Habit, now time.Time) ([]string, error) {
	streaks := make([]int, len(habits))
	longest := 0
	for i, h := range habits {
		s, err := StreakFor(h, now)
		if err != nil {
			return nil, err
		}
		streaks[i] = s
		longest = max(longest, s)
	}
	if longest == 0 {
		return []string{}, nil
	}

	out := []string{}
	for i, h := range habits {
		if streaks[i] == longest {
			out = append(out, h.Name)
		}
	}
	return out, nil
}

// daysSinceLast returns the age in days of the most recent check-in, and
// false when h has none.
func daysSinceLast(h habit.Habit, now time.Time) (int, bool, error) {
	if len(h.CheckIns) == 0 {
		return 0, false, nil
	}
	dates, err := checkInDates(h)
	if err != nil {
		return 0, false, err
	}
	return habit.DaysBetween(dates[len(dates)-1], now), true, nil
}

// BrokenStreakHabits returns, in input order, the habits whose last check-in
// is older than their allowed gap. Habits never checked in are neither active
// nor broken.
func BrokenStreakHabits(habits []habit.Habit, now time.Time) ([]string, error) {
	out := []string{}
	for _, h := range habits {
		gap, err := AllowedGap(h.Periodicity)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", h.Name, err)
		}
		age, ok, err := daysSinceLast(h, now)
		if err != nil {
			return nil, err
		}
		if ok && age > gap {
			out = append(out, h.Name)
		}
	}
	return out, nil
}

// HabitsAtRisk returns the habits with a live streak that will break
// tomorrow unless checked in today.
func HabitsAtRisk(habits []habit.Habit, now time.Time) ([]string, error) {
	out := []string{}
	for _, h := range habits {
		gap, err := AllowedGap(h.Periodicity)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", h.Name, err)
		}
		s, err := StreakFor(h, now)
		if err != nil {
			return nil, err
		}
		if s == 0 {
			continue
		}
		age, _, err := daysSinceLast(h, now)
		if err != nil {
			return nil, err
		}
		if age == gap {
			out = append(out, h.Name)
		}
	}
	return out, nil
}
