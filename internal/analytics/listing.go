package analytics

import (
	"time"

	"github.com/brk3/habittracker/pkg/habit"
)

func AllHabitNames(habits []habit.Habit) []string {
	out := make([]string, 0, len(habits))
	for _, h := range habits {
		out = append(out, h.Name)
	}
	return out
}

func HabitsByPeriodicity(habits []habit.Habit, p habit.Periodicity) []string {
	out := []string{}
	for _, h := range habits {
		if h.Periodicity == p {
			out = append(out, h.Name)
		}
	}
	return out
}

// Summarize reports goal progress and the current streak for each habit.
func Summarize(habits []habit.Habit, now time.Time) ([]habit.HabitSummary, error) {
	out := make([]habit.HabitSummary, 0, len(habits))
	for _, h := range habits {
		streak, err := StreakFor(h, now)
		if err != nil {
			return nil, err
		}
		s := habit.HabitSummary{
			Name:          h.Name,
			Periodicity:   h.Periodicity,
			Description:   h.Description,
			Goal:          h.Goal,
			Progress:      h.Progress,
			CurrentStreak: streak,
			TotalCheckIns: len(h.CheckIns),
		}
		if len(h.CheckIns) > 0 {
			dates, err := checkInDates(h)
			if err != nil {
				return nil, err
			}
			s.LastCheckIn = dates[len(dates)-1].Format(habit.DateLayout)
		}
		out = append(out, s)
	}
	return out, nil
}
