package storage

import (
	"slices"
	"strings"

	"github.com/brk3/habittracker/pkg/habit"
)

// Store persists active and completed habits keyed by case-insensitive name.
type Store interface {
	PutHabit(h habit.Habit) error
	GetHabit(name string) (habit.Habit, bool, error)
	ListHabits() ([]habit.Habit, error)
	DeleteHabit(name string) (bool, error)
	CompleteHabit(h habit.Habit) error
	ListCompleted() ([]habit.Habit, error)
	Close() error
}

// SortByCreation orders habits oldest first, breaking ties by name.
func SortByCreation(habits []habit.Habit) {
	slices.SortStableFunc(habits, func(a, b habit.Habit) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Key(), b.Key())
	})
}
