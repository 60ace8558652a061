package server

import (
	"github.com/brk3/habittracker/pkg/habit"
)

type HabitListResponse struct {
	Habits []string `json:"habits"`
}

type HabitRecordsResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type CreateHabitRequest struct {
	Name        string `json:"name"`
	Periodicity string `json:"periodicity"`
	Goal        int    `json:"goal"`
	Description string `json:"description"`
}

type CheckInRequest struct {
	Completed bool `json:"completed"`
}

type CheckInResponse struct {
	Habit         habit.Habit `json:"habit"`
	GoalCompleted bool        `json:"goal_completed"`
	CurrentStreak int         `json:"current_streak"`
}

type HabitStreakResponse struct {
	HabitID string `json:"habit_id"`
	Streak  int    `json:"streak"`
}

type LongestStreakResponse struct {
	LongestStreak int      `json:"longest_streak"`
	Habits        []string `json:"habits"`
}

type ProgressResponse struct {
	Summaries []habit.HabitSummary `json:"summaries"`
}
