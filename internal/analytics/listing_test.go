package analytics

import (
	"slices"
	"testing"

	"github.com/brk3/habittracker/pkg/habit"
)

func TestAllHabitNames(t *testing.T) {
	habits := scenario()
	got := AllHabitNames(habits)
	if !slices.Equal(got, []string{"Daily Exercise", "Weekly Planning"}) {
		t.Fatalf("got %v", got)
	}
	if got := AllHabitNames(nil); len(got) != 0 {
		t.Fatalf("got %v want empty", got)
	}
}

func TestHabitsByPeriodicity(t *testing.T) {
	habits := scenario()
	if got := HabitsByPeriodicity(habits, habit.Weekly); !slices.Equal(got, []string{"Weekly Planning"}) {
		t.Fatalf("weekly: got %v", got)
	}
	if got := HabitsByPeriodicity(habits, habit.Daily); !slices.Equal(got, []string{"Daily Exercise"}) {
		t.Fatalf("daily: got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	habits := scenario()
	habits[0].Goal = 30
	habits[0].Progress = 9

	got, err := Summarize(habits, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries want 2", len(got))
	}
	if got[0].CurrentStreak != 9 || got[0].TotalCheckIns != 9 || got[0].LastCheckIn != "2024-06-15" {
		t.Errorf("unexpected daily summary: %+v", got[0])
	}
	if got[1].CurrentStreak != 0 || got[1].LastCheckIn != "2024-06-05" {
		t.Errorf("unexpected weekly summary: %+v", got[1])
	}
	if want := "Habit: Daily Exercise, Goal: 30, Description: , Progress: 9/30"; got[0].String() != want {
		t.Errorf("got %q want %q", got[0].String(), want)
	}
}
