package bolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/brk3/habittracker/pkg/habit"
)

func newTestStore(t *testing.T) (*Store, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return store, cleanup
}

func newHabit(t *testing.T, name, periodicity string, created time.Time) habit.Habit {
	t.Helper()
	h, err := habit.New(name, periodicity, 5, "", created)
	if err != nil {
		t.Fatalf("habit.New failed: %v", err)
	}
	return h
}

func TestOpen(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if store == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestListHabits_Empty(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}

	if len(habits) != 0 {
		t.Fatalf("expected empty list, got %d items", len(habits))
	}
}

func TestListHabits_CreationOrder(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"zumba", "guitar", "exercise"} {
		if err := store.PutHabit(newHabit(t, name, "daily", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("PutHabit failed: %v", err)
		}
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}

	expected := []string{"zumba", "guitar", "exercise"}
	if len(habits) != len(expected) {
		t.Fatalf("expected %d habits, got %d", len(expected), len(habits))
	}
	for i, h := range habits {
		if h.Name != expected[i] {
			t.Errorf("position %d: got %q want %q", i, h.Name, expected[i])
		}
	}
}

func TestGetHabit_CaseInsensitive(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	h := newHabit(t, "Guitar", "weekly", time.Now())
	h.CheckIns = append(h.CheckIns, habit.CheckIn{Date: "2024-01-01 10:00:00"})
	if err := store.PutHabit(h); err != nil {
		t.Fatalf("PutHabit failed: %v", err)
	}

	got, found, err := store.GetHabit("GUITAR")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if !found {
		t.Fatal("expected habit to be found")
	}
	if got.Name != "Guitar" || got.Periodicity != habit.Weekly || len(got.CheckIns) != 1 {
		t.Fatalf("unexpected habit: %+v", got)
	}

	_, found, err = store.GetHabit("piano")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if found {
		t.Fatal("expected piano not to be found")
	}
}

func TestDeleteHabit(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.PutHabit(newHabit(t, "guitar", "daily", time.Now())); err != nil {
		t.Fatalf("PutHabit failed: %v", err)
	}

	found, err := store.DeleteHabit("Guitar")
	if err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if !found {
		t.Fatal("expected delete to report found")
	}

	found, err = store.DeleteHabit("guitar")
	if err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if found {
		t.Fatal("expected second delete to report not found")
	}
}

func TestCompleteHabit(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	h := newHabit(t, "guitar", "daily", time.Now())
	if err := store.PutHabit(h); err != nil {
		t.Fatalf("PutHabit failed: %v", err)
	}
	h.Progress = h.Goal
	if err := store.CompleteHabit(h); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	active, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active habits, got %v", active)
	}

	completed, err := store.ListCompleted()
	if err != nil {
		t.Fatalf("ListCompleted failed: %v", err)
	}
	if len(completed) != 1 || completed[0].Progress != 5 {
		t.Fatalf("unexpected completed habits: %+v", completed)
	}
}

func TestCompleteHabit_SameNameTwice(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	for _, desc := range []string{"run A", "run B"} {
		h := newHabit(t, "Read", "daily", time.Now())
		h.Description = desc
		if err := store.PutHabit(h); err != nil {
			t.Fatalf("PutHabit failed: %v", err)
		}
		if err := store.CompleteHabit(h); err != nil {
			t.Fatalf("CompleteHabit failed: %v", err)
		}
	}
	// records without an ID still get distinct keys
	if err := store.CompleteHabit(habit.Habit{Name: "Read", Periodicity: habit.Daily}); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}
	if err := store.CompleteHabit(habit.Habit{Name: "Read", Periodicity: habit.Daily}); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	completed, err := store.ListCompleted()
	if err != nil {
		t.Fatalf("ListCompleted failed: %v", err)
	}
	if len(completed) != 4 {
		t.Fatalf("got %d completed want 4: %+v", len(completed), completed)
	}
	var descs []string
	for _, h := range completed {
		if h.Description != "" {
			descs = append(descs, h.Description)
		}
	}
	if len(descs) != 2 {
		t.Fatalf("expected both named runs kept, got %v", descs)
	}
}

func TestReopenPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.PutHabit(newHabit(t, "guitar", "daily", time.Now())); err != nil {
		t.Fatalf("PutHabit failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	_, found, err := store.GetHabit("guitar")
	if err != nil || !found {
		t.Fatalf("expected guitar after reopen, found=%v err=%v", found, err)
	}
}
