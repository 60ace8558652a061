package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
)

var (
	ErrHabitExists      = errors.New("habit already exists")
	ErrAlreadyCheckedIn = errors.New("already checked in for this period")
)

// Tracker owns every mutation of habit records: creation, check-ins, goal
// completion and deletion.
type Tracker struct {
	store storage.Store
	now   func() time.Time
	mu    sync.Mutex
}

func New(store storage.Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Create(name, periodicity string, goal int, description string) (habit.Habit, error) {
	h, err := habit.New(name, periodicity, goal, description, t.now())
	if err != nil {
		return habit.Habit{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, found, err := t.store.GetHabit(h.Name)
	if err != nil {
		return habit.Habit{}, err
	}
	if found {
		return habit.Habit{}, fmt.Errorf("%w: %q", ErrHabitExists, h.Name)
	}
	if err := t.store.PutHabit(h); err != nil {
		return habit.Habit{}, err
	}
	logger.Info("Created habit", "habit_name", h.Name, "periodicity", h.Periodicity, "goal", h.Goal)
	return h, nil
}

type CheckInResult struct {
	Habit     habit.Habit `json:"habit"`
	Completed bool        `json:"completed"`
}

// CheckIn records a check-in stamped with the current time. When completed
// is set the habit's progress advances, and reaching the goal moves the habit
// to the completed collection.
func (t *Tracker) CheckIn(name string, completed bool) (CheckInResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, found, err := t.store.GetHabit(name)
	if err != nil {
		return CheckInResult{}, err
	}
	if !found {
		return CheckInResult{}, fmt.Errorf("%w: %q", analytics.ErrHabitNotFound, name)
	}

	now := t.now()
	dup, err := checkedInThisPeriod(h, now)
	if err != nil {
		return CheckInResult{}, err
	}
	if dup {
		return CheckInResult{}, fmt.Errorf("%w: %q", ErrAlreadyCheckedIn, h.Name)
	}

	h.CheckIns = append(h.CheckIns, habit.CheckIn{Date: habit.FormatCheckIn(now)})
	if completed {
		h.Progress++
	}

	if completed && h.IsCompleted() {
		if err := t.store.CompleteHabit(h); err != nil {
			return CheckInResult{}, err
		}
		logger.Info("Habit goal reached", "habit_name", h.Name, "progress", h.Progress, "goal", h.Goal)
		return CheckInResult{Habit: h, Completed: true}, nil
	}

	if err := t.store.PutHabit(h); err != nil {
		return CheckInResult{}, err
	}
	logger.Info("Checked in", "habit_name", h.Name, "progress", h.Progress, "goal", h.Goal)
	return CheckInResult{Habit: h}, nil
}

func (t *Tracker) Delete(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	found, err := t.store.DeleteHabit(name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %q", analytics.ErrHabitNotFound, name)
	}
	logger.Info("Deleted habit", "habit_name", name)
	return nil
}

// checkedInThisPeriod reports whether h already has a check-in on now's date
// (daily) or in now's ISO week (weekly).
func checkedInThisPeriod(h habit.Habit, now time.Time) (bool, error) {
	if _, err := analytics.AllowedGap(h.Periodicity); err != nil {
		return false, fmt.Errorf("habit %q: %w", h.Name, err)
	}
	today := habit.DateOf(now)
	year, week := today.ISOWeek()
	for _, c := range h.CheckIns {
		d, err := habit.ParseCheckInDate(c.Date)
		if err != nil {
			return false, fmt.Errorf("habit %q: %w", h.Name, err)
		}
		switch h.Periodicity {
		case habit.Daily:
			if d.Equal(today) {
				return true, nil
			}
		case habit.Weekly:
			if y, w := d.ISOWeek(); y == year && w == week {
				return true, nil
			}
		}
	}
	return false, nil
}
