package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriodicity = errors.New("invalid periodicity")
	ErrMalformedTimestamp = errors.New("malformed check-in timestamp")
	ErrInvalidHabit       = errors.New("invalid habit")
)

const MaxNameLength = 64

type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// ParsePeriodicity accepts "daily" or "weekly" in any case.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch p := Periodicity(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriodicity, s)
}

type CheckIn struct {
	Date           string `json:"date"`
	CompletionTime string `json:"completion_time,omitempty"`
}

type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Periodicity Periodicity `json:"periodicity"`
	Goal        int         `json:"goal"`
	Progress    int         `json:"progress"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	CheckIns    []CheckIn   `json:"check_ins"`
}

// New builds a validated habit with zero progress and no check-ins.
func New(name, periodicity string, goal int, description string, now time.Time) (Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return Habit{}, fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidHabit, MaxNameLength)
	}
	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return Habit{}, err
	}
	if goal < 0 {
		return Habit{}, fmt.Errorf("%w: goal must not be negative", ErrInvalidHabit)
	}
	return Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Periodicity: p,
		Goal:        goal,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		CheckIns:    []CheckIn{},
	}, nil
}

func (h Habit) IsCompleted() bool {
	return h.Progress >= h.Goal
}

// Key is the case-insensitive identity used for lookups and storage.
func (h Habit) Key() string {
	return NameKey(h.Name)
}

func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type HabitSummary struct {
	Name          string      `json:"name"`
	Periodicity   Periodicity `json:"periodicity"`
	Description   string      `json:"description"`
	Goal          int         `json:"goal"`
	Progress      int         `json:"progress"`
	CurrentStreak int         `json:"current_streak"`
	TotalCheckIns int         `json:"total_check_ins"`
	LastCheckIn   string      `json:"last_check_in,omitempty"`
}

func (s HabitSummary) String() string {
	return fmt.Sprintf("Habit: %s, Goal: %d, Description: %s, Progress: %d/%d",
		s.Name, s.Goal, s.Description, s.Progress, s.Goal)
}
