package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
)

// legacyHabit mirrors the records of the habits.json / completed_habits.json
// files written by the menu-driven tracker.
type legacyHabit struct {
	Name         string          `json:"name"`
	Periodicity  string          `json:"periodicity"`
	Goal         int             `json:"goal"`
	Progress     int             `json:"progress"`
	Description  string          `json:"description"`
	CreationDate string          `json:"creation_date"`
	TrackedData  []habit.CheckIn `json:"tracked_data"`
}

// Decode parses and validates a legacy habit file. Any invalid record fails
// the whole decode.
func Decode(r io.Reader) ([]habit.Habit, error) {
	var raw []legacyHabit
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode habits: %w", err)
	}

	out := make([]habit.Habit, 0, len(raw))
	for _, l := range raw {
		h, err := convert(l)
		if err != nil {
			return nil, fmt.Errorf("habit %q: %w", l.Name, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func convert(l legacyHabit) (habit.Habit, error) {
	if l.Name == "" {
		return habit.Habit{}, fmt.Errorf("%w: missing name", habit.ErrInvalidHabit)
	}
	p, err := habit.ParsePeriodicity(l.Periodicity)
	if err != nil {
		return habit.Habit{}, err
	}
	if l.Goal < 0 || l.Progress < 0 {
		return habit.Habit{}, fmt.Errorf("%w: negative goal or progress", habit.ErrInvalidHabit)
	}
	for _, c := range l.TrackedData {
		if _, err := habit.ParseCheckInDate(c.Date); err != nil {
			return habit.Habit{}, err
		}
	}

	var created time.Time
	if l.CreationDate != "" {
		created, err = time.ParseInLocation(habit.DateTimeLayout, l.CreationDate, time.Local)
		if err != nil {
			return habit.Habit{}, fmt.Errorf("%w: creation_date %q", habit.ErrMalformedTimestamp, l.CreationDate)
		}
	}

	checkIns := l.TrackedData
	if checkIns == nil {
		checkIns = []habit.CheckIn{}
	}
	return habit.Habit{
		ID:          uuid.NewString(),
		Name:        l.Name,
		Periodicity: p,
		Goal:        l.Goal,
		Progress:    l.Progress,
		Description: l.Description,
		CreatedAt:   created,
		CheckIns:    checkIns,
	}, nil
}

// ImportFile loads path into the store, as active habits or, when completed
// is set, directly into the completed collection. It returns the number of
// records written.
func ImportFile(st storage.Store, path string, completed bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	habits, err := Decode(f)
	if err != nil {
		return 0, err
	}

	for _, h := range habits {
		if completed {
			err = st.CompleteHabit(h)
		} else {
			err = st.PutHabit(h)
		}
		if err != nil {
			return 0, fmt.Errorf("store habit %q: %w", h.Name, err)
		}
	}
	logger.Info("Imported habits", "path", path, "count", len(habits), "completed", completed)
	return len(habits), nil
}
