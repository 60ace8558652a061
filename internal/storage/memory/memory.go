package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
)

// Store is an in-memory storage.Store used by tests and dry runs.
type Store struct {
	mu        sync.RWMutex
	active    map[string]habit.Habit
	completed map[string]habit.Habit
	seq       int
}

func New() *Store {
	return &Store{
		active:    map[string]habit.Habit{},
		completed: map[string]habit.Habit{},
	}
}

func (m *Store) PutHabit(h habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active[h.Key()] = clone(h)

	return nil
}

func (m *Store) GetHabit(name string) (habit.Habit, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.active[habit.NameKey(name)]
	return clone(h), ok, nil
}

func (m *Store) ListHabits() ([]habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return list(m.active), nil
}

func (m *Store) DeleteHabit(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := habit.NameKey(name)
	_, ok := m.active[key]
	delete(m.active, key)
	return ok, nil
}

func (m *Store) CompleteHabit(h habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.active, h.Key())
	key := h.ID
	if key == "" {
		m.seq++
		key = fmt.Sprintf("%s#%d", h.Key(), m.seq)
	}
	m.completed[key] = clone(h)
	return nil
}

func (m *Store) ListCompleted() ([]habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return list(m.completed), nil
}

func (m *Store) Close() error {
	return nil
}

func list(data map[string]habit.Habit) []habit.Habit {
	out := []habit.Habit{}
	for _, h := range data {
		out = append(out, clone(h))
	}
	storage.SortByCreation(out)
	return out
}

func clone(h habit.Habit) habit.Habit {
	h.CheckIns = slices.Clone(h.CheckIns)
	return h
}

var _ storage.Store = (*Store)(nil)
