package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/pkg/habit"
	"go.etcd.io/bbolt"
)

const (
	activeBucket    = "habits"
	completedBucket = "completed"
)

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{activeBucket, completedBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) PutHabit(h habit.Habit) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return putJSON(tx.Bucket([]byte(activeBucket)), h)
	})
}

func (s *Store) GetHabit(name string) (habit.Habit, bool, error) {
	var (
		h     habit.Habit
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(activeBucket)).Get([]byte(habit.NameKey(name)))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &h)
	})
	return h, found, err
}

func (s *Store) ListHabits() ([]habit.Habit, error) {
	return s.list(activeBucket)
}

func (s *Store) ListCompleted() ([]habit.Habit, error) {
	return s.list(completedBucket)
}

func (s *Store) DeleteHabit(name string) (bool, error) {
	var found bool
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(activeBucket))
		key := []byte(habit.NameKey(name))
		if bucket.Get(key) == nil {
			return nil
		}
		found = true
		return bucket.Delete(key)
	})
	return found, err
}

// CompleteHabit moves h from the active to the completed bucket in a single
// transaction. Completed records are keyed by ID so a name can be completed
// more than once.
func (s *Store) CompleteHabit(h habit.Habit) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(activeBucket)).Delete([]byte(h.Key())); err != nil {
			return err
		}
		bucket := tx.Bucket([]byte(completedBucket))
		key := h.ID
		if key == "" {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			key = fmt.Sprintf("%s#%d", h.Key(), seq)
		}
		val, err := json.Marshal(h)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), val)
	})
}

func (s *Store) list(bucketName string) ([]habit.Habit, error) {
	out := []habit.Habit{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, v []byte) error {
			var h habit.Habit
			if err := json.Unmarshal(v, &h); err != nil {
				return fmt.Errorf("decode %s/%s: %w", bucketName, k, err)
			}
			out = append(out, h)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	storage.SortByCreation(out)
	return out, nil
}

func putJSON(bucket *bbolt.Bucket, h habit.Habit) error {
	val, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return bucket.Put([]byte(h.Key()), val)
}

var _ storage.Store = (*Store)(nil)
