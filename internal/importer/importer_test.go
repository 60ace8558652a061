package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brk3/habittracker/internal/storage/memory"
	"github.com/brk3/habittracker/pkg/habit"
)

const legacyFile = `[
    {
        "name": "Daily Exercise",
        "periodicity": "daily",
        "goal": 30,
        "progress": 4,
        "description": "30 minutes",
        "creation_date": "2024-01-01 09:00:00",
        "tracked_data": [
            {"date": "2024-01-02 07:10:00"},
            {"completion_time": "2024-01-03 07:00:00", "date": "2024-01-03"}
        ]
    },
    {
        "name": "Weekly Planning",
        "periodicity": "weekly",
        "goal": 4,
        "creation_date": "2024-01-01 10:00:00"
    }
]`

func TestDecode(t *testing.T) {
	habits, err := Decode(strings.NewReader(legacyFile))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("got %d habits want 2", len(habits))
	}
	if habits[0].Progress != 4 || len(habits[0].CheckIns) != 2 {
		t.Errorf("unexpected first habit: %+v", habits[0])
	}
	if habits[1].Periodicity != habit.Weekly || habits[1].CheckIns == nil {
		t.Errorf("unexpected second habit: %+v", habits[1])
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad periodicity", `[{"name":"a","periodicity":"monthly"}]`, habit.ErrInvalidPeriodicity},
		{"bad check-in", `[{"name":"a","periodicity":"daily","tracked_data":[{"date":"02/01/2024"}]}]`, habit.ErrMalformedTimestamp},
		{"missing name", `[{"periodicity":"daily"}]`, habit.ErrInvalidHabit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.in)); !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	if err := os.WriteFile(path, []byte(legacyFile), 0644); err != nil {
		t.Fatal(err)
	}

	st := memory.New()
	n, err := ImportFile(st, path, false)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d want 2", n)
	}

	habits, _ := st.ListHabits()
	if len(habits) != 2 || habits[0].Name != "Daily Exercise" {
		t.Fatalf("unexpected stored habits: %+v", habits)
	}

	n, err = ImportFile(st, path, true)
	if err != nil || n != 2 {
		t.Fatalf("completed import: n=%d err=%v", n, err)
	}
	completed, _ := st.ListCompleted()
	if len(completed) != 2 {
		t.Fatalf("got %d completed want 2", len(completed))
	}
}

func TestImportFile_CompletedKeepsDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "completed_habits.json")
	data := `[
		{"name":"Read","periodicity":"daily","goal":1,"progress":1,"description":"run A"},
		{"name":"read","periodicity":"daily","goal":1,"progress":1,"description":"run B"}
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	st := memory.New()
	if _, err := ImportFile(st, path, true); err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	completed, _ := st.ListCompleted()
	if len(completed) != 2 {
		t.Fatalf("got %d completed want 2: %+v", len(completed), completed)
	}
}
