package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brk3/habittracker/internal/analytics"
	"github.com/brk3/habittracker/internal/logger"
	"github.com/brk3/habittracker/internal/tracker"
	"github.com/brk3/habittracker/pkg/habit"
	"github.com/brk3/habittracker/pkg/versioninfo"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// loadHabits returns the active collection, writing a 500 on failure.
func (s *Server) loadHabits(w http.ResponseWriter) ([]habit.Habit, bool) {
	habits, err := s.store.ListHabits()
	if err != nil {
		logger.Error("Failed to list habits", "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return nil, false
	}
	UpdateActiveHabits(len(habits))
	return habits, true
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
	}
}

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	habits, ok := s.loadHabits(w)
	if !ok {
		return
	}

	names := analytics.AllHabitNames(habits)
	if raw := r.URL.Query().Get("periodicity"); raw != "" {
		p, err := habit.ParsePeriodicity(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		names = analytics.HabitsByPeriodicity(habits, p)
	}
	logger.Debug("Listed habits", "count", len(names))
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: names}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
	}
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid JSON in create habit request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, err := s.tracker.Create(req.Name, req.Periodicity, req.Goal, req.Description)
	switch {
	case errors.Is(err, tracker.ErrHabitExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, habit.ErrInvalidHabit), errors.Is(err, habit.ErrInvalidPeriodicity):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("Failed to create habit", "habit_name", req.Name, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize create habit response", "habit_name", h.Name, "error", err)
	}
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	h, found, err := s.store.GetHabit(habitID)
	if err != nil {
		logger.Error("Failed to get habit", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}

	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize get habit response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	logger.Info("Deleting habit", "habit_id", habitID)

	err := s.tracker.Delete(habitID)
	if errors.Is(err, analytics.ErrHabitNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to delete habit", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkIn(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	// an empty body means a plain, not completed, check-in
	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid JSON in check-in request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	res, err := s.tracker.CheckIn(habitID, req.Completed)
	switch {
	case errors.Is(err, analytics.ErrHabitNotFound):
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	case errors.Is(err, tracker.ErrAlreadyCheckedIn):
		RecordCheckIn("unknown", "duplicate")
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		logger.Error("Failed to check in", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"check-in failed"}`, http.StatusInternalServerError)
		return
	}

	outcome := "recorded"
	if res.Completed {
		outcome = "goal_completed"
	}
	RecordCheckIn(string(res.Habit.Periodicity), outcome)

	streak, err := analytics.StreakFor(res.Habit, s.tracker.Now())
	if err != nil {
		logger.Error("Failed to compute streak", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"error computing streaks"}`, http.StatusInternalServerError)
		return
	}

	resp := CheckInResponse{Habit: res.Habit, GoalCompleted: res.Completed, CurrentStreak: streak}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		logger.Error("Failed to serialize check-in response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) getHabitStreak(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	habits, ok := s.loadHabits(w)
	if !ok {
		return
	}

	streak, err := analytics.StreakForHabit(habits, habitID, s.tracker.Now())
	if errors.Is(err, analytics.ErrHabitNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to compute streak", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"error computing streaks"}`, http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, HabitStreakResponse{HabitID: habitID, Streak: streak}); err != nil {
		logger.Error("Failed to serialize streak response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) getLongestStreak(w http.ResponseWriter, _ *http.Request) {
	habits, ok := s.loadHabits(w)
	if !ok {
		return
	}
	now := s.tracker.Now()

	longest, err := analytics.LongestStreak(habits, now)
	if err != nil {
		s.analyticsError(w, "longest streak", err)
		return
	}
	names, err := analytics.HabitsWithLongestStreak(habits, now)
	if err != nil {
		s.analyticsError(w, "longest streak holders", err)
		return
	}
	longestStreak.Set(float64(longest))

	if err := writeJSON(w, http.StatusOK, LongestStreakResponse{LongestStreak: longest, Habits: names}); err != nil {
		logger.Error("Failed to serialize longest streak response", "error", err)
	}
}

func (s *Server) getBrokenStreaks(w http.ResponseWriter, _ *http.Request) {
	s.writeNames(w, "broken streaks", analytics.BrokenStreakHabits)
}

func (s *Server) getAtRiskStreaks(w http.ResponseWriter, _ *http.Request) {
	s.writeNames(w, "at-risk streaks", analytics.HabitsAtRisk)
}

func (s *Server) writeNames(w http.ResponseWriter, what string, query func([]habit.Habit, time.Time) ([]string, error)) {
	habits, ok := s.loadHabits(w)
	if !ok {
		return
	}
	names, err := query(habits, s.tracker.Now())
	if err != nil {
		s.analyticsError(w, what, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: names}); err != nil {
		logger.Error("Failed to serialize response", "query", what, "error", err)
	}
}

func (s *Server) getProgress(w http.ResponseWriter, _ *http.Request) {
	habits, ok := s.loadHabits(w)
	if !ok {
		return
	}
	summaries, err := analytics.Summarize(habits, s.tracker.Now())
	if err != nil {
		s.analyticsError(w, "progress", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, ProgressResponse{Summaries: summaries}); err != nil {
		logger.Error("Failed to serialize progress response", "error", err)
	}
}

func (s *Server) listCompleted(w http.ResponseWriter, _ *http.Request) {
	habits, err := s.store.ListCompleted()
	if err != nil {
		logger.Error("Failed to list completed habits", "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, HabitRecordsResponse{Habits: habits}); err != nil {
		logger.Error("Failed to serialize completed habits response", "error", err)
	}
}

func (s *Server) analyticsError(w http.ResponseWriter, what string, err error) {
	logger.Error("Failed to compute "+what, "error", err)
	http.Error(w, fmt.Sprintf(`{"error":"error computing %s"}`, what), http.StatusInternalServerError)
}
