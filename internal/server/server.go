package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brk3/habittracker/internal/config"
	"github.com/brk3/habittracker/internal/storage"
	"github.com/brk3/habittracker/internal/tracker"
)

type Server struct {
	cfg     *config.Config
	store   storage.Store
	tracker *tracker.Tracker
}

// New wires a server around store. now supplies the reference time for every
// streak query and check-in; nil means the wall clock.
func New(cfg *config.Config, store storage.Store, now func() time.Time) *Server {
	return &Server{
		cfg:     cfg,
		store:   store,
		tracker: tracker.New(store, now),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.createHabit)
			r.Get("/", s.listHabits)
			r.Get("/{habit_id}", s.getHabit)
			r.Delete("/{habit_id}", s.deleteHabit)
			r.Post("/{habit_id}/checkins", s.checkIn)
			r.Get("/{habit_id}/streak", s.getHabitStreak)
		})
		r.Route("/streaks", func(r chi.Router) {
			r.Get("/longest", s.getLongestStreak)
			r.Get("/broken", s.getBrokenStreaks)
			r.Get("/at-risk", s.getAtRiskStreaks)
		})
		r.Get("/progress", s.getProgress)
		r.Get("/completed", s.listCompleted)
	})
	return r
}

func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
