package cron

import (
	"Revu/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine *cron.Cron
	jobs   []job.Job
}

func NewCronManager(jobs []job.Job) *Manager {
	return &Manager{
		engine: cron.New(cron.WithSeconds()),
		jobs:   jobs,
	}
}

// RegisterJobs schedules every job on the daily tick.
func (s *Manager) RegisterJobs() error {
	for _, j := range s.jobs {
		if _, err := s.engine.AddJob("@daily", j); err != nil {
			return err
		}
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
