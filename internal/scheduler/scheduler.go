package scheduler

import (
	"context"
	"fmt"
	"log"

	"GoogChfTracker/internal/dashboard"
	"GoogChfTracker/internal/model"
	"GoogChfTracker/internal/server"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the background refresh tasks.
type Scheduler struct {
	Cron    *cron.Cron
	Service *dashboard.Service
	Hub     *server.Hub
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *dashboard.Service, hub *server.Hub) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Hub:     hub,
		Ctx:     ctx,
	}
}

// RegisterAll registers the calendar refresh and live quote tasks.
func (s *Scheduler) RegisterAll(calendarCron, quoteCron string) error {
	if _, err := s.Cron.AddFunc(calendarCron, s.calendarTask); err != nil {
		return fmt.Errorf("register calendar task: %w", err)
	}
	if _, err := s.Cron.AddFunc(quoteCron, s.quoteTask); err != nil {
		return fmt.Errorf("register quote task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// WarmDefault pre-fetches the default timeframe so the first page load is
// served from cache.
func (s *Scheduler) WarmDefault() {
	if _, err := s.Service.Dataset(s.Ctx, model.DefaultTimeframe); err != nil {
		log.Printf("[WARN] warm default timeframe: %v", err)
	}
}

func (s *Scheduler) calendarTask() {
	log.Println("[INFO] running calendar refresh")
	if err := s.Service.RefreshCalendar(s.Ctx); err != nil {
		log.Printf("[ERROR] calendar refresh: %v", err)
	}
}

func (s *Scheduler) quoteTask() {
	if s.Hub.ClientCount() == 0 {
		return // nobody is watching, skip the provider round-trip
	}
	quote, err := s.Service.Quote(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] quote refresh: %v", err)
		return
	}
	s.Hub.Broadcast(quote)
}
