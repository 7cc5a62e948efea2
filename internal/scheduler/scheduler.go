// File: internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/robfig/cron/v3"
)

// 測試可替換
var (
	closeExpiredJobListings = store.CloseExpiredJobListings
	timeNow                 = time.Now
)

// Scheduler 定期把過期的職缺關閉
type Scheduler struct {
	db     database.Querier
	cron   *cron.Cron
	sched  string
	logger *slog.Logger
}

func New(db database.Querier, schedule string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		sched:  schedule,
		logger: logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.sched, s.closeExpiredJobs); err != nil {
		return fmt.Errorf("schedule job expiry %q: %w", s.sched, err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "job_expiry", s.sched)
	return nil
}

// Stop 等待執行中的工作結束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) closeExpiredJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := closeExpiredJobListings(ctx, s.db, timeNow())
	if err != nil {
		s.logger.Error("failed to close expired job listings", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("closed expired job listings", "count", n)
	}
}
