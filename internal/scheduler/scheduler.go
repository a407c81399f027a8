// Package scheduler runs the periodic search and match cycles in the
// worker process.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobhunter/internal/config"
	"jobhunter/internal/usecase"
)

type Scheduler struct {
	cron       *cron.Cron
	search     usecase.SearchUsecase
	match      usecase.MatchUsecase
	searchSpec string
	matchSpec  string
	logger     *zap.Logger
}

func New(cfg config.WorkerConfig, search usecase.SearchUsecase, match usecase.MatchUsecase, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		search:     search,
		match:      match,
		searchSpec: cfg.SearchCronSpec,
		matchSpec:  cfg.MatchCronSpec,
		logger:     logger,
	}
}

// Start registers both jobs and starts the cron loop. A search cycle runs
// immediately so a fresh deployment has data before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.searchSpec, func() { s.runSearch(ctx) }); err != nil {
		return fmt.Errorf("register search job: %w", err)
	}
	if _, err := s.cron.AddFunc(s.matchSpec, func() { s.runMatch(ctx) }); err != nil {
		return fmt.Errorf("register match job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.String("search_spec", s.searchSpec),
		zap.String("match_spec", s.matchSpec))

	go s.runSearch(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runSearch(ctx context.Context) {
	summary, err := s.search.RunAll(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNoActiveConfigs) {
			s.logger.Info("no active search configs, skipping cycle")
			return
		}
		s.logger.Error("search cycle failed", zap.Error(err))
		return
	}

	s.logger.Info("search cycle complete",
		zap.Int("found", summary.Found),
		zap.Int("inserted", summary.Inserted),
		zap.Int("failed_boards", len(summary.Failures)))
}

func (s *Scheduler) runMatch(ctx context.Context) {
	scored, err := s.match.ScoreJobs(ctx, nil)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyKnowledgeBase) {
			s.logger.Info("knowledge base empty, skipping match cycle")
			return
		}
		s.logger.Error("match cycle failed", zap.Error(err))
		return
	}

	if scored > 0 {
		s.logger.Info("match cycle complete", zap.Int("scored", scored))
	}
}
