package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobhunter/internal/ai"
	"jobhunter/internal/knowledge"
	"jobhunter/internal/repository"
)

const matchBatchLimit = 10

type MatchUsecase interface {
	ScoreJobs(ctx context.Context, jobIDs []uuid.UUID) (int, error)
}

type matchScorer interface {
	ScoreMatch(ctx context.Context, jobDescription string, kb *knowledge.Base) (ai.MatchResult, error)
}

type Match struct {
	jobs      repository.JobRepository
	knowledge repository.KnowledgeRepository
	scorer    matchScorer
	notifier  Notifier
	logger    *zap.Logger
}

func NewMatchUsecase(jobs repository.JobRepository, kb repository.KnowledgeRepository, scorer matchScorer, notifier Notifier, logger *zap.Logger) *Match {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Match{jobs: jobs, knowledge: kb, scorer: scorer, notifier: notifier, logger: logger}
}

// ScoreJobs scores the given jobs against the knowledge base, or the oldest
// unscored batch when no ids are passed. A job that fails to score is logged
// and skipped; one bad posting never aborts the batch.
func (u *Match) ScoreJobs(ctx context.Context, jobIDs []uuid.UUID) (int, error) {
	kb, err := u.knowledge.LoadBase(ctx)
	if err != nil {
		return 0, err
	}
	if kb.Len() == 0 {
		return 0, ErrEmptyKnowledgeBase
	}

	var batch []repository.Job
	if len(jobIDs) > 0 {
		batch, err = u.jobs.ListByIDs(ctx, jobIDs)
	} else {
		batch, err = u.jobs.ListUnscored(ctx, matchBatchLimit)
	}
	if err != nil {
		return 0, err
	}

	scored := 0
	for _, job := range batch {
		description := job.Description
		if description == "" {
			description = job.Title + " at " + job.Company
		}

		result, err := u.scorer.ScoreMatch(ctx, description, kb)
		if err != nil {
			u.logger.Warn("job scoring failed",
				zap.String("job_id", job.ID.String()),
				zap.String("title", job.Title),
				zap.Error(err))
			continue
		}

		if err := u.jobs.UpdateMatch(ctx, job.ID, result.Score, result.Reasoning); err != nil {
			u.logger.Error("match persist failed",
				zap.String("job_id", job.ID.String()), zap.Error(err))
			continue
		}

		u.logger.Info("job scored",
			zap.String("title", job.Title),
			zap.Int("score", result.Score),
			zap.String("recommendation", result.Recommendation))
		scored++
	}

	if scored > 0 {
		u.notifier.JobsScored(scored)
	}
	return scored, nil
}
