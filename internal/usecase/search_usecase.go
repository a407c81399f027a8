package usecase

import (
	"context"

	"go.uber.org/zap"

	"jobhunter/internal/aggregator"
	"jobhunter/internal/jobsource"
	"jobhunter/internal/repository"
)

type SearchSummary struct {
	Found    int
	Inserted int
	Failures map[string]string
}

type SearchUsecase interface {
	RunAll(ctx context.Context) (SearchSummary, error)
}

type boardSearcher interface {
	Search(ctx context.Context, sources []string, params jobsource.SearchParams) aggregator.Result
}

type Search struct {
	configs  repository.SearchConfigRepository
	jobs     repository.JobRepository
	boards   boardSearcher
	notifier Notifier
	logger   *zap.Logger
}

func NewSearchUsecase(configs repository.SearchConfigRepository, jobs repository.JobRepository, boards boardSearcher, notifier Notifier, logger *zap.Logger) *Search {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Search{configs: configs, jobs: jobs, boards: boards, notifier: notifier, logger: logger}
}

// RunAll executes every active search config against its boards and stores
// postings not seen before. A posting already in the database counts toward
// Found but not Inserted.
func (u *Search) RunAll(ctx context.Context) (SearchSummary, error) {
	configs, err := u.configs.ListActive(ctx)
	if err != nil {
		return SearchSummary{}, err
	}
	if len(configs) == 0 {
		return SearchSummary{}, ErrNoActiveConfigs
	}

	summary := SearchSummary{Failures: map[string]string{}}

	for _, cfg := range configs {
		params := jobsource.SearchParams{
			Keywords:         cfg.Keywords,
			ExcludedKeywords: cfg.ExcludedKeywords,
			Locations:        cfg.Locations,
			RemoteOnly:       cfg.RemoteOnly,
			SalaryMin:        cfg.SalaryMin,
			SalaryCurrency:   cfg.SalaryCurrency,
		}

		u.logger.Info("running search config",
			zap.String("config", cfg.Name),
			zap.Strings("sources", cfg.JobSources))

		result := u.boards.Search(ctx, cfg.JobSources, params)
		summary.Found += len(result.Jobs)
		for source, msg := range result.Stats.Failures {
			summary.Failures[source] = msg
		}

		for _, job := range result.Jobs {
			exists, err := u.jobs.ExistsBySource(ctx, job.Source, job.SourceID)
			if err != nil {
				return SearchSummary{}, err
			}
			if exists {
				continue
			}
			if _, err := u.jobs.Insert(ctx, job); err != nil {
				u.logger.Error("job insert failed",
					zap.String("key", job.Key()), zap.Error(err))
				continue
			}
			summary.Inserted++
		}
	}

	u.logger.Info("search run finished",
		zap.Int("found", summary.Found),
		zap.Int("inserted", summary.Inserted))
	u.notifier.SearchCompleted(summary.Found, summary.Inserted)

	return summary, nil
}
