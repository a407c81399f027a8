package aggregator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobhunter/internal/jobsource"
)

const adapterTimeout = 15 * time.Second

// Result is one aggregated search across a set of boards.
type Result struct {
	Jobs  []jobsource.NormalizedJob
	Stats Stats
}

// Stats records per-board outcomes for one aggregated search.
type Stats struct {
	SourcesQueried int
	SourcesFailed  int
	Duplicates     int
	Failures       map[string]string
}

// Resolver maps requested source names to adapters. *jobsource.Registry is
// the production implementation.
type Resolver interface {
	Resolve(names []string) []jobsource.Adapter
}

// Aggregator fans one search out to every requested board and merges the
// results. Board failures never fail the aggregate: each adapter settles
// independently and failed boards simply contribute nothing.
type Aggregator struct {
	registry Resolver
	logger   *zap.Logger
}

func New(registry Resolver, logger *zap.Logger) *Aggregator {
	return &Aggregator{registry: registry, logger: logger}
}

// Search runs params against the named boards concurrently. An empty sources
// list queries every board. Postings appearing on more than one board keep
// the first-seen copy, in board dispatch order.
func (a *Aggregator) Search(ctx context.Context, sources []string, params jobsource.SearchParams) Result {
	adapters := a.registry.Resolve(sources)

	tasks := make([]func(context.Context) ([]jobsource.NormalizedJob, error), 0, len(adapters))
	for _, adapter := range adapters {
		adapter := adapter
		tasks = append(tasks, func(ctx context.Context) ([]jobsource.NormalizedJob, error) {
			ctx, cancel := context.WithTimeout(ctx, adapterTimeout)
			defer cancel()
			return adapter.Search(ctx, params)
		})
	}

	started := time.Now()
	outcomes := jobsource.SettleAll(ctx, tasks)

	result := Result{
		Stats: Stats{
			SourcesQueried: len(adapters),
			Failures:       map[string]string{},
		},
	}

	seen := map[string]bool{}
	for i, out := range outcomes {
		name := adapters[i].Name()
		if out.Err != nil {
			result.Stats.SourcesFailed++
			result.Stats.Failures[name] = out.Err.Error()
			a.logger.Warn("job source failed",
				zap.String("source", name), zap.Error(out.Err))
			continue
		}
		for _, job := range out.Value {
			if seen[job.Key()] {
				result.Stats.Duplicates++
				continue
			}
			seen[job.Key()] = true
			result.Jobs = append(result.Jobs, job)
		}
	}

	a.logger.Info("aggregated search finished",
		zap.Int("sources", result.Stats.SourcesQueried),
		zap.Int("failed", result.Stats.SourcesFailed),
		zap.Int("jobs", len(result.Jobs)),
		zap.Int("duplicates", result.Stats.Duplicates),
		zap.Duration("took", time.Since(started)))

	return result
}
