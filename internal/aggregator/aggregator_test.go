package aggregator

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"jobhunter/internal/jobsource"
)

type fakeAdapter struct {
	name string
	jobs []jobsource.NormalizedJob
	err  error
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Search(ctx context.Context, params jobsource.SearchParams) ([]jobsource.NormalizedJob, error) {
	return f.jobs, f.err
}

type fakeResolver struct {
	adapters []jobsource.Adapter
}

func (f *fakeResolver) Resolve(names []string) []jobsource.Adapter {
	return f.adapters
}

func job(source, id string) jobsource.NormalizedJob {
	return jobsource.NormalizedJob{Source: source, SourceID: id, Title: "Go Engineer", Company: "Acme"}
}

func TestSearch_MergesAndDedupes(t *testing.T) {
	resolver := &fakeResolver{adapters: []jobsource.Adapter{
		&fakeAdapter{name: "remoteok", jobs: []jobsource.NormalizedJob{
			job("remoteok", "1"), job("remoteok", "2"),
		}},
		&fakeAdapter{name: "remotive", jobs: []jobsource.NormalizedJob{
			job("remotive", "1"), job("remotive", "1"),
		}},
	}}

	agg := New(resolver, zap.NewNop())
	result := agg.Search(context.Background(), nil, jobsource.SearchParams{})

	if len(result.Jobs) != 3 {
		t.Fatalf("len = %d, want 3", len(result.Jobs))
	}
	// Same SourceID on different boards is not a duplicate.
	if result.Jobs[0].Key() != "remoteok:1" || result.Jobs[2].Key() != "remotive:1" {
		t.Errorf("merge order broken: %s .. %s", result.Jobs[0].Key(), result.Jobs[2].Key())
	}
	if result.Stats.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", result.Stats.Duplicates)
	}
	if result.Stats.SourcesQueried != 2 || result.Stats.SourcesFailed != 0 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestSearch_BoardFailureDoesNotFailAggregate(t *testing.T) {
	resolver := &fakeResolver{adapters: []jobsource.Adapter{
		&fakeAdapter{name: "remoteok", err: errors.New("status 502")},
		&fakeAdapter{name: "jobicy", jobs: []jobsource.NormalizedJob{job("jobicy", "9")}},
	}}

	agg := New(resolver, zap.NewNop())
	result := agg.Search(context.Background(), nil, jobsource.SearchParams{})

	if len(result.Jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(result.Jobs))
	}
	if result.Stats.SourcesFailed != 1 {
		t.Errorf("SourcesFailed = %d, want 1", result.Stats.SourcesFailed)
	}
	if result.Stats.Failures["remoteok"] != "status 502" {
		t.Errorf("Failures = %v", result.Stats.Failures)
	}
}

func TestSearch_AllBoardsFail(t *testing.T) {
	resolver := &fakeResolver{adapters: []jobsource.Adapter{
		&fakeAdapter{name: "remoteok", err: errors.New("timeout")},
		&fakeAdapter{name: "remotive", err: errors.New("timeout")},
	}}

	agg := New(resolver, zap.NewNop())
	result := agg.Search(context.Background(), nil, jobsource.SearchParams{})

	if len(result.Jobs) != 0 {
		t.Errorf("len = %d, want 0", len(result.Jobs))
	}
	if result.Stats.SourcesFailed != 2 {
		t.Errorf("SourcesFailed = %d, want 2", result.Stats.SourcesFailed)
	}
}

func TestSearch_FirstSeenWins(t *testing.T) {
	first := job("remoteok", "1")
	first.Title = "Original Title"
	second := job("remoteok", "1")
	second.Title = "Later Copy"

	resolver := &fakeResolver{adapters: []jobsource.Adapter{
		&fakeAdapter{name: "a", jobs: []jobsource.NormalizedJob{first}},
		&fakeAdapter{name: "b", jobs: []jobsource.NormalizedJob{second}},
	}}

	agg := New(resolver, zap.NewNop())
	result := agg.Search(context.Background(), nil, jobsource.SearchParams{})

	if len(result.Jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(result.Jobs))
	}
	if result.Jobs[0].Title != "Original Title" {
		t.Errorf("Title = %q, want first-seen copy kept", result.Jobs[0].Title)
	}
}
