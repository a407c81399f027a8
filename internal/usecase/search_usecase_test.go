package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"jobhunter/internal/aggregator"
	"jobhunter/internal/jobsource"
	"jobhunter/internal/repository"
)

func testConfig() repository.SearchConfig {
	return repository.SearchConfig{
		Name:     "golang remote",
		Keywords: []string{"golang"},
		IsActive: true,
	}
}

func TestSearchRunAll_NoActiveConfigs(t *testing.T) {
	uc := NewSearchUsecase(&mockConfigRepo{}, newMockJobRepo(), &mockBoards{}, nil, zap.NewNop())

	_, err := uc.RunAll(context.Background())
	if !errors.Is(err, ErrNoActiveConfigs) {
		t.Fatalf("err = %v, want ErrNoActiveConfigs", err)
	}
}

func TestSearchRunAll_InsertsOnlyUnseenJobs(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.existing["remoteok:1"] = true

	boards := &mockBoards{result: aggregator.Result{
		Jobs: []jobsource.NormalizedJob{
			{Source: "remoteok", SourceID: "1", Title: "Seen Before"},
			{Source: "remotive", SourceID: "2", Title: "Brand New"},
		},
	}}
	notifier := &recordingNotifier{}

	uc := NewSearchUsecase(&mockConfigRepo{configs: []repository.SearchConfig{testConfig()}},
		jobs, boards, notifier, zap.NewNop())

	summary, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Found != 2 || summary.Inserted != 1 {
		t.Errorf("summary = %+v, want Found=2 Inserted=1", summary)
	}
	if len(jobs.inserted) != 1 || jobs.inserted[0].SourceID != "2" {
		t.Errorf("inserted = %v", jobs.inserted)
	}
	if len(notifier.searches) != 1 || notifier.searches[0] != 1 {
		t.Errorf("notifier calls = %v", notifier.searches)
	}
}

func TestSearchRunAll_RunsEveryConfig(t *testing.T) {
	boards := &mockBoards{}
	uc := NewSearchUsecase(
		&mockConfigRepo{configs: []repository.SearchConfig{testConfig(), testConfig()}},
		newMockJobRepo(), boards, nil, zap.NewNop())

	if _, err := uc.RunAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if boards.calls != 2 {
		t.Errorf("board searches = %d, want one per config", boards.calls)
	}
}

func TestSearchRunAll_CarriesBoardFailures(t *testing.T) {
	boards := &mockBoards{result: aggregator.Result{
		Stats: aggregator.Stats{Failures: map[string]string{"adzuna": "status 502"}},
	}}
	uc := NewSearchUsecase(&mockConfigRepo{configs: []repository.SearchConfig{testConfig()}},
		newMockJobRepo(), boards, nil, zap.NewNop())

	summary, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("board failure must not fail the run: %v", err)
	}
	if summary.Failures["adzuna"] != "status 502" {
		t.Errorf("Failures = %v", summary.Failures)
	}
}
