package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobhunter/internal/ai"
	"jobhunter/internal/repository"
)

func tailoredFixture() ai.TailoredResume {
	return ai.TailoredResume{
		Summary:        "Backend engineer, 6 years of Go.",
		TailoringNotes: "Led with services work.",
		GeneratedQuestions: []ai.GeneratedQuestion{
			{Question: "Any Kubernetes experience?", Context: "Listed as required.", Category: "technical"},
		},
	}
}

func TestCreateApplication(t *testing.T) {
	jobs := newMockJobRepo()
	jobID := uuid.New()
	jobs.byID[jobID] = repository.Job{ID: jobID, Title: "Go Engineer", Company: "Acme", Description: "services"}

	apps := newMockApplicationRepo()
	tailor := &mockTailor{resume: tailoredFixture()}

	uc := NewResumeUsecase(apps, jobs, kbRepo(), tailor, zap.NewNop())

	app, tailored, err := uc.CreateApplication(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tailored.Summary == "" {
		t.Error("empty tailored resume returned")
	}
	if len(apps.created) != 1 {
		t.Fatalf("created = %d, want 1", len(apps.created))
	}
	if len(apps.saved[app.ID]) == 0 {
		t.Error("resume JSON not persisted")
	}
	if len(apps.savedQs[app.ID]) != 1 {
		t.Errorf("questions persisted = %d, want 1", len(apps.savedQs[app.ID]))
	}
	if jobs.statuses[jobID] != repository.JobStatusApplied {
		t.Errorf("job status = %q, want applied", jobs.statuses[jobID])
	}
}

func TestCreateApplication_JobNotFound(t *testing.T) {
	uc := NewResumeUsecase(newMockApplicationRepo(), newMockJobRepo(), kbRepo(), &mockTailor{}, zap.NewNop())

	_, _, err := uc.CreateApplication(context.Background(), uuid.New())
	if !errors.Is(err, repository.ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestCreateApplication_AlreadyExists(t *testing.T) {
	jobs := newMockJobRepo()
	jobID := uuid.New()
	jobs.byID[jobID] = repository.Job{ID: jobID, Title: "Go Engineer", Company: "Acme"}

	apps := newMockApplicationRepo()
	apps.byJobID[jobID] = repository.Application{ID: uuid.New(), JobID: jobID}

	uc := NewResumeUsecase(apps, jobs, kbRepo(), &mockTailor{}, zap.NewNop())

	_, _, err := uc.CreateApplication(context.Background(), jobID)
	if !errors.Is(err, ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}
}

func TestCreateApplication_EmptyKnowledgeBase(t *testing.T) {
	jobs := newMockJobRepo()
	jobID := uuid.New()
	jobs.byID[jobID] = repository.Job{ID: jobID, Title: "Go Engineer", Company: "Acme"}

	apps := newMockApplicationRepo()
	uc := NewResumeUsecase(apps, jobs, &mockKnowledgeRepo{}, &mockTailor{}, zap.NewNop())

	_, _, err := uc.CreateApplication(context.Background(), jobID)
	if !errors.Is(err, ErrEmptyKnowledgeBase) {
		t.Fatalf("err = %v, want ErrEmptyKnowledgeBase", err)
	}
	if len(apps.created) != 0 {
		t.Error("no application row expected when tailoring never ran")
	}
}

func TestRegenerate_NoNewQuestions(t *testing.T) {
	jobs := newMockJobRepo()
	jobID := uuid.New()
	jobs.byID[jobID] = repository.Job{ID: jobID, Title: "Go Engineer", Company: "Acme", Description: "services"}

	apps := newMockApplicationRepo()
	appID := uuid.New()
	apps.byID[appID] = repository.Application{ID: appID, JobID: jobID}

	tailor := &mockTailor{resume: tailoredFixture()}
	uc := NewResumeUsecase(apps, jobs, kbRepo(), tailor, zap.NewNop())

	tailored, err := uc.Regenerate(context.Background(), appID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tailored.Summary == "" {
		t.Error("empty tailored resume returned")
	}
	if len(apps.savedQs[appID]) != 0 {
		t.Errorf("regenerate must not re-ask questions, got %d", len(apps.savedQs[appID]))
	}
}

func TestRegenerate_ApplicationNotFound(t *testing.T) {
	uc := NewResumeUsecase(newMockApplicationRepo(), newMockJobRepo(), kbRepo(), &mockTailor{}, zap.NewNop())

	_, err := uc.Regenerate(context.Background(), uuid.New())
	if !errors.Is(err, repository.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
}
