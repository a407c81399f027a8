package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobhunter/internal/ai"
	"jobhunter/internal/knowledge"
	"jobhunter/internal/repository"
)

type ResumeUsecase interface {
	CreateApplication(ctx context.Context, jobID uuid.UUID) (repository.Application, ai.TailoredResume, error)
	Regenerate(ctx context.Context, applicationID uuid.UUID) (ai.TailoredResume, error)
}

type resumeTailor interface {
	TailorResume(ctx context.Context, jobDescription string, kb *knowledge.Base) (ai.TailoredResume, error)
}

type Resume struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	knowledge    repository.KnowledgeRepository
	tailor       resumeTailor
	logger       *zap.Logger
}

func NewResumeUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, kb repository.KnowledgeRepository, tailor resumeTailor, logger *zap.Logger) *Resume {
	return &Resume{applications: applications, jobs: jobs, knowledge: kb, tailor: tailor, logger: logger}
}

// CreateApplication opens a draft application for a job, generates the
// tailored resume for it and stores any follow-up questions the tailor
// raised. The job moves to applied status.
func (u *Resume) CreateApplication(ctx context.Context, jobID uuid.UUID) (repository.Application, ai.TailoredResume, error) {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return repository.Application{}, ai.TailoredResume{}, err
	}

	if _, err := u.applications.GetByJobID(ctx, jobID); err == nil {
		return repository.Application{}, ai.TailoredResume{}, ErrApplicationExists
	} else if !errors.Is(err, repository.ErrApplicationNotFound) {
		return repository.Application{}, ai.TailoredResume{}, err
	}

	tailored, err := u.generate(ctx, job)
	if err != nil {
		return repository.Application{}, ai.TailoredResume{}, err
	}

	app, err := u.applications.Create(ctx, jobID)
	if err != nil {
		return repository.Application{}, ai.TailoredResume{}, err
	}

	if err := u.persist(ctx, app.ID, tailored, questionRows(tailored)); err != nil {
		return repository.Application{}, ai.TailoredResume{}, err
	}

	if err := u.jobs.UpdateStatus(ctx, jobID, repository.JobStatusApplied); err != nil {
		u.logger.Warn("job status update failed",
			zap.String("job_id", jobID.String()), zap.Error(err))
	}

	u.logger.Info("application created",
		zap.String("application_id", app.ID.String()),
		zap.String("job", job.Title))
	return app, tailored, nil
}

// Regenerate replaces an existing application's tailored resume. Follow-up
// questions are not re-created; the first generation already asked them.
func (u *Resume) Regenerate(ctx context.Context, applicationID uuid.UUID) (ai.TailoredResume, error) {
	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return ai.TailoredResume{}, err
	}
	job, err := u.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return ai.TailoredResume{}, err
	}

	tailored, err := u.generate(ctx, job)
	if err != nil {
		return ai.TailoredResume{}, err
	}

	if err := u.persist(ctx, app.ID, tailored, nil); err != nil {
		return ai.TailoredResume{}, err
	}
	return tailored, nil
}

func (u *Resume) generate(ctx context.Context, job repository.Job) (ai.TailoredResume, error) {
	kb, err := u.knowledge.LoadBase(ctx)
	if err != nil {
		return ai.TailoredResume{}, err
	}
	if kb.Len() == 0 {
		return ai.TailoredResume{}, ErrEmptyKnowledgeBase
	}

	description := job.Description
	if description == "" {
		description = job.Title + " at " + job.Company
	}

	return u.tailor.TailorResume(ctx, description, kb)
}

func (u *Resume) persist(ctx context.Context, applicationID uuid.UUID, tailored ai.TailoredResume, questions []repository.NewQuestion) error {
	resumeJSON, err := json.Marshal(tailored)
	if err != nil {
		return err
	}
	return u.applications.SaveTailoredResume(ctx, applicationID, resumeJSON, tailored.TailoringNotes, questions)
}

func questionRows(tailored ai.TailoredResume) []repository.NewQuestion {
	rows := make([]repository.NewQuestion, 0, len(tailored.GeneratedQuestions))
	for _, q := range tailored.GeneratedQuestions {
		rows = append(rows, repository.NewQuestion{
			Question: q.Question,
			Context:  q.Context,
			Category: q.Category,
		})
	}
	return rows
}
