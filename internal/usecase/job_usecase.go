package usecase

import (
	"context"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

var validJobStatuses = map[string]bool{
	repository.JobStatusNew:      true,
	repository.JobStatusReviewed: true,
	repository.JobStatusApplied:  true,
	repository.JobStatusRejected: true,
	repository.JobStatusArchived: true,
}

type JobUsecase interface {
	List(ctx context.Context, filter repository.JobFilter) ([]repository.Job, error)
	Get(ctx context.Context, id uuid.UUID) (repository.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Job, error)
}

type Jobs struct {
	jobs repository.JobRepository
}

func NewJobUsecase(jobs repository.JobRepository) *Jobs {
	return &Jobs{jobs: jobs}
}

func (u *Jobs) List(ctx context.Context, filter repository.JobFilter) ([]repository.Job, error) {
	if filter.MinScore < 0 || filter.MinScore > 100 {
		return nil, ErrInvalidInput
	}
	if filter.Status != "" && !validJobStatuses[filter.Status] {
		return nil, ErrInvalidInput
	}
	return u.jobs.ListJobs(ctx, filter)
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (repository.Job, error) {
	return u.jobs.GetByID(ctx, id)
}

func (u *Jobs) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (repository.Job, error) {
	if !validJobStatuses[status] {
		return repository.Job{}, ErrInvalidInput
	}
	if err := u.jobs.UpdateStatus(ctx, id, status); err != nil {
		return repository.Job{}, err
	}
	return u.jobs.GetByID(ctx, id)
}
