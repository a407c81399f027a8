package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

type ApplicationResponse struct {
	ID             uuid.UUID       `json:"id"`
	JobID          uuid.UUID       `json:"job_id"`
	TailoredResume json.RawMessage `json:"tailored_resume"`
	CoverLetter    string          `json:"cover_letter,omitempty"`
	TailoringNotes string          `json:"tailoring_notes,omitempty"`
	Status         string          `json:"status"`
	SubmittedAt    string          `json:"submitted_at,omitempty"`
	ResponseAt     string          `json:"response_at,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

func FromApplication(a repository.Application) ApplicationResponse {
	resume := json.RawMessage(a.TailoredResumeJSON)
	if len(resume) == 0 {
		resume = json.RawMessage("null")
	}

	return ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		TailoredResume: resume,
		CoverLetter:    a.CoverLetter,
		TailoringNotes: a.TailoringNotes,
		Status:         a.Status,
		SubmittedAt:    formatTimePtr(a.SubmittedAt),
		ResponseAt:     formatTimePtr(a.ResponseAt),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromApplications(apps []repository.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}

func formatTimePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
