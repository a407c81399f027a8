package dto

import (
	"time"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	Source         string    `json:"source"`
	SourceID       string    `json:"source_id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	CompanyURL     string    `json:"company_url,omitempty"`
	Location       string    `json:"location,omitempty"`
	RemoteType     string    `json:"remote_type"`
	SalaryMin      float64   `json:"salary_min,omitempty"`
	SalaryMax      float64   `json:"salary_max,omitempty"`
	SalaryCurrency string    `json:"salary_currency,omitempty"`
	Description    string    `json:"description,omitempty"`
	URL            string    `json:"url"`
	Tags           []string  `json:"tags"`
	MatchScore     *int      `json:"match_score"`
	MatchReasoning string    `json:"match_reasoning,omitempty"`
	Status         string    `json:"status"`
	FoundAt        string    `json:"found_at"`
	ExpiresAt      string    `json:"expires_at,omitempty"`
}

func FromJob(j repository.Job) JobResponse {
	expires := ""
	if j.ExpiresAt != nil && !j.ExpiresAt.IsZero() {
		expires = j.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return JobResponse{
		ID:             j.ID,
		Source:         j.Source,
		SourceID:       j.SourceID,
		Title:          j.Title,
		Company:        j.Company,
		CompanyURL:     j.CompanyURL,
		Location:       j.Location,
		RemoteType:     j.RemoteType,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SalaryCurrency: j.SalaryCurrency,
		Description:    j.Description,
		URL:            j.URL,
		Tags:           j.Tags,
		MatchScore:     j.MatchScore,
		MatchReasoning: j.MatchReasoning,
		Status:         j.Status,
		FoundAt:        j.FoundAt.UTC().Format(time.RFC3339),
		ExpiresAt:      expires,
	}
}

func FromJobs(jobs []repository.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
