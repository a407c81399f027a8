package dto

import (
	"time"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

type SearchConfigResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Keywords         []string  `json:"keywords"`
	ExcludedKeywords []string  `json:"excluded_keywords"`
	Locations        []string  `json:"locations"`
	RemoteOnly       bool      `json:"remote_only"`
	SalaryMin        float64   `json:"salary_min,omitempty"`
	SalaryCurrency   string    `json:"salary_currency,omitempty"`
	JobSources       []string  `json:"job_sources"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        string    `json:"created_at"`
}

func FromSearchConfig(cfg repository.SearchConfig) SearchConfigResponse {
	return SearchConfigResponse{
		ID:               cfg.ID,
		Name:             cfg.Name,
		Keywords:         cfg.Keywords,
		ExcludedKeywords: cfg.ExcludedKeywords,
		Locations:        cfg.Locations,
		RemoteOnly:       cfg.RemoteOnly,
		SalaryMin:        cfg.SalaryMin,
		SalaryCurrency:   cfg.SalaryCurrency,
		JobSources:       cfg.JobSources,
		IsActive:         cfg.IsActive,
		CreatedAt:        cfg.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromSearchConfigs(configs []repository.SearchConfig) []SearchConfigResponse {
	out := make([]SearchConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, FromSearchConfig(cfg))
	}
	return out
}
