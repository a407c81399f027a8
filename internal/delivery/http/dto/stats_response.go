package dto

import (
	"time"

	"jobhunter/internal/repository"
)

type StatsResponse struct {
	NewJobsToday      int                `json:"new_jobs_today"`
	PendingQuestions  int                `json:"pending_questions"`
	TotalJobs         int                `json:"total_jobs"`
	TotalApplications int                `json:"total_applications"`
	JobsByStatus      map[string]int     `json:"jobs_by_status"`
	Pipeline          map[string]int     `json:"pipeline"`
	RecentActivity    []ActivityResponse `json:"recent_activity"`
}

type ActivityResponse struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

func FromStats(s repository.Stats) StatsResponse {
	activity := make([]ActivityResponse, 0, len(s.RecentActivity))
	for _, a := range s.RecentActivity {
		activity = append(activity, ActivityResponse{
			ID:     a.ID,
			Type:   a.Type,
			Text:   a.Text,
			Status: a.Status,
			Date:   a.Date.UTC().Format(time.RFC3339),
		})
	}

	return StatsResponse{
		NewJobsToday:      s.NewJobsToday,
		PendingQuestions:  s.PendingQuestions,
		TotalJobs:         s.TotalJobs,
		TotalApplications: s.TotalApplications,
		JobsByStatus:      s.JobsByStatus,
		Pipeline:          s.Pipeline,
		RecentActivity:    activity,
	}
}
