package dto

import (
	"time"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

type QuestionResponse struct {
	ID            uuid.UUID  `json:"id"`
	Question      string     `json:"question"`
	Context       string     `json:"context,omitempty"`
	Category      string     `json:"category,omitempty"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	Status        string     `json:"status"`
	Answer        string     `json:"answer,omitempty"`
	AskedAt       string     `json:"asked_at"`
	AnsweredAt    string     `json:"answered_at,omitempty"`
}

func FromQuestion(q repository.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		Question:      q.Question,
		Context:       q.Context,
		Category:      q.Category,
		ApplicationID: q.ApplicationID,
		Status:        q.Status,
		Answer:        q.Answer,
		AskedAt:       q.AskedAt.UTC().Format(time.RFC3339),
		AnsweredAt:    formatTimePtr(q.AnsweredAt),
	}
}

func FromQuestions(questions []repository.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, FromQuestion(q))
	}
	return out
}
