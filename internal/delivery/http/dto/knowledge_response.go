package dto

import (
	"time"

	"github.com/google/uuid"

	"jobhunter/internal/repository"
)

type KnowledgeEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Source    string    `json:"source"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func FromKnowledgeEntry(e repository.KnowledgeEntry) KnowledgeEntryResponse {
	return KnowledgeEntryResponse{
		ID:        e.ID,
		Category:  e.Category,
		Key:       e.Key,
		Value:     e.Value,
		Source:    e.Source,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromKnowledgeEntries(entries []repository.KnowledgeEntry) []KnowledgeEntryResponse {
	out := make([]KnowledgeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromKnowledgeEntry(e))
	}
	return out
}
