package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobhunter/internal/database"
	"jobhunter/internal/knowledge"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrKnowledgeEntryNotFound = errors.New("knowledge entry not found")
)

const (
	KnowledgeSourceResume     = "resume"
	KnowledgeSourceUserAnswer = "user_answer"
	KnowledgeSourceInferred   = "inferred"
)

type KnowledgeEntry struct {
	ID        uuid.UUID
	Category  string
	Key       string
	Value     string
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type KnowledgeRepository interface {
	List(ctx context.Context, category string) ([]KnowledgeEntry, error)
	Create(ctx context.Context, entry KnowledgeEntry) (KnowledgeEntry, error)
	Update(ctx context.Context, id uuid.UUID, value string) (KnowledgeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LoadBase(ctx context.Context) (*knowledge.Base, error)
}

type PostgresKnowledgeRepository struct {
	db database.DB
}

func NewPostgresKnowledgeRepository(db database.DB) *PostgresKnowledgeRepository {
	return &PostgresKnowledgeRepository{db: db}
}

const knowledgeColumns = `id, category, key, value, COALESCE(source, 'user_answer'), created_at, updated_at`

func (r *PostgresKnowledgeRepository) List(ctx context.Context, category string) ([]KnowledgeEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+knowledgeColumns+`
		 FROM knowledge_entries
		 WHERE ($1 = '' OR category = $1)
		 ORDER BY category, key`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]KnowledgeEntry, 0)
	for rows.Next() {
		var e KnowledgeEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Key, &e.Value, &e.Source, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresKnowledgeRepository) Create(ctx context.Context, entry KnowledgeEntry) (KnowledgeEntry, error) {
	entry.ID = uuid.New()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Source == "" {
		entry.Source = KnowledgeSourceUserAnswer
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO knowledge_entries (id, category, key, value, source, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		entry.ID, entry.Category, entry.Key, entry.Value, entry.Source, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return KnowledgeEntry{}, err
	}
	return entry, nil
}

func (r *PostgresKnowledgeRepository) Update(ctx context.Context, id uuid.UUID, value string) (KnowledgeEntry, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE knowledge_entries SET value = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+knowledgeColumns,
		id, value,
	)

	var e KnowledgeEntry
	if err := row.Scan(&e.ID, &e.Category, &e.Key, &e.Value, &e.Source, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return KnowledgeEntry{}, ErrKnowledgeEntryNotFound
		}
		return KnowledgeEntry{}, err
	}
	return e, nil
}

func (r *PostgresKnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM knowledge_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrKnowledgeEntryNotFound
	}
	return nil
}

// LoadBase snapshots every entry as the prompt-facing knowledge base.
func (r *PostgresKnowledgeRepository) LoadBase(ctx context.Context) (*knowledge.Base, error) {
	entries, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}

	kb := make([]knowledge.Entry, 0, len(entries))
	for _, e := range entries {
		kb = append(kb, knowledge.Entry{Category: e.Category, Key: e.Key, Value: e.Value})
	}
	return knowledge.NewBase(kb), nil
}
