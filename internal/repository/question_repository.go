package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobhunter/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
)

const (
	QuestionStatusPending   = "pending"
	QuestionStatusAnswered  = "answered"
	QuestionStatusDismissed = "dismissed"
)

type Question struct {
	ID            uuid.UUID
	Question      string
	Context       string
	Category      string
	ApplicationID *uuid.UUID
	Status        string
	Answer        string
	AskedAt       time.Time
	AnsweredAt    *time.Time
}

type QuestionRepository interface {
	List(ctx context.Context, status string) ([]Question, error)
	Answer(ctx context.Context, id uuid.UUID, answer string) (Question, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

type PostgresQuestionRepository struct {
	db database.DB
}

func NewPostgresQuestionRepository(db database.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

const questionColumns = `id, question, COALESCE(context, ''), COALESCE(category, ''),
	application_id, status, COALESCE(answer, ''), asked_at, answered_at`

func (r *PostgresQuestionRepository) List(ctx context.Context, status string) ([]Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+`
		 FROM questions
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY asked_at DESC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Question, 0)
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Context, &q.Category,
			&q.ApplicationID, &q.Status, &q.Answer, &q.AskedAt, &q.AnsweredAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresQuestionRepository) Answer(ctx context.Context, id uuid.UUID, answer string) (Question, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE questions SET status = 'answered', answer = $2, answered_at = now()
		 WHERE id = $1
		 RETURNING `+questionColumns,
		id, answer,
	)

	var q Question
	if err := row.Scan(&q.ID, &q.Question, &q.Context, &q.Category,
		&q.ApplicationID, &q.Status, &q.Answer, &q.AskedAt, &q.AnsweredAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Question{}, ErrQuestionNotFound
		}
		return Question{}, err
	}
	return q, nil
}

func (r *PostgresQuestionRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE questions SET status = 'dismissed' WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
