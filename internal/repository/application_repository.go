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
	ErrApplicationNotFound = errors.New("application not found")
)

const (
	ApplicationStatusDraft     = "draft"
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
)

type Application struct {
	ID                 uuid.UUID
	JobID              uuid.UUID
	TailoredResumeJSON []byte
	CoverLetter        string
	TailoringNotes     string
	Status             string
	SubmittedAt        *time.Time
	ResponseAt         *time.Time
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type NewQuestion struct {
	Question string
	Context  string
	Category string
}

type ApplicationRepository interface {
	Create(ctx context.Context, jobID uuid.UUID) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetByJobID(ctx context.Context, jobID uuid.UUID) (Application, error)
	List(ctx context.Context, status string) ([]Application, error)
	SaveTailoredResume(ctx context.Context, id uuid.UUID, resumeJSON []byte, notes string, questions []NewQuestion) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status, notes string) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, tailored_resume_json, COALESCE(cover_letter, ''),
	COALESCE(tailoring_notes, ''), status, submitted_at, response_at,
	COALESCE(notes, ''), created_at, updated_at`

func scanApplication(row database.Row) (Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.JobID, &a.TailoredResumeJSON, &a.CoverLetter,
		&a.TailoringNotes, &a.Status, &a.SubmittedAt, &a.ResponseAt,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, jobID uuid.UUID) (Application, error) {
	a := Application{
		ID:        uuid.New(),
		JobID:     jobID,
		Status:    ApplicationStatusDraft,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.JobID, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) (Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1
		 ORDER BY created_at DESC LIMIT 1`, jobID)
	a, err := scanApplication(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, status string) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY updated_at DESC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveTailoredResume stores the generated resume and its follow-up questions
// atomically, so an application is never left with a resume but no questions.
func (r *PostgresApplicationRepository) SaveTailoredResume(ctx context.Context, id uuid.UUID, resumeJSON []byte, notes string, questions []NewQuestion) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	affected, err := tx.Exec(ctx,
		`UPDATE applications SET tailored_resume_json = $2, tailoring_notes = $3, updated_at = now()
		 WHERE id = $1`,
		id, resumeJSON, nullableText(notes),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}

	for _, q := range questions {
		_, err := tx.Exec(ctx,
			`INSERT INTO questions (id, question, context, category, application_id, status, asked_at)
			 VALUES ($1,$2,$3,$4,$5,'pending',now())`,
			uuid.New(), q.Question, nullableText(q.Context), nullableText(q.Category), id,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, notes string) error {
	var submittedAt any
	if status == ApplicationStatusSubmitted {
		submittedAt = time.Now().UTC()
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET
			status = $2,
			notes = COALESCE($3, notes),
			submitted_at = COALESCE($4, submitted_at),
			updated_at = now()
		 WHERE id = $1`,
		id, status, nullableText(notes), submittedAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
