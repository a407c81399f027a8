package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"jobhunter/internal/database"
	"jobhunter/internal/jobsource"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

const (
	JobStatusNew      = "new"
	JobStatusReviewed = "reviewed"
	JobStatusApplied  = "applied"
	JobStatusRejected = "rejected"
	JobStatusArchived = "archived"
)

type Job struct {
	ID             uuid.UUID
	Source         string
	SourceID       string
	Title          string
	Company        string
	CompanyURL     string
	Location       string
	RemoteType     string
	SalaryMin      float64
	SalaryMax      float64
	SalaryCurrency string
	Description    string
	URL            string
	Tags           []string
	MatchScore     *int
	MatchReasoning string
	Status         string
	FoundAt        time.Time
	ExpiresAt      *time.Time
}

type JobFilter struct {
	Status   string
	MinScore int
	Source   string
	Limit    int
	Offset   int
}

type JobRepository interface {
	ExistsBySource(ctx context.Context, source, sourceID string) (bool, error)
	Insert(ctx context.Context, job jobsource.NormalizedJob) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	ListUnscored(ctx context.Context, limit int) ([]Job, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]Job, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, score int, reasoning string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ExistsBySource(ctx context.Context, source, sourceID string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE source = $1 AND source_id = $2)`,
		source, sourceID)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) Insert(ctx context.Context, job jobsource.NormalizedJob) (uuid.UUID, error) {
	id := uuid.New()
	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return uuid.Nil, err
	}

	// ON CONFLICT keeps concurrent searches from racing past the existence check.
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (id, source, source_id, title, company, company_url, location,
			remote_type, salary_min, salary_max, salary_currency, description, url, tags, expires_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		 ON CONFLICT (source, source_id) DO NOTHING`,
		id,
		job.Source,
		job.SourceID,
		job.Title,
		job.Company,
		nullableText(job.CompanyURL),
		nullableText(job.Location),
		nullableText(string(job.RemoteType)),
		nullableFloat(job.SalaryMin),
		nullableFloat(job.SalaryMax),
		nullableText(job.SalaryCurrency),
		nullableText(job.Description),
		nullableText(job.URL),
		tags,
		job.ExpiresAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

const jobColumns = `id, source, source_id, COALESCE(title, ''), COALESCE(company, ''),
	COALESCE(company_url, ''), COALESCE(location, ''), COALESCE(remote_type, ''),
	COALESCE(salary_min, 0), COALESCE(salary_max, 0), COALESCE(salary_currency, ''),
	COALESCE(description, ''), COALESCE(url, ''), COALESCE(tags, '[]'::jsonb),
	match_score, COALESCE(match_reasoning, ''), status, found_at, expires_at`

func scanJob(row database.Row) (Job, error) {
	var j Job
	var tags []byte
	err := row.Scan(&j.ID, &j.Source, &j.SourceID, &j.Title, &j.Company,
		&j.CompanyURL, &j.Location, &j.RemoteType,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
		&j.Description, &j.URL, &tags,
		&j.MatchScore, &j.MatchReasoning, &j.Status, &j.FoundAt, &j.ExpiresAt)
	if err != nil {
		return Job{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &j.Tags); err != nil {
			return Job{}, err
		}
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE ($1 = '' OR status = $1)
		   AND ($2 = 0 OR match_score >= $2)
		   AND ($3 = '' OR source = $3)
		 ORDER BY match_score DESC NULLS LAST, found_at DESC
		 LIMIT $4 OFFSET $5`,
		filter.Status, filter.MinScore, filter.Source, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListUnscored(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE match_score IS NULL AND status = 'new'
		 ORDER BY found_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]Job, error) {
	if len(ids) == 0 {
		return []Job{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) UpdateMatch(ctx context.Context, id uuid.UUID, score int, reasoning string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET match_score = $2, match_reasoning = $3 WHERE id = $1`,
		id, score, reasoning)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func collectJobs(rows database.Rows) ([]Job, error) {
	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
