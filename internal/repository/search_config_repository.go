package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"jobhunter/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSearchConfigNotFound = errors.New("search config not found")
)

type SearchConfig struct {
	ID               uuid.UUID
	Name             string
	Keywords         []string
	ExcludedKeywords []string
	Locations        []string
	RemoteOnly       bool
	SalaryMin        float64
	SalaryCurrency   string
	JobSources       []string
	IsActive         bool
	CreatedAt        time.Time
}

type SearchConfigRepository interface {
	List(ctx context.Context) ([]SearchConfig, error)
	ListActive(ctx context.Context) ([]SearchConfig, error)
	GetByID(ctx context.Context, id uuid.UUID) (SearchConfig, error)
	Create(ctx context.Context, cfg SearchConfig) (SearchConfig, error)
	Update(ctx context.Context, cfg SearchConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSearchConfigRepository struct {
	db database.DB
}

func NewPostgresSearchConfigRepository(db database.DB) *PostgresSearchConfigRepository {
	return &PostgresSearchConfigRepository{db: db}
}

const searchConfigColumns = `id, COALESCE(name, ''), keywords, COALESCE(excluded_keywords, '[]'::jsonb),
	COALESCE(locations, '[]'::jsonb), remote_only, COALESCE(salary_min, 0),
	COALESCE(salary_currency, 'USD'), COALESCE(job_sources, '[]'::jsonb), is_active, created_at`

func scanSearchConfig(row database.Row) (SearchConfig, error) {
	var c SearchConfig
	var keywords, excluded, locations, sources []byte
	err := row.Scan(&c.ID, &c.Name, &keywords, &excluded,
		&locations, &c.RemoteOnly, &c.SalaryMin,
		&c.SalaryCurrency, &sources, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return SearchConfig{}, err
	}
	for _, pair := range []struct {
		raw []byte
		out *[]string
	}{
		{keywords, &c.Keywords},
		{excluded, &c.ExcludedKeywords},
		{locations, &c.Locations},
		{sources, &c.JobSources},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.out); err != nil {
			return SearchConfig{}, err
		}
	}
	return c, nil
}

func (r *PostgresSearchConfigRepository) List(ctx context.Context) ([]SearchConfig, error) {
	return r.list(ctx, `SELECT `+searchConfigColumns+` FROM search_configs ORDER BY created_at DESC`)
}

func (r *PostgresSearchConfigRepository) ListActive(ctx context.Context) ([]SearchConfig, error) {
	return r.list(ctx, `SELECT `+searchConfigColumns+` FROM search_configs WHERE is_active ORDER BY created_at DESC`)
}

func (r *PostgresSearchConfigRepository) list(ctx context.Context, query string) ([]SearchConfig, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SearchConfig, 0)
	for rows.Next() {
		c, err := scanSearchConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSearchConfigRepository) GetByID(ctx context.Context, id uuid.UUID) (SearchConfig, error) {
	row := r.db.QueryRow(ctx, `SELECT `+searchConfigColumns+` FROM search_configs WHERE id = $1`, id)
	c, err := scanSearchConfig(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return SearchConfig{}, ErrSearchConfigNotFound
		}
		return SearchConfig{}, err
	}
	return c, nil
}

func (r *PostgresSearchConfigRepository) Create(ctx context.Context, cfg SearchConfig) (SearchConfig, error) {
	cfg.ID = uuid.New()
	cfg.CreatedAt = time.Now().UTC()
	if cfg.SalaryCurrency == "" {
		cfg.SalaryCurrency = "USD"
	}

	keywords, excluded, locations, sources, err := marshalConfigLists(cfg)
	if err != nil {
		return SearchConfig{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO search_configs (id, name, keywords, excluded_keywords, locations,
			remote_only, salary_min, salary_currency, job_sources, is_active, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		cfg.ID, cfg.Name, keywords, excluded, locations,
		cfg.RemoteOnly, nullableFloat(cfg.SalaryMin), cfg.SalaryCurrency,
		sources, cfg.IsActive, cfg.CreatedAt,
	)
	if err != nil {
		return SearchConfig{}, err
	}
	return cfg, nil
}

func (r *PostgresSearchConfigRepository) Update(ctx context.Context, cfg SearchConfig) error {
	keywords, excluded, locations, sources, err := marshalConfigLists(cfg)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE search_configs SET
			name = $2, keywords = $3, excluded_keywords = $4, locations = $5,
			remote_only = $6, salary_min = $7, salary_currency = $8,
			job_sources = $9, is_active = $10
		 WHERE id = $1`,
		cfg.ID, cfg.Name, keywords, excluded, locations,
		cfg.RemoteOnly, nullableFloat(cfg.SalaryMin), cfg.SalaryCurrency,
		sources, cfg.IsActive,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSearchConfigNotFound
	}
	return nil
}

func (r *PostgresSearchConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM search_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSearchConfigNotFound
	}
	return nil
}

func marshalConfigLists(cfg SearchConfig) (keywords, excluded, locations, sources []byte, err error) {
	if keywords, err = json.Marshal(orEmpty(cfg.Keywords)); err != nil {
		return
	}
	if excluded, err = json.Marshal(orEmpty(cfg.ExcludedKeywords)); err != nil {
		return
	}
	if locations, err = json.Marshal(orEmpty(cfg.Locations)); err != nil {
		return
	}
	sources, err = json.Marshal(orEmpty(cfg.JobSources))
	return
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
