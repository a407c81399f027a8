package repository

import (
	"context"
	"time"

	"jobhunter/internal/database"
)

// Stats is the dashboard snapshot: pipeline counts plus recent activity.
type Stats struct {
	NewJobsToday      int
	PendingQuestions  int
	TotalJobs         int
	TotalApplications int
	JobsByStatus      map[string]int
	Pipeline          map[string]int
	RecentActivity    []Activity
}

type Activity struct {
	ID     string
	Type   string
	Text   string
	Status string
	Date   time.Time
}

type StatsRepository interface {
	Snapshot(ctx context.Context) (Stats, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Snapshot(ctx context.Context) (Stats, error) {
	stats := Stats{
		JobsByStatus: map[string]int{},
		Pipeline:     map[string]int{},
	}

	row := r.db.QueryRow(ctx,
		`SELECT count(*) FROM jobs WHERE found_at >= date_trunc('day', now())`)
	if err := row.Scan(&stats.NewJobsToday); err != nil {
		return Stats{}, err
	}

	row = r.db.QueryRow(ctx,
		`SELECT count(*) FROM questions WHERE status = 'pending'`)
	if err := row.Scan(&stats.PendingQuestions); err != nil {
		return Stats{}, err
	}

	if err := r.countByStatus(ctx, `SELECT status, count(*) FROM jobs GROUP BY status`,
		stats.JobsByStatus, &stats.TotalJobs); err != nil {
		return Stats{}, err
	}
	if err := r.countByStatus(ctx, `SELECT status, count(*) FROM applications GROUP BY status`,
		stats.Pipeline, &stats.TotalApplications); err != nil {
		return Stats{}, err
	}

	activity, err := r.recentActivity(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.RecentActivity = activity

	return stats, nil
}

func (r *PostgresStatsRepository) countByStatus(ctx context.Context, query string, into map[string]int, total *int) error {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return err
		}
		into[status] = count
		*total += count
	}
	return rows.Err()
}

func (r *PostgresStatsRepository) recentActivity(ctx context.Context) ([]Activity, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, 'job', 'Found: ' || COALESCE(title, '') || ' at ' || COALESCE(company, ''), status, found_at
		 FROM jobs
		 UNION ALL
		 SELECT id::text, 'application', 'Application ' || status, status, created_at
		 FROM applications
		 ORDER BY 5 DESC
		 LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Activity, 0, 10)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Text, &a.Status, &a.Date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
