package jobsource

import (
	"context"
	"time"
)

type RemoteType string

const (
	RemoteTypeRemote RemoteType = "remote"
	RemoteTypeHybrid RemoteType = "hybrid"
	RemoteTypeOnsite RemoteType = "onsite"
)

// NormalizedJob is the board-agnostic posting shape every adapter produces.
// (Source, SourceID) is the natural key; SourceID is only unique per board.
type NormalizedJob struct {
	Source   string
	SourceID string

	Title   string
	Company string

	CompanyURL string
	Location   string
	RemoteType RemoteType

	// Zero means the board did not report a figure.
	SalaryMin      float64
	SalaryMax      float64
	SalaryCurrency string

	Description string
	URL         string
	Tags        []string
	ExpiresAt   *time.Time
}

func (j NormalizedJob) Key() string {
	return j.Source + ":" + j.SourceID
}

type SearchParams struct {
	Keywords         []string
	ExcludedKeywords []string
	Locations        []string
	RemoteOnly       bool
	SalaryMin        float64
	SalaryCurrency   string
}

// Adapter is one board's client. Search is best-effort single-attempt: any
// request failure surfaces as the error value and contributes zero jobs;
// callers collect it through a settle-all join and never abort on it.
// Adapters that require absent credentials log a warning and return an empty
// slice with a nil error, performing no network call.
type Adapter interface {
	Name() string
	Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error)
}
