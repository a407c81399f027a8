package jobsource

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Remotive's search handles only single terms well, so multi-word keywords are
// expanded into up to three one-word searches whose results are merged.
type Remotive struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewRemotive(logger *zap.Logger) *Remotive {
	return &Remotive{
		client:  newHTTPClient(),
		baseURL: "https://remotive.com",
		logger:  logger,
	}
}

func (a *Remotive) Name() string { return "remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	CompanyName string     `json:"company_name"`
	Location    string     `json:"candidate_required_location"`
	Salary      string     `json:"salary"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Tags        []string   `json:"tags"`
}

func (a *Remotive) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	terms := expandTerms(params.Keywords, 3)

	tasks := make([]func(context.Context) ([]remotiveJob, error), 0, len(terms))
	for _, term := range terms {
		term := term
		tasks = append(tasks, func(ctx context.Context) ([]remotiveJob, error) {
			q := url.Values{}
			q.Set("search", term)
			q.Set("limit", "25")
			var resp remotiveResponse
			if err := getJSON(ctx, a.client, a.baseURL+"/api/remote-jobs", q, nil, &resp); err != nil {
				return nil, err
			}
			return resp.Jobs, nil
		})
	}

	var merged []remotiveJob
	seen := map[string]bool{}
	var lastErr error
	for i, res := range SettleAll(ctx, tasks) {
		if res.Err != nil {
			a.logger.Warn("remotive term search failed",
				zap.String("term", terms[i]), zap.Error(res.Err))
			lastErr = res.Err
			continue
		}
		for _, job := range res.Value {
			id := job.ID.String()
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, job)
		}
	}
	if len(merged) == 0 && lastErr != nil {
		return nil, lastErr
	}

	jobs := make([]NormalizedJob, 0, len(merged))
	for _, it := range merged {
		min, max := parseSalaryText(it.Salary)
		if belowSalaryFloor(min, params.SalaryMin) {
			continue
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       it.ID.String(),
			Title:          orUnknown(it.Title),
			Company:        orUnknown(it.CompanyName),
			Location:       pickNonEmpty(it.Location, "Worldwide"),
			RemoteType:     RemoteTypeRemote,
			SalaryMin:      min,
			SalaryMax:      max,
			SalaryCurrency: "USD",
			Description:    it.Description,
			URL:            it.URL,
			Tags:           it.Tags,
		})
	}

	return jobs, nil
}
