package jobsource

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Arbeitnow supports a single-phrase search parameter, so each keyword is
// searched separately (capped at 3) and results merged by slug. The positive
// keyword filter is left to the server; only exclusions run client-side.
type Arbeitnow struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewArbeitnow(logger *zap.Logger) *Arbeitnow {
	return &Arbeitnow{
		client:  newHTTPClient(),
		baseURL: "https://www.arbeitnow.com",
		logger:  logger,
	}
}

func (a *Arbeitnow) Name() string { return "arbeitnow" }

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

func (a *Arbeitnow) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	terms := params.Keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}

	tasks := make([]func(context.Context) ([]arbeitnowJob, error), 0, len(terms))
	for _, term := range terms {
		term := term
		tasks = append(tasks, func(ctx context.Context) ([]arbeitnowJob, error) {
			q := url.Values{}
			q.Set("search", term)
			q.Set("page", "1")
			if params.RemoteOnly {
				q.Set("remote", "true")
			}
			var resp arbeitnowResponse
			if err := getJSON(ctx, a.client, a.baseURL+"/api/job-board-api", q, nil, &resp); err != nil {
				return nil, err
			}
			return resp.Data, nil
		})
	}

	var merged []arbeitnowJob
	seenSlugs := map[string]bool{}
	var lastErr error
	for i, res := range SettleAll(ctx, tasks) {
		if res.Err != nil {
			a.logger.Warn("arbeitnow term search failed",
				zap.String("term", terms[i]), zap.Error(res.Err))
			lastErr = res.Err
			continue
		}
		for _, job := range res.Value {
			if job.Slug == "" || seenSlugs[job.Slug] {
				continue
			}
			seenSlugs[job.Slug] = true
			merged = append(merged, job)
		}
	}
	if len(merged) == 0 && lastErr != nil {
		return nil, lastErr
	}

	jobs := make([]NormalizedJob, 0, len(merged))
	for _, it := range merged {
		blob := searchBlob(it.Title, it.CompanyName, searchBlob(it.Tags...))
		if matchesAnyExcluded(blob, params.ExcludedKeywords) {
			continue
		}

		remoteType := RemoteTypeOnsite
		if it.Remote {
			remoteType = RemoteTypeRemote
		}

		url := it.URL
		if url == "" {
			url = a.baseURL + "/jobs/" + it.Slug
		}

		jobs = append(jobs, NormalizedJob{
			Source:      a.Name(),
			SourceID:    it.Slug,
			Title:       orUnknown(it.Title),
			Company:     orUnknown(it.CompanyName),
			Location:    orUnknown(it.Location),
			RemoteType:  remoteType,
			Description: it.Description,
			URL:         url,
			Tags:        it.Tags,
		})
	}

	return capJobs(jobs, 50), nil
}
