package jobsource

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Jobicy's tag parameter is case-sensitive and 403s on unrecognized values,
// so the feed is pulled unfiltered and keywords are applied client-side.
type Jobicy struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewJobicy(logger *zap.Logger) *Jobicy {
	return &Jobicy{
		client:  newHTTPClient(),
		baseURL: "https://jobicy.com",
		logger:  logger,
	}
}

func (a *Jobicy) Name() string { return "jobicy" }

type jobicyResponse struct {
	Jobs []jobicyJob `json:"jobs"`
}

type jobicyJob struct {
	ID             flexString `json:"id"`
	JobTitle       string     `json:"jobTitle"`
	CompanyName    string     `json:"companyName"`
	JobGeo         string     `json:"jobGeo"`
	JobExcerpt     string     `json:"jobExcerpt"`
	JobDescription string     `json:"jobDescription"`
	JobIndustry    []string   `json:"jobIndustry"`
	SalaryMin      float64    `json:"salaryMin"`
	SalaryMax      float64    `json:"salaryMax"`
	SalaryCurrency string     `json:"salaryCurrency"`
	URL            string     `json:"url"`
}

func (a *Jobicy) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	q := url.Values{}
	q.Set("count", "50")
	q.Set("geo", "usa")
	q.Set("industry", "engineering")

	var resp jobicyResponse
	if err := getJSON(ctx, a.client, a.baseURL+"/api/v2/remote-jobs", q, nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]NormalizedJob, 0, len(resp.Jobs))
	for _, it := range resp.Jobs {
		blob := searchBlob(it.JobTitle, it.CompanyName, it.JobExcerpt, searchBlob(it.JobIndustry...))
		if !matchesAnyKeyword(blob, params.Keywords) {
			continue
		}
		if matchesAnyExcluded(blob, params.ExcludedKeywords) {
			continue
		}
		if belowSalaryFloor(it.SalaryMin, params.SalaryMin) {
			continue
		}

		url := it.URL
		if url == "" {
			url = a.baseURL + "/jobs/" + it.ID.String()
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       it.ID.String(),
			Title:          orUnknown(it.JobTitle),
			Company:        orUnknown(it.CompanyName),
			Location:       pickNonEmpty(it.JobGeo, "Remote"),
			RemoteType:     RemoteTypeRemote,
			SalaryMin:      it.SalaryMin,
			SalaryMax:      it.SalaryMax,
			SalaryCurrency: pickNonEmpty(it.SalaryCurrency, "USD"),
			Description:    pickNonEmpty(it.JobDescription, it.JobExcerpt),
			URL:            url,
			Tags:           it.JobIndustry,
		})
	}

	return jobs, nil
}
