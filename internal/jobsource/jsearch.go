package jobsource

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JSearch (RapidAPI) filters server-side via a free-text query. Requires an
// API key; without one the adapter short-circuits to an empty result.
type JSearch struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

func NewJSearch(apiKey string, logger *zap.Logger) *JSearch {
	return &JSearch{
		client:  newHTTPClient(),
		baseURL: "https://jsearch.p.rapidapi.com",
		apiKey:  strings.TrimSpace(apiKey),
		logger:  logger,
	}
}

func (a *JSearch) Name() string { return "jsearch" }

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerWebsite   string   `json:"employer_website"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobMinSalary      float64  `json:"job_min_salary"`
	JobMaxSalary      float64  `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobDescription    string   `json:"job_description"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobGoogleLink     string   `json:"job_google_link"`
	JobRequiredSkills []string `json:"job_required_skills"`
	JobExpiresAtUTC   string   `json:"job_offer_expiration_datetime_utc"`
}

func (a *JSearch) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	if a.apiKey == "" {
		a.logger.Warn("jsearch api key not configured, skipping")
		return nil, nil
	}

	queryTerms := append([]string{}, params.Keywords...)
	if params.RemoteOnly {
		queryTerms = append(queryTerms, "remote")
	}

	q := url.Values{}
	q.Set("query", strings.Join(queryTerms, " "))
	q.Set("page", "1")
	q.Set("num_pages", "1")
	q.Set("date_posted", "week")
	if params.RemoteOnly {
		q.Set("remote_jobs_only", "true")
	}

	headers := map[string]string{
		"X-RapidAPI-Key":  a.apiKey,
		"X-RapidAPI-Host": "jsearch.p.rapidapi.com",
	}

	var resp jsearchResponse
	if err := getJSON(ctx, a.client, a.baseURL+"/search", q, headers, &resp); err != nil {
		return nil, err
	}

	jobs := make([]NormalizedJob, 0, len(resp.Data))
	for _, it := range resp.Data {
		sourceID := it.JobID
		if sourceID == "" {
			sourceID = strconv.FormatInt(time.Now().UnixMilli(), 10)
		}

		location := it.JobCountry
		if it.JobCity != "" {
			location = it.JobCity + ", " + it.JobState + ", " + it.JobCountry
		}

		var remoteType RemoteType
		if it.JobIsRemote {
			remoteType = RemoteTypeRemote
		}

		var expiresAt *time.Time
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(it.JobExpiresAtUTC)); err == nil {
			t = t.UTC()
			expiresAt = &t
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       sourceID,
			Title:          orUnknown(it.JobTitle),
			Company:        orUnknown(it.EmployerName),
			CompanyURL:     it.EmployerWebsite,
			Location:       location,
			RemoteType:     remoteType,
			SalaryMin:      it.JobMinSalary,
			SalaryMax:      it.JobMaxSalary,
			SalaryCurrency: pickNonEmpty(it.JobSalaryCurrency, "USD"),
			Description:    it.JobDescription,
			URL:            pickNonEmpty(it.JobApplyLink, it.JobGoogleLink),
			Tags:           it.JobRequiredSkills,
			ExpiresAt:      expiresAt,
		})
	}

	return jobs, nil
}
