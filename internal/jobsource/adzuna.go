package jobsource

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Adzuna filters server-side through its query language. Requires an app id
// and key pair; without both the adapter short-circuits to an empty result.
type Adzuna struct {
	client  *http.Client
	baseURL string
	appID   string
	appKey  string
	logger  *zap.Logger
}

func NewAdzuna(appID, appKey string, logger *zap.Logger) *Adzuna {
	return &Adzuna{
		client:  newHTTPClient(),
		baseURL: "https://api.adzuna.com",
		appID:   strings.TrimSpace(appID),
		appKey:  strings.TrimSpace(appKey),
		logger:  logger,
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RedirectURL string     `json:"redirect_url"`
	SalaryMin   float64    `json:"salary_min"`
	SalaryMax   float64    `json:"salary_max"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Tag string `json:"tag"`
	} `json:"category"`
}

// adzunaWhat quotes multi-word keywords and joins with OR so phrases match
// as phrases instead of bags of words.
func adzunaWhat(keywords []string) string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(kw, " ") {
			kw = `"` + kw + `"`
		}
		terms = append(terms, kw)
	}
	return strings.Join(terms, " OR ")
}

func (a *Adzuna) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	if a.appID == "" || a.appKey == "" {
		a.logger.Warn("adzuna credentials not configured, skipping")
		return nil, nil
	}

	q := url.Values{}
	q.Set("app_id", a.appID)
	q.Set("app_key", a.appKey)
	q.Set("results_per_page", "50")
	q.Set("sort_by", "date")
	q.Set("full_time", "1")
	q.Set("what", adzunaWhat(params.Keywords))
	if len(params.ExcludedKeywords) > 0 {
		q.Set("what_exclude", strings.Join(params.ExcludedKeywords, " "))
	}
	if params.SalaryMin > 0 {
		q.Set("salary_min", strconv.FormatFloat(params.SalaryMin, 'f', -1, 64))
	}

	var resp adzunaResponse
	if err := getJSON(ctx, a.client, a.baseURL+"/v1/api/jobs/us/search/1", q, nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]NormalizedJob, 0, len(resp.Results))
	for _, it := range resp.Results {
		if it.ID == "" {
			continue
		}

		var tags []string
		if it.Category.Tag != "" {
			tags = []string{it.Category.Tag}
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       it.ID.String(),
			Title:          orUnknown(it.Title),
			Company:        orUnknown(it.Company.DisplayName),
			Location:       it.Location.DisplayName,
			RemoteType:     inferRemoteType(it.Title, it.Description),
			SalaryMin:      it.SalaryMin,
			SalaryMax:      it.SalaryMax,
			SalaryCurrency: "USD",
			Description:    it.Description,
			URL:            it.RedirectURL,
			Tags:           tags,
		})
	}

	return jobs, nil
}
