package jobsource

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Himalayas exposes an unfiltered paged feed; up to three pages of twenty are
// pulled and filtered client-side.
type Himalayas struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewHimalayas(logger *zap.Logger) *Himalayas {
	return &Himalayas{
		client:  newHTTPClient(),
		baseURL: "https://himalayas.app",
		logger:  logger,
	}
}

func (a *Himalayas) Name() string { return "himalayas" }

const (
	himalayasPageSize = 20
	himalayasMaxPages = 3
)

type himalayasJob struct {
	Slug                 string   `json:"slug"`
	Title                string   `json:"title"`
	CompanyName          string   `json:"companyName"`
	LocationRestrictions []string `json:"locationRestrictions"`
	Skills               []string `json:"skills"`
	Excerpt              string   `json:"excerpt"`
	MinSalary            float64  `json:"minSalary"`
	MaxSalary            float64  `json:"maxSalary"`
	Currency             string   `json:"currency"`
	ApplicationLink      string   `json:"applicationLink"`
}

func (a *Himalayas) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	var listings []himalayasJob
	for page := 0; page < himalayasMaxPages; page++ {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(himalayasPageSize))
		q.Set("offset", strconv.Itoa(page*himalayasPageSize))

		var batch []himalayasJob
		if err := getJSON(ctx, a.client, a.baseURL+"/jobs/api", q, nil, &batch); err != nil {
			if page == 0 {
				return nil, err
			}
			a.logger.Warn("himalayas page fetch failed", zap.Int("page", page), zap.Error(err))
			break
		}
		if len(batch) == 0 {
			break
		}
		listings = append(listings, batch...)
	}

	jobs := make([]NormalizedJob, 0, len(listings))
	for _, it := range listings {
		blob := searchBlob(it.Title, it.CompanyName, searchBlob(it.Skills...), it.Excerpt)
		if !matchesAnyKeyword(blob, params.Keywords) {
			continue
		}
		if matchesAnyExcluded(blob, params.ExcludedKeywords) {
			continue
		}
		if belowSalaryFloor(it.MinSalary, params.SalaryMin) {
			continue
		}

		url := it.ApplicationLink
		if url == "" {
			url = a.baseURL + "/jobs/" + it.Slug
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       pickNonEmpty(it.Slug, it.Title),
			Title:          orUnknown(it.Title),
			Company:        orUnknown(it.CompanyName),
			Location:       pickNonEmpty(strings.Join(it.LocationRestrictions, ", "), "Remote"),
			RemoteType:     RemoteTypeRemote,
			SalaryMin:      it.MinSalary,
			SalaryMax:      it.MaxSalary,
			SalaryCurrency: pickNonEmpty(it.Currency, "USD"),
			Description:    it.Excerpt,
			URL:            url,
			Tags:           it.Skills,
		})
	}

	return jobs, nil
}
