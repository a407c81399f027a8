package jobsource

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// RemoteOK returns its entire live posting set in one unfiltered call, so all
// filtering happens client-side.
type RemoteOK struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewRemoteOK(logger *zap.Logger) *RemoteOK {
	return &RemoteOK{
		client:  newHTTPClient(),
		baseURL: "https://remoteok.com",
		logger:  logger,
	}
}

func (a *RemoteOK) Name() string { return "remoteok" }

type remoteokJob struct {
	ID          flexString `json:"id"`
	Slug        string     `json:"slug"`
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	SalaryMin   float64    `json:"salary_min"`
	SalaryMax   float64    `json:"salary_max"`
}

func (a *RemoteOK) Search(ctx context.Context, params SearchParams) ([]NormalizedJob, error) {
	var listings []remoteokJob
	if err := getJSON(ctx, a.client, a.baseURL+"/api", nil, nil, &listings); err != nil {
		return nil, err
	}

	jobs := make([]NormalizedJob, 0, len(listings))
	for _, it := range listings {
		// The first element is a legal/TOS blurb, not a posting.
		if it.ID == "" || it.Position == "" {
			continue
		}

		blob := searchBlob(it.Position, it.Company, searchBlob(it.Tags...), it.Description)
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
			url = a.baseURL + "/remote-jobs/" + it.Slug
		}

		jobs = append(jobs, NormalizedJob{
			Source:         a.Name(),
			SourceID:       it.ID.String(),
			Title:          orUnknown(it.Position),
			Company:        orUnknown(it.Company),
			Location:       pickNonEmpty(it.Location, "Remote"),
			RemoteType:     RemoteTypeRemote,
			SalaryMin:      it.SalaryMin,
			SalaryMax:      it.SalaryMax,
			SalaryCurrency: "USD",
			Description:    it.Description,
			URL:            url,
			Tags:           it.Tags,
		})
	}

	return capJobs(jobs, 50), nil
}
