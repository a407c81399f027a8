package jobsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"jobhunter/internal/config"
)

func TestRemoteOK_FiltersAndSkipsLegalNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"legal": "API terms of use"},
			{
				"id": 100, "slug": "go-engineer", "position": "Go Engineer",
				"company": "Acme", "tags": []string{"golang"},
				"description": "backend work", "salary_min": 150000, "salary_max": 180000,
			},
			{
				"id": 101, "slug": "php-dev", "position": "PHP Developer",
				"company": "Other", "tags": []string{"php"},
				"description": "legacy cms",
			},
			{
				"id": 102, "slug": "underpaid", "position": "Go Intern",
				"company": "Cheap", "tags": []string{"golang"},
				"salary_min": 40000, "salary_max": 50000,
			},
		})
	}))
	defer srv.Close()

	a := NewRemoteOK(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords:         []string{"golang"},
		ExcludedKeywords: []string{"php"},
		SalaryMin:        100000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}

	job := jobs[0]
	if job.Source != "remoteok" || job.SourceID != "100" {
		t.Errorf("key = %s, want remoteok:100", job.Key())
	}
	if job.URL != srv.URL+"/remote-jobs/go-engineer" {
		t.Errorf("URL = %q, want slug fallback", job.URL)
	}
	if job.Location != "Remote" {
		t.Errorf("Location = %q, want Remote default", job.Location)
	}
	if job.RemoteType != RemoteTypeRemote {
		t.Errorf("RemoteType = %q, want remote", job.RemoteType)
	}
}

func TestRemoteOK_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewRemoteOK(zap.NewNop())
	a.baseURL = srv.URL

	if _, err := a.Search(context.Background(), SearchParams{}); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestRemotive_MergesTermSearches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		term := r.URL.Query().Get("search")
		resp := map[string]any{"jobs": []map[string]any{
			{
				"id": 1, "title": "Go Engineer (" + term + ")", "company_name": "Acme",
				"salary": "$140,000 - $170,000", "url": "https://remotive.com/j/1",
			},
			{
				"id": 2, "title": "Platform Engineer", "company_name": "Beta",
				"candidate_required_location": "Europe", "url": "https://remotive.com/j/2",
			},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := NewRemotive(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords: []string{"golang developer"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want one per expanded term", calls.Load())
	}
	// Both terms return ids 1 and 2; the merge dedupes them.
	if len(jobs) != 2 {
		t.Fatalf("len = %d, want 2", len(jobs))
	}
	if jobs[0].SalaryMin != 140000 || jobs[0].SalaryMax != 170000 {
		t.Errorf("salary = (%v, %v), want parsed range", jobs[0].SalaryMin, jobs[0].SalaryMax)
	}
	if jobs[0].Location != "Worldwide" {
		t.Errorf("Location = %q, want Worldwide default", jobs[0].Location)
	}
	if jobs[1].Location != "Europe" {
		t.Errorf("Location = %q, want Europe", jobs[1].Location)
	}
}

func TestRemotive_PartialTermFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "golang" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jobs": []map[string]any{
			{"id": 7, "title": "Backend Engineer", "company_name": "Acme", "url": "u"},
		}})
	}))
	defer srv.Close()

	a := NewRemotive(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords: []string{"golang backend"},
	})
	if err != nil {
		t.Fatalf("surviving term should carry the search: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
}

func TestRemotive_AllTermsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewRemotive(zap.NewNop())
	a.baseURL = srv.URL

	if _, err := a.Search(context.Background(), SearchParams{
		Keywords: []string{"golang"},
	}); err == nil {
		t.Fatal("expected error when every term fails")
	}
}

func TestArbeitnow_RemoteFlagAndExclusions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("remote"); got != "true" {
			t.Errorf("remote = %q, want true", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{
				"slug": "go-berlin", "title": "Go Engineer", "company_name": "Acme",
				"location": "Berlin", "remote": true, "tags": []string{"golang"},
			},
			{
				"slug": "wp-dev", "title": "Wordpress Developer", "company_name": "Other",
				"remote": false, "tags": []string{"php"},
			},
		}})
	}))
	defer srv.Close()

	a := NewArbeitnow(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords:         []string{"golang"},
		ExcludedKeywords: []string{"wordpress"},
		RemoteOnly:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	if jobs[0].SourceID != "go-berlin" {
		t.Errorf("SourceID = %q, want go-berlin", jobs[0].SourceID)
	}
	if jobs[0].RemoteType != RemoteTypeRemote {
		t.Errorf("RemoteType = %q, want remote", jobs[0].RemoteType)
	}
	if jobs[0].URL != srv.URL+"/jobs/go-berlin" {
		t.Errorf("URL = %q, want slug fallback", jobs[0].URL)
	}
}

func TestHimalayas_PagesUntilEmpty(t *testing.T) {
	var offsets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)
		if offset != "0" {
			_ = json.NewEncoder(w).Encode([]map[string]any{})
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"slug": "go-eng", "title": "Go Engineer", "companyName": "Acme",
				"locationRestrictions": []string{"United States", "Canada"},
				"skills":               []string{"golang", "postgres"},
				"excerpt":              "build services", "minSalary": 130000,
				"maxSalary": 160000, "currency": "USD",
			},
		})
	}))
	defer srv.Close()

	a := NewHimalayas(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{Keywords: []string{"golang"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offsets) != 2 || offsets[0] != "0" || offsets[1] != "20" {
		t.Errorf("offsets = %v, want [0 20]", offsets)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	if jobs[0].Location != "United States, Canada" {
		t.Errorf("Location = %q", jobs[0].Location)
	}
	if jobs[0].URL != srv.URL+"/jobs/go-eng" {
		t.Errorf("URL = %q, want slug fallback", jobs[0].URL)
	}
}

func TestJobicy_NumericID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("count"); got != "50" {
			t.Errorf("count = %q, want 50", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jobs": []map[string]any{
			{
				"id": 99123, "jobTitle": "Go Developer", "companyName": "Acme",
				"jobGeo": "USA", "jobExcerpt": "short", "jobDescription": "long form",
				"jobIndustry": []string{"engineering"}, "url": "https://jobicy.com/j/99123",
			},
		}})
	}))
	defer srv.Close()

	a := NewJobicy(zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{Keywords: []string{"developer"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	if jobs[0].SourceID != "99123" {
		t.Errorf("SourceID = %q, want stringified 99123", jobs[0].SourceID)
	}
	if jobs[0].Description != "long form" {
		t.Errorf("Description = %q, want full description preferred", jobs[0].Description)
	}
}

func TestJSearch_SkipsWithoutCredentials(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	a := NewJSearch("", zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{Keywords: []string{"golang"}})
	if err != nil {
		t.Fatalf("missing credentials must not be an error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("len = %d, want 0", len(jobs))
	}
	if hits.Load() != 0 {
		t.Error("adapter must not call the board without credentials")
	}
}

func TestJSearch_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-RapidAPI-Key"); got != "test-key" {
			t.Errorf("X-RapidAPI-Key = %q", got)
		}
		q := r.URL.Query()
		if got := q.Get("query"); got != "golang backend remote" {
			t.Errorf("query = %q", got)
		}
		if got := q.Get("remote_jobs_only"); got != "true" {
			t.Errorf("remote_jobs_only = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{
				"job_id": "abc", "job_title": "Go Engineer", "employer_name": "Acme",
				"job_city": "Austin", "job_state": "TX", "job_country": "US",
				"job_is_remote": true, "job_min_salary": 140000, "job_max_salary": 175000,
				"job_description": "services", "job_apply_link": "https://acme.example/apply",
				"job_required_skills":               []string{"go", "aws"},
				"job_offer_expiration_datetime_utc": "2026-09-30T00:00:00Z",
			},
			{
				"job_title": "No ID Role", "employer_name": "Beta",
				"job_country": "US", "job_google_link": "https://g.example/x",
			},
		}})
	}))
	defer srv.Close()

	a := NewJSearch("test-key", zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords:   []string{"golang", "backend"},
		RemoteOnly: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("len = %d, want 2", len(jobs))
	}

	job := jobs[0]
	if job.Location != "Austin, TX, US" {
		t.Errorf("Location = %q", job.Location)
	}
	if job.RemoteType != RemoteTypeRemote {
		t.Errorf("RemoteType = %q, want remote", job.RemoteType)
	}
	if job.ExpiresAt == nil || job.ExpiresAt.Month() != 9 {
		t.Errorf("ExpiresAt = %v, want parsed September timestamp", job.ExpiresAt)
	}
	if jobs[1].SourceID == "" {
		t.Error("missing job_id must still get a source id")
	}
	if jobs[1].URL != "https://g.example/x" {
		t.Errorf("URL = %q, want google link fallback", jobs[1].URL)
	}
	if jobs[1].Location != "US" {
		t.Errorf("Location = %q, want bare country", jobs[1].Location)
	}
}

func TestAdzuna_SkipsWithoutCredentials(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	a := NewAdzuna("app-id", "", zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{Keywords: []string{"golang"}})
	if err != nil {
		t.Fatalf("missing credentials must not be an error: %v", err)
	}
	if len(jobs) != 0 || hits.Load() != 0 {
		t.Error("adapter must skip silently without a full credential pair")
	}
}

func TestAdzuna_QuerySyntax(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("what"); got != `golang OR "site reliability engineer"` {
			t.Errorf("what = %q", got)
		}
		if got := q.Get("what_exclude"); got != "php wordpress" {
			t.Errorf("what_exclude = %q", got)
		}
		if got := q.Get("salary_min"); got != "120000" {
			t.Errorf("salary_min = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{
			{
				"id": 555, "title": "Remote Go Engineer",
				"description": "distributed systems", "redirect_url": "https://adzuna.example/r/555",
				"salary_min": 130000, "salary_max": 160000,
				"company":  map[string]any{"display_name": "Acme"},
				"location": map[string]any{"display_name": "Austin, TX"},
				"category": map[string]any{"tag": "it-jobs"},
			},
		}})
	}))
	defer srv.Close()

	a := NewAdzuna("app-id", "app-key", zap.NewNop())
	a.baseURL = srv.URL

	jobs, err := a.Search(context.Background(), SearchParams{
		Keywords:         []string{"golang", "site reliability engineer"},
		ExcludedKeywords: []string{"php", "wordpress"},
		SalaryMin:        120000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}

	job := jobs[0]
	if job.SourceID != "555" {
		t.Errorf("SourceID = %q, want stringified 555", job.SourceID)
	}
	if job.RemoteType != RemoteTypeRemote {
		t.Errorf("RemoteType = %q, want inferred remote", job.RemoteType)
	}
	if len(job.Tags) != 1 || job.Tags[0] != "it-jobs" {
		t.Errorf("Tags = %v, want [it-jobs]", job.Tags)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry(config.SourcesConfig{}, zap.NewNop())

	all := reg.Resolve(nil)
	if len(all) != 7 {
		t.Fatalf("len = %d, want 7", len(all))
	}
	if all[0].Name() != "remoteok" || all[6].Name() != "adzuna" {
		t.Errorf("canonical order broken: %s .. %s", all[0].Name(), all[6].Name())
	}

	subset := reg.Resolve([]string{"Adzuna", "remotive", "nosuchboard"})
	if len(subset) != 2 {
		t.Fatalf("len = %d, want 2", len(subset))
	}
	if subset[0].Name() != "remotive" || subset[1].Name() != "adzuna" {
		t.Errorf("subset order = [%s %s], want canonical", subset[0].Name(), subset[1].Name())
	}
}
