package jobsource

import (
	"reflect"
	"testing"
)

func TestExpandTerms(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		max      int
		want     []string
	}{
		{
			name:     "splits multi-word keywords",
			keywords: []string{"golang developer"},
			max:      3,
			want:     []string{"golang", "developer"},
		},
		{
			name:     "drops short words",
			keywords: []string{"go dev sre backend"},
			max:      3,
			want:     []string{"backend"},
		},
		{
			name:     "dedupes across keywords",
			keywords: []string{"senior engineer", "backend engineer"},
			max:      3,
			want:     []string{"senior", "engineer", "backend"},
		},
		{
			name:     "caps at max",
			keywords: []string{"alpha bravo charlie delta"},
			max:      2,
			want:     []string{"alpha", "bravo"},
		},
		{
			name:     "empty input",
			keywords: nil,
			max:      3,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandTerms(tt.keywords, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandTerms(%v, %d) = %v, want %v", tt.keywords, tt.max, got, tt.want)
			}
		})
	}
}

func TestMatchesAnyKeyword(t *testing.T) {
	blob := searchBlob("Senior Go Engineer", "Acme", "backend kubernetes")

	if !matchesAnyKeyword(blob, []string{"python", "kubernetes"}) {
		t.Error("expected match on kubernetes")
	}
	if matchesAnyKeyword(blob, []string{"rust", "elixir"}) {
		t.Error("expected no match")
	}
	if !matchesAnyKeyword(blob, nil) {
		t.Error("empty keyword list must match everything")
	}
	if !matchesAnyKeyword(blob, []string{"GO ENGINEER"}) {
		t.Error("matching must be case-insensitive")
	}
}

func TestMatchesAnyExcluded(t *testing.T) {
	blob := searchBlob("Lead PHP Developer", "Acme")

	if !matchesAnyExcluded(blob, []string{"php"}) {
		t.Error("expected exclusion on php")
	}
	if matchesAnyExcluded(blob, []string{"java"}) {
		t.Error("expected no exclusion")
	}
	if matchesAnyExcluded(blob, nil) {
		t.Error("empty exclusion list must exclude nothing")
	}
}

func TestBelowSalaryFloor(t *testing.T) {
	tests := []struct {
		jobMin float64
		floor  float64
		want   bool
	}{
		{100000, 120000, true},
		{150000, 120000, false},
		{0, 120000, false},
		{100000, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := belowSalaryFloor(tt.jobMin, tt.floor); got != tt.want {
			t.Errorf("belowSalaryFloor(%v, %v) = %v, want %v", tt.jobMin, tt.floor, got, tt.want)
		}
	}
}

func TestInferRemoteType(t *testing.T) {
	if got := inferRemoteType("Remote Go Engineer", ""); got != RemoteTypeRemote {
		t.Errorf("got %q, want remote", got)
	}
	if got := inferRemoteType("Go Engineer", "hybrid schedule, 2 days onsite"); got != RemoteTypeHybrid {
		t.Errorf("got %q, want hybrid", got)
	}
	if got := inferRemoteType("Go Engineer", "downtown office"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	// "remote" wins over "hybrid" when both appear.
	if got := inferRemoteType("Remote or hybrid", ""); got != RemoteTypeRemote {
		t.Errorf("got %q, want remote", got)
	}
}

func TestParseSalaryText(t *testing.T) {
	tests := []struct {
		in      string
		wantMin float64
		wantMax float64
	}{
		{"$140,000 - $170,000", 140000, 170000},
		{"120000", 120000, 120000},
		{"competitive", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		min, max := parseSalaryText(tt.in)
		if min != tt.wantMin || max != tt.wantMax {
			t.Errorf("parseSalaryText(%q) = (%v, %v), want (%v, %v)",
				tt.in, min, max, tt.wantMin, tt.wantMax)
		}
	}
}

func TestCapJobs(t *testing.T) {
	jobs := make([]NormalizedJob, 60)
	if got := capJobs(jobs, 50); len(got) != 50 {
		t.Errorf("len = %d, want 50", len(got))
	}
	if got := capJobs(jobs[:10], 50); len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}

func TestOrUnknown(t *testing.T) {
	if got := orUnknown("  "); got != "Unknown" {
		t.Errorf("got %q, want Unknown", got)
	}
	if got := orUnknown(" Acme "); got != "Acme" {
		t.Errorf("got %q, want Acme", got)
	}
}

func TestNormalizedJobKey(t *testing.T) {
	j := NormalizedJob{Source: "remoteok", SourceID: "12345"}
	if got := j.Key(); got != "remoteok:12345" {
		t.Errorf("Key() = %q, want remoteok:12345", got)
	}
}
