package jobsource

import (
	"regexp"
	"strconv"
	"strings"
)

// searchBlob concatenates the searchable fields of a posting into one
// lower-cased string for substring matching.
func searchBlob(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

// matchesAnyKeyword reports whether the blob contains at least one keyword,
// case-insensitively. An empty keyword list matches everything; boards that
// filter server-side pass none.
func matchesAnyKeyword(blob string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(blob, k) {
			return true
		}
	}
	return false
}

// matchesAnyExcluded reports whether the blob contains any excluded term.
func matchesAnyExcluded(blob string, excluded []string) bool {
	for _, k := range excluded {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(blob, k) {
			return true
		}
	}
	return false
}

// belowSalaryFloor is true only when both the board figure and the requested
// floor are present and positive; absent or zero salary data never disqualifies.
func belowSalaryFloor(jobMin, floor float64) bool {
	return floor > 0 && jobMin > 0 && jobMin < floor
}

// inferRemoteType keyword-matches title+description for boards without an
// explicit flag. Returns "" when neither remote nor hybrid appears.
func inferRemoteType(title, description string) RemoteType {
	text := searchBlob(title, description)
	if strings.Contains(text, "remote") {
		return RemoteTypeRemote
	}
	if strings.Contains(text, "hybrid") {
		return RemoteTypeHybrid
	}
	return ""
}

// expandTerms splits multi-word keywords into unique single search terms for
// boards whose search handles only one word well. Terms of 3 characters or
// fewer are dropped; at most max terms are returned, in first-seen order.
func expandTerms(keywords []string, max int) []string {
	seen := map[string]bool{}
	terms := make([]string, 0, max)
	for _, k := range keywords {
		for _, w := range strings.Fields(k) {
			w = strings.ToLower(w)
			if len(w) <= 3 || seen[w] {
				continue
			}
			seen[w] = true
			terms = append(terms, w)
			if len(terms) >= max {
				return terms
			}
		}
	}
	return terms
}

func capJobs(jobs []NormalizedJob, n int) []NormalizedJob {
	if n > 0 && len(jobs) > n {
		return jobs[:n]
	}
	return jobs
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func orUnknown(s string) string {
	return pickNonEmpty(s, "Unknown")
}

var numberRe = regexp.MustCompile(`[\d,]+`)

// parseSalaryText pulls up to two numbers out of a free-text salary such as
// "$140,000 - $170,000". Returns zeros when no number is present.
func parseSalaryText(s string) (min, max float64) {
	matches := numberRe.FindAllString(s, 2)
	nums := make([]float64, 0, 2)
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	switch len(nums) {
	case 0:
		return 0, 0
	case 1:
		return nums[0], nums[0]
	default:
		return nums[0], nums[1]
	}
}
