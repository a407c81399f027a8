package ai

import "fmt"

const (
	RecommendationStrong  = "strong_match"
	RecommendationGood    = "good_match"
	RecommendationPartial = "partial_match"
	RecommendationWeak    = "weak_match"
)

// MatchResult is the scorer's verdict on one job against the candidate
// knowledge base.
type MatchResult struct {
	Score          int      `json:"score"`
	Reasoning      string   `json:"reasoning"`
	MissingSkills  []string `json:"missingSkills"`
	KeywordOverlap []string `json:"keywordOverlap"`
	Recommendation string   `json:"recommendation"`
}

func (m MatchResult) Validate() error {
	if m.Score < 0 || m.Score > 100 {
		return fmt.Errorf("score %d out of range", m.Score)
	}
	switch m.Recommendation {
	case RecommendationStrong, RecommendationGood, RecommendationPartial, RecommendationWeak:
		return nil
	default:
		return fmt.Errorf("unknown recommendation %q", m.Recommendation)
	}
}

// TailoredResume is a reframing of the candidate's existing experience for
// one specific job. It never introduces experience absent from the knowledge
// base; the prompt forbids fabrication.
type TailoredResume struct {
	Summary            string              `json:"summary"`
	Experience         []ExperienceItem    `json:"experience"`
	Skills             map[string][]string `json:"skills"`
	Education          []EducationItem     `json:"education"`
	TailoringNotes     string              `json:"tailoringNotes"`
	GeneratedQuestions []GeneratedQuestion `json:"generatedQuestions"`
}

type ExperienceItem struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// GeneratedQuestion flags a knowledge-base gap the tailor noticed while
// writing the resume.
type GeneratedQuestion struct {
	Question string `json:"question"`
	Context  string `json:"context"`
	Category string `json:"category"`
}

func (r TailoredResume) Validate() error {
	if r.Summary == "" {
		return fmt.Errorf("empty summary")
	}
	return nil
}
