package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"jobhunter/internal/config"
	"jobhunter/internal/knowledge"
)

const anthropicVersion = "2023-06-01"

// Client talks to the Anthropic Messages API. Structured output is requested
// through a forced tool call; replies that come back as plain text instead
// are salvaged by extracting the first JSON object from them.
type Client struct {
	http   *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL("https://api.anthropic.com").
		SetTimeout(90 * time.Second).
		SetHeader("x-api-key", cfg.AnthropicAPIKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   http,
		apiKey: cfg.AnthropicAPIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.http.SetBaseURL(u)
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ScoreMatch scores how well the candidate matches one job description,
// on a 0-100 scale with a coarse recommendation bucket.
func (c *Client) ScoreMatch(ctx context.Context, jobDescription string, kb *knowledge.Base) (MatchResult, error) {
	prompt := fmt.Sprintf(`You are a job matching assistant. Score how well this candidate matches the job description.

## Candidate Profile
%s

## Job Description
%s

Record your verdict with the record_match tool. Focus on: role level match, tech stack overlap, experience relevance. Be realistic - don't inflate scores.`, kb.Format(), jobDescription)

	var result MatchResult
	if err := c.invoke(ctx, prompt, 1024, matchTool, &result); err != nil {
		return MatchResult{}, err
	}
	if err := result.Validate(); err != nil {
		return MatchResult{}, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return result, nil
}

// TailorResume reframes the candidate's knowledge base into a resume
// targeting one job description.
func (c *Client) TailorResume(ctx context.Context, jobDescription string, kb *knowledge.Base) (TailoredResume, error) {
	prompt := fmt.Sprintf(`You are a resume tailoring expert. Restructure and reframe the candidate's experience for this specific job.

## RULES
- NEVER fabricate experience. Only reframe and reorder existing experience.
- Prioritize relevant accomplishments. Match JD keywords naturally.
- Adjust the professional summary to target this role.
- Reorder experience bullets to highlight most relevant first.
- Add relevant keywords from the JD where they genuinely apply.

## Candidate Knowledge Base
%s

## Target Job Description
%s

Record the tailored resume with the record_resume tool. For generatedQuestions, list specific questions about gaps in the knowledge base that matter for this application, each categorized as technical, behavioral or preference.`, kb.Format(), jobDescription)

	var result TailoredResume
	if err := c.invoke(ctx, prompt, 4096, resumeTool, &result); err != nil {
		return TailoredResume{}, err
	}
	if err := result.Validate(); err != nil {
		return TailoredResume{}, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return result, nil
}

type toolSpec struct {
	Name        string
	Description string
	Schema      map[string]any
}

func (c *Client) invoke(ctx context.Context, prompt string, maxTokens int, tool toolSpec, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload := map[string]any{
		"model":      c.model,
		"max_tokens": maxTokens,
		"tools": []map[string]any{{
			"name":         tool.Name,
			"description":  tool.Description,
			"input_schema": tool.Schema,
		}},
		"tool_choice": map[string]any{"type": "tool", "name": tool.Name},
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/v1/messages")
	if err != nil {
		return err
	}

	body := resp.String()
	if resp.StatusCode() != 200 {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = body
		}
		return fmt.Errorf("anthropic api status %d: %s", resp.StatusCode(), msg)
	}

	if input := gjson.Get(body, `content.#(type=="tool_use").input`); input.Exists() {
		if err := json.Unmarshal([]byte(input.Raw), out); err != nil {
			return fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
		}
		return nil
	}

	// Some replies ignore the forced tool and answer in prose.
	text := gjson.Get(body, `content.#(type=="text").text`).String()
	raw := extractJSON(text)
	if raw == "" {
		c.logger.Warn("model reply carried no JSON payload", zap.String("tool", tool.Name))
		return ErrUnparsableResponse
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return nil
}

var matchTool = toolSpec{
	Name:        "record_match",
	Description: "Record the match verdict for one candidate against one job description.",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":          map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"reasoning":      map[string]any{"type": "string", "description": "2-3 sentence explanation"},
			"missingSkills":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"keywordOverlap": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"recommendation": map[string]any{
				"type": "string",
				"enum": []string{RecommendationStrong, RecommendationGood, RecommendationPartial, RecommendationWeak},
			},
		},
		"required": []string{"score", "reasoning", "missingSkills", "keywordOverlap", "recommendation"},
	},
}

var resumeTool = toolSpec{
	Name:        "record_resume",
	Description: "Record the tailored resume for one candidate targeting one job description.",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string", "description": "tailored professional summary, 2-3 sentences"},
			"experience": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"company": map[string]any{"type": "string"},
						"title":   map[string]any{"type": "string"},
						"period":  map[string]any{"type": "string"},
						"bullets": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []string{"company", "title", "period", "bullets"},
				},
			},
			"skills": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"education": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"institution": map[string]any{"type": "string"},
						"degree":      map[string]any{"type": "string"},
						"year":        map[string]any{"type": "string"},
					},
					"required": []string{"institution", "degree", "year"},
				},
			},
			"tailoringNotes": map[string]any{"type": "string", "description": "what was changed and why"},
			"generatedQuestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"context":  map[string]any{"type": "string"},
						"category": map[string]any{"type": "string", "enum": []string{"technical", "behavioral", "preference"}},
					},
					"required": []string{"question", "context", "category"},
				},
			},
		},
		"required": []string{"summary", "experience", "skills", "education", "tailoringNotes", "generatedQuestions"},
	},
}
