package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxQuestions = 5

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Questioner asks Gemini for extra screening questions on top of the
// rule-based set.
type Questioner struct {
	generator    contentGenerator
	logger       *zap.Logger
	maxQuestions int
}

func NewQuestioner(generator contentGenerator, logger *zap.Logger, maxQuestions int) *Questioner {
	if maxQuestions <= 0 {
		maxQuestions = defaultMaxQuestions
	}

	return &Questioner{
		generator:    generator,
		logger:       logger,
		maxQuestions: maxQuestions,
	}
}

func (q *Questioner) GenerateQuestions(ctx context.Context, candidate *screening.Candidate, job *screening.Job) ([]screening.Question, error) {
	if candidate == nil || job == nil {
		return nil, fmt.Errorf("candidate and job are required")
	}

	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal job payload: %w", err)
	}

	prompt := buildPrompt(string(candidateJSON), string(jobJSON), q.maxQuestions)

	raw, err := q.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions := parseQuestions(raw)
	if len(questions) > q.maxQuestions {
		questions = questions[:q.maxQuestions]
	}

	if q.logger != nil {
		q.logger.Debug("ai questions generated",
			zap.Int("count", len(questions)),
			zap.String("job_title", job.Title),
		)
	}

	return questions, nil
}

func buildPrompt(candidateJSON, jobJSON string, maxQuestions int) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{CANDIDATE_JSON}}", candidateJSON)
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", jobJSON)
	prompt = strings.ReplaceAll(prompt, "{{MAX_QUESTIONS}}", fmt.Sprintf("%d", maxQuestions))
	return prompt
}

// parseQuestions pulls question records out of the model response. Entries
// without text are dropped; off-schema categories and sources are coerced to
// safe defaults rather than failing the whole batch.
func parseQuestions(raw string) []screening.Question {
	cleaned := extractJSON(raw)

	var questions []screening.Question
	for _, item := range gjson.Get(cleaned, "questions").Array() {
		text := strings.TrimSpace(item.Get("question").String())
		if text == "" {
			continue
		}

		questions = append(questions, screening.Question{
			Text:     text,
			Category: normalizeCategory(item.Get("category").String()),
			Source:   normalizeSource(item.Get("source").String()),
		})
	}

	return questions
}

func normalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case screening.CategoryVerification:
		return screening.CategoryVerification
	case screening.CategoryExperience:
		return screening.CategoryExperience
	case screening.CategoryMotivation:
		return screening.CategoryMotivation
	case screening.CategoryLogistics:
		return screening.CategoryLogistics
	default:
		return screening.CategorySkills
	}
}

func normalizeSource(source string) string {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case screening.SourceResume:
		return screening.SourceResume
	case screening.SourceJobDescription:
		return screening.SourceJobDescription
	default:
		return screening.SourceGeneral
	}
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its response.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}
