package ai

import (
	"context"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
)

// Questioner produces additional screening questions with an AI provider.
// It augments the rule-based engine and never replaces it: callers append
// its output after the deterministic list, and drop it entirely on error.
type Questioner interface {
	GenerateQuestions(ctx context.Context, candidate *screening.Candidate, job *screening.Job) ([]screening.Question, error)
}
