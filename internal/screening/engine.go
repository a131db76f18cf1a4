package screening

import (
	"go.uber.org/zap"
)

// Generator represents a single question-generation step applied to a
// candidate/job pair.
type Generator interface {
	Name() string
	Generate(candidate *Candidate, job *Job) []Question
}

// Engine derives screening questions from a candidate and a job. It runs a
// fixed sequence of generators and concatenates their output in order. The
// sequence is part of the contract: callers read questions in order.
type Engine struct {
	steps  []Generator
	logger *zap.Logger
}

// NewEngine creates an engine with the standard generator sequence. The
// logger may be nil.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
		steps: []Generator{
			verificationGenerator{},
			skillMatchGenerator{},
			experienceGenerator{},
			roleFitGenerator{},
			logisticsGenerator{},
		},
	}
}

// Generate returns the full ordered question list for the given pair. It is a
// pure function of its inputs: no state, no I/O, safe to call concurrently.
// Partially populated records are valid; a missing field only suppresses the
// questions that depend on it.
func (e *Engine) Generate(candidate *Candidate, job *Job) []Question {
	questions := make([]Question, 0, 8)

	for _, step := range e.steps {
		produced := step.Generate(candidate, job)
		questions = append(questions, produced...)

		if e.logger != nil {
			e.logger.Debug("generator step",
				zap.String("name", step.Name()),
				zap.Int("produced", len(produced)),
				zap.Int("total", len(questions)),
			)
		}
	}

	return questions
}
