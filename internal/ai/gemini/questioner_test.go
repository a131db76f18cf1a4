package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testPair() (*screening.Candidate, *screening.Job) {
	return &screening.Candidate{FullName: "Jane Doe", Skills: []string{"Go"}},
		&screening.Job{Title: "Backend Engineer", Description: "Build services"}
}

func TestQuestionerGenerateQuestions(t *testing.T) {
	stub := &stubGenerator{response: `{
		"questions": [
			{"question": "Walk me through your largest Go service.", "category": "skills", "source": "resume"},
			{"question": "Why backend work?", "category": "motivation", "source": "general"}
		]
	}`}
	questioner := NewQuestioner(stub, zap.NewNop(), 5)

	candidate, job := testPair()
	questions, err := questioner.GenerateQuestions(context.Background(), candidate, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Category != screening.CategorySkills || questions[0].Source != screening.SourceResume {
		t.Fatalf("unexpected first question: %+v", questions[0])
	}

	if !strings.Contains(stub.lastPrompt, "Jane Doe") {
		t.Fatalf("expected candidate payload in prompt")
	}
	if !strings.Contains(stub.lastPrompt, "Backend Engineer") {
		t.Fatalf("expected job payload in prompt")
	}
}

func TestQuestionerStripsCodeFences(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + `{"questions": [{"question": "Q?", "category": "skills", "source": "general"}]}` + "\n```"}
	questioner := NewQuestioner(stub, zap.NewNop(), 5)

	candidate, job := testPair()
	questions, err := questioner.GenerateQuestions(context.Background(), candidate, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Q?" {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

func TestQuestionerCoercesOffSchemaFields(t *testing.T) {
	stub := &stubGenerator{response: `{
		"questions": [
			{"question": "Q1?", "category": "technical", "source": "model"},
			{"question": "", "category": "skills", "source": "resume"}
		]
	}`}
	questioner := NewQuestioner(stub, zap.NewNop(), 5)

	candidate, job := testPair()
	questions, err := questioner.GenerateQuestions(context.Background(), candidate, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 1 {
		t.Fatalf("expected the empty entry to be dropped, got %d questions", len(questions))
	}
	if questions[0].Category != screening.CategorySkills || questions[0].Source != screening.SourceGeneral {
		t.Fatalf("expected coerced defaults, got %+v", questions[0])
	}
}

func TestQuestionerCapsOutput(t *testing.T) {
	stub := &stubGenerator{response: `{"questions": [
		{"question": "Q1?"}, {"question": "Q2?"}, {"question": "Q3?"}
	]}`}
	questioner := NewQuestioner(stub, zap.NewNop(), 2)

	candidate, job := testPair()
	questions, err := questioner.GenerateQuestions(context.Background(), candidate, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(questions))
	}
}

func TestQuestionerPropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	questioner := NewQuestioner(stub, zap.NewNop(), 5)

	candidate, job := testPair()
	if _, err := questioner.GenerateQuestions(context.Background(), candidate, job); err == nil {
		t.Fatalf("expected generator error to propagate")
	}
}
