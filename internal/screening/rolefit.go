package screening

import (
	"fmt"
	"strings"
)

// roleFitGenerator assesses stated motivation and flags an implicit career
// pivot.
type roleFitGenerator struct{}

func (roleFitGenerator) Name() string { return "role_fit" }

func (roleFitGenerator) Generate(candidate *Candidate, job *Job) []Question {
	company := job.Company
	if company == "" {
		company = "our company"
	}

	questions := []Question{
		{
			Text:     fmt.Sprintf("What attracted you to apply for the %s role at %s?", job.Title, company),
			Category: CategoryMotivation,
			Source:   SourceJobDescription,
		},
		{
			Text:     "Where do you see yourself in 2-3 years, and how does this role fit into that?",
			Category: CategoryMotivation,
			Source:   SourceGeneral,
		},
	}

	if isCareerPivot(candidate.CurrentJobTitle, job.Title) {
		questions = append(questions, Question{
			Text: fmt.Sprintf(
				"Your background is in %s, but you're applying for %s. What's driving this career transition?",
				candidate.CurrentJobTitle, job.Title,
			),
			Category: CategoryMotivation,
			Source:   SourceResume,
		})
	}

	return questions
}

// isCareerPivot reports whether the current title shares no word with the job
// title. Whitespace tokens of the lowered current title are tested as
// substrings of the lowered job title. This is a deliberate word-overlap
// heuristic: it false-negatives on synonyms ("Engineer" vs "Developer") and
// false-positives on stop-words, and that imprecision is accepted behavior.
func isCareerPivot(currentTitle, jobTitle string) bool {
	if currentTitle == "" || jobTitle == "" {
		return false
	}

	jobLower := strings.ToLower(jobTitle)
	for _, word := range strings.Fields(strings.ToLower(currentTitle)) {
		if strings.Contains(jobLower, word) {
			return false
		}
	}

	return true
}
