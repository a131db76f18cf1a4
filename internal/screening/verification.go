package screening

import "fmt"

// verificationGenerator surfaces resume facts the candidate should confirm
// aloud, to catch stale or incorrect data before deeper questioning.
type verificationGenerator struct{}

func (verificationGenerator) Name() string { return "verification" }

func (verificationGenerator) Generate(candidate *Candidate, job *Job) []Question {
	var questions []Question

	if candidate.CurrentJobTitle != "" {
		questions = append(questions, Question{
			Text:     fmt.Sprintf("Can you confirm your current role as %s?", candidate.CurrentJobTitle),
			Category: CategoryVerification,
			Source:   SourceResume,
		})
	}

	// A stated 0 years still counts as present; only nil suppresses.
	if candidate.YearsOfExperience != nil {
		questions = append(questions, Question{
			Text:     fmt.Sprintf("Your resume indicates about %d years of experience. Is that accurate?", *candidate.YearsOfExperience),
			Category: CategoryVerification,
			Source:   SourceResume,
		})
	}

	if candidate.Location != "" && job.Location != "" {
		questions = append(questions, Question{
			Text: fmt.Sprintf(
				"The role is based in %s. You're currently in %s. Would you be open to relocating or is remote work preferred?",
				job.Location, candidate.Location,
			),
			Category: CategoryVerification,
			Source:   SourceJobDescription,
		})
	}

	return questions
}
