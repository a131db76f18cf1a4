package screening

import "fmt"

// experienceGenerator digs into concrete work history and general role
// relevance.
type experienceGenerator struct{}

func (experienceGenerator) Name() string { return "experience" }

func (experienceGenerator) Generate(candidate *Candidate, job *Job) []Question {
	var questions []Question

	if len(candidate.WorkExperience) > 0 {
		// Index 0 is the most recent role by construction; no re-sorting here.
		latest := candidate.WorkExperience[0]
		questions = append(questions, Question{
			Text:     fmt.Sprintf("Tell me about your role at %s. What were your main responsibilities?", latest.Company),
			Category: CategoryExperience,
			Source:   SourceResume,
		})
	}

	questions = append(questions, Question{
		Text:     fmt.Sprintf("What experience do you have that's most relevant to the %s position?", job.Title),
		Category: CategoryExperience,
		Source:   SourceJobDescription,
	})

	return questions
}
