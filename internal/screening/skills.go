package screening

import (
	"fmt"
	"strings"
)

// Only the top entries of required_skills are probed; the producer ranks them
// by importance.
const maxProbedSkills = 3

// skillMatchGenerator probes the top job-required skills, branching on
// whether the candidate claims them.
type skillMatchGenerator struct{}

func (skillMatchGenerator) Name() string { return "skill_match" }

func (skillMatchGenerator) Generate(candidate *Candidate, job *Job) []Question {
	claimed := make(map[string]struct{}, len(candidate.Skills))
	for _, skill := range candidate.Skills {
		claimed[strings.ToLower(skill)] = struct{}{}
	}

	required := job.RequiredSkills
	if len(required) > maxProbedSkills {
		required = required[:maxProbedSkills]
	}

	var questions []Question
	for _, skill := range required {
		if _, ok := claimed[strings.ToLower(skill)]; ok {
			questions = append(questions, Question{
				Text: fmt.Sprintf(
					"I see you have experience with %s. Can you describe a project where you used this skill and what your specific contribution was?",
					skill,
				),
				Category: CategorySkills,
				Source:   SourceResume,
			})
			continue
		}

		questions = append(questions, Question{
			Text: fmt.Sprintf(
				"This role requires %s. Do you have any experience with this, or related technologies?",
				skill,
			),
			Category: CategorySkills,
			Source:   SourceJobDescription,
		})
	}

	return questions
}
