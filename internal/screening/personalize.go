package screening

import (
	"fmt"
	"strings"
)

// Only the strongest skills are surfaced to the voice agent.
const maxPersonalizedSkills = 5

// Personalization is the payload handed to the call-orchestration side: the
// dynamic variables for the voice agent plus the opening line of the call.
// Like questions, it is derived deterministically and never cached.
type Personalization struct {
	DynamicVariables map[string]string `json:"dynamic_variables"`
	FirstMessage     string            `json:"first_message"`
}

// Personalize builds the call personalization payload for a candidate/job
// pair. Same purity rules as Engine.Generate.
func Personalize(candidate *Candidate, job *Job) Personalization {
	variables := map[string]string{
		"candidate_name": candidate.FullName,
		"job_title":      job.Title,
	}

	if len(candidate.Skills) > 0 {
		skills := candidate.Skills
		if len(skills) > maxPersonalizedSkills {
			skills = skills[:maxPersonalizedSkills]
		}
		variables["candidate_skills"] = strings.Join(skills, ", ")
	}

	return Personalization{
		DynamicVariables: variables,
		FirstMessage: fmt.Sprintf(
			"Hi %s! This is a call regarding your application for the %s position. "+
				"I'm an AI assistant and I'll be asking you a few screening questions. Is now a good time to talk?",
			candidate.FullName, job.Title,
		),
	}
}
