package screening

// Job describes an open position. RequiredSkills is pre-ordered by importance
// by the producer; the engine trusts that ordering and reads at most the
// first three entries. PreferredSkills is carried for future ranking and is
// not consumed by the question engine.
type Job struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	Location        string   `json:"location,omitempty"`
}
