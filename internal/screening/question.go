package screening

// Question categories. The engine only ever emits these five.
const (
	CategoryVerification = "verification"
	CategorySkills       = "skills"
	CategoryExperience   = "experience"
	CategoryMotivation   = "motivation"
	CategoryLogistics    = "logistics"
)

// Question sources describe which input a question was derived from.
const (
	SourceResume         = "resume"
	SourceJobDescription = "job_description"
	SourceGeneral        = "general"
)

// Question is a single screening question. It is a plain value: no identity
// beyond its fields, produced fresh on every engine run.
type Question struct {
	Text     string `json:"question"`
	Category string `json:"category"`
	Source   string `json:"source,omitempty"`
}
