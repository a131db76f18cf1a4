package screening

// logisticsGenerator emits the fixed availability question. Employment-gap
// detection over work_experience dates is an open extension point and is
// intentionally not performed here.
type logisticsGenerator struct{}

func (logisticsGenerator) Name() string { return "logistics" }

func (logisticsGenerator) Generate(*Candidate, *Job) []Question {
	return []Question{{
		Text:     "What is your availability to start? Are you currently in a notice period?",
		Category: CategoryLogistics,
		Source:   SourceGeneral,
	}}
}
