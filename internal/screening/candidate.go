package screening

// UnknownName is the sentinel used when name extraction fails. FullName is
// never empty, so downstream code does not null-check it.
const UnknownName = "Unknown"

// Candidate is a parsed, identity-agnostic resume profile. Every field except
// FullName may be absent; absence only suppresses the questions derived from
// it.
type Candidate struct {
	ID                string           `json:"id,omitempty"`
	FullName          string           `json:"full_name"`
	Email             string           `json:"email,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	CurrentJobTitle   string           `json:"current_job_title,omitempty"`
	CurrentCompany    string           `json:"current_company,omitempty"`
	Location          string           `json:"location,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
	Certifications    []string         `json:"certifications,omitempty"`
	WorkExperience    []WorkExperience `json:"work_experience,omitempty"`
	Education         []Education      `json:"education,omitempty"`
	YearsOfExperience *int             `json:"years_of_experience,omitempty"`
	ResumeText        string           `json:"resume_text,omitempty"`
}

// WorkExperience is one employment entry. The producer is responsible for
// recency ordering: index 0 is treated as the most recent role.
type WorkExperience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"` // empty or "present" for the current role
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
}
