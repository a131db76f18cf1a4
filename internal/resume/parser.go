// Package resume extracts a structured candidate profile from uploaded
// resume files. Extraction is heuristic: regex patterns and a keyword scan,
// good enough to seed a screening call. It is not an NLP layer.
package resume

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]{3,50}$`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`[+]?[(]?[0-9]{1,3}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`)
	yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`)

	// Whitespace inside these is intra-line only; \s would swallow newlines
	// and drag the following line into the capture.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Location|Address|City)[ \t:]+([A-Za-z ,]+)`),
		regexp.MustCompile(`([A-Za-z ]+,[ \t]*[A-Z]{2})`), // City, ST
	}

	titleCaser = cases.Title(language.English)
)

// commonSkills is the fixed keyword list scanned for in resume text. Matching
// is case-insensitive; the canonical spelling below is what ends up on the
// candidate.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Angular", "Vue",
	"Node.js", "SQL", "PostgreSQL", "MySQL", "MongoDB", "AWS", "Azure", "GCP",
	"Docker", "Kubernetes", "Git", "Agile", "Scrum", "Project Management",
	"Machine Learning", "AI", "Data Science", "Excel", "PowerPoint", "Word",
	"Salesforce", "HubSpot", "Marketing", "Sales", "Leadership", "Communication",
}

// Parse extracts candidate data from resume text. FullName falls back to the
// "Unknown" sentinel so it is never empty.
func Parse(text string) *screening.Candidate {
	candidate := &screening.Candidate{
		FullName:   screening.UnknownName,
		ResumeText: text,
	}

	if name := extractName(text); name != "" {
		candidate.FullName = name
	}

	if email := emailPattern.FindString(text); email != "" {
		candidate.Email = email
	}

	if phone := longestMatch(phonePattern, text); phone != "" {
		candidate.Phone = phone
	}

	candidate.Skills = extractSkills(text)

	if years, ok := extractYears(text); ok {
		candidate.YearsOfExperience = &years
	}

	if location := extractLocation(text); location != "" {
		candidate.Location = location
	}

	return candidate
}

// extractName treats the first non-blank line as the name when it looks like
// one: letters and spaces only, plausible length.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if namePattern.MatchString(line) {
			return titleCaser.String(strings.ToLower(line))
		}
		return ""
	}
	return ""
}

// longestMatch returns the longest match, which for the loose phone pattern
// is most likely the full number rather than a fragment.
func longestMatch(re *regexp.Regexp, text string) string {
	best := ""
	for _, m := range re.FindAllString(text, -1) {
		if len(m) > len(best) {
			best = m
		}
	}
	return best
}

func extractSkills(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, skill := range commonSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

func extractYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}

	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}

func extractLocation(text string) string {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
