package resume

import (
	"reflect"
	"testing"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
)

const sampleResume = `jane doe
Data Analyst at Acme Corp
Location: Austin, TX
jane.doe@example.com | +1 (512) 555-0143

5 years of experience building dashboards with SQL and Python.
Comfortable with PostgreSQL, Docker and Git.
`

func TestParseSampleResume(t *testing.T) {
	candidate := Parse(sampleResume)

	if candidate.FullName != "Jane Doe" {
		t.Fatalf("expected title-cased name, got %q", candidate.FullName)
	}
	if candidate.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", candidate.Email)
	}
	if candidate.Phone == "" {
		t.Fatalf("expected a phone number")
	}
	if candidate.Location != "Austin, TX" {
		t.Fatalf("unexpected location: %q", candidate.Location)
	}
	if candidate.YearsOfExperience == nil || *candidate.YearsOfExperience != 5 {
		t.Fatalf("expected 5 years of experience, got %v", candidate.YearsOfExperience)
	}

	want := []string{"Python", "SQL", "PostgreSQL", "Docker", "Git"}
	if !reflect.DeepEqual(candidate.Skills, want) {
		t.Fatalf("unexpected skills: %v", candidate.Skills)
	}

	if candidate.ResumeText != sampleResume {
		t.Fatalf("resume text was not preserved")
	}
}

func TestParseFallsBackToUnknownName(t *testing.T) {
	candidate := Parse("555-0143 jane.doe@example.com\nno plausible name line")

	if candidate.FullName != screening.UnknownName {
		t.Fatalf("expected the unknown-name sentinel, got %q", candidate.FullName)
	}
}

func TestParseEmptyText(t *testing.T) {
	candidate := Parse("")

	if candidate.FullName != screening.UnknownName {
		t.Fatalf("expected the unknown-name sentinel, got %q", candidate.FullName)
	}
	if len(candidate.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", candidate.Skills)
	}
	if candidate.YearsOfExperience != nil {
		t.Fatalf("expected nil years of experience")
	}
}

func TestParsePhonePicksLongestMatch(t *testing.T) {
	candidate := Parse("Jon Smith\nRef 42\nPhone: +1 415 555 0100\n")

	if candidate.Phone == "" || len(candidate.Phone) < 10 {
		t.Fatalf("expected the full phone number, got %q", candidate.Phone)
	}
}

func TestExtensionAllowed(t *testing.T) {
	for _, tc := range []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.txt", true},
		{"resume.docx", true},
		{"resume.exe", false},
		{"resume", false},
	} {
		if got := ExtensionAllowed(tc.filename); got != tc.want {
			t.Fatalf("ExtensionAllowed(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}
