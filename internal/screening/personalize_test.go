package screening

import (
	"strings"
	"testing"
)

func TestPersonalize(t *testing.T) {
	candidate := &Candidate{
		FullName: "Jane Doe",
		Skills:   []string{"Go", "SQL", "AWS", "Docker", "Kubernetes", "Terraform"},
	}
	job := &Job{Title: "Platform Engineer", Description: "Run the platform"}

	p := Personalize(candidate, job)

	if p.DynamicVariables["candidate_name"] != "Jane Doe" {
		t.Fatalf("unexpected candidate_name: %q", p.DynamicVariables["candidate_name"])
	}
	if p.DynamicVariables["job_title"] != "Platform Engineer" {
		t.Fatalf("unexpected job_title: %q", p.DynamicVariables["job_title"])
	}

	skills := p.DynamicVariables["candidate_skills"]
	if skills != "Go, SQL, AWS, Docker, Kubernetes" {
		t.Fatalf("expected top 5 skills only, got %q", skills)
	}

	if !strings.Contains(p.FirstMessage, "Jane Doe") || !strings.Contains(p.FirstMessage, "Platform Engineer") {
		t.Fatalf("first message is not personalized: %q", p.FirstMessage)
	}
}

func TestPersonalizeWithoutSkills(t *testing.T) {
	p := Personalize(&Candidate{FullName: "A"}, &Job{Title: "B", Description: "C"})

	if _, ok := p.DynamicVariables["candidate_skills"]; ok {
		t.Fatalf("did not expect candidate_skills variable for a skill-less candidate")
	}
}
