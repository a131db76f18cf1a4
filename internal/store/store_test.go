package store

import (
	"testing"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
)

func TestCandidateRoundTrip(t *testing.T) {
	s := New()

	id := s.AddCandidate(&screening.Candidate{FullName: "Jane Doe"})
	if id == "" {
		t.Fatalf("expected an assigned id")
	}

	candidate, ok := s.Candidate(id)
	if !ok || candidate.FullName != "Jane Doe" {
		t.Fatalf("candidate not found after insert")
	}

	if _, ok := s.Candidate("missing"); ok {
		t.Fatalf("did not expect a hit for an unknown id")
	}
}

func TestListingPreservesInsertionOrder(t *testing.T) {
	s := New()

	first := s.AddJob(&screening.Job{Title: "First", Description: "d"})
	second := s.AddJob(&screening.Job{Title: "Second", Description: "d"})

	jobs := s.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != first || jobs[1].ID != second {
		t.Fatalf("jobs out of insertion order")
	}
}

func TestCallContextLookupNormalizesPhone(t *testing.T) {
	s := New()

	s.RegisterCallContext("+1 (512) 555-0143", &CallContext{FullName: "Jane Doe", JobTitle: "Engineer"})

	ctx, ok := s.CallContextByPhone("+15125550143")
	if !ok {
		t.Fatalf("expected lookup to hit across formatting differences")
	}
	if ctx.FullName != "Jane Doe" {
		t.Fatalf("unexpected context: %+v", ctx)
	}

	if _, ok := s.CallContextByPhone("+15125550000"); ok {
		t.Fatalf("did not expect a hit for an unknown number")
	}
}

func TestNormalizePhone(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"+1 (512) 555-0143", "+15125550143"},
		{"512.555.0143", "5125550143"},
		{"", ""},
	} {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAddCallAssignsID(t *testing.T) {
	s := New()

	id := s.AddCall(&CallStatus{CandidateID: "c1", JobID: "j1", Status: CallStatusInitiated})
	call, ok := s.Call(id)
	if !ok || call.Status != CallStatusInitiated {
		t.Fatalf("call not found after insert")
	}
}
