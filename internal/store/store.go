// Package store keeps candidates, jobs and call records in memory for the
// lifetime of the process. Nothing survives restart.
package store

import (
	"strings"
	"sync"

	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/google/uuid"
)

// Call statuses.
const (
	CallStatusInitiated = "initiated"
	CallStatusFailed    = "failed"
)

// CallStatus records one dispatched (or attempted) screening call.
type CallStatus struct {
	CallID         string `json:"call_id"`
	CandidateID    string `json:"candidate_id"`
	JobID          string `json:"job_id"`
	Status         string `json:"status"`
	ConversationID string `json:"conversation_id,omitempty"`
	CallSID        string `json:"call_sid,omitempty"`
	Message        string `json:"message,omitempty"`
}

// CallContext is what the inbound webhook needs to recognize a returning
// caller: who they are and which role they were screened for.
type CallContext struct {
	CandidateID string   `json:"candidate_id"`
	JobID       string   `json:"job_id"`
	FullName    string   `json:"full_name"`
	JobTitle    string   `json:"job_title"`
	Skills      []string `json:"skills,omitempty"`
}

// Store is a mutex-guarded set of registries. Safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	candidates   map[string]*screening.Candidate
	candidateIDs []string
	jobs         map[string]*screening.Job
	jobIDs       []string
	calls        map[string]*CallStatus
	callContexts map[string]*CallContext // keyed by normalized phone
}

func New() *Store {
	return &Store{
		candidates:   make(map[string]*screening.Candidate),
		jobs:         make(map[string]*screening.Job),
		calls:        make(map[string]*CallStatus),
		callContexts: make(map[string]*CallContext),
	}
}

// AddCandidate assigns an ID and stores the candidate.
func (s *Store) AddCandidate(candidate *screening.Candidate) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = uuid.NewString()
	s.candidates[candidate.ID] = candidate
	s.candidateIDs = append(s.candidateIDs, candidate.ID)
	return candidate.ID
}

func (s *Store) Candidate(id string) (*screening.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate, ok := s.candidates[id]
	return candidate, ok
}

// Candidates returns all candidates in insertion order.
func (s *Store) Candidates() []*screening.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*screening.Candidate, 0, len(s.candidateIDs))
	for _, id := range s.candidateIDs {
		out = append(out, s.candidates[id])
	}
	return out
}

// AddJob assigns an ID and stores the job.
func (s *Store) AddJob(job *screening.Job) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = uuid.NewString()
	s.jobs[job.ID] = job
	s.jobIDs = append(s.jobIDs, job.ID)
	return job.ID
}

func (s *Store) Job(id string) (*screening.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	return job, ok
}

// Jobs returns all jobs in insertion order.
func (s *Store) Jobs() []*screening.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*screening.Job, 0, len(s.jobIDs))
	for _, id := range s.jobIDs {
		out = append(out, s.jobs[id])
	}
	return out
}

// AddCall assigns a call ID and stores the record.
func (s *Store) AddCall(call *CallStatus) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	call.CallID = uuid.NewString()
	s.calls[call.CallID] = call
	return call.CallID
}

func (s *Store) Call(id string) (*CallStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	call, ok := s.calls[id]
	return call, ok
}

// RegisterCallContext indexes the context under the candidate's normalized
// phone number so an inbound call can be recognized later. A later
// registration for the same number wins.
func (s *Store) RegisterCallContext(phone string, ctx *CallContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callContexts[NormalizePhone(phone)] = ctx
}

func (s *Store) CallContextByPhone(phone string) (*CallContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, ok := s.callContexts[NormalizePhone(phone)]
	return ctx, ok
}

// NormalizePhone strips formatting so the same number always hits the same
// key: digits and a leading + survive, everything else is dropped.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
