package server

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Nakul24-1/merge-dev-proto/internal/elevenlabs"
	"github.com/Nakul24-1/merge-dev-proto/internal/logger"
	"github.com/Nakul24-1/merge-dev-proto/internal/resume"
	"github.com/Nakul24-1/merge-dev-proto/internal/screening"
	"github.com/Nakul24-1/merge-dev-proto/internal/store"
)

const maxResumeSize = 5 * 1024 * 1024

func (s *Server) uploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	if !resume.ExtensionAllowed(file.Filename) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("file type not supported, allowed: %v", resume.AllowedExtensions))
	}

	if file.Size > maxResumeSize {
		return fiber.NewError(fiber.StatusBadRequest, "resume file is too large (max 5MB)")
	}

	savePath := filepath.Join(s.cfg.UploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}

	text, err := resume.ExtractFile(savePath)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("extract resume text: %v", err))
	}

	candidate := resume.Parse(text)
	id := s.store.AddCandidate(candidate)

	if s.logger != nil {
		s.logger.Info("resume parsed",
			zap.String("candidate_id", id),
			zap.String("full_name", candidate.FullName),
			zap.Int("skills", len(candidate.Skills)),
			zap.String("preview", logger.TruncateForLog(text, 120)),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(candidate)
}

func (s *Server) listCandidates(c *fiber.Ctx) error {
	return c.JSON(s.store.Candidates())
}

func (s *Server) getCandidate(c *fiber.Ctx) error {
	candidate, ok := s.store.Candidate(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "candidate not found")
	}
	return c.JSON(candidate)
}

type jobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Company         string   `json:"company"`
	Description     string   `json:"description" validate:"required"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Location        string   `json:"location"`
}

func (s *Server) createJob(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job payload")
	}

	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid job: %v", err))
	}

	job := &screening.Job{
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,
		Location:        req.Location,
	}
	s.store.AddJob(job)

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (s *Server) listJobs(c *fiber.Ctx) error {
	return c.JSON(s.store.Jobs())
}

func (s *Server) generateQuestions(c *fiber.Ctx) error {
	candidate, ok := s.store.Candidate(c.Query("candidate_id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "candidate not found")
	}
	job, ok := s.store.Job(c.Query("job_id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	questions := s.engine.Generate(candidate, job)

	// The AI questioner only ever augments: failures degrade to the
	// rule-based list.
	if s.asker != nil {
		extra, err := s.asker.GenerateQuestions(c.Context(), candidate, job)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("ai question generation failed", zap.Error(err))
			}
		} else {
			questions = append(questions, extra...)
		}
	}

	return c.JSON(questions)
}

type callRequest struct {
	CandidateID        string `json:"candidate_id" validate:"required"`
	JobID              string `json:"job_id" validate:"required"`
	AgentID            string `json:"agent_id"`
	AgentPhoneNumberID string `json:"agent_phone_number_id"`
}

func (s *Server) initiateCall(c *fiber.Ctx) error {
	var req callRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid call payload")
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid call request: %v", err))
	}

	if s.calls == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "call dispatch is not configured (set the elevenlabs api key)")
	}

	candidate, ok := s.store.Candidate(req.CandidateID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "candidate not found")
	}
	job, ok := s.store.Job(req.JobID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	if candidate.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "candidate has no phone number")
	}

	agentID := req.AgentID
	if agentID == "" {
		agentID = s.cfg.AgentID
	}
	phoneNumberID := req.AgentPhoneNumberID
	if phoneNumberID == "" {
		phoneNumberID = s.cfg.AgentPhoneNumberID
	}
	if agentID == "" || phoneNumberID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "agent_id and agent_phone_number_id are required (request or config)")
	}

	// Register for inbound recognition before dispatching, so a quick
	// call-back still resolves.
	s.store.RegisterCallContext(candidate.Phone, &store.CallContext{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		FullName:    candidate.FullName,
		JobTitle:    job.Title,
		Skills:      candidate.Skills,
	})

	personalization := screening.Personalize(candidate, job)

	result, err := s.calls.InitiateOutboundCall(c.Context(), &elevenlabs.OutboundCallRequest{
		AgentID:            agentID,
		AgentPhoneNumberID: phoneNumberID,
		ToNumber:           candidate.Phone,
		DynamicVariables:   personalization.DynamicVariables,
		FirstMessage:       personalization.FirstMessage,
	})

	call := &store.CallStatus{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      store.CallStatusInitiated,
	}
	if err != nil {
		call.Status = store.CallStatusFailed
		call.Message = err.Error()
	} else {
		call.ConversationID = result.ConversationID
		call.CallSID = result.CallSID
	}
	s.store.AddCall(call)

	if err != nil {
		if s.logger != nil {
			s.logger.Error("call dispatch failed",
				zap.String("candidate_id", candidate.ID),
				zap.Error(err),
			)
		}
		return c.Status(fiber.StatusBadGateway).JSON(call)
	}

	return c.Status(fiber.StatusCreated).JSON(call)
}

func (s *Server) getCall(c *fiber.Ctx) error {
	call, ok := s.store.Call(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "call not found")
	}
	return c.JSON(call)
}

func (s *Server) getCallDetails(c *fiber.Ctx) error {
	call, ok := s.store.Call(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "call not found")
	}
	if call.ConversationID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no conversation id for this call")
	}
	if s.calls == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "call dispatch is not configured (set the elevenlabs api key)")
	}

	details, err := s.calls.GetConversationDetails(c.Context(), call.ConversationID)
	if err != nil {
		return fmt.Errorf("get conversation details: %w", err)
	}

	return c.JSON(details.Raw)
}
