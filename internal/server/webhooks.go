package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// inboundRequest is what ElevenLabs posts when a candidate calls the
// screening number back.
type inboundRequest struct {
	CallerID     string `json:"caller_id"`
	AgentID      string `json:"agent_id"`
	CalledNumber string `json:"called_number"`
	CallSID      string `json:"call_sid"`
}

// initiationResponse is the conversation initiation payload ElevenLabs
// expects back from the personalization webhook.
type initiationResponse struct {
	Type             string            `json:"type"`
	DynamicVariables map[string]string `json:"dynamic_variables"`
	ConfigOverride   map[string]any    `json:"conversation_config_override,omitempty"`
}

const initiationResponseType = "conversation_initiation_client_data"

// twilioInbound personalizes an inbound call when the caller's number matches
// a registered screening context, and falls back to a generic greeting
// otherwise.
func (s *Server) twilioInbound(c *fiber.Ctx) error {
	if s.cfg.WebhookSecret != "" && c.Get("X-Webhook-Secret") != s.cfg.WebhookSecret {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook secret")
	}

	var req inboundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook payload")
	}

	ctx, ok := s.store.CallContextByPhone(req.CallerID)
	if !ok {
		if s.logger != nil {
			s.logger.Info("inbound call from unknown number", zap.String("call_sid", req.CallSID))
		}
		return c.JSON(initiationResponse{
			Type: initiationResponseType,
			DynamicVariables: map[string]string{
				"candidate_name":    "there",
				"is_returning_call": "false",
			},
			ConfigOverride: firstMessageOverride(
				"Hello! Thank you for calling our recruitment line. " +
					"Are you calling about a recent job application? Could I have your name please?",
			),
		})
	}

	if s.logger != nil {
		s.logger.Info("inbound call recognized",
			zap.String("candidate_id", ctx.CandidateID),
			zap.String("call_sid", req.CallSID),
		)
	}

	variables := map[string]string{
		"candidate_name":    ctx.FullName,
		"job_title":         ctx.JobTitle,
		"is_returning_call": "true",
	}
	if len(ctx.Skills) > 0 {
		skills := ctx.Skills
		if len(skills) > 3 {
			skills = skills[:3]
		}
		variables["candidate_skills"] = strings.Join(skills, ", ")
	}

	return c.JSON(initiationResponse{
		Type:             initiationResponseType,
		DynamicVariables: variables,
		ConfigOverride: firstMessageOverride(fmt.Sprintf(
			"Hi %s! Thanks for returning our call about the %s position. "+
				"I'm ready to continue with your screening whenever you are. Shall we begin?",
			ctx.FullName, ctx.JobTitle,
		)),
	})
}

func firstMessageOverride(message string) map[string]any {
	return map[string]any{
		"agent": map[string]any{
			"first_message": message,
		},
	}
}
