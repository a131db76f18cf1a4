// Package elevenlabs is a minimal client for the ElevenLabs Agents Platform:
// outbound screening calls through the Twilio integration and conversation
// lookups afterwards.
package elevenlabs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	defaultAPIURL  = "https://api.elevenlabs.io"
	requestTimeout = 30 * time.Second

	outboundCallPath  = "/v1/convai/twilio/outbound-call"
	conversationsPath = "/v1/convai/conversations/%s"
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New creates a client. The API key is required; use it to decide at startup
// whether call dispatch is available at all.
func New(apiKey string, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("elevenlabs api key is required")
	}

	http := resty.New().
		SetBaseURL(defaultAPIURL).
		SetHeader("xi-api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(requestTimeout)

	return &Client{http: http, logger: logger}, nil
}

// SetBaseURL points the client at a different API host. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// OutboundCallRequest describes one outbound screening call. DynamicVariables
// and FirstMessage personalize the voice agent and are both optional.
type OutboundCallRequest struct {
	AgentID            string
	AgentPhoneNumberID string
	ToNumber           string
	DynamicVariables   map[string]string
	FirstMessage       string
}

// OutboundCallResult mirrors the API response for a dispatched call.
type OutboundCallResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	CallSID        string `json:"callSid"`
}

// InitiateOutboundCall dispatches a call to the candidate through the Twilio
// integration.
func (c *Client) InitiateOutboundCall(ctx context.Context, req *OutboundCallRequest) (*OutboundCallResult, error) {
	if req == nil {
		return nil, errors.New("outbound call request is required")
	}
	if req.AgentID == "" || req.AgentPhoneNumberID == "" {
		return nil, errors.New("agent id and agent phone number id are required")
	}
	if req.ToNumber == "" {
		return nil, errors.New("destination phone number is required")
	}

	payload := map[string]any{
		"agent_id":              req.AgentID,
		"agent_phone_number_id": req.AgentPhoneNumberID,
		"to_number":             req.ToNumber,
	}

	if initiation := buildInitiationData(req); initiation != nil {
		payload["conversation_initiation_client_data"] = initiation
	}

	var result OutboundCallResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post(outboundCallPath)
	if err != nil {
		return nil, fmt.Errorf("outbound call request: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("outbound call: %s: %s", resp.Status(), resp.String())
	}

	if c.logger != nil {
		c.logger.Info("outbound call dispatched",
			zap.String("to_number", req.ToNumber),
			zap.String("conversation_id", result.ConversationID),
			zap.String("call_sid", result.CallSID),
		)
	}

	return &result, nil
}

// buildInitiationData assembles conversation_initiation_client_data, or nil
// when there is nothing to override.
func buildInitiationData(req *OutboundCallRequest) map[string]any {
	initiation := map[string]any{}

	if len(req.DynamicVariables) > 0 {
		initiation["dynamic_variables"] = req.DynamicVariables
	}
	if req.FirstMessage != "" {
		initiation["conversation_config_override"] = map[string]any{
			"agent": map[string]any{
				"first_message": req.FirstMessage,
			},
		}
	}

	if len(initiation) == 0 {
		return nil
	}
	return initiation
}

// ConversationDetails carries the interesting fields of a conversation plus
// the raw document for callers that need more.
type ConversationDetails struct {
	ConversationID string `mapstructure:"conversation_id"`
	AgentID        string `mapstructure:"agent_id"`
	Status         string `mapstructure:"status"`
	Raw            map[string]any `mapstructure:"-"`
}

// GetConversationDetails fetches transcript and status data for a finished or
// in-flight conversation.
func (c *Client) GetConversationDetails(ctx context.Context, conversationID string) (*ConversationDetails, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, errors.New("conversation id is required")
	}

	var raw map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&raw).
		Get(fmt.Sprintf(conversationsPath, conversationID))
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("get conversation: %s", resp.Status())
	}

	var details ConversationDetails
	if err := mapstructure.Decode(raw, &details); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	details.Raw = raw

	return &details, nil
}
