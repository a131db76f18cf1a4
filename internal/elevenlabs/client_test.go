package elevenlabs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInitiateOutboundCall(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != outboundCallPath {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"message":         "Call initiated",
			"conversation_id": "conv-1",
			"callSid":         "CA123",
		})
	}))
	defer srv.Close()

	client, err := New("test-key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.SetBaseURL(srv.URL)

	result, err := client.InitiateOutboundCall(context.Background(), &OutboundCallRequest{
		AgentID:            "agent-1",
		AgentPhoneNumberID: "phone-1",
		ToNumber:           "+15125550143",
		DynamicVariables:   map[string]string{"candidate_name": "Jane Doe"},
		FirstMessage:       "Hi Jane!",
	})
	if err != nil {
		t.Fatalf("initiate call: %v", err)
	}

	if !result.Success || result.ConversationID != "conv-1" || result.CallSID != "CA123" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if captured["agent_id"] != "agent-1" || captured["to_number"] != "+15125550143" {
		t.Fatalf("payload not forwarded: %v", captured)
	}

	initiation, ok := captured["conversation_initiation_client_data"].(map[string]any)
	if !ok {
		t.Fatalf("expected conversation initiation data, got %v", captured)
	}
	variables, ok := initiation["dynamic_variables"].(map[string]any)
	if !ok || variables["candidate_name"] != "Jane Doe" {
		t.Fatalf("dynamic variables not forwarded: %v", initiation)
	}
	override, ok := initiation["conversation_config_override"].(map[string]any)
	if !ok {
		t.Fatalf("expected config override, got %v", initiation)
	}
	agent, _ := override["agent"].(map[string]any)
	if agent["first_message"] != "Hi Jane!" {
		t.Fatalf("first message not forwarded: %v", override)
	}
}

func TestInitiateOutboundCallOmitsEmptyInitiation(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client, err := New("test-key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.SetBaseURL(srv.URL)

	if _, err := client.InitiateOutboundCall(context.Background(), &OutboundCallRequest{
		AgentID:            "agent-1",
		AgentPhoneNumberID: "phone-1",
		ToNumber:           "+15125550143",
	}); err != nil {
		t.Fatalf("initiate call: %v", err)
	}

	if _, ok := captured["conversation_initiation_client_data"]; ok {
		t.Fatalf("did not expect initiation data for a bare request: %v", captured)
	}
}

func TestInitiateOutboundCallValidation(t *testing.T) {
	client, err := New("test-key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.InitiateOutboundCall(context.Background(), &OutboundCallRequest{
		AgentID: "agent-1",
	}); err == nil {
		t.Fatalf("expected an error for missing fields")
	}
}

func TestGetConversationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/convai/conversations/conv-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"conversation_id": "conv-1",
			"agent_id":        "agent-1",
			"status":          "done",
			"transcript":      []any{map[string]any{"role": "agent", "message": "Hi"}},
		})
	}))
	defer srv.Close()

	client, err := New("test-key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.SetBaseURL(srv.URL)

	details, err := client.GetConversationDetails(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("get conversation: %v", err)
	}

	if details.ConversationID != "conv-1" || details.Status != "done" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if _, ok := details.Raw["transcript"]; !ok {
		t.Fatalf("expected raw transcript to be preserved")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New("   ", nil); err == nil {
		t.Fatalf("expected an error for empty api key")
	}
}
