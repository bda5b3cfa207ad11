package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteSendsChatRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req aiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)

		w.Write([]byte(`{"choices": [{"message": {"content": "hello farmer"}}]}`))
	}))
	defer srv.Close()

	client := &AIClient{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model", HTTP: srv.Client()}
	out, err := client.Complete([]AIMessage{
		{Role: "system", Content: "you are helpful"},
		{Role: "user", Content: "hi"},
	}, 0.7)
	require.NoError(t, err)
	require.Equal(t, "hello farmer", out)
}

func TestCompleteWithToolReturnsArguments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req aiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tools, 1)
		require.Equal(t, "predict_yield", req.Tools[0].Function.Name)
		require.NotNil(t, req.ToolChoice)
		require.Equal(t, "predict_yield", req.ToolChoice.Function.Name)

		w.Write([]byte(`{"choices": [{"message": {"tool_calls": [{"function": {"name": "predict_yield", "arguments": "{\"predicted_yield\": 21.5}"}}]}}]}`))
	}))
	defer srv.Close()

	client := &AIClient{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model", HTTP: srv.Client()}
	raw, err := client.CompleteWithTool([]AIMessage{{Role: "user", Content: "predict"}}, AIToolSpec{
		Name:       "predict_yield",
		Parameters: map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)

	var args struct {
		PredictedYield float64 `json:"predicted_yield"`
	}
	require.NoError(t, json.Unmarshal(raw, &args))
	require.Equal(t, 21.5, args.PredictedYield)
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := &AIClient{BaseURL: "http://localhost:0", Model: "m", HTTP: http.DefaultClient}
	_, err := client.Complete([]AIMessage{{Role: "user", Content: "hi"}}, 0)
	require.Error(t, err)
}

func TestCompleteSurfacesGatewayErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &AIClient{BaseURL: srv.URL, APIKey: "k", Model: "m", HTTP: srv.Client()}
	_, err := client.Complete([]AIMessage{{Role: "user", Content: "hi"}}, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
