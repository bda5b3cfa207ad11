package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"krishimitra-backend/utils"
)

// AIClient talks to an OpenAI-compatible chat-completions gateway. BaseURL
// and HTTP are injectable so tests can point it at a local server.
type AIClient struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

func NewAIClientFromEnv() *AIClient {
	return &AIClient{
		BaseURL: utils.EnvOrDefault("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1"),
		APIKey:  utils.EnvOrDefault("AI_API_KEY", ""),
		Model:   utils.EnvOrDefault("AI_MODEL", "google/gemini-2.5-flash"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type AIMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string or []AIContentPart
}

type AIContentPart struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *AIImageURL `json:"image_url,omitempty"`
}

type AIImageURL struct {
	URL string `json:"url"`
}

// AIToolSpec declares a function the model is forced to call; used for
// structured outputs like yield predictions.
type AIToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

type aiRequest struct {
	Model       string        `json:"model"`
	Messages    []AIMessage   `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	Tools       []aiTool      `json:"tools,omitempty"`
	ToolChoice  *aiToolChoice `json:"tool_choice,omitempty"`
}

type aiTool struct {
	Type     string     `json:"type"`
	Function aiFunction `json:"function"`
}

type aiFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type aiToolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type aiResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *AIClient) post(req aiRequest) (*aiResponse, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("AI gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("AI API error: %d %s", resp.StatusCode, string(text))
	}

	var out aiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode AI response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("AI response contained no choices")
	}
	return &out, nil
}

// Complete runs a plain chat completion and returns the assistant text.
func (c *AIClient) Complete(messages []AIMessage, temperature float64) (string, error) {
	resp, err := c.post(aiRequest{Model: c.Model, Messages: messages, Temperature: &temperature})
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteWithTool forces a single function call and returns its raw JSON
// arguments.
func (c *AIClient) CompleteWithTool(messages []AIMessage, tool AIToolSpec) (json.RawMessage, error) {
	choice := &aiToolChoice{Type: "function"}
	choice.Function.Name = tool.Name

	resp, err := c.post(aiRequest{
		Model:    c.Model,
		Messages: messages,
		Tools: []aiTool{{
			Type: "function",
			Function: aiFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		}},
		ToolChoice: choice,
	})
	if err != nil {
		return nil, err
	}

	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil, fmt.Errorf("AI response contained no tool call")
	}
	return json.RawMessage(calls[0].Function.Arguments), nil
}
