package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	groqBaseURL    = "https://api.groq.com/openai/v1/chat/completions"
	requestTimeout = 60 * time.Second
)

// Provider is the narrow interface the rest of the system sees. Results are
// always fully specified; parsing and defaulting of the raw model output
// stays inside the adapter.
type Provider interface {
	ReviewCode(ctx context.Context, code, language string) (*CodeReview, error)
	AnalyzeResume(ctx context.Context, text string) (*ResumeReport, error)
}

// GroqClient calls the Groq chat-completions API
type GroqClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// NewGroqClient creates a new Groq client
func NewGroqClient(apiKey, model string) *GroqClient {
	return &GroqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: groqBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// ReviewCode asks the model for a structured code review. A response the
// model garbles into invalid JSON degrades to a neutral fallback review
// rather than an error; only transport/API failures surface to the caller.
func (c *GroqClient) ReviewCode(ctx context.Context, code, language string) (*CodeReview, error) {
	prompt := buildCodeReviewPrompt(code, language)

	raw, err := c.complete(ctx, codeReviewSystemPrompt, prompt, 0.3)
	if err != nil {
		return nil, err
	}

	var review CodeReview
	if err := json.Unmarshal([]byte(stripFences(raw)), &review); err != nil {
		review = fallbackCodeReview()
	}
	applyCodeReviewDefaults(&review)

	return &review, nil
}

// AnalyzeResume asks the model for a structured resume report
func (c *GroqClient) AnalyzeResume(ctx context.Context, text string) (*ResumeReport, error) {
	prompt := buildResumePrompt(text)

	raw, err := c.complete(ctx, resumeSystemPrompt, prompt, 0.4)
	if err != nil {
		return nil, err
	}

	var report ResumeReport
	if err := json.Unmarshal([]byte(stripFences(raw)), &report); err != nil {
		report = fallbackResumeReport()
	}
	applyResumeDefaults(&report)

	return &report, nil
}

func (c *GroqClient) complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not set")
	}

	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr chatError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("groq API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("groq API error: status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences the model sometimes wraps its
// JSON in despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
