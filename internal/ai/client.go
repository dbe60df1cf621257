package ai

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
	DefaultModel = "gpt-3.5-turbo"

	maxOutputTokens = 1000
	temperature     = 0.7
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the trimmed generated text plus the total token count the
// upstream reported for the exchange.
type Completion struct {
	Text       string
	TokensUsed int
}

// Client wraps one OpenAI-compatible chat-completion endpoint. The
// credential is fixed at construction.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate sends the prompt as a single user-role message and returns the
// completion. No retry; any failure surfaces as one error.
func (c *Client) Generate(ctx context.Context, prompt, model string) (*Completion, error) {
	if model == "" {
		model = DefaultModel
	}

	reqBody := map[string]interface{}{
		"model": model,
		"messages": []ChatMessage{
			{Role: "user", Content: prompt},
		},
		"max_tokens":  maxOutputTokens,
		"temperature": temperature,
		"stream":      false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request failed: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("build completion request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read completion response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion response status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse completion json failed: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty completion choices")
	}

	return &Completion{
		Text:       strings.TrimSpace(parsed.Choices[0].Message.Content),
		TokensUsed: parsed.Usage.TotalTokens,
	}, nil
}

// SummaryPrompt wraps text in the summarization template.
func SummaryPrompt(text string) string {
	return fmt.Sprintf("以下のテキストを簡潔に要約してください:\n\n%s", text)
}

// TranslationPrompt wraps text in the translation template. Target
// language defaults to Japanese.
func TranslationPrompt(text, targetLanguage string) string {
	if targetLanguage == "" {
		targetLanguage = "Japanese"
	}
	return fmt.Sprintf("以下のテキストを%sに翻訳してください:\n\n%s", targetLanguage, text)
}
