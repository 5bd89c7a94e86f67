package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prepdrill/internal/config"
	"prepdrill/internal/scoring"
	"prepdrill/internal/services"
)

const (
	providerName       = "openai"
	defaultBaseURL     = "https://api.openai.com/v1/chat/completions"
	defaultModel       = "gpt-3.5-turbo"
	defaultHTTPTimeout = 15 * time.Second
	probeReplyLimit    = 200
)

// Client wraps an OpenAI-compatible chat-completions API.
type Client struct {
	cfg        config.ProviderConfig
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a chat-completions client from provider settings.
func NewClient(cfg config.ProviderConfig, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.Model == "" {
		client.cfg.Model = defaultModel
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client
}

// Name identifies this provider in the scoring registry.
func (c *Client) Name() string { return providerName }

// Score asks the model to grade an answer and parses the reply through the
// shared two-stage parser. A single attempt is made; every failure is tagged
// for the orchestrator to absorb.
func (c *Client) Score(ctx context.Context, question, answer string) (*scoring.Result, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, services.Wrap(services.ErrConfiguration, providerName, "score", "api key required", nil)
	}
	text, err := c.complete(ctx, "score", scoreSystemPrompt, scoreUserPrompt(question, answer))
	if err != nil {
		return nil, err
	}
	result, err := scoring.ParseReply(text)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, providerName, "score", "", err)
	}
	return result, nil
}

// Validate sends a minimal prompt to probe the configured credential. It
// returns the model's reply truncated for display, or the failure. Diagnostic
// only; never called during normal scoring.
func (c *Client) Validate(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", services.Wrap(services.ErrConfiguration, providerName, "validate", "api key required", nil)
	}
	text, err := c.complete(ctx, "validate", probeSystemPrompt, probeUserPrompt)
	if err != nil {
		return "", err
	}
	return truncateReply(text), nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
		// Legacy completion-style responses put the content here.
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) complete(ctx context.Context, op, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
		MaxTokens:   300,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(encoded))
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "request failed", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "read body", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", services.Wrap(services.ErrProvider, providerName, op,
			fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}
	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "decode response", err)
	}
	if completion.Error != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "api error: "+strings.TrimSpace(completion.Error.Message), nil)
	}
	for _, choice := range completion.Choices {
		if content := strings.TrimSpace(choice.Message.Content); content != "" {
			return content, nil
		}
		if content := strings.TrimSpace(choice.Text); content != "" {
			return content, nil
		}
	}
	return "", services.Wrap(services.ErrProvider, providerName, op, "empty completion content", nil)
}

func truncateReply(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > probeReplyLimit {
		return string(runes[:probeReplyLimit])
	}
	return text
}
