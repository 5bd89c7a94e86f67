package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prepdrill/internal/config"
	"prepdrill/internal/scoring"
	"prepdrill/internal/services"
)

const (
	providerName       = "gemini"
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel       = "gemini-1.5-flash"
	defaultHTTPTimeout = 15 * time.Second
	probeReplyLimit    = 200
)

// Client wraps the Gemini generateContent REST API. Unlike the
// chat-completions provider it sends one combined prompt and reads candidate
// parts, but it shares the same reply-parsing strategy.
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

// NewClient constructs a generateContent client from provider settings.
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

// Score asks the model to grade an answer. Single attempt, tagged failures,
// same parse fallback behaviour as the chat-completions provider.
func (c *Client) Score(ctx context.Context, question, answer string) (*scoring.Result, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, services.Wrap(services.ErrConfiguration, providerName, "score", "api key required", nil)
	}
	text, err := c.generate(ctx, "score", scorePrompt(question, answer))
	if err != nil {
		return nil, err
	}
	result, err := scoring.ParseReply(text)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, providerName, "score", "", err)
	}
	return result, nil
}

// Validate probes the configured credential with a minimal prompt and returns
// a truncated reply. Diagnostic only.
func (c *Client) Validate(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", services.Wrap(services.ErrConfiguration, providerName, "validate", "api key required", nil)
	}
	text, err := c.generate(ctx, "validate", "Please reply with a short confirmation: OK.")
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > probeReplyLimit {
		return string(runes[:probeReplyLimit]), nil
	}
	return text, nil
}

const scorePromptTemplate = "You are an expert interview coach. Evaluate the user's answer to the question using a short rubric. " +
	"Return a JSON object containing at least: score (0-10), feedback (brief text).\n" +
	"Question: %s\n\nAnswer: %s\n\nReturn the result as JSON."

func scorePrompt(question, answer string) string {
	return fmt.Sprintf(scorePromptTemplate, question, answer)
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, op, prompt string) (string, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, "models", c.cfg.Model+":generateContent")
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "build url", err)
	}
	payload := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: 0.2, MaxOutputTokens: 300},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

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
	var generated generateResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "decode response", err)
	}
	if generated.Error != nil {
		return "", services.Wrap(services.ErrProvider, providerName, op, "api error: "+strings.TrimSpace(generated.Error.Message), nil)
	}
	for _, candidate := range generated.Candidates {
		var builder strings.Builder
		for _, piece := range candidate.Content.Parts {
			builder.WriteString(piece.Text)
		}
		if text := strings.TrimSpace(builder.String()); text != "" {
			return text, nil
		}
	}
	return "", services.Wrap(services.ErrProvider, providerName, op, "empty candidate content", nil)
}
