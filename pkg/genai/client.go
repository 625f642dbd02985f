package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Generator produces study-assistant text and structured documents from an
// opaque generative-text provider.
type Generator interface {
	// Respond returns a free-text completion for a free-text prompt.
	Respond(ctx context.Context, prompt string) (string, error)

	// Summarize condenses text into a few key bullet points.
	Summarize(ctx context.Context, text string) (string, error)

	// GenerateQuiz builds count multiple-choice questions from text, each
	// with four options and a correct answer.
	GenerateQuiz(ctx context.Context, text string, count int) (*Quiz, error)

	// GenerateStudyPlan builds a weekly plan for the given subjects within
	// the given weekly time budget.
	GenerateStudyPlan(ctx context.Context, subjects, hours string) (StudyPlan, error)
}

// Client calls a Gemini-style generateContent REST endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientLogger sets a custom logger for the client.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Generator for cfg. Without an API key the provider cannot
// be reached, so the mocked generator is returned instead, mirroring the
// unconfigured fallback of the original app.
func New(cfg Config, opts ...ClientOption) Generator {
	if cfg.APIKey == "" {
		return NewMockGenerator()
	}
	return NewClient(cfg, opts...)
}

// NewClient creates a provider-backed client. Most callers should use New,
// which falls back to the mock when no API key is configured.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Respond returns a free-text completion for prompt.
func (c *Client) Respond(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// Summarize condenses text into a few key bullet points.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following text in a few key bullet points:\n\n---\n\n%s", text)
	return c.generate(ctx, prompt, nil)
}

// GenerateQuiz builds count multiple-choice questions from text.
func (c *Client) GenerateQuiz(ctx context.Context, text string, count int) (*Quiz, error) {
	prompt := fmt.Sprintf("Generate a quiz with %d multiple-choice questions based on the following text. "+
		"For each question, provide 4 options and indicate the correct answer.\n\nTEXT: \"\"\"\n%s\n\"\"\"", count, text)

	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"question": map[string]any{"type": "STRING"},
						"options":  map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
						"answer":   map[string]any{"type": "STRING"},
					},
				},
			},
		},
	}

	raw, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return nil, errors.Join(ErrQuizGeneration, err)
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &quiz); err != nil {
		return nil, errors.Join(ErrQuizGeneration, err)
	}
	return &quiz, nil
}

// GenerateStudyPlan builds a weekly study plan broken down by day.
func (c *Client) GenerateStudyPlan(ctx context.Context, subjects, hours string) (StudyPlan, error) {
	prompt := fmt.Sprintf("Create a weekly study plan for a student who wants to study the following subjects: %s. "+
		"The student has %s available per week. Break down the plan by day and activity.", subjects, hours)

	days := map[string]any{}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		days[day] = map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}}
	}
	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"plan": map[string]any{"type": "OBJECT", "properties": days},
		},
	}

	raw, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return nil, errors.Join(ErrPlanGeneration, err)
	}

	var doc struct {
		Plan StudyPlan `json:"plan"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &doc); err != nil {
		return nil, errors.Join(ErrPlanGeneration, err)
	}
	return doc.Plan, nil
}

// generateContent wire shapes.
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
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
	ResponseSchema   any    `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call and returns the first
// candidate's text. A non-nil schema requests a JSON document of that shape.
func (c *Client) generate(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if schema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "provider request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("model", c.cfg.Model),
		)
		return "", fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// Compile-time interface assertion
var _ Generator = (*Client)(nil)
