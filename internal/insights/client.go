package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrDisabled is returned by the disabled generator; callers fall back to the
// deterministic summary without treating it as a failure.
var ErrDisabled = errors.New("insights: generation disabled")

// Generator produces a JSON insight object from a prompt. Implementations do
// the only I/O in the analytics path, so timeouts and retries live with the
// caller-supplied context and the implementation, never in the core.
type Generator interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Disabled is the no-op Generator injected when the insight feature flag is
// off.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	return nil, ErrDisabled
}

// Config holds the connection settings for the external text-generation
// service.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HTTPGenerator calls a text-generation HTTP endpoint and validates that the
// completion parses as a JSON object.
type HTTPGenerator struct {
	cfg    Config
	client *http.Client
}

// NewHTTPGenerator builds a generator from config. A zero timeout defaults to
// 30 seconds.
func NewHTTPGenerator(cfg Config) *HTTPGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Content string `json:"content"`
}

// Generate posts the prompt and returns the completion as a raw JSON object.
// A completion that is not a JSON object is an error; the caller substitutes
// the deterministic fallback.
func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	payload, err := json.Marshal(generateRequest{Model: g.cfg.Model, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("insights: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("insights: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insights: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("insights: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insights: unexpected status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("insights: decode response: %w", err)
	}

	return ParseObject(decoded.Content)
}

// ParseObject validates that a completion is a non-empty JSON object and
// returns it in compact raw form.
func ParseObject(content string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return nil, fmt.Errorf("insights: completion is not a JSON object: %w", err)
	}
	if len(obj) == 0 {
		return nil, errors.New("insights: completion is an empty object")
	}

	compact := new(bytes.Buffer)
	if err := json.Compact(compact, []byte(content)); err != nil {
		return nil, fmt.Errorf("insights: compact completion: %w", err)
	}
	return json.RawMessage(compact.Bytes()), nil
}
