// Package groq implements the model extraction path against the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/extract"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Config carries client settings. BaseURL is overridable so tests can
// point the client at a local mock server.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Client calls the chat completions endpoint and decodes the response
// into a StructuredRecord. It implements extract.ModelExtractor.
type Client struct {
	api    *openai.Client
	cfg    Config
	cache  llm.ResponseCache
	logger *slog.Logger
}

// NewClient builds a Groq client. A nil cache disables response
// caching.
func NewClient(cfg Config, cache llm.ResponseCache, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "meta-llama/llama-4-scout-17b-16e-instruct"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &Client{
		api:    openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		cache:  cache,
		logger: logger,
	}, nil
}

// ExtractRecord sends receipt text to the model and returns the
// decoded record. The raw payload is cached by prompt fingerprint, so
// re-processing identical text skips the API entirely.
func (c *Client) ExtractRecord(ctx context.Context, text string) (*extract.StructuredRecord, error) {
	prompt := llm.BuildPrompt(text)
	key := llm.Fingerprint(prompt)

	if c.cache != nil {
		if payload, ok := c.cache.Get(key); ok {
			c.logger.Debug("llm.extract.cache_hit", "key", key)
			return decodePayload(payload)
		}
	}

	payload, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Set(key, payload)
	}
	return decodePayload(payload)
}

func (c *Client) complete(ctx context.Context, prompt string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	c.logger.Info("llm.extract.start", "model", c.cfg.Model)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		c.logger.Error("llm.extract.failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: empty response")
	}

	payload, err := llm.ExtractJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	c.logger.Info("llm.extract.ok",
		"model", c.cfg.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"payload_bytes", len(payload),
	)
	return payload, nil
}

func decodePayload(payload []byte) (*extract.StructuredRecord, error) {
	clean, err := llm.SanitizeRecordJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildRecordJSONSchema(), clean); err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	rec, err := extract.DecodeLooseRecord(clean)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	return rec, nil
}
