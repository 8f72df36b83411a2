// Package oracle talks to the external reasoning service that makes the
// final job-selection judgment. The service is a stateless text-in/text-out
// chat-completion endpoint; this package owns the single-turn call and the
// recovery rules for whatever comes back.
package oracle

import (
	"context"
	"fmt"
	"os"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/jmertens/haulsched/core/logger"
	"github.com/jmertens/haulsched/core/model"
)

// Config defines the connection parameters for the reasoning service.
type Config struct {
	// BaseURL points at any OpenAI-compatible completion API.
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv      string  `json:"api_key_env"`
	Temperature    float64 `json:"temperature"`
	TimeoutSeconds int     `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Model == "" {
		c.Model = "llama3-8b-8192"
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = "GROQ_API_KEY"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	return nil
}

// completer is the single-turn text completion the client depends on.
// Tests substitute it; production uses the chat-completion API.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type chatCompleter struct {
	client      openai.Client
	model       string
	temperature float64
}

func (c *chatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Client asks the oracle for one recommendation per vehicle. Failures are
// contained: one vehicle's bad call never aborts the batch.
type Client struct {
	completer completer
	log       logger.Logger
}

// New builds a Client from the configuration. The API key is read from the
// environment variable named by cfg.APIKeyEnv; an unset key is allowed so a
// dry run against a keyless local endpoint still works.
func New(cfg Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.NopLogger{}
	}
	// One attempt per vehicle: retry policy belongs to the orchestration
	// layer that owns whole-run restarts, not to this client.
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		option.WithMaxRetries(0),
	}
	if key := os.Getenv(cfg.APIKeyEnv); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	return &Client{
		completer: &chatCompleter{
			client:      openai.NewClient(opts...),
			model:       cfg.Model,
			temperature: cfg.Temperature,
		},
		log: log,
	}
}

// Decide sends the payload and reconciles the reply into a Recommendation.
// Transport failures and unreadable replies degrade to the empty
// recommendation; both cases are logged and included in the schedule.
//
// The returned flag is false only when the oracle answered with well-formed
// JSON that lacked the recommended_jobs list; such replies carry no usable
// selection and the vehicle is left out of the schedule entirely.
func (c *Client) Decide(ctx context.Context, vehicleID, payload string) (model.Recommendation, bool) {
	text, err := c.completer.Complete(ctx, payload)
	if err != nil {
		c.log.Errorf("oracle call failed for vehicle %s: %v", vehicleID, err)
		return model.EmptyRecommendation(vehicleID), true
	}
	rec, ok := ExtractRecommendation(text)
	if !ok {
		c.log.Warnf("could not parse oracle reply for vehicle %s", vehicleID)
		return model.EmptyRecommendation(vehicleID), true
	}
	if rec.SelectedJobs == nil {
		c.log.Warnf("oracle reply for vehicle %s has no recommended_jobs list", vehicleID)
		return model.Recommendation{}, false
	}
	return rec, true
}
