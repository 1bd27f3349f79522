package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Sampling and reply budget shared by all providers. Low temperature keeps
// the extraction consistent between calls; 500 tokens is enough for the
// nutrition schema.
const (
	temperature    = 0.3
	maxReplyTokens = 500
)

var (
	// ErrNotConfigured is returned when the provider credential is missing.
	// No upstream request is attempted in that case.
	ErrNotConfigured = errors.New("credential is not configured")

	// ErrBadReply is returned when the model reply is not valid JSON after
	// the markdown fence has been stripped.
	ErrBadReply = errors.New("model reply is not valid JSON")
)

// Model represents a vision-language model that can analyze food photographs.
type Model interface {
	// Load initializes the model with its configuration
	Load(ctx context.Context) error
	// Analyze sends one base64-encoded image to the model and returns the
	// nutrition object parsed from its reply, byte for byte as the model
	// produced it.
	Analyze(ctx context.Context, imageBase64, mimeType string) (json.RawMessage, error)
}

// ModelFactory creates a new model instance based on configuration
type ModelFactory interface {
	// CreateModel creates a new model instance
	CreateModel() (Model, error)
}

// NewModel creates a new model instance for the given provider.
func NewModel(provider string) (Model, error) {
	var factory ModelFactory

	switch provider {
	case "", "openai":
		config := OpenAIConfig{}
		if err := config.Load(); err != nil {
			return nil, fmt.Errorf("failed to load OpenAI config: %w", err)
		}
		factory = NewOpenAIModelFactory(config)
	case "google":
		config := GoogleConfig{}
		if err := config.Load(); err != nil {
			return nil, fmt.Errorf("failed to load Google config: %w", err)
		}
		factory = NewGoogleModelFactory(config)
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", provider)
	}
	return factory.CreateModel()
}
