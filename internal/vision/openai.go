package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o"
)

// OpenAIConfig holds configuration for the OpenAI provider
type OpenAIConfig struct {
	BaseConfig
	APIKey  string `json:"api_key"`
	ModelID string `json:"model"`
	BaseURL string `json:"base_url"`
}

// Load loads the OpenAI configuration
func (c *OpenAIConfig) Load() error {
	if err := c.LoadConfig("openai", c); err != nil {
		return err
	}

	// Fall back to environment variables if not set
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.ModelID == "" {
		c.ModelID = os.Getenv("OPENAI_MODEL")
	}
	if c.ModelID == "" {
		c.ModelID = defaultOpenAIModel
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultOpenAIBaseURL
	}

	return nil
}

// OpenAIModel implements the Model interface for the OpenAI chat completions API
type OpenAIModel struct {
	config OpenAIConfig
	client *http.Client
}

// OpenAIModelFactory implements ModelFactory for OpenAI models
type OpenAIModelFactory struct {
	config OpenAIConfig
}

// NewOpenAIModelFactory creates a new OpenAI model factory
func NewOpenAIModelFactory(config OpenAIConfig) *OpenAIModelFactory {
	return &OpenAIModelFactory{config: config}
}

// CreateModel creates a new OpenAI model instance
func (f *OpenAIModelFactory) CreateModel() (Model, error) {
	return &OpenAIModel{
		config: f.config,
	}, nil
}

// Load initializes the OpenAI model. A missing API key is not a load error;
// Analyze reports it per request without contacting the API.
func (m *OpenAIModel) Load(ctx context.Context) error {
	m.client = &http.Client{Timeout: 60 * time.Second}
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the image to the chat completions endpoint and parses the
// nutrition object out of the reply.
func (m *OpenAIModel) Analyze(ctx context.Context, imageBase64, mimeType string) (json.RawMessage, error) {
	if m.config.APIKey == "" {
		return nil, fmt.Errorf("%w: add OPENAI_API_KEY to your .env file", ErrNotConfigured)
	}

	payload := chatRequest{
		Model: m.config.ModelID,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{
					URL:    fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
					Detail: "high",
				}},
			}},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.config.APIKey)

	client := m.client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai api error: %s", string(raw))
	}

	var result chatResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode openai response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response generated")
	}

	return parseReply(result.Choices[0].Message.Content)
}
