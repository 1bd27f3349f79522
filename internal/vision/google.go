package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

const defaultGoogleModel = "gemini-pro-vision"

// GoogleConfig holds configuration for the Vertex AI provider
type GoogleConfig struct {
	BaseConfig
	ProjectID       string `json:"project_id"`
	Location        string `json:"location"`
	CredentialsFile string `json:"credentials_file"`
	ModelID         string `json:"model"`
}

// Load loads the Google configuration
func (c *GoogleConfig) Load() error {
	if err := c.LoadConfig("google", c); err != nil {
		return err
	}

	// Fall back to environment variables if not set
	if c.ProjectID == "" {
		c.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if c.Location == "" {
		c.Location = os.Getenv("GOOGLE_LOCATION")
	}
	if c.CredentialsFile == "" {
		c.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}
	if c.ModelID == "" {
		c.ModelID = os.Getenv("GOOGLE_MODEL")
	}
	if c.ModelID == "" {
		c.ModelID = defaultGoogleModel
	}

	return nil
}

// GoogleModel implements the Model interface for Google's Vertex AI
type GoogleModel struct {
	config GoogleConfig
	client *genai.Client
	model  *genai.GenerativeModel
}

// GoogleModelFactory implements ModelFactory for Google models
type GoogleModelFactory struct {
	config GoogleConfig
}

// NewGoogleModelFactory creates a new Google model factory
func NewGoogleModelFactory(config GoogleConfig) *GoogleModelFactory {
	return &GoogleModelFactory{config: config}
}

// CreateModel creates a new Google model instance
func (f *GoogleModelFactory) CreateModel() (Model, error) {
	return &GoogleModel{
		config: f.config,
	}, nil
}

// Load initializes the Vertex AI client. A missing project ID is not a load
// error; Analyze reports it per request without contacting the API.
func (m *GoogleModel) Load(ctx context.Context) error {
	if m.config.ProjectID == "" {
		return nil
	}

	opts := []option.ClientOption{}
	if m.config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(m.config.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, m.config.ProjectID, m.config.Location, opts...)
	if err != nil {
		return fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(m.config.ModelID)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxReplyTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	m.client = client
	m.model = model
	return nil
}

// Analyze sends the image to Gemini and parses the nutrition object out of
// the reply. Vertex AI takes raw image bytes, so the base64 data is decoded
// back before the call.
func (m *GoogleModel) Analyze(ctx context.Context, imageBase64, mimeType string) (json.RawMessage, error) {
	if m.model == nil {
		return nil, fmt.Errorf("%w: set GOOGLE_PROJECT_ID in your .env file", ErrNotConfigured)
	}

	imageData, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	img := genai.ImageData(strings.TrimPrefix(mimeType, "image/"), imageData)

	resp, err := m.model.GenerateContent(ctx, genai.Text(userPrompt), img)
	if err != nil {
		return nil, fmt.Errorf("failed to call vertex ai: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response generated")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	return parseReply(fmt.Sprintf("%v", candidate.Content.Parts[0]))
}
