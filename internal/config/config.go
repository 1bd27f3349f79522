package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	Server struct {
		Port         string   `json:"port"`
		StaticDir    string   `json:"static_dir"`
		Debug        bool     `json:"debug"`
		AllowOrigins []string `json:"allow_origins"`
	} `json:"server"`

	Vision struct {
		Provider string `json:"provider"` // "openai" or "google"
	} `json:"vision"`
}

// LoadConfig loads configuration from a JSON file. A missing file is not an
// error: the service can run entirely on environment variables.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Handle missing values
	if config.Server.Port == "" {
		config.Server.Port = os.Getenv("PORT")
	}
	if config.Server.Port == "" {
		config.Server.Port = "5000"
	}
	if config.Vision.Provider == "" {
		config.Vision.Provider = os.Getenv("VISION_PROVIDER")
	}
	if config.Vision.Provider == "" {
		config.Vision.Provider = "openai"
	}

	return &config, nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() string {
	// First try environment variable
	if path := os.Getenv("KBJU_CONFIG"); path != "" {
		return path
	}

	// Then try config directory
	configDir := "config"
	if _, err := os.Stat(configDir); err == nil {
		return filepath.Join(configDir, "config.json")
	}

	// Finally, try current directory
	return "config.json"
}
