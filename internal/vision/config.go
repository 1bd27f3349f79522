package vision

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// BaseConfig is embedded by provider configs. It layers an optional JSON
// config file over environment variables.
type BaseConfig struct {
	ConfigPath string
}

// LoadConfig fills config from the first readable JSON file among the
// explicit path and config/<provider>.json. A missing or unparseable file is
// not an error; the caller falls back to environment variables.
func (c *BaseConfig) LoadConfig(provider string, config any) error {
	paths := []string{c.ConfigPath, filepath.Join("config", provider+".json")}
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, config); err != nil {
			continue
		}
		log.Printf("Loaded %s provider configuration from %s", provider, path)
		return nil
	}

	log.Printf("Using environment variables for %s configuration", provider)
	return nil
}
