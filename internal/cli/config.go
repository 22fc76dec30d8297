package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	ServerURL    string `yaml:"server_url,omitempty"`
	APIKey       string `yaml:"api_key,omitempty"`
	SessionToken string `yaml:"session_token,omitempty"`
	CurrentDraft string `yaml:"current_draft,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hmr", "config.yaml"), nil
}

// loadCLIConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadCLIConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// saveCLIConfig writes the CLI config to disk.
func saveCLIConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// getServerURL returns the configured server URL or the default.
func getServerURL() string {
	cfg, err := loadCLIConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return "https://api.hmr.example.com"
}

// getAPIKey returns the stored API key, or empty if not logged in.
func getAPIKey() string {
	cfg, err := loadCLIConfig()
	if err != nil {
		return ""
	}
	return cfg.APIKey
}

// getCurrentDraft returns the identity of the draft being edited.
func getCurrentDraft() string {
	cfg, err := loadCLIConfig()
	if err != nil {
		return ""
	}
	return cfg.CurrentDraft
}

// setCurrentDraft records which draft subsequent commands operate on.
func setCurrentDraft(id string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		cfg = CLIConfig{}
	}
	cfg.CurrentDraft = id
	return saveCLIConfig(cfg)
}
