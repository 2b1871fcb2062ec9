package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file
const (
	EnvProvider = "CONSULT_PROVIDER"
	EnvModel    = "CONSULT_MODEL"
	EnvBaseURL  = "CONSULT_BASE_URL"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// DefaultConfig is the file written by `consult config init`
func DefaultConfig() *Config {
	return &Config{
		Provider: DefaultProvider,
		Model:    DefaultModel,
	}
}

func ConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("cannot determine config directory")
	}
	return filepath.Join(xdg.ConfigHome, "consult"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file from the default location. A missing file
// yields nil, nil.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Resolve builds the effective configuration: defaults, then the config file
// at path (the default location when empty), then .env, then the environment.
func Resolve(path string) (*Config, error) {
	return resolve(path, ".env")
}

func resolve(path, dotEnv string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		// model stays empty so fillDefaults picks the provider's own
		cfg = &Config{Provider: DefaultProvider}
	}

	if err := loadDotEnv(dotEnv); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	return cfg, nil
}

// loadDotEnv overrides the process environment with the file's values.
// The file is optional.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}

	provider := c.Provider
	if provider == "" {
		provider = DefaultProvider
	}
	if info := GetProvider(provider); info != nil && info.APIKeyEnv != "" {
		if v := os.Getenv(info.APIKeyEnv); v != "" {
			c.APIKey = v
		}
	}
}

func (c *Config) fillDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	info := GetProvider(c.Provider)
	if info == nil {
		return
	}
	if c.Model == "" {
		c.Model = info.DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = info.BaseURL
	}
}

// MaskedAPIKey returns the key with its middle hidden
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "Not set"
	}
	if len(c.APIKey) > 8 {
		return c.APIKey[:4] + "****" + c.APIKey[len(c.APIKey)-4:]
	}
	return "****"
}
