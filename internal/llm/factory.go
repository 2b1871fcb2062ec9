package llm

import (
	"fmt"

	"github.com/sant0-9/consult/internal/config"
)

// NewProvider creates a provider from config. Credentials are not checked;
// the provider reports them on the first request.
func NewProvider(cfg *config.Config) (Provider, error) {
	info := config.GetProvider(cfg.Provider)
	if info == nil {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = info.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%s provider requires base_url", info.ID)
	}

	model := cfg.Model
	if model == "" {
		model = info.DefaultModel
	}

	apiKey := cfg.APIKey
	if !info.NeedsAPIKey && apiKey == "" {
		// local servers ignore the key but the client always sends a header
		apiKey = info.ID
	}

	return NewOpenAIProvider(info.ID, apiKey, model, WithBaseURL(baseURL)), nil
}
