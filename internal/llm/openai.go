package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sant0-9/consult/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider talks to any OpenAI-compatible chat-completions endpoint
type OpenAIProvider struct {
	name   string
	model  string
	client *openai.Client
}

// OpenAIOption customises an OpenAIProvider
type OpenAIOption func(*openai.ClientConfig)

// WithBaseURL points the provider at another OpenAI-compatible endpoint
func WithBaseURL(baseURL string) OpenAIOption {
	return func(c *openai.ClientConfig) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(hc *http.Client) OpenAIOption {
	return func(c *openai.ClientConfig) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// NewOpenAIProvider creates a provider named name. The API key is not
// checked here; a missing key surfaces as an error on the first call.
func NewOpenAIProvider(name, apiKey, model string, opts ...OpenAIOption) *OpenAIProvider {
	if name == "" {
		name = config.DefaultProvider
	}
	if model == "" {
		model = config.DefaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openAIBaseURL
	for _, opt := range opts {
		opt(&cfg)
	}

	return &OpenAIProvider{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (o *OpenAIProvider) Name() string {
	return o.name
}

func (o *OpenAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	resp, err := o.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, newProviderError(o.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, newProviderError(o.name, fmt.Errorf("no response from %s", o.name))
	}

	return &CompletionResponse{
		Content:      resp.Choices[0].Message.Content,
		Model:        model,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		result[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return result
}
