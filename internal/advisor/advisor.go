package advisor

import (
	"context"
	"log"
	"time"

	"github.com/sant0-9/consult/internal/config"
	"github.com/sant0-9/consult/internal/llm"
	"github.com/sant0-9/consult/internal/persona"
	"github.com/sant0-9/consult/internal/prompts"
)

const (
	DefaultModel = config.DefaultModel

	// Temperature is kept low so answers stay conservative and repeatable.
	Temperature = 0.2
)

// Advisor answers a question in the voice of a persona
type Advisor struct {
	provider llm.Provider
	catalog  *persona.Catalog
	model    string
}

// New creates an advisor. A nil catalog means the built-in personas.
func New(provider llm.Provider, catalog *persona.Catalog, model string) *Advisor {
	if catalog == nil {
		catalog = persona.Builtin()
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{
		provider: provider,
		catalog:  catalog,
		model:    model,
	}
}

// Catalog returns the personas the advisor answers with
func (a *Advisor) Catalog() *persona.Catalog {
	return a.catalog
}

// Model returns the model identifier sent with every request
func (a *Advisor) Model() string {
	return a.model
}

// Ask sends userText framed by the persona labelled label and returns the
// completion text. Unknown labels use the default persona. userText is not
// validated; callers reject blank input. Provider errors are returned as is.
func (a *Advisor) Ask(ctx context.Context, userText, label string) (string, error) {
	req := &llm.CompletionRequest{
		Model:       a.model,
		Messages:    prompts.Compose(a.catalog.Lookup(label), userText),
		Temperature: Temperature,
	}

	start := time.Now()
	resp, err := a.provider.Complete(ctx, req)
	if err != nil {
		log.Printf("ask persona=%q provider=%s model=%s failed after %s: %v",
			label, a.provider.Name(), a.model, time.Since(start).Round(time.Millisecond), err)
		return "", err
	}

	log.Printf("ask persona=%q provider=%s model=%s tokens=%d in %s",
		label, a.provider.Name(), resp.Model, resp.Usage.TotalTokens, time.Since(start).Round(time.Millisecond))

	return resp.Content, nil
}
