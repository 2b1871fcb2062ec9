package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sant0-9/consult/internal/llm"
	"github.com/sant0-9/consult/internal/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu       sync.Mutex
	requests []*llm.CompletionRequest
	content  string
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content, Model: req.Model}, nil
}

func TestAskAviationScenario(t *testing.T) {
	provider := &fakeProvider{content: "TEST-OK"}
	a := New(provider, nil, "")

	const text = "繁忙期の需要に合わせて価格と在庫を最適化したい。初期ステップを教えて。"
	got, err := a.Ask(context.Background(), text, "航空業界の専門家")
	require.NoError(t, err)
	assert.Equal(t, "TEST-OK", got)

	require.Len(t, provider.requests, 1)
	req := provider.requests[0]
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, 0.2, req.Temperature)
	assert.Equal(t, []llm.Message{
		{Role: "system", Content: persona.Builtin().Lookup("航空業界の専門家")},
		{Role: "user", Content: text},
	}, req.Messages)
}

func TestAskUsesPersonaInstruction(t *testing.T) {
	for _, p := range persona.Builtin().All() {
		t.Run(p.Key, func(t *testing.T) {
			provider := &fakeProvider{content: "ok"}
			a := New(provider, nil, "")

			_, err := a.Ask(context.Background(), "question", p.Label)
			require.NoError(t, err)

			require.Len(t, provider.requests, 1)
			assert.Equal(t, p.Instruction, provider.requests[0].Messages[0].Content)
		})
	}
}

func TestAskUnknownLabelFallsBackToDefault(t *testing.T) {
	for _, label := range []string{"", "unknown-persona"} {
		provider := &fakeProvider{content: "ok"}
		a := New(provider, nil, "")

		_, err := a.Ask(context.Background(), "question", label)
		require.NoError(t, err)

		msgs := provider.requests[0].Messages
		require.Len(t, msgs, 2)
		assert.Equal(t, persona.Builtin().Default().Instruction, msgs[0].Content)
		assert.Equal(t, "user", msgs[1].Role)
		assert.Equal(t, "question", msgs[1].Content)
	}
}

func TestAskPropagatesProviderError(t *testing.T) {
	transport := errors.New("dial tcp: connection refused")
	provider := &fakeProvider{err: &llm.ProviderError{Provider: "fake", Err: transport}}
	a := New(provider, nil, "")

	got, err := a.Ask(context.Background(), "question", "鉄道業界の専門家")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, transport)

	var pe *llm.ProviderError
	assert.True(t, errors.As(err, &pe))
	assert.Len(t, provider.requests, 1, "no retry")
}

func TestAskCustomModel(t *testing.T) {
	provider := &fakeProvider{content: "ok"}
	a := New(provider, nil, "gpt-4o")

	_, err := a.Ask(context.Background(), "q", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", provider.requests[0].Model)
	assert.Equal(t, "gpt-4o", a.Model())
}

func TestAskEmptyTextIsForwarded(t *testing.T) {
	provider := &fakeProvider{content: "ok"}
	a := New(provider, nil, "")

	_, err := a.Ask(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "", provider.requests[0].Messages[1].Content)
}
