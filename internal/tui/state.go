package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// DefaultPrompt pre-fills the question field
const DefaultPrompt = "繁忙期の需要に合わせて価格と在庫を最適化したい。初期ステップを教えて。"

type focus int

const (
	focusInput focus = iota
	focusPersona
)

type state struct {
	// Form
	labels   []string
	selected int
	focus    focus
	input    textarea.Model
	warning  string

	// In-flight request
	busy    bool
	spinner spinner.Model

	// Last submission
	askedText  string
	askedLabel string

	// Outcome
	result   string
	viewport viewport.Model
	err      error
	notice   string

	modelInfo string
	apiKeyEnv string
}

func newState(labels []string, modelInfo, apiKeyEnv string) *state {
	input := textarea.New()
	input.Placeholder = "相談したい内容を入力..."
	input.ShowLineNumbers = false
	// questions go to the model whole
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(66)
	input.SetHeight(5)
	input.SetValue(DefaultPrompt)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleTitle

	return &state{
		labels:    labels,
		input:     input,
		spinner:   sp,
		viewport:  viewport.New(66, 5),
		modelInfo: modelInfo,
		apiKeyEnv: apiKeyEnv,
	}
}

func (s *state) selectedLabel() string {
	if len(s.labels) == 0 {
		return ""
	}
	return s.labels[s.selected]
}
