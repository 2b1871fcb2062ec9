package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/consult/internal/persona"
)

// Messages shown to the user
const (
	warnEmptyInput = "入力テキストを入れてください。"
	busyText       = "LLMに問い合わせ中…"
	copiedText     = "クリップボードにコピーしました"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

type view int

const (
	viewForm view = iota
	viewResult
	viewError
	viewHelp
)

// Asker answers userText in the voice of the persona labelled label
type Asker interface {
	Ask(ctx context.Context, userText, label string) (string, error)
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	asker    Asker
	quitting bool
}

// NewApp creates the form for the personas in catalog. modelInfo is shown
// under the title. apiKeyEnv names the variable holding the provider's key
// and may be empty for keyless providers.
func NewApp(asker Asker, catalog *persona.Catalog, modelInfo, apiKeyEnv string) *App {
	s := newState(catalog.Labels(), modelInfo, apiKeyEnv)
	s.input.Focus()

	return &App{
		width:  80,
		height: 24,
		view:   viewForm,
		state:  s,
		asker:  asker,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.input.SetWidth(max(20, min(70, a.width-4)-4))
		if a.view == viewResult {
			a.layoutResult()
		}

	case tea.MouseMsg:
		if a.view == viewResult {
			var cmd tea.Cmd
			a.state.viewport, cmd = a.state.viewport.Update(msg)
			return a, cmd
		}

	case spinner.TickMsg:
		if !a.state.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case answerMsg:
		a.state.busy = false
		a.state.result = msg.text
		a.state.err = nil
		a.state.notice = ""
		a.view = viewResult
		a.layoutResult()
		return a, nil

	case askErrorMsg:
		a.state.busy = false
		a.state.err = msg.error
		a.view = viewError
		return a, nil
	}

	if a.view == viewForm && a.state.focus == focusInput && !a.state.busy {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey reports whether the key was consumed; unconsumed keys go to the
// text area.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewHelp:
		if key.Matches(msg, keys.Quit, keys.Enter, keys.Help) {
			a.view = viewForm
		}
		return nil, true

	case viewResult:
		switch {
		case key.Matches(msg, keys.Quit, keys.Enter):
			return a.backToForm(), true
		case key.Matches(msg, keys.Copy):
			if err := writeClipboard(a.state.result); err != nil {
				a.state.notice = "コピーできませんでした: " + err.Error()
			} else {
				a.state.notice = copiedText
			}
		default:
			var cmd tea.Cmd
			a.state.viewport, cmd = a.state.viewport.Update(msg)
			return cmd, true
		}
		return nil, true

	case viewError:
		switch {
		case key.Matches(msg, keys.Quit, keys.Enter):
			return a.backToForm(), true
		case key.Matches(msg, keys.Retry):
			a.view = viewForm
			return a.submit(), true
		}
		return nil, true
	}

	return a.handleFormKey(msg)
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// One request at a time.
	if a.state.busy {
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Submit):
		return a.submit(), true

	case key.Matches(msg, keys.Tab):
		return a.toggleFocus(), true
	}

	if a.state.focus != focusPersona {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(a.state.labels)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Enter):
		return a.submit(), true
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
	}

	return nil, true
}

func (a *App) toggleFocus() tea.Cmd {
	if a.state.focus == focusInput {
		a.state.focus = focusPersona
		a.state.input.Blur()
		return nil
	}
	a.state.focus = focusInput
	return a.state.input.Focus()
}

func (a *App) backToForm() tea.Cmd {
	a.view = viewForm
	a.state.notice = ""
	if a.state.focus == focusInput {
		return a.state.input.Focus()
	}
	return nil
}

// submit validates the form and starts a request. Blank input only sets a
// warning.
func (a *App) submit() tea.Cmd {
	text := a.state.input.Value()
	if strings.TrimSpace(text) == "" {
		a.state.warning = warnEmptyInput
		return nil
	}

	label := a.state.selectedLabel()
	a.state.warning = ""
	a.state.busy = true
	a.state.askedText = text
	a.state.askedLabel = label

	return tea.Batch(a.state.spinner.Tick, a.ask(text, label))
}

func (a *App) ask(text, label string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.asker.Ask(context.Background(), text, label)
		if err != nil {
			return askErrorMsg{err}
		}
		return answerMsg{answer}
	}
}

type answerMsg struct{ text string }
type askErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewResult:
		return a.renderResult()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
