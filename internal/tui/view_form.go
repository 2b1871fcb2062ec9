package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	formTitle = "業界エキスパート相談"
	formUsage = "1. 専門家の種類を選ぶ（航空／鉄道／ホテル／自動車）  2. テキストを入力  3. 送信"
)

func (a *App) renderForm() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	// Header
	title := styleTitle.Render(formTitle)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	if a.state.modelInfo != "" {
		model := styleSubtitle.Render(a.state.modelInfo)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, model))
		b.WriteString("\n")
	}
	usage := styleSubtitle.Render(formUsage)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, usage))
	b.WriteString("\n\n")

	// Persona radio group
	b.WriteString(a.placeLeft(boxWidth, styleLabel.Render("専門家の種類を選択")))
	b.WriteString("\n")

	var personaLines []string
	for i, label := range a.state.labels {
		cursor := "  "
		if a.state.focus == focusPersona && i == a.state.selected {
			cursor = "> "
		}
		var line string
		if i == a.state.selected {
			line = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("%s(•) %s", cursor, label))
		} else {
			line = lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("%s( ) %s", cursor, label))
		}
		personaLines = append(personaLines, line)
	}

	personaBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(a.borderFor(focusPersona)).
		Render(strings.Join(personaLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, personaBox))
	b.WriteString("\n\n")

	// Question
	b.WriteString(a.placeLeft(boxWidth, styleLabel.Render("入力テキスト")))
	b.WriteString("\n")
	inputBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(a.borderFor(focusInput)).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	// Busy indicator or validation warning
	switch {
	case a.state.busy:
		busy := a.state.spinner.View() + " " + styleSubtitle.Render(busyText)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, busy))
		b.WriteString("\n\n")
	case a.state.warning != "":
		warning := styleWarning.Render("! " + a.state.warning)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warning))
		b.WriteString("\n\n")
	}

	// Status bar
	var status string
	switch {
	case a.state.busy:
		status = styleStatusBar.Render("[Ctrl+C] Quit")
	case a.state.focus == focusPersona:
		status = styleStatusBar.Render("[j/k] Select  [Enter/Ctrl+S] Submit  [Tab] Text  [?] Help  [Esc] Quit")
	default:
		status = styleStatusBar.Render("[Ctrl+S] Submit  [Tab] Personas  [Esc] Quit")
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) borderFor(f focus) lipgloss.Color {
	if a.state.focus == f && !a.state.busy {
		return colorSecondary
	}
	return colorMuted
}

// placeLeft aligns s with the left edge of a centered box of width w
func (a *App) placeLeft(w int, s string) string {
	pad := (a.width - w - 2) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
