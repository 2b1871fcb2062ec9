package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	title := styleTitle.Render("回答")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Show who was asked and what
	who := styleSubtitle.Render(a.state.askedLabel)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, who))
	b.WriteString("\n")
	asked := styleSubtitle.Render("> " + truncate(firstLine(a.state.askedText), 60))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	resultBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(a.state.viewport.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	if a.state.notice != "" {
		notice := lipgloss.NewStyle().Foreground(colorSuccess).Render(a.state.notice)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n\n")
	}

	var statusParts []string
	if !a.state.viewport.AtTop() || !a.state.viewport.AtBottom() {
		statusParts = append(statusParts, fmt.Sprintf("%3.f%%", a.state.viewport.ScrollPercent()*100), "[j/k] Scroll")
	}
	statusParts = append(statusParts, "[c] Copy  [Enter] New question  [Esc] Back")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// resultHeight is the number of answer lines that fit beside the header
// and status bar
func (a *App) resultHeight() int {
	return max(5, a.height-12)
}

// layoutResult wraps the answer to the box width and loads it into the viewport
func (a *App) layoutResult() {
	width := max(10, min(70, a.width-4)-4)
	wrapped := lipgloss.NewStyle().Width(width).Render(a.state.result)

	a.state.viewport.Width = width
	a.state.viewport.Height = min(a.resultHeight(), lipgloss.Height(wrapped))
	a.state.viewport.SetContent(wrapped)
}
