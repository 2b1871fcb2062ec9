package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Form
	form := []string{
		"  Tab            Switch between personas and text",
		"  j/k, Up/Down   Choose a persona",
		"  Ctrl+S         Submit the question",
		"  Enter          Submit (persona list)",
		"  ?              Show this help (persona list)",
		"  Esc            Quit",
	}

	formTitle := styleSubtitle.Render("Form")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formTitle))
	b.WriteString("\n")
	formBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(form, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formBox))
	b.WriteString("\n\n")

	// Answer and error screens
	result := []string{
		"  j/k            Scroll the answer",
		"  c              Copy the answer",
		"  r              Retry after an error",
		"  Enter, Esc     Back to the form",
		"  Ctrl+C         Quit from anywhere",
	}

	resultTitle := styleSubtitle.Render("Answer / Error")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultTitle))
	b.WriteString("\n")
	resultBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(result, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
