package tui

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/consult/internal/llm"
)

func (a *App) renderError() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("エラーが発生しました")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorError).
		Render("エラー: " + errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(a.state.err, a.state.apiKeyEnv); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [Enter] Edit question  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor maps a failed request to hints, preferring the provider's
// status code over the error text. keyEnv is the provider's key variable.
func suggestionsFor(err error, keyEnv string) []string {
	if err == nil {
		return nil
	}

	switch llm.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apiKeySuggestions(keyEnv)
	case http.StatusTooManyRequests:
		return rateLimitSuggestions
	case http.StatusNotFound:
		return []string{
			"The model or endpoint was not found",
			"Check model and base_url with: consult config",
		}
	}

	errLower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "unauthorized"):
		return apiKeySuggestions(keyEnv)
	case strings.Contains(errLower, "rate limit"):
		return rateLimitSuggestions
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") ||
		strings.Contains(errLower, "timeout") || strings.Contains(errLower, "no such host"):
		return []string{
			"Check your internet connection",
			"Or point base_url at a local Ollama server",
		}
	}
	return nil
}

func apiKeySuggestions(keyEnv string) []string {
	if keyEnv == "" {
		return []string{
			"Set api_key in the config file (consult config)",
		}
	}
	return []string{
		"Set " + keyEnv + " in your environment or .env file",
		"Or set api_key in the config file (consult config)",
	}
}

var rateLimitSuggestions = []string{
	"You've hit the API rate limit",
	"Wait a moment and press [r] to try again",
}
