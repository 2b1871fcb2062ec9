package prompts

import "github.com/sant0-9/consult/internal/llm"

// Compose builds the two-message prompt sent for every question: the
// persona instruction as the system message followed by the user's text.
// Both strings are passed through untouched.
func Compose(instruction, userText string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: instruction},
		{Role: llm.RoleUser, Content: userText},
	}
}
