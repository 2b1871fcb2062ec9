package prompts

import (
	"strings"
	"testing"

	"github.com/sant0-9/consult/internal/llm"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		userText    string
	}{
		{name: "plain", instruction: "You are an expert.", userText: "Help me."},
		{name: "empty strings", instruction: "", userText: ""},
		{name: "unicode", instruction: "あなたは航空業界の専門家です。", userText: "繁忙期の需要に合わせて価格と在庫を最適化したい。"},
		{name: "template braces", instruction: "{system_msg}", userText: "{user_text} {{literal}} {0}"},
		{name: "surrounding whitespace", instruction: "  sys\n", userText: "\t user \n\n"},
		{name: "long text", instruction: "x", userText: strings.Repeat("長い入力", 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.instruction, tt.userText)

			if len(got) != 2 {
				t.Fatalf("Compose() returned %d messages, want 2", len(got))
			}
			if got[0] != (llm.Message{Role: "system", Content: tt.instruction}) {
				t.Errorf("system message = %+v, want content %q", got[0], tt.instruction)
			}
			if got[1] != (llm.Message{Role: "user", Content: tt.userText}) {
				t.Errorf("user message = %+v, want content %q", got[1], tt.userText)
			}
		})
	}
}
