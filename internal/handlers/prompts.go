package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/hellomcp/hello-world-mcp/internal/content"
)

// GreetingPromptName identifies the single prompt this server exposes.
const GreetingPromptName = "greeting"

// Greeting handles the greeting prompt. The optional "language"
// argument is matched case-insensitively against the known codes;
// anything unrecognized falls back to English rather than failing.
func Greeting(ctx context.Context, args map[string]string) (*mcp.PromptResult, error) {
	language := content.DefaultLanguage
	if requested, ok := args["language"]; ok {
		code := strings.ToLower(requested)
		if _, known := content.Greeting(code); known {
			language = code
		}
	}

	text, _ := content.Greeting(language)
	footer := fmt.Sprintf("\n\n(Available languages: %s)", strings.Join(content.Languages(), ", "))

	return &mcp.PromptResult{
		Description: fmt.Sprintf("Friendly greeting in %s", language),
		Messages: []mcp.PromptMessage{
			{
				Role:    "user",
				Content: mcp.TextContent{Type: "text", Text: text + footer},
			},
		},
	}, nil
}
