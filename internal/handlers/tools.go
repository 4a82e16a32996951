// Package handlers implements the tool, resource, and prompt handlers
// the server registers with the MCP framework.
package handlers

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// HelloInput is the (empty) input for the hello_world tool.
type HelloInput struct{}

// TimeInput is the (empty) input for the get_current_time tool.
type TimeInput struct{}

// EchoInput is the input for the echo tool.
type EchoInput struct {
	Message string `json:"message" jsonschema:"description=The text message to echo back"`
}

const helloWorldMessage = "Hello, World from MCP! 🌍 This is your first MCP server response."

// maxEchoRunes is the echo tool's input limit, counted in characters
// (code points), not bytes.
const maxEchoRunes = 1000

// guard runs a tool body and converts any failure, including a panic,
// into an ordinary text payload. Tool faults never reach the protocol
// layer as errors; the response text describes the problem instead.
func guard(tool string, fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("Error in %s tool: %v", tool, r)
			err = nil
		}
	}()

	text, err = fn()
	if err != nil {
		return fmt.Sprintf("Error in %s tool: %v", tool, err), nil
	}
	return text, nil
}

// HelloWorld handles the hello_world tool.
func HelloWorld(HelloInput) (string, error) {
	return guard("hello_world", func() (string, error) {
		return helloWorldMessage, nil
	})
}

// CurrentTime handles the get_current_time tool.
func CurrentTime(TimeInput) (string, error) {
	return guard("get_current_time", func() (string, error) {
		return TimeReport(time.Now()), nil
	})
}

// TimeReport renders one instant four ways: UTC, local time with zone,
// RFC 3339, and fractional epoch seconds.
func TimeReport(now time.Time) string {
	utc := now.UTC()
	local := now.Local()

	return fmt.Sprintf(`Current Time Information:
🕐 UTC Time: %s
🏠 Local Time: %s
📅 ISO Format: %s
⏱️  Timestamp: %.6f`,
		utc.Format("2006-01-02 15:04:05 UTC"),
		local.Format("2006-01-02 15:04:05 MST"),
		utc.Format(time.RFC3339Nano),
		float64(now.UnixMicro())/1e6)
}

// Echo handles the echo tool. Validation failures are reported as
// response text, not protocol errors.
func Echo(in EchoInput) (string, error) {
	return guard("echo", func() (string, error) {
		if in.Message == "" {
			return "Error: No message provided to echo. Please provide a message parameter.", nil
		}
		if utf8.RuneCountInString(in.Message) > maxEchoRunes {
			return "Error: Message too long. Please provide a message under 1000 characters.", nil
		}

		return fmt.Sprintf(`Echo Response:
📝 Original: %q
📏 Length: %d characters
🔄 Reversed: %q
📊 Word Count: %d words`,
			in.Message,
			utf8.RuneCountInString(in.Message),
			reverse(in.Message),
			len(strings.Fields(in.Message))), nil
	})
}

// reverse returns s with its characters (runes) in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
