package handlers

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingDefault(t *testing.T) {
	result, err := Greeting(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Friendly greeting in en", result.Description)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "user", result.Messages[0].Role)

	text := result.Messages[0].Content.(mcp.TextContent)
	assert.Equal(t, "text", text.Type)
	assert.Contains(t, text.Text, "Hello! I'm a friendly MCP server")
	assert.Contains(t, text.Text, "(Available languages: en, de, es)")
}

func TestGreetingGerman(t *testing.T) {
	result, err := Greeting(context.Background(), map[string]string{"language": "de"})
	require.NoError(t, err)

	assert.Equal(t, "Friendly greeting in de", result.Description)
	text := result.Messages[0].Content.(mcp.TextContent)
	assert.Contains(t, text.Text, "Hallo! Ich bin ein freundlicher MCP Server")
}

func TestGreetingCaseInsensitive(t *testing.T) {
	result, err := Greeting(context.Background(), map[string]string{"language": "DE"})
	require.NoError(t, err)

	assert.Equal(t, "Friendly greeting in de", result.Description)
	text := result.Messages[0].Content.(mcp.TextContent)
	assert.Contains(t, text.Text, "Hallo!")
	assert.Contains(t, text.Text, "(Available languages: en, de, es)")
}

func TestGreetingUnknownLanguageFallsBack(t *testing.T) {
	result, err := Greeting(context.Background(), map[string]string{"language": "fr"})
	require.NoError(t, err, "unrecognized codes fall back, they do not fail")

	assert.Equal(t, "Friendly greeting in en", result.Description)
	text := result.Messages[0].Content.(mcp.TextContent)
	assert.Contains(t, text.Text, "Hello!")
}

func TestGreetingSpanish(t *testing.T) {
	result, err := Greeting(context.Background(), map[string]string{"language": "es"})
	require.NoError(t, err)

	assert.Equal(t, "Friendly greeting in es", result.Description)
	text := result.Messages[0].Content.(mcp.TextContent)
	assert.Contains(t, text.Text, "¡Hola!")
}
