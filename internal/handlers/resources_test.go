package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/mcp-go/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellomcp/hello-world-mcp/internal/content"
)

func TestReadServerInfo(t *testing.T) {
	start := time.Now()
	res := NewResources(content.NewMetadata(start))

	got, err := res.ReadServerInfo(context.Background(), ServerInfoURI, nil)
	require.NoError(t, err)
	assert.Equal(t, ServerInfoURI, got.URI)
	assert.Equal(t, "application/json", got.MimeType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.Text), &decoded), "resource text must be valid JSON")

	assert.Equal(t, content.ServerName, decoded["name"])
	assert.Equal(t, content.ServerVersion, decoded["version"])
	assert.Equal(t, float64(3), decoded["tools_count"])
	assert.Contains(t, decoded, "created")
	assert.Contains(t, decoded, "info_requested_at")

	created, err := time.Parse(time.RFC3339Nano, decoded["created"].(string))
	require.NoError(t, err)
	requested, err := time.Parse(time.RFC3339Nano, decoded["info_requested_at"].(string))
	require.NoError(t, err)
	assert.False(t, requested.Before(created))
}

func TestReadServerInfoPrettyPrinted(t *testing.T) {
	res := NewResources(content.NewMetadata(time.Now()))

	got, err := res.ReadServerInfo(context.Background(), ServerInfoURI, nil)
	require.NoError(t, err)
	assert.Contains(t, got.Text, "\n  \"name\"", "server info JSON is indented")
}

func TestReadServerInfoFreshTimestampPerRead(t *testing.T) {
	res := NewResources(content.NewMetadata(time.Now()))

	first, err := res.ReadServerInfo(context.Background(), ServerInfoURI, nil)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := res.ReadServerInfo(context.Background(), ServerInfoURI, nil)
	require.NoError(t, err)

	var a, b struct {
		InfoRequestedAt string `json:"info_requested_at"`
		Created         string `json:"created"`
	}
	require.NoError(t, json.Unmarshal([]byte(first.Text), &a))
	require.NoError(t, json.Unmarshal([]byte(second.Text), &b))
	assert.Equal(t, a.Created, b.Created)
	assert.NotEqual(t, a.InfoRequestedAt, b.InfoRequestedAt)
}

func TestReadUnknownResource(t *testing.T) {
	res := NewResources(content.NewMetadata(time.Now()))

	_, err := res.ReadServerInfo(context.Background(), "server://unknown", nil)
	require.Error(t, err, "unknown URIs are protocol-level failures")
	assert.Contains(t, err.Error(), "unknown resource URI: server://unknown")

	var mcpErr *protocol.Error
	require.True(t, errors.As(err, &mcpErr))
	assert.Equal(t, protocol.CodeNotFound, mcpErr.Code)
}
