package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/mcp-go/protocol"

	"github.com/hellomcp/hello-world-mcp/internal/content"
)

// ServerInfoURI identifies the single resource this server exposes.
const ServerInfoURI = "server://info"

// Resources serves resource reads against the static metadata record.
type Resources struct {
	meta content.Metadata
}

// NewResources creates the resource handler set for the given metadata.
func NewResources(meta content.Metadata) *Resources {
	return &Resources{meta: meta}
}

// ReadServerInfo handles a read of server://info. It returns a
// pretty-printed JSON copy of the server metadata with a fresh
// info_requested_at timestamp. An unrecognized URI is a real
// protocol-level failure, unlike the tool handlers' swallowed faults.
func (r *Resources) ReadServerInfo(ctx context.Context, uri string, _ map[string]string) (*mcp.ResourceContent, error) {
	if uri != ServerInfoURI {
		return nil, protocol.NewNotFound(fmt.Sprintf("unknown resource URI: %s", uri))
	}

	snap := r.meta.Snapshot(time.Now())
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, protocol.NewInternalError(fmt.Sprintf("encoding server info: %v", err))
	}

	return &mcp.ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}
