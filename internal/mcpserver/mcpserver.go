// Package mcpserver wires the handlers to the MCP framework: it owns
// the registration table binding tool names, the resource URI, and the
// prompt name to their handlers, and assembles the middleware stack
// the serve loop runs with.
package mcpserver

import (
	"time"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/hellomcp/hello-world-mcp/internal/content"
	"github.com/hellomcp/hello-world-mcp/internal/handlers"
)

// New builds the MCP server with the full dispatch surface registered:
// three tools, one resource, one prompt. Nothing is added or removed
// after this returns.
func New(meta content.Metadata) *mcp.Server {
	srv := mcp.NewServer(mcp.ServerInfo{
		Name:    "hello-world-mcp",
		Version: content.ServerVersion,
		Capabilities: mcp.Capabilities{
			Tools:     true,
			Resources: true,
			Prompts:   true,
		},
	})

	srv.Tool("hello_world").
		Description("Simple hello world tool that returns a greeting message").
		Handler(handlers.HelloWorld)

	srv.Tool("get_current_time").
		Description("Returns the current date and time with timezone information").
		Handler(handlers.CurrentTime)

	srv.Tool("echo").
		Description("Echoes back the provided message with some formatting").
		Handler(handlers.Echo)

	res := handlers.NewResources(meta)
	srv.Resource(handlers.ServerInfoURI).
		Name("Server Information").
		Description("Detailed information about this MCP server including capabilities and metadata").
		MimeType("application/json").
		Handler(res.ReadServerInfo)

	srv.Prompt(handlers.GreetingPromptName).
		Description("Generate a friendly greeting message in multiple languages").
		Argument("language", "Language code for the greeting (en, de, es)", false).
		Handler(handlers.Greeting)

	return srv
}

// Middleware returns the request middleware stack: panic recovery,
// request IDs, an optional per-request timeout, and structured
// request logging.
func Middleware(logger mcp.Logger, timeout time.Duration) []mcp.Middleware {
	if timeout > 0 {
		return mcp.DefaultMiddlewareWithTimeout(logger, timeout)
	}
	return mcp.DefaultMiddleware(logger)
}
