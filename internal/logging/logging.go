// Package logging sets up the process logger and bridges it to the
// MCP framework's middleware logger interface.
//
// Under the stdio transport stdout carries JSON-RPC frames, so every
// log line goes to stderr.
package logging

import (
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger writing to stderr at the given
// level ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Adapter implements the framework's Logger interface on top of zap,
// so the Logging middleware's per-request lines flow through the same
// logger as the process lifecycle notices.
type Adapter struct {
	logger *zap.Logger
}

// NewAdapter wraps a zap logger for use by the framework middleware.
func NewAdapter(logger *zap.Logger) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) Info(msg string, fields ...mcp.LogField) {
	a.logger.Info(msg, toZap(fields)...)
}

func (a *Adapter) Error(msg string, fields ...mcp.LogField) {
	a.logger.Error(msg, toZap(fields)...)
}

func (a *Adapter) Debug(msg string, fields ...mcp.LogField) {
	a.logger.Debug(msg, toZap(fields)...)
}

func (a *Adapter) Warn(msg string, fields ...mcp.LogField) {
	a.logger.Warn(msg, toZap(fields)...)
}

func toZap(fields []mcp.LogField) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
