// Package tools provides MCP tool handlers and registration.
package tools

import (
	"log/slog"

	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

// Dependencies holds shared services for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	// Cache is the process-wide client cache. All handlers share it so
	// concurrent tool calls reuse one authenticated client.
	Cache *quran.ClientCache

	// ClientConfig is the configuration handed to Cache.Get on every
	// call; the cache decides whether it still matches the held client.
	ClientConfig quran.Config

	Logger *slog.Logger
}

// client returns the shared authenticated client, building it on first use
// or after a configuration change.
func (d *Dependencies) client() *quran.Client {
	return d.Cache.Get(d.ClientConfig)
}
