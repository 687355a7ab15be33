package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - connectivity check
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	// Verse tool - fetch one ayah with optional sections
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_verse",
		Description: "Fetch a Quran verse by chapter:verse key with optional translations, tafsir and word-by-word breakdown",
	}, NewGetVerseHandler(deps))

	// Catalog tool - discover translation resource ids
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_translations",
		Description: "List available Quran translations, grouped by language or filtered by language name",
	}, NewListTranslationsHandler(deps))
}
