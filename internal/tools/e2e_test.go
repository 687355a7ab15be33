// End-to-end tests running the tools through an in-memory MCP session
// against a fake upstream API.
package tools_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
	"github.com/raphaelgruber/quran-mcp-go/internal/tools"
)

func startSession(t *testing.T) (*mcp.ClientSession, context.Context) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"t","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/verses/by_key/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"verse": map[string]any{
			"verse_key": "2:255", "verse_number": 255, "chapter_id": 2,
			"page_number": 42, "juz_number": 3, "text_uthmani": "ٱللَّهُ",
		}})
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-quran-mcp",
		Version: "0.0.1-test",
	}, nil)

	deps := &tools.Dependencies{
		Cache: quran.NewClientCache(),
		ClientConfig: quran.Config{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			HTTPClient:   upstream.Client(),
			ContentURL:   upstream.URL,
			TokenURL:     upstream.URL,
		},
		Logger: logger,
	}
	tools.RegisterAll(server, deps)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	go func() {
		_ = server.Run(ctx, serverTransport)
	}()
	time.Sleep(50 * time.Millisecond)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err, "client should connect successfully")
	t.Cleanup(func() { session.Close() })

	return session, ctx
}

func TestToolsRegistered(t *testing.T) {
	session, ctx := startSession(t)

	result, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "ping")
	assert.Contains(t, names, "get_verse")
	assert.Contains(t, names, "list_translations")
}

func TestGetVerseOverSession(t *testing.T) {
	session, ctx := startSession(t)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_verse",
		Arguments: map[string]any{"verse_key": "2:255"},
	})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content should be TextContent")
	assert.False(t, result.IsError)
	assert.Contains(t, text.Text, "Verse 2:255")
	assert.Contains(t, text.Text, "Juz: 3")
}

func TestGetVerseBadKeyOverSession(t *testing.T) {
	session, ctx := startSession(t)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_verse",
		Arguments: map[string]any{"verse_key": "not-a-key"},
	})
	require.NoError(t, err, "failures surface as IsError results, not protocol errors")
	assert.True(t, result.IsError)
}

func TestPingOverSession(t *testing.T) {
	session, ctx := startSession(t)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "ping",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "pong", text.Text)
	assert.False(t, result.IsError)
}
