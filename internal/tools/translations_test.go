package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

var catalogFixture = []map[string]any{
	{"id": 20, "name": "Saheeh International", "author_name": "Saheeh International", "language_name": "english"},
	{"id": 131, "name": "The Clear Quran", "author_name": "Dr. Mustafa Khattab", "language_name": "english"},
	{"id": 97, "name": "Tafheem e Qur'an", "author_name": "Syed Abul Ala Maududi", "language_name": "urdu"},
	{"id": 136, "name": "Montada Islamic Foundation", "author_name": "Montada Islamic Foundation", "language_name": "french"},
}

func serveCatalog(mux *http.ServeMux) {
	mux.HandleFunc("/resources/translations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"translations": catalogFixture})
	})
}

func callCatalog(t *testing.T, deps *Dependencies, input ListTranslationsInput) *mcp.CallToolResult {
	t.Helper()
	result, _, err := NewListTranslationsHandler(deps)(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err, "handler must never return a Go error")
	require.NotNil(t, result)
	return result
}

func TestListTranslationsFiltered(t *testing.T) {
	deps, mux := newTestDeps(t)
	serveCatalog(mux)

	result := callCatalog(t, deps, ListTranslationsInput{Language: "english"})

	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Saheeh International (id 20)")
	assert.Contains(t, text, "The Clear Quran (id 131) by Dr. Mustafa Khattab")
	assert.NotContains(t, text, "urdu")
	assert.Contains(t, text, "translations [20]", "usage example cites the first match's id")
}

func TestListTranslationsFilterIsCaseInsensitive(t *testing.T) {
	deps, mux := newTestDeps(t)
	serveCatalog(mux)

	result := callCatalog(t, deps, ListTranslationsInput{Language: "English"})

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Saheeh International")
}

func TestListTranslationsNoMatches(t *testing.T) {
	deps, mux := newTestDeps(t)
	serveCatalog(mux)

	result := callCatalog(t, deps, ListTranslationsInput{Language: "klingon"})

	assert.False(t, result.IsError, "zero matches is not an error")
	text := resultText(t, result)
	assert.Contains(t, text, `"klingon"`)
	assert.Contains(t, text, "No translations found")
	assert.Contains(t, text, "english", "suggests example language names")
}

func TestListTranslationsGrouped(t *testing.T) {
	deps, mux := newTestDeps(t)
	serveCatalog(mux)

	result := callCatalog(t, deps, ListTranslationsInput{})

	assert.False(t, result.IsError)
	text := resultText(t, result)

	// Every entry appears under its own language group.
	assert.Contains(t, text, "english:")
	assert.Contains(t, text, "french:")
	assert.Contains(t, text, "urdu:")

	// Group keys appear in lexicographic order.
	positions := []int{
		strings.Index(text, "english:"),
		strings.Index(text, "french:"),
		strings.Index(text, "urdu:"),
	}
	assert.True(t, sort.IntsAreSorted(positions), "groups out of order: %v", positions)

	// Members are listed inside their group.
	englishBlock := text[strings.Index(text, "english:"):strings.Index(text, "french:")]
	assert.Contains(t, englishBlock, "Saheeh International (id 20)")
	assert.Contains(t, englishBlock, "The Clear Quran (id 131)")
}

func TestListTranslationsUpstreamFailure(t *testing.T) {
	deps, mux := newTestDeps(t)
	mux.HandleFunc("/resources/translations", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	result := callCatalog(t, deps, ListTranslationsInput{})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "upstream")
}

func TestFormatGroupedCatalogKeysMatchEntries(t *testing.T) {
	catalog := []quran.TranslationInfo{
		{ID: 1, Name: "A", LanguageName: "zulu"},
		{ID: 2, Name: "B", LanguageName: "amharic"},
		{ID: 3, Name: "C", LanguageName: "zulu"},
	}

	text := formatGroupedCatalog(catalog)

	assert.Less(t, strings.Index(text, "amharic:"), strings.Index(text, "zulu:"))
	assert.Equal(t, 1, strings.Count(text, "zulu:"), "one group per language")
}
