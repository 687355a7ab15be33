package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

// ListTranslationsInput defines the input schema for the list_translations tool.
type ListTranslationsInput struct {
	Language string `json:"language,omitempty" jsonschema:"Filter by language name, e.g. english or urdu"`
}

// NewListTranslationsHandler creates the list_translations tool handler.
// Always fetches the full catalog; the language filter is applied locally
// with a case-insensitive exact match on each entry's language name.
func NewListTranslationsHandler(deps *Dependencies) mcp.ToolHandlerFor[ListTranslationsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListTranslationsInput) (
		*mcp.CallToolResult, any, error,
	) {
		catalog, err := deps.client().Translations(ctx)
		if err != nil {
			deps.Logger.Error("translation catalog fetch failed", "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to fetch translation catalog: %v", err),
				"The upstream API may be unavailable",
			), nil, nil
		}

		deps.Logger.Info("translation catalog fetched",
			"entries", len(catalog), "filter", input.Language)

		if filter := strings.TrimSpace(input.Language); filter != "" {
			return TextResult(formatFilteredCatalog(catalog, filter)), nil, nil
		}
		return TextResult(formatGroupedCatalog(catalog)), nil, nil
	}
}

// formatFilteredCatalog renders the entries whose language name equals the
// filter, or a zero-match explanation. Zero matches are not an error.
func formatFilteredCatalog(catalog []quran.TranslationInfo, filter string) string {
	var matches []quran.TranslationInfo
	for _, tr := range catalog {
		if strings.EqualFold(tr.LanguageName, filter) {
			matches = append(matches, tr)
		}
	}

	if len(matches) == 0 {
		return fmt.Sprintf(
			"No translations found for language %q.\n"+
				"Try a language name such as: english, urdu, french, spanish, turkish.",
			filter)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Translations for %q (%d):\n\n", filter, len(matches))
	for i, tr := range matches {
		fmt.Fprintf(&b, "%d. %s (id %d)", i+1, tr.Name, tr.ID)
		if tr.AuthorName != "" && tr.AuthorName != tr.Name {
			fmt.Fprintf(&b, " by %s", tr.AuthorName)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nExample: call get_verse with verse_key \"2:255\" and translations [%d].",
		matches[0].ID)
	return b.String()
}

// formatGroupedCatalog renders the full catalog grouped by language name,
// with group keys in lexicographic order.
func formatGroupedCatalog(catalog []quran.TranslationInfo) string {
	groups := make(map[string][]quran.TranslationInfo)
	for _, tr := range catalog {
		groups[tr.LanguageName] = append(groups[tr.LanguageName], tr)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Available translations (%d) by language:\n", len(catalog))
	for _, key := range keys {
		fmt.Fprintf(&b, "\n%s:\n", key)
		for _, tr := range groups[key] {
			fmt.Fprintf(&b, "  - %s (id %d)", tr.Name, tr.ID)
			if tr.AuthorName != "" && tr.AuthorName != tr.Name {
				fmt.Fprintf(&b, " by %s", tr.AuthorName)
			}
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
