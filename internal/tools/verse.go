package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

// VerseInput defines the input schema for the get_verse tool.
type VerseInput struct {
	VerseKey      string `json:"verse_key" jsonschema:"required,Verse key in chapter:verse format, e.g. 2:255"`
	Translations  []int  `json:"translations,omitempty" jsonschema:"Translation resource ids to include (use list_translations to discover ids)"`
	IncludeWords  bool   `json:"include_words,omitempty" jsonschema:"Include a word-by-word breakdown"`
	IncludeTafsir bool   `json:"include_tafsir,omitempty" jsonschema:"Include commentary (tafsir)"`
	Tafsirs       []int  `json:"tafsirs,omitempty" jsonschema:"Tafsir resource ids, only used when include_tafsir is set"`
}

// NewGetVerseHandler creates the get_verse tool handler.
// Fetches one verse with optional translations, tafsir and word breakdown.
func NewGetVerseHandler(deps *Dependencies) mcp.ToolHandlerFor[VerseInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input VerseInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.VerseKey == "" {
			return ErrorResult("verse_key cannot be empty", `Use "chapter:verse", e.g. "2:255"`), nil, nil
		}
		if _, _, err := quran.ParseVerseKey(input.VerseKey); err != nil {
			return ErrorResult(err.Error(), `Use "chapter:verse", e.g. "2:255"`), nil, nil
		}

		verse, err := deps.client().VerseByKey(ctx, input.VerseKey, quran.VerseOptions{
			Translations:  input.Translations,
			IncludeWords:  input.IncludeWords,
			IncludeTafsir: input.IncludeTafsir,
			Tafsirs:       input.Tafsirs,
		})
		if err != nil {
			deps.Logger.Error("verse fetch failed", "verse_key", input.VerseKey, "error", err)
			return ErrorResult(
				fmt.Sprintf("Failed to fetch verse %q: %v", input.VerseKey, err),
				"Check the verse key and try again",
			), nil, nil
		}

		deps.Logger.Info("verse fetched", "verse_key", input.VerseKey,
			"translations", len(verse.Translations), "words", len(verse.Words))

		return TextResult(formatVerse(verse)), nil, nil
	}
}

// formatVerse renders a verse as readable text: Arabic text first, then
// position, then whichever optional sections the response carries.
func formatVerse(v *quran.Verse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Verse %s\n\n", v.VerseKey)
	if v.TextUthmani != "" {
		fmt.Fprintf(&b, "%s\n\n", v.TextUthmani)
	}
	fmt.Fprintf(&b, "Surah: %d | Ayah: %d | Page: %d | Juz: %d\n",
		v.ChapterID, v.VerseNumber, v.PageNumber, v.JuzNumber)

	if len(v.Translations) > 0 {
		b.WriteString("\nTranslations:\n")
		for _, tr := range v.Translations {
			name := tr.ResourceName
			if name == "" {
				name = fmt.Sprintf("resource %d", tr.ResourceID)
			}
			fmt.Fprintf(&b, "\n%s (id %d):\n%s\n", name, tr.ResourceID, stripTags(tr.Text))
		}
	}

	if len(v.Tafsirs) > 0 {
		b.WriteString("\nTafsir:\n")
		for _, tf := range v.Tafsirs {
			name := tf.ResourceName
			if name == "" {
				name = fmt.Sprintf("resource %d", tf.ResourceID)
			}
			fmt.Fprintf(&b, "\n%s (id %d):\n%s\n", name, tf.ResourceID, stripTags(tf.Text))
		}
	}

	if len(v.Words) > 0 {
		b.WriteString("\nWord by word:\n")
		n := 0
		for _, w := range v.Words {
			// The API appends the end-of-verse marker as a pseudo-word.
			if w.CharType == "end" {
				continue
			}
			n++
			fmt.Fprintf(&b, "%d. %s", n, w.TextUthmani)
			if w.Transliteration.Text != "" {
				fmt.Fprintf(&b, " (%s)", w.Transliteration.Text)
			}
			if w.Translation.Text != "" {
				fmt.Fprintf(&b, " - %s", w.Translation.Text)
			}
			b.WriteByte('\n')
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// stripTags removes the HTML markup some translations and tafsirs embed.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
