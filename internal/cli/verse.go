package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
)

var (
	verseTranslations []int
	verseWords        bool
	verseTafsir       bool
	verseTafsirIDs    []int
)

var verseCmd = &cobra.Command{
	Use:   "verse <chapter:verse>",
	Short: "Fetch a single verse",
	Long: `Fetch one verse by its chapter:verse key.

Examples:
  quran verse 2:255
  quran verse 2:255 --translations 20,131
  quran verse 1:1 --words
  quran verse 2:255 --tafsir`,
	Args: cobra.ExactArgs(1),
	RunE: runVerse,
}

func init() {
	verseCmd.Flags().IntSliceVarP(&verseTranslations, "translations", "t", nil, "translation resource ids")
	verseCmd.Flags().BoolVarP(&verseWords, "words", "w", false, "include word-by-word breakdown")
	verseCmd.Flags().BoolVar(&verseTafsir, "tafsir", false, "include commentary")
	verseCmd.Flags().IntSliceVar(&verseTafsirIDs, "tafsir-ids", nil, "tafsir resource ids (implies --tafsir)")
}

func runVerse(cmd *cobra.Command, args []string) error {
	key := args[0]
	ctx := context.Background()

	if _, _, err := quran.ParseVerseKey(key); err != nil {
		return err
	}

	verse, err := client.VerseByKey(ctx, key, quran.VerseOptions{
		Translations:  verseTranslations,
		IncludeWords:  verseWords,
		IncludeTafsir: verseTafsir || len(verseTafsirIDs) > 0,
		Tafsirs:       verseTafsirIDs,
	})
	if err != nil {
		return fmt.Errorf("fetch verse %s: %w", key, err)
	}

	fmt.Printf("%s\n\n", verse.TextUthmani)
	fmt.Printf("Surah %d, Ayah %d (page %d, juz %d)\n",
		verse.ChapterID, verse.VerseNumber, verse.PageNumber, verse.JuzNumber)

	for _, tr := range verse.Translations {
		fmt.Printf("\n[%d] %s:\n%s\n", tr.ResourceID, tr.ResourceName, tr.Text)
	}
	for _, tf := range verse.Tafsirs {
		fmt.Printf("\n[%d] %s:\n%s\n", tf.ResourceID, tf.ResourceName, tf.Text)
	}

	if len(verse.Words) > 0 {
		fmt.Println()
		n := 0
		for _, w := range verse.Words {
			if w.CharType == "end" {
				continue
			}
			n++
			fmt.Printf("%d. %s", n, w.TextUthmani)
			if w.Translation.Text != "" {
				fmt.Printf(" - %s", w.Translation.Text)
			}
			fmt.Println()
		}
	}

	return nil
}
