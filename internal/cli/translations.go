package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var translationsLanguage string

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List available translations",
	Long: `List the translation catalog, grouped by language.

Examples:
  quran translations
  quran translations --language english`,
	RunE: runTranslations,
}

func init() {
	translationsCmd.Flags().StringVarP(&translationsLanguage, "language", "l", "", "filter by language name")
}

func runTranslations(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	catalog, err := client.Translations(ctx)
	if err != nil {
		return fmt.Errorf("fetch translations: %w", err)
	}

	if translationsLanguage != "" {
		count := 0
		for _, tr := range catalog {
			if strings.EqualFold(tr.LanguageName, translationsLanguage) {
				count++
				fmt.Printf("%d. %s (id %d)\n", count, tr.Name, tr.ID)
			}
		}
		if count == 0 {
			fmt.Printf("No translations found for language %q.\n", translationsLanguage)
		}
		return nil
	}

	byLanguage := make(map[string][]string)
	for _, tr := range catalog {
		byLanguage[tr.LanguageName] = append(byLanguage[tr.LanguageName],
			fmt.Sprintf("%s (id %d)", tr.Name, tr.ID))
	}

	languages := make([]string, 0, len(byLanguage))
	for lang := range byLanguage {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	for _, lang := range languages {
		fmt.Printf("%s:\n", lang)
		for _, entry := range byLanguage[lang] {
			fmt.Printf("  %s\n", entry)
		}
	}

	return nil
}
