package quran

// Verse is one ayah as returned by the content API, including whatever
// optional sections (words, translations, tafsirs) the request asked for.
type Verse struct {
	ID          int    `json:"id"`
	VerseKey    string `json:"verse_key"`
	VerseNumber int    `json:"verse_number"`
	ChapterID   int    `json:"chapter_id"`
	PageNumber  int    `json:"page_number"`
	JuzNumber   int    `json:"juz_number"`
	HizbNumber  int    `json:"hizb_number"`
	TextUthmani string `json:"text_uthmani"`

	Words        []Word            `json:"words,omitempty"`
	Translations []TranslationText `json:"translations,omitempty"`
	Tafsirs      []TafsirText      `json:"tafsirs,omitempty"`
}

// Word is one token of a verse with its transliteration and gloss.
type Word struct {
	Position    int    `json:"position"`
	TextUthmani string `json:"text_uthmani"`
	CharType    string `json:"char_type_name"`

	Transliteration struct {
		Text string `json:"text"`
	} `json:"transliteration"`

	Translation struct {
		Text string `json:"text"`
	} `json:"translation"`
}

// TranslationText is a verse rendered in one translation resource.
type TranslationText struct {
	ResourceID   int    `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Text         string `json:"text"`
}

// TafsirText is a commentary entry attached to a verse.
type TafsirText struct {
	ResourceID   int    `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	Text         string `json:"text"`
}

// TranslationInfo is one entry of the translation catalog.
type TranslationInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	AuthorName   string `json:"author_name"`
	Slug         string `json:"slug"`
	LanguageName string `json:"language_name"`
}
