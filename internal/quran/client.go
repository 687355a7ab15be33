// Package quran provides the authenticated client for the Quran Foundation
// content API, plus the process-wide client cache used by tool handlers.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultLanguage is the response locale used when none is configured.
const DefaultLanguage = "en"

// maxErrorBody limits how much of an upstream error response is kept.
const maxErrorBody = 2048

// Config holds everything needed to construct a Client.
type Config struct {
	ClientID     string
	ClientSecret string

	// Language is the response locale for translated resource names.
	// Empty means DefaultLanguage.
	Language string

	// Environment selects the endpoint pair. Empty means Production.
	Environment Environment

	// HTTPClient overrides the transport for both token and content
	// requests. Nil means http.DefaultClient. Used by tests.
	HTTPClient *http.Client

	// ContentURL and TokenURL override the endpoints resolved from
	// Environment. Used by tests to target a local fake upstream.
	ContentURL string
	TokenURL   string
}

// Fingerprint is the cache identity of a Config: credential id plus
// environment. Secret and language deliberately do not participate.
func (c Config) Fingerprint() string {
	env := c.Environment
	if env == "" {
		env = Production
	}
	return c.ClientID + ":" + string(env)
}

// Client issues authenticated requests to the content API.
//
// Construction is cheap and performs no I/O: the OAuth2 credential exchange
// happens lazily on the first request, and the obtained token is reused by
// the token source until it expires (one hour upstream).
type Client struct {
	clientID string
	language string
	baseURL  string
	http     *http.Client

	auth clientcredentials.Config

	mu     sync.Mutex
	tokens oauth2.TokenSource
}

// NewClient builds a client for the given configuration.
// Credential correctness is not checked here; invalid credentials surface
// as authentication errors on first use.
func NewClient(cfg Config) *Client {
	env := cfg.Environment
	if env == "" {
		env = Production
	}
	endpoints := EndpointsFor(env)
	if cfg.ContentURL != "" {
		endpoints.ContentBaseURL = cfg.ContentURL
	}
	if cfg.TokenURL != "" {
		endpoints.AuthBaseURL = cfg.TokenURL
	}

	language := cfg.Language
	if language == "" {
		language = DefaultLanguage
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		clientID: cfg.ClientID,
		language: language,
		baseURL:  endpoints.ContentBaseURL,
		http:     httpClient,
		auth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     endpoints.AuthBaseURL + "/oauth2/token",
			Scopes:       []string{"content"},
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
	}
	c.tokens = c.auth.TokenSource(c.authContext())
	return c
}

// authContext carries the client's HTTP transport into the oauth2 package.
func (c *Client) authContext() context.Context {
	return context.WithValue(context.Background(), oauth2.HTTPClient, c.http)
}

// DropToken discards the cached access token. The next request performs a
// fresh credential exchange.
func (c *Client) DropToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = c.auth.TokenSource(c.authContext())
}

func (c *Client) token() (*oauth2.Token, error) {
	c.mu.Lock()
	source := c.tokens
	c.mu.Unlock()
	return source.Token()
}

// get performs an authenticated GET and decodes the JSON response into out.
// All failures come back as *APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	token, err := c.token()
	if err != nil {
		return classifyError(err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: err.Error()}
	}
	req.Header.Set("x-auth-token", token.AccessToken)
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed response: %v", err),
		}
	}
	return nil
}

// VerseOptions selects which optional sections a verse lookup includes.
type VerseOptions struct {
	// Translations lists translation resource ids to include.
	Translations []int

	// IncludeWords requests the per-word breakdown.
	IncludeWords bool

	// IncludeTafsir requests commentary sections.
	IncludeTafsir bool

	// Tafsirs lists commentary resource ids; only consulted when
	// IncludeTafsir is set. Empty means DefaultTafsirID.
	Tafsirs []int
}

// DefaultTafsirID is Tafsir Ibn Kathir (abridged, English).
const DefaultTafsirID = 169

// VerseByKey fetches one verse by its "chapter:verse" key.
func (c *Client) VerseByKey(ctx context.Context, key string, opts VerseOptions) (*Verse, error) {
	if _, _, err := ParseVerseKey(key); err != nil {
		return nil, &APIError{Kind: KindValidation, Message: err.Error()}
	}

	query := url.Values{}
	query.Set("language", c.language)
	query.Set("fields", "text_uthmani,chapter_id")

	if opts.IncludeWords {
		query.Set("words", "true")
		query.Set("word_fields", "text_uthmani")
	} else {
		query.Set("words", "false")
	}

	if len(opts.Translations) > 0 {
		query.Set("translations", joinIDs(opts.Translations))
		query.Set("translation_fields", "resource_name")
	}

	if opts.IncludeTafsir {
		ids := opts.Tafsirs
		if len(ids) == 0 {
			ids = []int{DefaultTafsirID}
		}
		query.Set("tafsirs", joinIDs(ids))
		query.Set("tafsir_fields", "resource_name")
	}

	var envelope struct {
		Verse Verse `json:"verse"`
	}
	if err := c.get(ctx, "/verses/by_key/"+url.PathEscape(key), query, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Verse, nil
}

// Translations fetches the full translation catalog.
func (c *Client) Translations(ctx context.Context) ([]TranslationInfo, error) {
	query := url.Values{}
	query.Set("language", c.language)

	var envelope struct {
		Translations []TranslationInfo `json:"translations"`
	}
	if err := c.get(ctx, "/resources/translations", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Translations, nil
}

// ParseVerseKey validates a "chapter:verse" key and returns its parts.
func ParseVerseKey(key string) (chapter, verse int, err error) {
	parts := strings.Split(key, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("verse key must be \"chapter:verse\", got %q", key)
	}

	chapter, err = strconv.Atoi(parts[0])
	if err != nil || chapter < 1 {
		return 0, 0, fmt.Errorf("invalid chapter number in %q", key)
	}

	verse, err = strconv.Atoi(parts[1])
	if err != nil || verse < 1 {
		return 0, 0, fmt.Errorf("invalid verse number in %q", key)
	}

	return chapter, verse, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
