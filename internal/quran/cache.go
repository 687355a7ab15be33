package quran

import "sync"

// ClientCache holds at most one live client plus the configuration
// fingerprint it was built from.
//
// The cache is process-wide by construction: the composition root creates
// one and injects it into every tool handler, so all concurrent tool calls
// share a single client and therefore a single cached access token.
type ClientCache struct {
	mu          sync.Mutex
	client      *Client
	fingerprint string
}

// NewClientCache returns an empty cache.
func NewClientCache() *ClientCache {
	return &ClientCache{}
}

// Get returns the cached client when the configuration fingerprint is
// unchanged, otherwise builds a replacement via NewClient and stores it.
// Safe to call repeatedly with the same configuration: only the first call
// constructs anything, and construction itself performs no I/O.
func (c *ClientCache) Get(cfg Config) *Client {
	fingerprint := cfg.Fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && c.fingerprint == fingerprint {
		return c.client
	}

	c.client = NewClient(cfg)
	c.fingerprint = fingerprint
	return c.client
}

// Invalidate tells any held client to drop its cached access token, then
// empties the cache. The next Get constructs a brand-new client.
func (c *ClientCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		c.client.DropToken()
	}
	c.client = nil
	c.fingerprint = ""
}
