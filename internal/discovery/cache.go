package discovery

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// searchCache holds search results keyed on query+location for a fixed TTL,
// so repeated category fan-outs do not re-bill identical queries.
type searchCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	prospects []model.Prospect
	expiry    time.Time
	complete  bool // the search exhausted the upstream, not just its cap
}

func newSearchCache(ttl time.Duration) *searchCache {
	return &searchCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// cacheKey returns SHA-256 hex of the normalized query and location.
func cacheKey(query, location string) string {
	normalized := strings.ToLower(strings.TrimSpace(query)) + "|" + strings.TrimSpace(location)
	h := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", h)
}

// get returns a cached result able to satisfy up to max prospects. An
// incomplete entry shorter than max is treated as a miss so the caller can
// fetch the pages the cached search never reached.
func (c *searchCache) get(query, location string, max int) ([]model.Prospect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(query, location)
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	if !entry.complete && len(entry.prospects) < max {
		return nil, false
	}

	stored := entry.prospects
	if len(stored) > max {
		stored = stored[:max]
	}
	out := make([]model.Prospect, len(stored))
	copy(out, stored)
	return out, true
}

func (c *searchCache) set(query, location string, prospects []model.Prospect, complete bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]model.Prospect, len(prospects))
	copy(stored, prospects)
	c.entries[cacheKey(query, location)] = cacheEntry{
		prospects: stored,
		expiry:    time.Now().Add(c.ttl),
		complete:  complete,
	}
}
