package bots

import "github.com/notnil/chess"

// DefaultCacheMaxEntries bounds the transposition cache before eviction.
const DefaultCacheMaxEntries = 100000

// CacheEntry is a stored search result for one position signature.
type CacheEntry struct {
	Depth int
	Score float64
	Move  *chess.Move
}

// TranspositionCache stores search results keyed by position signature.
// An entry answers a probe only when it was computed at least as deep as
// the query; shallower entries must be recomputed.
type TranspositionCache interface {
	Probe(signature string, depth int) (CacheEntry, bool)
	Store(signature string, depth int, score float64, move *chess.Move)
	Len() int
	Clear()
}

// fifoCache caps its size by dropping the oldest-inserted entries in bulk.
// It is owned by a single bot and accessed by one search at a time.
type fifoCache struct {
	maxEntries int
	entries    map[string]CacheEntry
	order      []string
}

func NewTranspositionCache(maxEntries int) TranspositionCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &fifoCache{
		maxEntries: maxEntries,
		entries:    make(map[string]CacheEntry),
	}
}

func (c *fifoCache) Probe(signature string, depth int) (CacheEntry, bool) {
	entry, ok := c.entries[signature]
	if !ok || entry.Depth < depth {
		return CacheEntry{}, false
	}
	return entry, true
}

func (c *fifoCache) Store(signature string, depth int, score float64, move *chess.Move) {
	if existing, ok := c.entries[signature]; ok {
		// Keep the deeper result when a signature recurs.
		if existing.Depth > depth {
			return
		}
		c.entries[signature] = CacheEntry{Depth: depth, Score: score, Move: move}
		return
	}

	c.entries[signature] = CacheEntry{Depth: depth, Score: score, Move: move}
	c.order = append(c.order, signature)
	if len(c.entries) > c.maxEntries {
		c.evict()
	}
}

// evict drops roughly 30% of the entries, oldest inserted first.
func (c *fifoCache) evict() {
	n := len(c.order) * 3 / 10
	if n < 1 {
		n = 1
	}
	for _, sig := range c.order[:n] {
		delete(c.entries, sig)
	}
	c.order = append(c.order[:0], c.order[n:]...)
}

func (c *fifoCache) Len() int {
	return len(c.entries)
}

func (c *fifoCache) Clear() {
	c.entries = make(map[string]CacheEntry)
	c.order = c.order[:0]
}
