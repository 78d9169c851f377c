// Package emitcache provides a content-addressed skip cache for emitted
// output, keyed by the HighwayHash-64 digest computed by ast.Hash64.
package emitcache

import (
	"sync"

	"github.com/viant/jsemit/ast"
)

// Entry is one cached emission result.
type Entry struct {
	Hash          uint64
	Text          []byte
	SourceMapText []byte
}

// Cache maps a source file name to the hash of the source text it was
// last emitted from and the resulting output, so a re-emit of unchanged
// source can be skipped entirely ( "EmitResult.emitSkipped").
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: map[string]Entry{}}
}

// Lookup hashes sourceText and reports whether it matches the entry
// already cached for fileName; when it does, the cached entry is
// returned and the caller may skip re-emitting.
func (c *Cache) Lookup(fileName string, sourceText []byte) (Entry, bool, error) {
	hash, err := ast.Hash64(sourceText)
	if err != nil {
		return Entry{}, false, err
	}
	c.mu.RLock()
	entry, ok := c.entries[fileName]
	c.mu.RUnlock()
	if !ok || entry.Hash != hash {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Store records a fresh emission result for fileName, keyed by the hash
// of the source text it was produced from.
func (c *Cache) Store(fileName string, sourceText []byte, text, sourceMapText []byte) error {
	hash, err := ast.Hash64(sourceText)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fileName] = Entry{Hash: hash, Text: text, SourceMapText: sourceMapText}
	return nil
}

// Invalidate drops any cached entry for fileName.
func (c *Cache) Invalidate(fileName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fileName)
}

// Len reports how many file entries are currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
