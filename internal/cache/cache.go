// Package cache keeps automatic persisted queries: query documents registered
// under the SHA-256 hash of their text.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// QueryCache maps query hashes to query text. Entries expire after the TTL
// given to New; an expired hash has to be registered again by the client.
type QueryCache struct {
	c *gocache.Cache
}

// New creates a cache whose entries live for ttl. A non-positive ttl selects
// the default of five minutes.
func New(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	cleanup := cleanupInterval
	if ttl > cleanup {
		cleanup = ttl
	}
	return &QueryCache{c: gocache.New(ttl, cleanup)}
}

// Hash returns the lowercase hex SHA-256 of query, the key clients send.
func Hash(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}

// Set registers query under hash, replacing any existing entry.
func (q *QueryCache) Set(hash, query string) {
	if query == "" {
		return
	}
	q.c.Set(hash, query, gocache.DefaultExpiration)
}

// Get returns the query registered under hash.
func (q *QueryCache) Get(hash string) (string, bool) {
	val, found := q.c.Get(hash)
	if !found {
		return "", false
	}
	query, ok := val.(string)
	if !ok {
		return "", false
	}
	return query, true
}

// Len reports the number of live entries.
func (q *QueryCache) Len() int {
	return q.c.ItemCount()
}
