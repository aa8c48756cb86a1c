// Package cache holds the response cache every client variant shares within
// one resolver session. Entries are keyed by content fingerprint and tagged
// with the request id that produced them, so callers can release everything a
// logical request left behind in a single call.
package cache

import (
	"log/slog"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/pkg/slogx"
)

// Entry is a cached completion together with its request-scope tag.
type Entry struct {
	RequestID  uuid.UUID
	Completion api.Completion
	CachedAt   strfmt.DateTime
}

// Cache is safe for concurrent use by any number of clients and cleanup
// calls. Deleting entries for one request id never disturbs entries tagged
// with another.
type Cache struct {
	logger  *slog.Logger
	entries *haxmap.Map[string, Entry]
}

// New constructs an empty cache. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		logger:  logger,
		entries: haxmap.New[string, Entry](),
	}
}

// Get returns the completion cached under fingerprint, if any.
func (c *Cache) Get(fingerprint string) (api.Completion, bool) {
	entry, ok := c.entries.Get(fingerprint)
	if !ok {
		return api.Completion{}, false
	}
	return entry.Completion, true
}

// Set stores a completion under fingerprint, tagged with the request id that
// produced it. A later write for the same fingerprint replaces the tag.
func (c *Cache) Set(fingerprint string, requestID uuid.UUID, completion api.Completion) {
	c.entries.Set(fingerprint, Entry{
		RequestID:  requestID,
		Completion: completion,
		CachedAt:   strfmt.DateTime(time.Now()),
	})
}

// DeleteByRequestID removes every entry tagged with the given request id and
// returns how many were removed. It is idempotent: calling it again, or for
// an id that never cached anything, removes nothing and is not an error.
// Entries tagged with other request ids are never disturbed, even when they
// are written concurrently with the sweep.
func (c *Cache) DeleteByRequestID(requestID uuid.UUID) int {
	var stale []string
	c.entries.ForEach(func(fingerprint string, entry Entry) bool {
		if entry.RequestID == requestID {
			stale = append(stale, fingerprint)
		}
		return true
	})

	var removed int
	for _, fingerprint := range stale {
		entry, ok := c.entries.GetAndDel(fingerprint)
		if !ok {
			continue
		}
		if entry.RequestID != requestID {
			// A concurrent Set re-tagged the entry between scan and sweep;
			// it belongs to another request now, so it goes back.
			c.entries.Set(fingerprint, entry)
			continue
		}
		removed++
	}

	c.logger.Debug("released request cache entries",
		slogx.Stringer("request_id", requestID),
		slog.Int("entries", removed),
	)
	return removed
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return int(c.entries.Len())
}
