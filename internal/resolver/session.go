package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

// Session remembers, per host node instance, the section it last resolved.
// Entries live in the caller's [store.NodeCacheRepository], so a reload or a
// source change that clears the repository also clears the session.
type Session struct {
	cache store.NodeCacheRepository
	now   func() time.Time
}

// NewSession returns a session writing into cache.
func NewSession(cache store.NodeCacheRepository) *Session {
	return &Session{cache: cache, now: time.Now}
}

// Remember stores the result for nodeID. Empty node ids and absent sections
// are ignored.
func (s *Session) Remember(ctx context.Context, nodeID string, res Result) error {
	if nodeID == "" || !res.Found {
		return nil
	}

	err := s.cache.Save(ctx, models.NodeCacheEntry{
		NodeID:    nodeID,
		Section:   res.Section,
		Data:      res.Record,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("remember node %q: %w", nodeID, err)
	}
	return nil
}

// Lookup returns the entry remembered for nodeID.
func (s *Session) Lookup(ctx context.Context, nodeID string) (models.NodeCacheEntry, bool) {
	entry, err := s.cache.Get(ctx, nodeID)
	if err != nil {
		return models.NodeCacheEntry{}, false
	}
	return entry, true
}

// Reset drops every entry.
func (s *Session) Reset(ctx context.Context) error {
	return s.cache.Clear(ctx)
}
