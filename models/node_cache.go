package models

import "time"

// NodeCacheEntry remembers the last section fetched for a host node
// instance. It is advisory: the latest write wins and nothing depends on it
// for correctness.
type NodeCacheEntry struct {
	NodeID    string    `json:"node_id"`
	Section   string    `json:"section"`
	Data      Record    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Keys returns the field names of the cached section.
func (e NodeCacheEntry) Keys() []string {
	return e.Data.Keys()
}
