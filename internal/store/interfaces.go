package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/models"
)

// SourceLoader yields a fresh snapshot of section data on every Load.
type SourceLoader interface {
	// Name identifies the source in logs ("toml:<path>", "static").
	Name() string

	// Load reads the source. A missing backing file yields ErrSourceNotFound,
	// an unparsable one ErrSourceMalformed.
	Load(ctx context.Context) (models.Source, error)

	// Version returns an opaque content-version marker that changes whenever
	// the backing data may have changed. ok is false when the source does
	// not exist.
	Version(ctx context.Context) (version string, ok bool)
}

// NodeCacheRepository remembers the last section fetched per host node.
// It is advisory: the latest Save wins and readers must tolerate misses.
type NodeCacheRepository interface {
	Save(ctx context.Context, entry models.NodeCacheEntry) error
	Get(ctx context.Context, nodeID string) (models.NodeCacheEntry, error)
	Clear(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database call is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
