package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
)

// Storages groups the section source and the node cache.
type Storages struct {
	Source    SourceLoader
	NodeCache NodeCacheRepository

	db *DB
}

// NewSourceLoader builds the loader selected by cfg.Kind.
func NewSourceLoader(cfg config.Source, log *logger.Logger) (SourceLoader, error) {
	switch cfg.Kind {
	case config.SourceKindTOML, "":
		return NewTOMLFileSource(cfg.Path, log), nil
	case config.SourceKindStatic:
		return NewStaticSource(config.SourceKindStatic, DefaultProfiles()), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// NewStorages initialises the storage layer:
//  1. builds the section source;
//  2. when a DSN is configured, opens the database, runs migrations and
//     backs the node cache with it; otherwise keeps the cache in memory.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	source, err := NewSourceLoader(cfg.Source, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", source.Name()).Msg("section source ready")

	if cfg.Storage.DB.DSN == "" {
		return &Storages{Source: source, NodeCache: NewMemoryNodeCache()}, nil
	}

	db, err := NewConnect(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Source:    source,
		NodeCache: NewNodeCacheRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
