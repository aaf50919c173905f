package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

// nodeCacheRepository is the SQL-backed [NodeCacheRepository]. The record
// is stored as JSON text so field order survives the round trip.
type nodeCacheRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	now     func() time.Time
}

// NewNodeCacheRepository constructs a [NodeCacheRepository] on db.
func NewNodeCacheRepository(db *DB, log *logger.Logger) NodeCacheRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating node cache repository")
	return &nodeCacheRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.placeholder()),
		logger:  log,
		now:     time.Now,
	}
}

// Save upserts the entry keyed by node id.
func (r *nodeCacheRepository) Save(ctx context.Context, entry models.NodeCacheEntry) error {
	log := logger.FromContext(ctx)

	if entry.NodeID == "" {
		return ErrEmptyNodeID
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = r.now().UTC()
	}

	data, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("error encoding node cache data: %w", err)
	}

	query, args, err := r.saveQuery(entry.NodeID, entry.Section, string(data), entry.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*nodeCacheRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "node_cache.save", func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*nodeCacheRepository.Save").Str("node_id", entry.NodeID).Msg("error saving node cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get returns the entry for nodeID or [ErrNodeCacheEntryNotFound].
func (r *nodeCacheRepository) Get(ctx context.Context, nodeID string) (models.NodeCacheEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.getQuery(nodeID)
	if err != nil {
		return models.NodeCacheEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		entry models.NodeCacheEntry
		data  []byte
	)
	err = r.db.withRetry(ctx, "node_cache.get", func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&entry.NodeID, &entry.Section, &data, &entry.UpdatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NodeCacheEntry{}, ErrNodeCacheEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*nodeCacheRepository.Get").Str("node_id", nodeID).Msg("error reading node cache entry")
		return models.NodeCacheEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(data, &entry.Data); err != nil {
		return models.NodeCacheEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// Clear removes every entry.
func (r *nodeCacheRepository) Clear(ctx context.Context) error {
	query, args, err := r.clearQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "node_cache.clear", func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nodeCacheRepository.Clear").Msg("error clearing node cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
