package store

import (
	sq "github.com/Masterminds/squirrel"
)

const nodeCacheTable = "node_cache"

var nodeCacheColumns = []string{"node_id", "section", "data", "updated_at"}

func (r *nodeCacheRepository) saveQuery(nodeID, section, data string, updatedAt any) (string, []any, error) {
	return r.builder.
		Insert(nodeCacheTable).
		Columns(nodeCacheColumns...).
		Values(nodeID, section, data, updatedAt).
		Suffix("ON CONFLICT (node_id) DO UPDATE SET section = excluded.section, data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
}

func (r *nodeCacheRepository) getQuery(nodeID string) (string, []any, error) {
	return r.builder.
		Select(nodeCacheColumns...).
		From(nodeCacheTable).
		Where(sq.Eq{"node_id": nodeID}).
		ToSql()
}

func (r *nodeCacheRepository) clearQuery() (string, []any, error) {
	return r.builder.
		Delete(nodeCacheTable).
		ToSql()
}
