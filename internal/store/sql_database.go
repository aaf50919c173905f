package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/migrations"
)

// DB is an open node cache database together with the knowledge of which
// SQL flavour it speaks.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == migrations.DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// NewConnect opens the database named by dsn: PostgreSQL for postgres URLs,
// SQLite for everything else.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}
