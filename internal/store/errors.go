package store

import "errors"

// Source errors. Callers match them with [errors.Is]; the resolver treats
// all of them as an unavailable source.
var (
	// ErrSourceNotFound is returned when the backing file does not exist.
	ErrSourceNotFound = errors.New("config source not found")

	// ErrSourceUnreadable is returned when the backing file exists but
	// cannot be read.
	ErrSourceUnreadable = errors.New("config source unreadable")

	// ErrSourceMalformed is returned when the file cannot be decoded.
	ErrSourceMalformed = errors.New("config source malformed")
)

// Node cache errors.
var (
	// ErrNodeCacheEntryNotFound is returned by Get for an unknown node id.
	ErrNodeCacheEntryNotFound = errors.New("node cache entry not found")

	// ErrEmptyNodeID is returned by Save when the entry has no node id.
	ErrEmptyNodeID = errors.New("node id is empty")
)

// Low-level database errors.
var (
	// ErrUnsupportedDSN is returned when no driver matches the DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrBuildingSQLQuery is returned when the query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan node cache row")
)
