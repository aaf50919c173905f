package node

import "errors"

var (
	ErrDuplicateNode = errors.New("node type already registered")
	ErrNilResolver   = errors.New("node resolver is nil")
	ErrNilLoader     = errors.New("node source loader is nil")
)
