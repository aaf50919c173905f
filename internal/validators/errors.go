package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSection = errors.New("invalid section name")
	ErrInvalidNodeID  = errors.New("invalid node id")
)
