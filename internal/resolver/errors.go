package resolver

import "errors"

// ErrInvalidArity is returned by policy constructors when the slot count is
// outside 1..models.MaxArity.
var ErrInvalidArity = errors.New("invalid projection arity")
