// Package utils provides small helpers shared by the server and the CLI:
// typed context keys, JSON response writing, the resty HTTP client, JWT
// generation and validation, HMAC response signing and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey stores the operator authenticated by the reload guard.
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "admin")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext returns the authenticated operator, if any.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok
}
