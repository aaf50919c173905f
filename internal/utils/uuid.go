package utils

import (
	"unicode"

	"github.com/google/uuid"
)

// MaxTraceIDLength bounds a trace id accepted from a caller.
const MaxTraceIDLength = 128

// TraceID returns incoming when it is a usable trace id (non-empty, at most
// MaxTraceIDLength printable ASCII characters without spaces) and a fresh
// UUIDv7 otherwise.
func TraceID(incoming string) string {
	if incoming != "" && len(incoming) <= MaxTraceIDLength && printableToken(incoming) {
		return incoming
	}
	return newTraceID()
}

func newTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

func printableToken(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return false
		}
	}
	return true
}
