package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a response body.
const HashHeader = "HashSHA256"

// Signer computes and checks HMAC-SHA256 signatures with a shared key.
// Hashers are pooled. A nil *Signer signs nothing and accepts everything.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a signer for key, or nil when key is empty.
func NewSigner(key string) *Signer {
	if key == "" {
		return nil
	}
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(key))
			},
		},
	}
}

// Sum returns the raw HMAC of data.
func (s *Signer) Sum(data []byte) []byte {
	if s == nil {
		return nil
	}

	h := s.pool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	sum := h.Sum(nil)
	s.pool.Put(h)

	return sum
}

// Sign returns the hex HMAC of data, "" for a nil signer.
func (s *Signer) Sign(data []byte) string {
	if s == nil {
		return ""
	}
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data.
func (s *Signer) Verify(data []byte, signature string) bool {
	if s == nil {
		return true
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Sum(data))
}
