// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestSigner_MatchesHMAC(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte(`{"success":true,"sections":["player_1"]}`)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := mac.Sum(nil)

	if got := s.Sum(data); !bytes.Equal(got, want) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", want, got)
	}
	if got := s.Sign(data); got != hex.EncodeToString(want) {
		t.Errorf("Sign mismatch: got %s", got)
	}
}

func TestSigner_Deterministic(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte("payload")

	if s.Sign(data) != s.Sign(data) {
		t.Fatal("hash must be deterministic for the same input")
	}
	if s.Sign(data) == s.Sign([]byte("other payload")) {
		t.Fatal("different payloads must give different hashes")
	}
}

func TestSigner_DifferentKeys(t *testing.T) {
	data := []byte("payload")
	if NewSigner("a").Sign(data) == NewSigner("b").Sign(data) {
		t.Fatal("different keys must give different hashes")
	}
}

func TestSigner_Verify(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte("payload")
	sig := s.Sign(data)

	if !s.Verify(data, sig) {
		t.Error("expected valid signature")
	}
	if s.Verify([]byte("tampered"), sig) {
		t.Error("expected tampered payload to fail")
	}
	if s.Verify(data, "not-hex") {
		t.Error("expected malformed signature to fail")
	}
}

func TestSigner_NilWhenNoKey(t *testing.T) {
	s := NewSigner("")
	if s != nil {
		t.Fatal("expected nil signer for empty key")
	}
	if s.Sign([]byte("x")) != "" {
		t.Error("nil signer must not sign")
	}
	if !s.Verify([]byte("x"), "anything") {
		t.Error("nil signer must accept everything")
	}
}

func TestSigner_ConcurrentUse(t *testing.T) {
	s := NewSigner(testHashKey)
	want := s.Sign([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Sign([]byte("payload")); got != want {
				t.Errorf("concurrent hash mismatch: %s", got)
			}
		}()
	}
	wg.Wait()
}
