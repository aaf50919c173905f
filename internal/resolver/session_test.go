package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-toml-selector/internal/mock"
	"github.com/MKhiriev/go-toml-selector/internal/store"
)

func TestSession_RememberLookup(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryNodeCache())
	res := Result{Section: "donald", Found: true, Record: rec("leao", "rei")}

	require.NoError(t, s.Remember(ctx, "7", res))
	entry, ok := s.Lookup(ctx, "7")
	require.True(t, ok)
	assert.Equal(t, "donald", entry.Section)
	assert.Equal(t, []string{"leao"}, entry.Keys())
	assert.False(t, entry.UpdatedAt.IsZero())

	_, ok = s.Lookup(ctx, "8")
	assert.False(t, ok)
}

func TestSession_IgnoresEmptyNodeIDAndMissingSection(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryNodeCache())

	require.NoError(t, s.Remember(ctx, "", Result{Section: "x", Found: true}))
	require.NoError(t, s.Remember(ctx, "1", Result{Section: "absent"}))

	_, ok := s.Lookup(ctx, "1")
	assert.False(t, ok)
}

func TestSession_SharesCallerCache(t *testing.T) {
	ctx := context.Background()
	cache := store.NewMemoryNodeCache()
	s := NewSession(cache)

	require.NoError(t, s.Remember(ctx, "1", Result{Section: "a", Found: true}))
	entry, err := cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", entry.Section)

	require.NoError(t, cache.Clear(ctx))
	_, ok := s.Lookup(ctx, "1")
	assert.False(t, ok, "clearing the cache clears the session")
}

func TestSession_Reset(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryNodeCache())
	require.NoError(t, s.Remember(ctx, "1", Result{Section: "a", Found: true}))
	require.NoError(t, s.Remember(ctx, "2", Result{Section: "b", Found: true}))

	require.NoError(t, s.Reset(ctx))
	_, ok := s.Lookup(ctx, "1")
	assert.False(t, ok)
	_, ok = s.Lookup(ctx, "2")
	assert.False(t, ok)
}

func TestSession_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	a, b := NewSession(store.NewMemoryNodeCache()), NewSession(store.NewMemoryNodeCache())
	require.NoError(t, a.Remember(ctx, "1", Result{Section: "a", Found: true}))

	_, ok := b.Lookup(ctx, "1")
	assert.False(t, ok)
}

func TestSession_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockNodeCacheRepository(ctrl)
	cache.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := NewSession(cache).Remember(context.Background(), "1", Result{Section: "a", Found: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `remember node "1"`)
}

func TestSession_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	s := NewSession(store.NewMemoryNodeCache())
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('a' + i%8))
			_ = s.Remember(ctx, id, Result{Section: id, Found: true})
			s.Lookup(ctx, id)
		}()
	}
	wg.Wait()

	for i := range 8 {
		_, ok := s.Lookup(ctx, string(rune('a'+i)))
		assert.True(t, ok)
	}
}
