package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/handler"
	handlerhttp "github.com/MKhiriev/go-toml-selector/internal/handler/http"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, nil, "", logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoTransport)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoTransport)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:9000", RequestTimeout: 5 * time.Second}, logger.Nop())

	assert.Equal(t, "127.0.0.1:9000", h.server.Addr)
	assert.Equal(t, 5*time.Second, h.server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, h.server.WriteTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errTransportMissing)
}

func TestRun_ServesUntilCancelledThenRunsHooks(t *testing.T) {
	addr := freeAddress(t)
	hookCalls := 0

	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: addr}, logger.Nop(), func() { hookCalls++ })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/nonexistent")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, hookCalls)

	_, err = http.Get("http://" + addr + "/api/nonexistent")
	assert.Error(t, err)
}
