package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-toml-selector/internal/adapter"
	"github.com/MKhiriev/go-toml-selector/internal/service"
	"github.com/MKhiriev/go-toml-selector/models"
)

// Backend is what the browser needs from either the in-process services or
// a remote selector server.
type Backend interface {
	Declarations(ctx context.Context) ([]models.NodeDeclaration, error)
	Declaration(ctx context.Context, name string) (models.NodeDeclaration, error)
	Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error)
	Reload(ctx context.Context) error
}

type localBackend struct {
	services *service.Services
}

// NewLocalBackend browses the source through in-process services.
func NewLocalBackend(services *service.Services) Backend {
	return &localBackend{services: services}
}

func (b *localBackend) Declarations(ctx context.Context) ([]models.NodeDeclaration, error) {
	return b.services.NodeService.Declarations(ctx), nil
}

func (b *localBackend) Declaration(ctx context.Context, name string) (models.NodeDeclaration, error) {
	return b.services.NodeService.Declaration(ctx, name)
}

func (b *localBackend) Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error) {
	return b.services.NodeService.Invoke(ctx, name, inv)
}

func (b *localBackend) Reload(ctx context.Context) error {
	resp := b.services.SectionService.ReloadConfig(ctx)
	if !resp.Success {
		return errors.New(resp.Error)
	}
	return nil
}

type remoteBackend struct {
	server adapter.ServerAdapter
}

// NewRemoteBackend browses the source of a running selector server.
func NewRemoteBackend(server adapter.ServerAdapter) Backend {
	return &remoteBackend{server: server}
}

func (b *remoteBackend) Declarations(ctx context.Context) ([]models.NodeDeclaration, error) {
	return b.server.Nodes(ctx)
}

func (b *remoteBackend) Declaration(ctx context.Context, name string) (models.NodeDeclaration, error) {
	return b.server.Node(ctx, name)
}

func (b *remoteBackend) Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error) {
	return b.server.Invoke(ctx, name, inv)
}

func (b *remoteBackend) Reload(ctx context.Context) error {
	_, err := b.server.Reload(ctx)
	return err
}
