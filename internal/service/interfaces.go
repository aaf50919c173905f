package service

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SectionService is the auxiliary query surface over the configured source.
// It never fails past its boundary: every problem is reported inside the
// response with Success set to false.
type SectionService interface {
	GetSection(ctx context.Context, req models.SectionRequest) models.SectionResponse
	GetConfig(ctx context.Context) models.ConfigResponse
	ReloadConfig(ctx context.Context) models.ReloadResponse

	// CachedSection returns what a host node fetched last.
	CachedSection(ctx context.Context, nodeID string) (models.NodeCacheEntry, error)
}

// NodeService exposes the registered selector node types.
type NodeService interface {
	NodeTypes() []string
	Declarations(ctx context.Context) []models.NodeDeclaration
	Declaration(ctx context.Context, name string) (models.NodeDeclaration, error)
	Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error)
	IsChanged(ctx context.Context, name, section string) (string, error)
}

// AuthService issues and checks the admin tokens guarding reloads.
type AuthService interface {
	// Enabled reports whether a sign key is configured. Without one the
	// reload route is open.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
