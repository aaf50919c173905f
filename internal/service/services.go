package service

import (
	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/node"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

type Services struct {
	SectionService SectionService
	NodeService    NodeService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over the storages and the node registry.
func NewServices(storages *store.Storages, registry *node.Registry, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SectionService: NewSectionService(storages.Source, storages.NodeCache, logger),
		NodeService:    NewNodeService(registry, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
