package service

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version, or the linker-injected
// build version when none is configured.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: version,
		build:   build,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return s.build
}
