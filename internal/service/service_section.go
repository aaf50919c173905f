// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-toml-selector/internal/app"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

type sectionService struct {
	loader store.SourceLoader
	cache  store.NodeCacheRepository

	logger *logger.Logger
}

// NewSectionService builds the query service over loader. Section fetches
// that carry a node id are remembered in cache.
func NewSectionService(loader store.SourceLoader, cache store.NodeCacheRepository, log *logger.Logger) SectionService {
	return &sectionService{
		loader: loader,
		cache:  cache,
		logger: log,
	}
}

func (s *sectionService) GetSection(ctx context.Context, req models.SectionRequest) models.SectionResponse {
	log := logger.FromContext(ctx)

	src, err := s.loader.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("section", req.Section).Msg("config source unavailable")
		return models.SectionResponse{Error: loadErrorMessage(err)}
	}

	rec, ok := src.Lookup(req.Section)
	if !ok {
		return models.SectionResponse{Error: fmt.Sprintf(app.MsgSectionNotFound, req.Section)}
	}

	if req.NodeID != "" {
		entry := models.NodeCacheEntry{
			NodeID:    req.NodeID,
			Section:   req.Section,
			Data:      rec,
			UpdatedAt: time.Now().UTC(),
		}
		if err = s.cache.Save(ctx, entry); err != nil {
			log.Warn().Err(err).Str("node_id", req.NodeID).Msg("node cache save failed")
		}
	}

	return models.SectionResponse{
		Success:     true,
		Section:     req.Section,
		SectionData: &rec,
		Data:        &rec,
		Keys:        rec.Keys(),
		Values:      rec.Values(),
	}
}

// GetConfig returns the whole source. An unavailable source is reported as
// an empty configuration.
func (s *sectionService) GetConfig(ctx context.Context) models.ConfigResponse {
	src := s.loadOrEmpty(ctx)

	return models.ConfigResponse{
		Success:  true,
		Config:   &src,
		Sections: src.Names(),
	}
}

// ReloadConfig drops every cached node entry and re-reads the source.
func (s *sectionService) ReloadConfig(ctx context.Context) models.ReloadResponse {
	log := logger.FromContext(ctx)

	if err := s.cache.Clear(ctx); err != nil {
		log.Err(err).Msg("node cache clear failed")
		return models.ReloadResponse{Error: err.Error()}
	}

	src := s.loadOrEmpty(ctx)
	log.Info().Int("sections", src.Len()).Str("source", s.loader.Name()).Msg("configuration reloaded")

	return models.ReloadResponse{
		Success: true,
		Config:  &src,
		Message: app.MsgConfigReloaded,
	}
}

func (s *sectionService) CachedSection(ctx context.Context, nodeID string) (models.NodeCacheEntry, error) {
	entry, err := s.cache.Get(ctx, nodeID)
	if err != nil {
		return models.NodeCacheEntry{}, fmt.Errorf("cached section of node %q: %w", nodeID, err)
	}
	return entry, nil
}

func (s *sectionService) loadOrEmpty(ctx context.Context) models.Source {
	src, err := s.loader.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("source", s.loader.Name()).Msg("config source unavailable, using empty config")
		return models.NewSource()
	}
	return src
}

func loadErrorMessage(err error) string {
	if errors.Is(err, store.ErrSourceNotFound) {
		return app.MsgConfigNotFound
	}
	return err.Error()
}
