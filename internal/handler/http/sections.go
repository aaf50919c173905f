package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
	"github.com/MKhiriev/go-toml-selector/internal/validators"
	"github.com/MKhiriev/go-toml-selector/models"
)

// getSection always answers 200: failures travel inside the response.
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.SectionResponse{Error: err.Error()}, http.StatusOK)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Warn().Err(err).Msg("rejected section request")
		utils.WriteJSON(w, models.SectionResponse{Error: err.Error()}, http.StatusOK)
		return
	}

	resp := h.services.SectionService.GetSection(r.Context(), req)
	if !resp.Success {
		log.Warn().Str("section", req.Section).Str("error", resp.Error).Msg("section query failed")
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SectionService.GetConfig(r.Context()), http.StatusOK)
}

func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if operator, ok := utils.GetOperatorFromContext(ctx); ok {
		log.Info().Str("operator", operator).Msg("reload requested")
	}

	resp := h.services.SectionService.ReloadConfig(ctx)
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusInternalServerError
	}

	utils.WriteJSON(w, resp, status)
}

func (h *Handler) cachedSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	nodeID := chi.URLParam(r, "id")

	if err := h.validator.Validate(r.Context(), models.NodeCacheEntry{NodeID: nodeID}, validators.FieldNodeID); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.services.SectionService.CachedSection(r.Context(), nodeID)
	if err != nil {
		log.Debug().Err(err).Str("node_id", nodeID).Msg("cached section lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}
