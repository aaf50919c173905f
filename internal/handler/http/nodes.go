package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
	"github.com/MKhiriev/go-toml-selector/internal/validators"
	"github.com/MKhiriev/go-toml-selector/models"
)

func (h *Handler) listNodes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.NodeService.Declarations(r.Context()), http.StatusOK)
}

func (h *Handler) getNode(w http.ResponseWriter, r *http.Request) {
	decl, err := h.services.NodeService.Declaration(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, decl, http.StatusOK)
}

// invokeNode evaluates a node. An empty body selects the node's default
// section.
func (h *Handler) invokeNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	var inv models.Invocation
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			return
		}
	}

	if inv.Section == "" {
		decl, err := h.services.NodeService.Declaration(ctx, name)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}
		inv.Section = decl.DefaultSection
	}
	if err := h.validator.Validate(ctx, inv); err != nil {
		log.Warn().Err(err).Msg("rejected invocation")
		writeError(w, err)
		return
	}

	out, err := h.services.NodeService.Invoke(ctx, name, inv)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *Handler) nodeChanged(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	section := r.URL.Query().Get("section")

	if err := h.validator.Validate(r.Context(), models.Invocation{Section: section}, validators.FieldSection); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.services.NodeService.IsChanged(r.Context(), name, section)
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ChangeTokenResponse{Token: token}, http.StatusOK)
}
