package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/models"
)

// PutHandler serves short-link updates and restores.
type PutHandler struct {
	service service.ShortenerIface
	logger  *zap.Logger
}

// NewPut creates a PutHandler.
func NewPut(s service.ShortenerIface, l *zap.Logger) *PutHandler {
	return &PutHandler{
		service: s,
		logger:  l,
	}
}

// UpdateByID rewrites the short link of the record whose id travels in the
// path. Collision checking against other active records is the caller's
// advisory step, as in the original system.
func (h *PutHandler) UpdateByID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id := chi.URLParam(req, "id")

	var request models.UpdateShortRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if err := h.service.Update(ctx, id, request.ShortURL); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Update rewrites the short link of the record named in the body and answers
// with the refreshed active listing.
func (h *PutHandler) Update(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.UpdateRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if err := h.service.Update(ctx, request.ID, request.ShortURL); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	urls, err := h.service.All(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.ListResponse{URLs: urls})
}

// Restore returns an archived record to the active state and answers with
// the refreshed archived listing.
func (h *PutHandler) Restore(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.IDRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if err := h.service.Restore(ctx, request.ID); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	urls, err := h.service.AllArchived(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.ListResponse{URLs: urls})
}
