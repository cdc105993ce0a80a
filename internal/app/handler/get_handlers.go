package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/models"
	"github.com/advrk/shortener/internal/storage"
)

// GetHandler serves resolution, listings and the health check.
type GetHandler struct {
	service  service.ShortenerIface
	resolver service.ResolverIface
	logger   *zap.Logger
}

// NewGet creates a GetHandler.
func NewGet(s service.ShortenerIface, r service.ResolverIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service:  s,
		resolver: r,
		logger:   l,
	}
}

// Resolve redirects a short-link visit to the destination URL. Archived and
// unknown paths both answer 404; storage faults answer 500.
func (h *GetHandler) Resolve(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	segment := chi.URLParam(req, "id")

	destination, err := h.resolver.Resolve(ctx, segment)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("resolution failed", zap.String("segment", segment), zap.Error(err))
		http.Error(res, "Internal server error", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Location", destination)
	res.WriteHeader(http.StatusFound)
}

// Active lists active records, newest first.
func (h *GetHandler) Active(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	urls, err := h.service.All(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.ListResponse{URLs: urls})
}

// Archived lists archived records, newest first.
func (h *GetHandler) Archived(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	urls, err := h.service.AllArchived(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.ListResponse{URLs: urls})
}

// Ping reports storage availability.
func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
