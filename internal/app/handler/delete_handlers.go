package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/models"
)

// DeleteHandler serves archiving (soft delete) and permanent deletion.
type DeleteHandler struct {
	service service.ShortenerIface
	logger  *zap.Logger
}

// NewDelete creates a DeleteHandler.
func NewDelete(s service.ShortenerIface, l *zap.Logger) *DeleteHandler {
	return &DeleteHandler{
		service: s,
		logger:  l,
	}
}

// Archive soft-deletes the record named in the body and answers with the
// refreshed active listing. Archiving twice is a no-op success.
func (h *DeleteHandler) Archive(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.IDRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if err := h.service.Archive(ctx, request.ID); err != nil {
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

// Purge permanently removes the record named in the body and answers with
// the refreshed archived listing. The UI only offers this from the archive
// view; the operation itself accepts any id.
func (h *DeleteHandler) Purge(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.IDRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if err := h.service.Delete(ctx, request.ID); err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	h.logger.Info("record permanently deleted", zap.String("id", request.ID))

	urls, err := h.service.AllArchived(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.ListResponse{URLs: urls})
}
