package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/models"
)

// PostHandler serves creation and the duplicate check.
type PostHandler struct {
	service service.ShortenerIface
	logger  *zap.Logger
}

// NewPost creates a PostHandler.
func NewPost(s service.ShortenerIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// Create shortens the submitted URL and answers 201 with the refreshed
// active listing. Duplicate original URLs are allowed; the match is logged as
// an advisory.
func (h *PostHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.CreateRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	if normalized, err := service.NormalizeURL(request.URL); err == nil {
		if dup, err := h.service.IsDuplicateOriginal(ctx, normalized); err == nil && dup {
			h.logger.Info("original URL already shortened", zap.String("url", normalized))
		}
	}

	record, err := h.service.Create(ctx, request.URL)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	h.logger.Info("short link created",
		zap.String("id", record.ID),
		zap.String("shortURL", record.Short),
	)

	urls, err := h.service.All(ctx)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusCreated, models.ListResponse{URLs: urls})
}

// CheckDuplicates answers the polling check: which of the submitted short
// links are shadowed by an active record.
func (h *PostHandler) CheckDuplicates(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var request models.CheckDuplicatesRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		writeDecodeError(res, h.logger, err)
		return
	}

	duplicates, err := h.service.Duplicates(ctx, request.ShortURLs)
	if err != nil {
		writeServiceError(res, h.logger, err)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, models.CheckDuplicatesResponse{Duplicates: duplicates})
}
