package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/view"
)

type GetHandler struct {
	service service.RecordServiceIface
	logger  *zap.Logger
	loc     *time.Location
}

// NewGet builds the read handlers. loc is the default chart time zone.
func NewGet(s service.RecordServiceIface, l *zap.Logger, loc *time.Location) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
		loc:     loc,
	}
}

// Feedings returns every feeding record in storage order.
func (h *GetHandler) Feedings(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	writeJSON(res, h.logger, http.StatusOK, nonNil(h.service.Feedings(ctx)))
}

func (h *GetHandler) Messages(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	writeJSON(res, h.logger, http.StatusOK, nonNil(h.service.Messages(ctx)))
}

func (h *GetHandler) Images(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	writeJSON(res, h.logger, http.StatusOK, nonNil(h.service.Images(ctx)))
}

// FeedingChart returns active feedings per day. The tz query parameter
// overrides the configured time zone.
func (h *GetHandler) FeedingChart(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	loc := h.loc
	if tz := req.URL.Query().Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			writeMessage(res, h.logger, http.StatusBadRequest, "Unknown time zone "+tz)
			return
		}
		loc = l
	}

	writeJSON(res, h.logger, http.StatusOK, view.FeedingChart(h.service.Feedings(ctx), loc))
}

func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()
	if err := h.service.PingContext(ctx); err != nil {
		h.logger.Warn("ping failed", zap.Error(err))
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// nonNil makes an empty collection encode as [] rather than null.
func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
