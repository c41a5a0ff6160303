package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/models"
)

const feedingNotFound = "Feeding record not found"

// PutHandler applies partial updates. Soft deletes are updates too:
// {"deleted": true}.
type PutHandler struct {
	service service.RecordServiceIface
	logger  *zap.Logger
	maxBody int64
}

func NewPut(s service.RecordServiceIface, l *zap.Logger, maxBody int64) *PutHandler {
	return &PutHandler{
		service: s,
		logger:  l,
		maxBody: maxBody,
	}
}

func (h *PutHandler) Feeding(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id, err := pathID(req)
	if err != nil {
		writeError(res, h.logger, err, feedingNotFound)
		return
	}

	var patch models.FeedingPatch
	if err := decodeJSONBody(res, req, &patch, h.maxBody); err != nil {
		writeError(res, h.logger, err, feedingNotFound)
		return
	}

	r, err := h.service.UpdateFeeding(ctx, id, patch)
	if err != nil {
		writeError(res, h.logger, err, feedingNotFound)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, r)
}

func (h *PutHandler) Message(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id, err := pathID(req)
	if err != nil {
		writeError(res, h.logger, err, messageNotFound)
		return
	}

	var patch models.MessagePatch
	if err := decodeJSONBody(res, req, &patch, h.maxBody); err != nil {
		writeError(res, h.logger, err, messageNotFound)
		return
	}

	m, err := h.service.UpdateMessage(ctx, id, patch)
	if err != nil {
		writeError(res, h.logger, err, messageNotFound)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, m)
}
