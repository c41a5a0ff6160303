package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/models"
)

const messageNotFound = "Message not found"

type PostHandler struct {
	service service.RecordServiceIface
	logger  *zap.Logger
	maxBody int64
}

// NewPost builds the create handlers. JSON bodies larger than maxBody bytes
// are rejected.
func NewPost(s service.RecordServiceIface, l *zap.Logger, maxBody int64) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
		maxBody: maxBody,
	}
}

func (h *PostHandler) Feeding(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.FeedingRequest
	if err := decodeJSONBody(res, req, &request, h.maxBody); err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	r, err := h.service.CreateFeeding(ctx, request)
	if err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	writeJSON(res, h.logger, http.StatusCreated, r)
}

func (h *PostHandler) Message(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.MessageRequest
	if err := decodeJSONBody(res, req, &request, h.maxBody); err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	m, err := h.service.CreateMessage(ctx, request)
	if err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	writeJSON(res, h.logger, http.StatusCreated, m)
}

// UploadImage serves both POST /api/images and POST /api/images/upload.
func (h *PostHandler) UploadImage(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.ImageRequest
	if err := decodeJSONBody(res, req, &request, h.maxBody); err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	img, err := h.service.UploadImage(ctx, request)
	if err != nil {
		writeError(res, h.logger, err, "")
		return
	}

	writeJSON(res, h.logger, http.StatusCreated, img)
}

// LikeMessage adds one like on the server, so concurrent likes add up.
func (h *PostHandler) LikeMessage(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id, err := pathID(req)
	if err != nil {
		writeError(res, h.logger, err, messageNotFound)
		return
	}

	m, err := h.service.LikeMessage(ctx, id)
	if err != nil {
		writeError(res, h.logger, err, messageNotFound)
		return
	}

	writeJSON(res, h.logger, http.StatusOK, m)
}
