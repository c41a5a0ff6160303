// Package handler contains the HTTP handlers of the record API: decoding and
// validating JSON bodies, mapping service errors onto status codes and
// writing JSON responses.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

// DefaultMaxBodyBytes bounds JSON bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int    // HTTP status code for the error
	msg    string // Error message
}

// Error returns the error message for a malformed request.
func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into dst. The body must be a
// single JSON object of at most limit bytes without unknown fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, limit int64) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			msg := "Content-Type header is not application/json"
			return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
		}
	}

	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &maxBytesError):
			msg := fmt.Sprintf("Request body must not be larger than %d bytes", maxBytesError.Limit)
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			// Timestamp parse failures surface here.
			return &malformedRequest{status: http.StatusBadRequest, msg: err.Error()}
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

// pathID reads the {id} URL parameter.
func pathID(req *http.Request) (int64, error) {
	raw := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &malformedRequest{status: http.StatusBadRequest, msg: fmt.Sprintf("Invalid record id %q", raw)}
	}
	return id, nil
}

func writeJSON(res http.ResponseWriter, logger *zap.Logger, status int, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		logger.Error("cannot encode response", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)

	if _, err := res.Write(response); err != nil {
		logger.Debug("cannot write response", zap.Error(err))
	}
}

func writeMessage(res http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(res, logger, status, models.ErrorResponse{Message: msg})
}

// writeError maps err onto a status code. notFound is the message used for
// service.ErrNotFound.
func writeError(res http.ResponseWriter, logger *zap.Logger, err error, notFound string) {
	var (
		mr *malformedRequest
		ve *models.ValidationError
	)

	switch {
	case errors.As(err, &mr):
		writeMessage(res, logger, mr.status, mr.msg)
	case errors.As(err, &ve):
		writeMessage(res, logger, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrNotFound):
		writeMessage(res, logger, http.StatusNotFound, notFound)
	case errors.Is(err, storage.ErrConflict):
		writeMessage(res, logger, http.StatusConflict, "Record id already exists")
	case errors.Is(err, service.ErrUnavailable):
		logger.Error("storage unavailable", zap.Error(err))
		writeMessage(res, logger, http.StatusServiceUnavailable, "Storage unavailable")
	default:
		logger.Error("request failed", zap.Error(err))
		writeMessage(res, logger, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
