package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		limit       int64
		wantStatus  int
	}{
		{name: "valid", contentType: "application/json", body: `{"type":"Cat Can"}`},
		{name: "no content type", body: `{"type":"Cat Can"}`},
		{name: "wrong content type", contentType: "text/plain", body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "syntax error", body: `{"type":}`, wantStatus: http.StatusBadRequest},
		{name: "truncated", body: `{"type":"Cat`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"type":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"kind":"Cat Can"}`, wantStatus: http.StatusBadRequest},
		{name: "empty", body: ``, wantStatus: http.StatusBadRequest},
		{name: "two objects", body: `{}{}`, wantStatus: http.StatusBadRequest},
		{name: "bad timestamp", body: `{"type":"Other","timestamp":"yesterday"}`, wantStatus: http.StatusBadRequest},
		{name: "too large", body: `{"type":"` + strings.Repeat("x", 64) + `"}`, limit: 16, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/feedings", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var dst models.FeedingRequest
			err := decodeJSONBody(httptest.NewRecorder(), req, &dst, tt.limit)

			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, models.CatCan, dst.Type)
				return
			}

			var mr *malformedRequest
			require.ErrorAs(t, err, &mr)
			assert.Equal(t, tt.wantStatus, mr.status)
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", &models.ValidationError{Field: "url", Msg: "No image URL provided"}, http.StatusBadRequest, `{"message":"No image URL provided"}`},
		{"not found", fmt.Errorf("update: %w", service.ErrNotFound), http.StatusNotFound, `{"message":"Feeding record not found"}`},
		{"conflict", storage.ErrConflict, http.StatusConflict, `{"message":"Record id already exists"}`},
		{"unavailable", service.ErrUnavailable, http.StatusServiceUnavailable, `{"message":"Storage unavailable"}`},
		{"other", errors.New("boom"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, zap.NewNop(), tt.err, "Feeding record not found")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
