package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/handler"
	"github.com/atinyakov/catfeed/internal/mocks"
	"github.com/atinyakov/catfeed/internal/models"
)

func mustTimestamp(t *testing.T, s string) models.Timestamp {
	t.Helper()
	ts, err := models.ParseTimestamp(s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestGetHandler_Collections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRecordServiceIface(ctrl)
	h := handler.NewGet(mockService, zap.NewNop(), time.UTC)

	t.Run("feedings", func(t *testing.T) {
		mockService.EXPECT().Feedings(gomock.Any()).Return([]models.FeedingRecord{
			{ID: 1, Timestamp: mustTimestamp(t, "2024-01-01T08:00:00Z"), Type: models.CatFood, State: models.Deleted},
		})

		w := httptest.NewRecorder()
		h.Feedings(w, httptest.NewRequest(http.MethodGet, "/api/feedings", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"timestamp":"2024-01-01T08:00:00.000Z","type":"Cat Food","deleted":true}]`, w.Body.String())
	})

	t.Run("empty messages", func(t *testing.T) {
		mockService.EXPECT().Messages(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		h.Messages(w, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("images", func(t *testing.T) {
		mockService.EXPECT().Images(gomock.Any()).Return([]models.ImageRecord{
			{ID: 2, Timestamp: mustTimestamp(t, "2024-01-01T08:00:00Z"), URL: "https://example.com/cat.jpg"},
		})

		w := httptest.NewRecorder()
		h.Images(w, httptest.NewRequest(http.MethodGet, "/api/images", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":2,"timestamp":"2024-01-01T08:00:00.000Z","url":"https://example.com/cat.jpg"}]`, w.Body.String())
	})
}

func TestGetHandler_FeedingChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRecordServiceIface(ctrl)
	h := handler.NewGet(mockService, zap.NewNop(), time.UTC)

	feedings := []models.FeedingRecord{
		{ID: 3, Timestamp: mustTimestamp(t, "2024-01-02T09:00:00Z"), Type: models.CatCan},
		{ID: 2, Timestamp: mustTimestamp(t, "2024-01-01T20:00:00Z"), Type: models.CatCan},
		{ID: 1, Timestamp: mustTimestamp(t, "2024-01-01T08:00:00Z"), Type: models.CatCan},
	}

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{
			name:     "default zone",
			target:   "/api/stats/feedings",
			wantCode: http.StatusOK,
			wantBody: `[{"day":"2024/01/01","count":2},{"day":"2024/01/02","count":1}]`,
		},
		{
			name:     "tokyo",
			target:   "/api/stats/feedings?tz=Asia/Tokyo",
			wantCode: http.StatusOK,
			wantBody: `[{"day":"2024/01/01","count":1},{"day":"2024/01/02","count":2}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().Feedings(gomock.Any()).Return(feedings)

			w := httptest.NewRecorder()
			h.FeedingChart(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("unknown zone", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.FeedingChart(w, httptest.NewRequest(http.MethodGet, "/api/stats/feedings?tz=Mars/Olympus", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRecordServiceIface(ctrl)
	h := handler.NewGet(mockService, zap.NewNop(), time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(errors.New("disk gone"))

		w := httptest.NewRecorder()
		h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Deadline", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		})

		w := httptest.NewRecorder()
		h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	})
}
