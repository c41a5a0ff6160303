package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/handler"
	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/mocks"
	"github.com/atinyakov/catfeed/internal/models"
)

func TestPutFeeding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRecordServiceIface(ctrl)
	h := handler.NewPut(mockService, zap.NewNop(), handler.DefaultMaxBodyBytes)

	deleted := true

	t.Run("soft delete", func(t *testing.T) {
		mockService.EXPECT().
			UpdateFeeding(gomock.Any(), int64(42), models.FeedingPatch{Deleted: &deleted}).
			Return(&models.FeedingRecord{ID: 42, Type: models.Other, State: models.Deleted}, nil)

		req := muxRequestWithParam(newJSONRequest(http.MethodPut, "/api/feedings/42", `{"deleted":true}`), "id", "42")
		w := httptest.NewRecorder()
		h.Feeding(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().
			UpdateFeeding(gomock.Any(), int64(43), gomock.Any()).
			Return(nil, service.ErrNotFound)

		req := muxRequestWithParam(newJSONRequest(http.MethodPut, "/api/feedings/43", `{"deleted":true}`), "id", "43")
		w := httptest.NewRecorder()
		h.Feeding(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Feeding record not found"}`, w.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		req := muxRequestWithParam(newJSONRequest(http.MethodPut, "/api/feedings/x", `{"deleted":true}`), "id", "x")
		w := httptest.NewRecorder()
		h.Feeding(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockRecordServiceIface(ctrl)
	h := handler.NewPut(mockService, zap.NewNop(), handler.DefaultMaxBodyBytes)

	likes := 3
	mockService.EXPECT().
		UpdateMessage(gomock.Any(), int64(7), models.MessagePatch{Likes: &likes}).
		Return(&models.Message{ID: 7, Content: "meow", Likes: 3}, nil)

	req := muxRequestWithParam(newJSONRequest(http.MethodPut, "/api/messages/7", `{"likes":3}`), "id", "7")
	w := httptest.NewRecorder()
	h.Message(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":3`)

	t.Run("unknown field", func(t *testing.T) {
		req := muxRequestWithParam(newJSONRequest(http.MethodPut, "/api/messages/7", `{"hearts":3}`), "id", "7")
		w := httptest.NewRecorder()
		h.Message(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
