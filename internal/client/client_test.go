package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/server"
	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/client"
	"github.com/atinyakov/catfeed/internal/config"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
	"github.com/atinyakov/catfeed/internal/view"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	svc := service.NewRecords(
		storage.CreateMemoryStorage[models.FeedingRecord](),
		storage.CreateMemoryStorage[models.Message](),
		storage.CreateMemoryStorage[models.ImageRecord](),
		zap.NewNop(),
	)

	r, err := server.Init(&config.Options{}, svc, zap.NewNop(), time.UTC, prometheus.NewRegistry())
	require.NoError(t, err)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_MutationsRefetch(t *testing.T) {
	ts := newAPI(t)
	ctx := context.Background()

	state := &view.State{}
	c := client.New(ts.URL, state, zap.NewNop(), client.WithHTTPClient(ts.Client()))

	require.NoError(t, c.AddFeeding(ctx, models.CatCan))
	require.NoError(t, c.AddFeeding(ctx, models.CatFood))
	require.Len(t, state.Feedings, 2)

	require.NoError(t, c.DeleteFeeding(ctx, state.Feedings[0].ID))
	assert.True(t, state.Feedings[0].State.IsDeleted())
	assert.Len(t, view.ActiveFeedings(state.Feedings, view.FeedingLimit), 1)

	require.NoError(t, c.PostMessage(ctx, "feed me"))
	require.Len(t, state.Messages, 1)

	id := state.Messages[0].ID
	require.NoError(t, c.LikeMessage(ctx, id))
	require.NoError(t, c.LikeMessage(ctx, id))
	assert.Equal(t, 2, state.Messages[0].Likes)

	require.NoError(t, c.DeleteMessage(ctx, id))
	assert.Empty(t, view.LatestMessages(state.Messages, view.MessageLimit))

	require.NoError(t, c.UploadImage(ctx, "https://example.com/cat.jpg"))
	require.Len(t, state.Images, 1)

	points, err := c.Chart(ctx, "UTC")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1, points[0].Count)

	assert.Same(t, state, c.State())
}

func TestClient_ErrorsKeepState(t *testing.T) {
	ts := newAPI(t)
	ctx := context.Background()

	state := &view.State{}
	c := client.New(ts.URL, state, zap.NewNop(), client.WithHTTPClient(ts.Client()))

	require.NoError(t, c.AddFeeding(ctx, models.Other))
	before := state.Feedings

	err := c.UploadImage(ctx, "")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No image URL provided", apiErr.Message)

	err = c.DeleteFeeding(ctx, 1)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	assert.Equal(t, before, state.Feedings)
	assert.Empty(t, state.Images)
}

func TestClient_TransportFailure(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"timestamp":"2024-01-01T08:00:00.000Z","type":"Cat Can","deleted":false}]`))
			return
		}
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	state := &view.State{}
	c := client.New(ts.URL, state, zap.NewNop())

	require.NoError(t, c.FetchFeedings(context.Background()))
	require.Len(t, state.Feedings, 1)

	assert.Error(t, c.FetchAll(context.Background()))
	assert.Len(t, state.Feedings, 1)
	assert.Empty(t, state.Messages)
}
