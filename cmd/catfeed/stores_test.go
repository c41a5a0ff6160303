package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/config"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

func TestOpenStores_Files(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	st, err := openStores(&config.Options{DataDir: dir}, zap.NewNop())
	require.NoError(t, err)
	defer st.close()

	for _, name := range []string{"feedings.json", "messages.json", "images.json"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.JSONEq(t, `[]`, string(b))
	}

	assert.NoError(t, st.feedings.PingContext(context.Background()))
}

func TestOpenStores_Memory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	st, err := openStores(&config.Options{DataDir: dir, InMemory: true}, zap.NewNop())
	require.NoError(t, err)

	_, isMemory := st.messages.(*storage.MemoryStorage[models.Message])
	assert.True(t, isMemory)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenStores_MemoryWinsOverDSN(t *testing.T) {
	// the DSN is never dialed when memory is forced
	opts := &config.Options{DatabaseDSN: "postgres://nobody@127.0.0.1:1/none", InMemory: true}

	st, err := openStores(opts, zap.NewNop())
	require.NoError(t, err)
	defer st.close()

	_, isMemory := st.feedings.(*storage.MemoryStorage[models.FeedingRecord])
	assert.True(t, isMemory)
}
