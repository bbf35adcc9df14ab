package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/storage"
	apperrors "go-airline-tickets/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - missing file is an empty data set", func(t *testing.T) {
		store := storage.NewFileStorage(filepath.Join(t.TempDir(), "tickets.json"))

		tickets, err := store.Load(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("Success - null document is an empty data set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

		tickets, err := storage.NewFileStorage(path).Load(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("Failed - malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"ticket_id": "T001",`), 0o644))

		tickets, err := storage.NewFileStorage(path).Load(ctx)

		assert.ErrorIs(t, err, apperrors.ErrCorruptData)
		assert.Nil(t, tickets)
	})

	t.Run("Failed - wrong field type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"ticket_id": "T001", "seats_left": "ten"}]`), 0o644))

		_, err := storage.NewFileStorage(path).Load(ctx)

		assert.ErrorIs(t, err, apperrors.ErrCorruptData)
	})

	t.Run("Failed - canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "tickets.json")).Load(canceled)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileStorage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - round trip", func(t *testing.T) {
		assertRoundTrip(t, storage.NewFileStorage(filepath.Join(t.TempDir(), "tickets.json")))
	})

	t.Run("Success - indented JSON array with snake_case field names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		store := storage.NewFileStorage(path)

		require.NoError(t, store.Save(ctx, sampleTickets()[2:]))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)

		assert.True(t, strings.HasPrefix(content, "[\n  {\n"))
		assert.Contains(t, content, `"ticket_id": "T001"`)
		assert.Contains(t, content, `"flight_num": "CZ789"`)
		assert.Contains(t, content, `"price": 1299.99`)
		assert.Contains(t, content, `"seats_left": 3`)
		// 非 ASCII 字元原樣保存
		assert.Contains(t, content, `"origin": "北京"`)
	})

	t.Run("Success - nil slice is written as empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")

		require.NoError(t, storage.NewFileStorage(path).Save(ctx, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("Success - no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		store := storage.NewFileStorage(filepath.Join(dir, "tickets.json"))

		require.NoError(t, store.Save(ctx, sampleTickets()))
		require.NoError(t, store.Save(ctx, sampleTickets()[:1]))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "tickets.json", entries[0].Name())
	})

	t.Run("Failed - directory does not exist", func(t *testing.T) {
		store := storage.NewFileStorage(filepath.Join(t.TempDir(), "missing", "tickets.json"))

		err := store.Save(ctx, []model.Ticket{})

		assert.Error(t, err)
	})
}
