package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestObjectStore(t *testing.T) (*LocalObjectStore, string) {
	t.Helper()
	dir := t.TempDir()
	objectStore, err := NewLocalObjectStore(dir)
	require.NoError(t, err)
	return objectStore, dir
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestLocalObjectStore_PutGetObject(t *testing.T) {
	objectStore, baseDir := setupTestObjectStore(t)
	ctx := context.Background()

	bucket := "models"
	key := "job/config.json"
	content := []byte(`{"epochs": 3}`)

	require.NoError(t, objectStore.PutObject(ctx, bucket, key, bytes.NewReader(content)))

	data, err := os.ReadFile(filepath.Join(baseDir, bucket, "job", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	obj, err := objectStore.GetObject(ctx, bucket, key)
	require.NoError(t, err)
	defer obj.Close()

	data, err = io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	_, err = objectStore.GetObject(ctx, bucket, "missing")
	assert.Error(t, err)
}

func TestLocalObjectStore_CreateBucket(t *testing.T) {
	objectStore, baseDir := setupTestObjectStore(t)

	require.NoError(t, objectStore.CreateBucket(context.Background(), "models"))
	require.NoError(t, objectStore.CreateBucket(context.Background(), "models"))

	info, err := os.Stat(filepath.Join(baseDir, "models"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalObjectStore_ListAndDeleteObjects(t *testing.T) {
	objectStore, baseDir := setupTestObjectStore(t)
	ctx := context.Background()

	writeTree(t, filepath.Join(baseDir, "models"), map[string]string{
		"job-a/model.bin":    "weights",
		"job-a/nested/vocab": "abc",
		"job-b/model.bin":    "other",
	})

	var names []string
	for obj, err := range objectStore.ListObjects(ctx, "models", "job-a/") {
		require.NoError(t, err)
		names = append(names, obj.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"job-a/model.bin", "job-a/nested/vocab"}, names)

	for _, err := range objectStore.ListObjects(ctx, "missing-bucket", "") {
		require.NoError(t, err)
	}

	require.NoError(t, objectStore.DeleteObjects(ctx, "models", "job-a"))

	_, err := os.Stat(filepath.Join(baseDir, "models", "job-a"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(baseDir, "models", "job-b", "model.bin"))
	assert.NoError(t, err)
}

func TestLocalObjectStore_UploadDownloadDir(t *testing.T) {
	objectStore, _ := setupTestObjectStore(t)
	ctx := context.Background()

	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"model.bin":             "weights",
		"tokenizer/vocab.txt":   "a\nb",
		"tokenizer/config.json": "{}",
	})

	require.NoError(t, objectStore.UploadDir(ctx, "models", "job-1", src))

	// The upload is a copy, so changing the source afterwards has no effect.
	require.NoError(t, os.WriteFile(filepath.Join(src, "model.bin"), []byte("changed"), 0o644))

	dest := filepath.Join(t.TempDir(), "out")
	require.NoError(t, objectStore.DownloadDir(ctx, "models", "job-1", dest, false))

	data, err := os.ReadFile(filepath.Join(dest, "model.bin"))
	require.NoError(t, err)
	assert.Equal(t, "weights", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "tokenizer", "vocab.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(data))

	err = objectStore.DownloadDir(ctx, "models", "job-1", dest, false)
	assert.ErrorIs(t, err, ErrDestExists)

	require.NoError(t, objectStore.DownloadDir(ctx, "models", "job-1", dest, true))
}
