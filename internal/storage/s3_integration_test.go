//go:build integration

package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"argilla-trainer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/minio"
)

const (
	minioUsername = "admin"
	minioPassword = "password"
	bucketName    = "test-models"
)

func setupMinioStore(t *testing.T, ctx context.Context) *storage.S3ObjectStore {
	t.Helper()

	minioContainer, err := minio.Run(
		ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		minio.WithUsername(minioUsername),
		minio.WithPassword(minioPassword),
	)
	require.NoError(t, err, "Failed to start MinIO container")

	t.Cleanup(func() {
		require.NoError(t, minioContainer.Terminate(context.Background()))
	})

	connStr, err := minioContainer.ConnectionString(ctx)
	require.NoError(t, err)

	store, err := storage.NewS3ObjectStore(storage.S3ClientConfig{
		Endpoint:        "http://" + connStr,
		Region:          "us-east-1",
		AccessKeyID:     minioUsername,
		SecretAccessKey: minioPassword,
	})
	require.NoError(t, err)

	require.NoError(t, store.CreateBucket(ctx, bucketName))
	require.NoError(t, store.CreateBucket(ctx, bucketName))

	return store
}

func TestS3ObjectStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	store := setupMinioStore(t, ctx)

	t.Run("PutGetObject", func(t *testing.T) {
		content := []byte("Test content")
		require.NoError(t, store.PutObject(ctx, bucketName, "dir/file.txt", bytes.NewReader(content)))

		obj, err := store.GetObject(ctx, bucketName, "dir/file.txt")
		require.NoError(t, err)
		defer obj.Close()

		data, err := io.ReadAll(obj)
		require.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("UploadDownloadDir", func(t *testing.T) {
		src := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(src, "tokenizer"), os.ModePerm))
		require.NoError(t, os.WriteFile(filepath.Join(src, "model.bin"), []byte("weights"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(src, "tokenizer", "vocab.txt"), []byte("vocab"), 0o644))

		require.NoError(t, store.UploadDir(ctx, bucketName, "job-1", src))

		var names []string
		for obj, err := range store.ListObjects(ctx, bucketName, "job-1/") {
			require.NoError(t, err)
			names = append(names, obj.Name)
		}
		sort.Strings(names)
		assert.Equal(t, []string{"job-1/model.bin", "job-1/tokenizer/vocab.txt"}, names)

		dest := filepath.Join(t.TempDir(), "out")
		require.NoError(t, store.DownloadDir(ctx, bucketName, "job-1", dest, false))

		data, err := os.ReadFile(filepath.Join(dest, "tokenizer", "vocab.txt"))
		require.NoError(t, err)
		assert.Equal(t, "vocab", string(data))

		assert.ErrorIs(t, store.DownloadDir(ctx, bucketName, "job-1", dest, false), ErrDestExists)
		require.NoError(t, store.DownloadDir(ctx, bucketName, "job-1/", dest, true))
		_, err = os.Stat(filepath.Join(dest, "model.bin"))
		assert.NoError(t, err)
	})

	t.Run("DeleteObjects", func(t *testing.T) {
		require.NoError(t, store.DeleteObjects(ctx, bucketName, "job-1/"))

		for range store.ListObjects(ctx, bucketName, "job-1/") {
			t.Fatal("expected no objects after delete")
		}
	})
}
