package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

var ErrDestExists = errors.New("destination already exists")

type Object struct {
	Name string
	Size int64
}

type ObjectIterator = iter.Seq2[Object, error]

// ObjectStore holds trained model directories. Keys use '/' as separator on
// every store.
type ObjectStore interface {
	CreateBucket(ctx context.Context, bucket string) error

	PutObject(ctx context.Context, bucket, key string, data io.Reader) error

	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	ListObjects(ctx context.Context, bucket, prefix string) ObjectIterator

	DeleteObjects(ctx context.Context, bucket, prefix string) error

	DownloadDir(ctx context.Context, bucket, prefix, dest string, overwrite bool) error

	UploadDir(ctx context.Context, bucket, prefix, src string) error
}

// prepareDest clears dest for a directory download. An existing dest is only
// replaced when overwrite is set.
func prepareDest(dest string, overwrite bool) error {
	if _, err := os.Stat(dest); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrDestExists, dest)
		}
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("clear %s: %w", dest, err)
		}
	}
	return os.MkdirAll(dest, os.ModePerm)
}
