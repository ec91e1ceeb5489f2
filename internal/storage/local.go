package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalObjectStore keeps buckets as directories under a base directory.
type LocalObjectStore struct {
	baseDir string
}

var _ ObjectStore = (*LocalObjectStore)(nil)

func NewLocalObjectStore(dir string) (*LocalObjectStore, error) {
	baseDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", dir, err)
	}

	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}

	return &LocalObjectStore{baseDir: baseDir}, nil
}

func (s *LocalObjectStore) fullpath(bucket, key string) string {
	return filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))
}

func (s *LocalObjectStore) CreateBucket(ctx context.Context, bucket string) error {
	if err := os.MkdirAll(filepath.Join(s.baseDir, bucket), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *LocalObjectStore) PutObject(ctx context.Context, bucket, key string, data io.Reader) error {
	path := s.fullpath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s/%s: %w", bucket, key, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s/%s: %w", bucket, key, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		return fmt.Errorf("failed to write file %s/%s: %w", bucket, key, err)
	}

	return nil
}

func (s *LocalObjectStore) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	file, err := os.Open(s.fullpath(bucket, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s/%s: %w", bucket, key, err)
	}
	return file, nil
}

func (s *LocalObjectStore) ListObjects(ctx context.Context, bucket, prefix string) ObjectIterator {
	return func(yield func(Object, error) bool) {
		root := filepath.Join(s.baseDir, bucket)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			key := filepath.ToSlash(rel)
			if !strings.HasPrefix(key, prefix) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return err
			}
			if !yield(Object{Name: key, Size: info.Size()}, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			yield(Object{}, fmt.Errorf("failed to list objects in %s/%s: %w", bucket, prefix, err))
		}
	}
}

func (s *LocalObjectStore) DeleteObjects(ctx context.Context, bucket, prefix string) error {
	if err := os.RemoveAll(s.fullpath(bucket, prefix)); err != nil {
		return fmt.Errorf("failed to delete objects in %s/%s: %w", bucket, prefix, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func (s *LocalObjectStore) DownloadDir(ctx context.Context, bucket, prefix, dest string, overwrite bool) error {
	if err := prepareDest(dest, overwrite); err != nil {
		return err
	}

	if err := copyDir(s.fullpath(bucket, prefix), dest); err != nil {
		return fmt.Errorf("failed to download %s/%s to %s: %w", bucket, prefix, dest, err)
	}
	return nil
}

func (s *LocalObjectStore) UploadDir(ctx context.Context, bucket, prefix, src string) error {
	destPath := s.fullpath(bucket, prefix)

	if err := os.RemoveAll(destPath); err != nil {
		return fmt.Errorf("failed to remove existing destination: %w", err)
	}

	if err := copyDir(src, destPath); err != nil {
		return fmt.Errorf("failed to upload %s to %s/%s: %w", src, bucket, prefix, err)
	}
	return nil
}
