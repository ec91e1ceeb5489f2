package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3ObjectStore keeps model directories in an S3 compatible service such as
// MinIO.
type S3ObjectStore struct {
	client     *s3.Client
	downloader *manager.Downloader
	uploader   *manager.Uploader
}

var _ ObjectStore = (*S3ObjectStore)(nil)

func NewS3ObjectStore(cfg S3ClientConfig) (*S3ObjectStore, error) {
	client, err := initializeS3Client(cfg)
	if err != nil {
		return nil, fmt.Errorf("s3 store unavailable: %w", err)
	}

	return &S3ObjectStore{
		client:     client,
		downloader: manager.NewDownloader(client),
		uploader:   manager.NewUploader(client),
	}, nil
}

func s3URI(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}

func (s *S3ObjectStore) CreateBucket(ctx context.Context, bucket string) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})

	var exists *types.BucketAlreadyExists
	var owned *types.BucketAlreadyOwnedByYou
	switch {
	case err == nil:
		slog.Info("model bucket created", "bucket", bucket)
	case errors.As(err, &exists), errors.As(err, &owned):
		// Reusing a bucket from an earlier run.
	default:
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func (s *S3ObjectStore) PutObject(ctx context.Context, bucket, key string, data io.Reader) error {
	input := &s3.PutObjectInput{Bucket: aws.String(bucket), Key: aws.String(key), Body: data}
	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("upload %s: %w", s3URI(bucket, key), err)
	}
	return nil
}

func (s *S3ObjectStore) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s3URI(bucket, key), err)
	}
	return out.Body, nil
}

func (s *S3ObjectStore) ListObjects(ctx context.Context, bucket, prefix string) ObjectIterator {
	return func(yield func(Object, error) bool) {
		pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
			Bucket: aws.String(bucket),
			Prefix: aws.String(prefix),
		})

		for pages.HasMorePages() {
			page, err := pages.NextPage(ctx)
			if err != nil {
				yield(Object{}, fmt.Errorf("list %s: %w", s3URI(bucket, prefix), err))
				return
			}
			for _, item := range page.Contents {
				if !yield(Object{Name: aws.ToString(item.Key), Size: aws.ToInt64(item.Size)}, nil) {
					return
				}
			}
		}
	}
}

func (s *S3ObjectStore) DeleteObjects(ctx context.Context, bucket, prefix string) error {
	removed := 0
	for obj, err := range s.ListObjects(ctx, bucket, prefix) {
		if err != nil {
			return err
		}
		input := &s3.DeleteObjectInput{Bucket: aws.String(bucket), Key: aws.String(obj.Name)}
		if _, err := s.client.DeleteObject(ctx, input); err != nil {
			return fmt.Errorf("delete %s: %w", s3URI(bucket, obj.Name), err)
		}
		removed++
	}

	slog.Info("model objects removed", "bucket", bucket, "prefix", prefix, "count", removed)
	return nil
}

func (s *S3ObjectStore) fetch(ctx context.Context, bucket, key, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	input := &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)}
	if _, err := s.downloader.Download(ctx, file, input); err != nil {
		return fmt.Errorf("download %s: %w", s3URI(bucket, key), err)
	}
	return nil
}

func (s *S3ObjectStore) DownloadDir(ctx context.Context, bucket, prefix, dest string, overwrite bool) error {
	if err := prepareDest(dest, overwrite); err != nil {
		return err
	}

	prefix = strings.TrimSuffix(prefix, "/") + "/"
	for obj, err := range s.ListObjects(ctx, bucket, prefix) {
		if err == nil {
			rel := filepath.FromSlash(strings.TrimPrefix(obj.Name, prefix))
			err = s.fetch(ctx, bucket, obj.Name, filepath.Join(dest, rel))
		}
		if err != nil {
			return fmt.Errorf("download %s into %s: %w", s3URI(bucket, prefix), dest, err)
		}
	}
	return nil
}

func (s *S3ObjectStore) UploadDir(ctx context.Context, bucket, prefix, src string) error {
	files := 0
	err := filepath.WalkDir(src, func(p string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}

		file, err := os.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()

		files++
		return s.PutObject(ctx, bucket, path.Join(prefix, filepath.ToSlash(rel)), file)
	})
	if err != nil {
		return fmt.Errorf("upload %s to %s: %w", src, s3URI(bucket, prefix), err)
	}

	slog.Info("model directory stored", "src", src, "dest", s3URI(bucket, prefix), "files", files)
	return nil
}
