package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSUploader is the Google Cloud Storage image backend.
type GCSUploader struct {
	client    *storage.Client
	bucket    string
	maxImages int
}

func NewGCSUploader(ctx context.Context, bucket, credentialsPath string, maxImages int) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("missing GCS_BUCKET env var")
	}
	var opts []option.ClientOption
	if credentialsPath != "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsFile(filepath.Join(wd, credentialsPath)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &GCSUploader{client: client, bucket: bucket, maxImages: maxImages}, nil
}

func (u *GCSUploader) UploadProductImages(ctx context.Context, productSlug string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) < 1 || len(files) > u.maxImages {
		return nil, fmt.Errorf("images must be 1 to %d", u.maxImages)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		objectName := productObjectName(productSlug, fh.Filename)

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}

		w := u.client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
		w.ContentType = contentTypeFor(fh)

		if _, err := io.Copy(w, f); err != nil {
			_ = f.Close()
			_ = w.Close()
			return nil, fmt.Errorf("upload copy: %w", err)
		}
		_ = f.Close()
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("upload close: %w", err)
		}

		urls = append(urls, fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, objectName))
	}

	return urls, nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}
