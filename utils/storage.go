package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageUploader stores product images and returns their public URLs.
type ImageUploader interface {
	UploadProductImages(ctx context.Context, productSlug string, files []*multipart.FileHeader) ([]string, error)
}

// R2Uploader uploads through the S3 API to a Cloudflare R2 bucket.
type R2Uploader struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	maxImages    int
}

func NewR2Uploader(ctx context.Context, bucket, accessKey, secretKey, endpoint, publicDomain string, maxImages int) (*R2Uploader, error) {
	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Uploader{
		client:       client,
		bucket:       bucket,
		publicDomain: strings.TrimRight(publicDomain, "/"),
		maxImages:    maxImages,
	}, nil
}

func (u *R2Uploader) UploadProductImages(ctx context.Context, productSlug string, files []*multipart.FileHeader) ([]string, error) {
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

		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(objectName),
			Body:        f,
			ContentType: aws.String(contentTypeFor(fh)),
		})
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}

		urls = append(urls, fmt.Sprintf("%s/%s/%s", u.publicDomain, u.bucket, objectName))
	}

	return urls, nil
}

func productObjectName(productSlug, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("products/%s/%d%s", productSlug, time.Now().UnixNano(), ext)
}

func contentTypeFor(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct
}
