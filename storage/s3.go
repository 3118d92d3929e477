package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/volkfox/tigris-speedtest/config"
)

// queryHeader is the request header Tigris evaluates as a server-side
// metadata predicate on ListObjectsV2.
const queryHeader = "X-Tigris-Query"

// S3Client implements ObjectStore against any S3-compatible endpoint.
type S3Client struct {
	client *minio.Client
	bucket string
}

// NewS3Client builds a client from the run configuration. It only validates
// the endpoint shape; credentials are checked by the service on first call.
func NewS3Client(cfg *config.Config) (*S3Client, error) {
	u, err := url.Parse(cfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL %q: %w", cfg.EndpointURL, err)
	}

	host := u.Host
	secure := u.Scheme != "http"
	if host == "" {
		// Endpoint given without a scheme, e.g. "fly.storage.tigris.dev".
		host = strings.TrimPrefix(cfg.EndpointURL, "//")
	}

	client, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: newTransport(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &S3Client{client: client, bucket: cfg.Bucket}, nil
}

// Upload transfers a local file to the bucket under key and returns the
// number of bytes sent. Connection pooling across concurrent uploads is
// handled by the shared transport.
func (c *S3Client) Upload(ctx context.Context, key, path string) (int64, error) {
	info, err := c.client.FPutObject(ctx, c.bucket, key, path, minio.PutObjectOptions{
		ContentType: "binary/octet-stream",
	})
	if err != nil {
		return 0, fmt.Errorf("upload of %s failed: %w", key, err)
	}
	return info.Size, nil
}

// Download fetches key into the local path, creating parent directories as
// needed.
func (c *S3Client) Download(ctx context.Context, key, path string) error {
	if err := c.client.FGetObject(ctx, c.bucket, key, path, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("download of %s failed: %w", key, err)
	}
	return nil
}

// List enumerates the bucket. A non-empty query is forwarded verbatim
// (trimmed) in the X-Tigris-Query header so the service filters server-side.
func (c *S3Client) List(ctx context.Context, query string) ([]ObjectInfo, error) {
	opts := minio.ListObjectsOptions{
		Recursive:    true,
		WithMetadata: true,
	}
	if q := strings.TrimSpace(query); q != "" {
		opts.Set(queryHeader, q)
	}

	var objects []ObjectInfo
	for obj := range c.client.ListObjects(ctx, c.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("listing bucket %s failed: %w", c.bucket, obj.Err)
		}
		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			ETag:         strings.Trim(obj.ETag, `"`),
			LastModified: obj.LastModified,
			ContentType:  obj.ContentType,
			UserMetadata: obj.UserMetadata,
		})
	}
	return objects, nil
}

// Stat fetches per-object metadata, the HeadObject counterpart of List.
func (c *S3Client) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("stat of %s failed: %w", key, err)
	}
	return ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ETag:         strings.Trim(info.ETag, `"`),
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
		UserMetadata: info.UserMetadata,
	}, nil
}

// Remove deletes key from the bucket.
func (c *S3Client) Remove(ctx context.Context, key string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removal of %s failed: %w", key, err)
	}
	return nil
}

var _ ObjectStore = (*S3Client)(nil)
