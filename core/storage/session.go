package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Session is the process-wide handle to the storage backend. It is built
// once by Open before the server accepts connections and is read-only
// afterwards: client, bucket, and region never change for the lifetime of
// the process, so it can be shared across request handlers without locking.
type Session struct {
	client Client
	bucket string
	region string
}

// NewSession wraps an existing client without probing the backend. It exists
// for wiring tests; production startup goes through Open.
func NewSession(client Client, bucket, region string) *Session {
	if region == "" {
		region = DefaultRegion
	}
	return &Session{client: client, bucket: bucket, region: region}
}

// Open establishes the storage session and verifies the target bucket is
// reachable. Any failure is fatal: the bucket is the gateway's single
// structural dependency, and serving traffic without it verified up front
// would only defer the failure to request time in a less diagnosable form.
func Open(ctx context.Context, cfg Config, logg *zap.Logger) (*Session, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("no target bucket configured")
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return openSession(ctx, client, cfg, logg)
}

func openSession(ctx context.Context, client Client, cfg Config, logg *zap.Logger) (*Session, error) {
	s := NewSession(client, cfg.Bucket, cfg.Region)

	// Enumeration is diagnostic output, but a listing failure still aborts
	// startup: credentials that cannot list buckets will not carry the
	// gateway through its first upload either.
	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	logg.Info("Connected to storage backend", zap.Int("buckets", len(buckets)))

	found := false
	for _, b := range buckets {
		if b.Name == s.bucket {
			found = true
			break
		}
	}
	if found {
		logg.Info("Target bucket found in account", zap.String("bucket", s.bucket))
	} else {
		logg.Warn("Target bucket not found in account, verify the name and your access to it",
			zap.String("bucket", s.bucket))
	}

	if err := s.CheckBucket(ctx, logg); err != nil {
		logg.Error("Error accessing bucket", zap.String("bucket", s.bucket), zap.Error(err))
		return nil, err
	}

	return s, nil
}

// Probe performs the head-bucket reachability check. The health endpoint
// calls it on every request; Open relies on the same check (with extra
// classification) at startup.
func (s *Session) Probe(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q: %w", s.bucket, ErrBucketNotFound)
	}
	return nil
}

// Upload streams one object into the target bucket under the given key,
// stamping the provided content type.
func (s *Session) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	return s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
}

// ObjectURL builds the virtual-hosted-style public URL for a stored key.
// Bucket and region are fixed at initialization time.
func (s *Session) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Bucket returns the target bucket name.
func (s *Session) Bucket() string { return s.bucket }

// Region returns the region the session was initialized with.
func (s *Session) Region() string { return s.region }

// CheckBucket probes the target bucket and classifies any failure into the
// startup error taxonomy. Open runs it as the last initialization step; the
// check command reuses it for standalone diagnosis.
func (s *Session) CheckBucket(ctx context.Context, logg *zap.Logger) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return s.classifyBucketError(ctx, logg, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q: %w", s.bucket, ErrBucketNotFound)
	}
	return nil
}

// classifyBucketError maps a failed reachability probe onto the startup
// error taxonomy. A 400-class rejection usually means the client is talking
// to the wrong region, so the bucket's actual location is resolved for the
// diagnosis; failing to resolve it does not soften the verdict.
func (s *Session) classifyBucketError(ctx context.Context, logg *zap.Logger, err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if actual, locErr := s.client.GetBucketLocation(ctx, s.bucket); locErr == nil {
			if actual == "" {
				actual = DefaultRegion
			}
			logg.Info("Resolved actual bucket region",
				zap.String("bucket", s.bucket), zap.String("region", actual))
			if actual != s.region {
				return fmt.Errorf("bucket %q is in %q but the session is configured for %q: %w",
					s.bucket, actual, s.region, ErrRegionMismatch)
			}
		} else {
			logg.Error("Could not determine bucket location",
				zap.String("bucket", s.bucket), zap.Error(locErr))
		}
		return fmt.Errorf("bucket %q rejected the probe: %s - %s", s.bucket, resp.Code, resp.Message)
	case resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchBucket":
		return fmt.Errorf("bucket %q: %w", s.bucket, ErrBucketNotFound)
	case resp.StatusCode == http.StatusForbidden || resp.Code == "AccessDenied":
		return fmt.Errorf("bucket %q: %w", s.bucket, ErrBucketForbidden)
	case resp.Code == "":
		// Not an S3 error response, e.g. a network failure.
		return fmt.Errorf("bucket %q: %w", s.bucket, err)
	default:
		return fmt.Errorf("bucket %q: %s - %s", s.bucket, resp.Code, resp.Message)
	}
}
