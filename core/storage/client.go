package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the narrow interface the gateway needs from the storage backend.
type Client interface {
	// ListBuckets enumerates all buckets visible to the credentials.
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	// BucketExists checks if a bucket exists and is reachable.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// GetBucketLocation resolves the region a bucket actually lives in.
	GetBucketLocation(ctx context.Context, bucketName string) (string, error)
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// NewClient creates a new Minio client based on the configuration.
// It resolves credentials before dialing anything: static keys when both are
// configured, otherwise the AWS shared credentials file (honoring the named
// profile) and the process environment.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	creds, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     creds,
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return minioClient, nil
}

// resolveCredentials picks the credential source for the session. The minio
// chain falls back to anonymous access when every provider comes up empty;
// anonymous is useless against a private bucket, so it is reported as a
// missing-credentials failure instead.
func resolveCredentials(cfg Config) (*credentials.Credentials, error) {
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		return credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""), nil
	}

	var providers []credentials.Provider
	if cfg.Profile != "" {
		// A named profile is explicit: do not fall back elsewhere if it is
		// missing, that would mask a misconfiguration.
		providers = []credentials.Provider{
			&credentials.FileAWSCredentials{Profile: cfg.Profile},
		}
	} else {
		providers = []credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.FileAWSCredentials{},
		}
	}

	creds := credentials.NewChainCredentials(providers)
	val, err := creds.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if val.SignerType.IsAnonymous() {
		if cfg.Profile != "" {
			return nil, fmt.Errorf("%w: profile %q yielded no keys", ErrNoCredentials, cfg.Profile)
		}
		return nil, ErrNoCredentials
	}

	return creds, nil
}
