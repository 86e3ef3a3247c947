// Package storage provides the gateway's session with the object storage
// backend.
//
// It wraps the MinIO Go client behind a narrow interface covering exactly
// what the gateway needs: enumerating buckets, probing the target bucket,
// resolving its region, and writing objects. The same client works against
// AWS S3 and self-hosted MinIO instances.
//
// # Session Lifecycle
//
// Open builds the process-wide Session before the server accepts
// connections: it resolves credentials (static keys, named shared-file
// profile, or environment), lists the visible buckets for diagnostics, and
// issues a head-bucket probe against the target. Every failure along the way
// is fatal by design; the sentinel errors in errors.go classify the probe
// outcome (missing credentials, missing bucket, access denied, region
// mismatch). Once Open returns, the Session is immutable and safe to share
// across request handlers without locking.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Usage
//
//	sess, err := storage.Open(ctx, cfg, logger)
//	if err != nil {
//	    // do not serve traffic
//	}
//	info, err := sess.Upload(ctx, "photos/a.png", r, size, "image/png")
package storage
