package storage

import "errors"

// Sentinel errors for fatal session initialization failures. Callers can
// match them with errors.Is to distinguish the probe taxonomy; every one of
// them aborts startup.
var (
	// ErrNoCredentials indicates that no usable credentials could be
	// resolved from the configuration, the shared credentials file, or the
	// environment.
	ErrNoCredentials = errors.New("no usable storage credentials")

	// ErrBucketNotFound indicates that the target bucket does not exist.
	ErrBucketNotFound = errors.New("bucket does not exist")

	// ErrBucketForbidden indicates that access to the target bucket was
	// denied.
	ErrBucketForbidden = errors.New("access denied to bucket")

	// ErrRegionMismatch indicates that the bucket lives in a different
	// region than the one the session is configured for.
	ErrRegionMismatch = errors.New("bucket region mismatch")
)
