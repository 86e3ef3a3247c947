package storage

// DefaultRegion is assumed when neither the configuration nor the backend
// supplies a bucket region.
const DefaultRegion = "us-east-1"

// Config holds configuration for the storage backend.
type Config struct {
	// Endpoint is the host of the S3-compatible storage service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for static authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for static authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Profile names a profile in the AWS shared credentials file. It is
	// consulted only when no static keys are configured; empty selects the
	// default profile.
	Profile string `mapstructure:"profile" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the target bucket for uploads.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1). Empty falls
	// back to DefaultRegion for URL construction.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
