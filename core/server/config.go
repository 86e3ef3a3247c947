package server

// DefaultBodyLimitMB caps request bodies when no limit is configured.
const DefaultBodyLimitMB = 100

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB is the maximum accepted request body size in megabytes.
	// Multipart uploads larger than this are rejected by the server.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"100"`
}

// BodyLimitBytes returns the request body limit in bytes, falling back to
// DefaultBodyLimitMB when the configured value is zero or negative.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = DefaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
