// Package server holds the HTTP server configuration and app construction.
//
// The Config struct defines the HTTP port and the maximum accepted request
// body size in megabytes. New builds the Fiber app from it with multipart
// pre-parsing disabled, so handlers see request bodies exactly as they
// arrived on the wire.
//
// # Usage
//
// The core/config package embeds Config; the startup path and the handler
// tests build their apps through New so both serve requests with the same
// body handling.
package server
