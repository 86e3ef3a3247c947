// Package health exposes the storage connectivity check of the gateway.
//
// The check is a synchronous bucket reachability probe: the backend is hit
// on every request, no result is cached. A reachable bucket yields 200; any
// probe failure yields 500 with the probe's error message, which makes the
// endpoint suitable for operator-facing monitoring only.
//
// # HTTP Endpoints
//
//   - GET /health : Probes the configured bucket.
package health
