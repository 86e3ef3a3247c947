package server

import "github.com/gofiber/fiber/v2"

// New constructs the Fiber app with the gateway's server settings applied.
//
// DisablePreParseMultipartForm must stay set: the upload handler scans the
// request body in wire order, and fasthttp's eager multipart parsing would
// replace the body with a rebuilt form that loses field order and demotes
// empty-filename parts to plain values.
func New(cfg *Config) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage:        true, // We will log our own startup message
		BodyLimit:                    cfg.BodyLimitBytes(),
		DisablePreParseMultipartForm: true,
	})
}
