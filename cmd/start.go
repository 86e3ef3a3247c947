package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"upload-gateway/core/config"
	"upload-gateway/core/loader"
	"upload-gateway/core/logger"
	"upload-gateway/core/metrics"
	"upload-gateway/core/middleware/rayid"
	"upload-gateway/core/server"
	"upload-gateway/core/storage"

	"upload-gateway/feature/health"
	"upload-gateway/feature/upload"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "upload-gateway/docs/swagger"
)

// @title Upload Gateway API
// @version 1.0
// @description HTTP gateway that forwards multipart file uploads to S3-compatible object storage.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the upload gateway server",
	Long:  `Starts the HTTP server after verifying that the storage bucket is reachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the storage session before anything listens. The bucket is
		// the gateway's only structural dependency; serving traffic without
		// it reachable would only defer the failure to request time.
		sess, err := storage.Open(context.Background(), cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Failed to initialize storage session", zap.Error(err))
		}

		// 4. Metrics
		observer, err := metrics.NewPrometheusObserver("", prometheus.DefaultRegisterer)
		if err != nil {
			logg.Fatal("Failed to register metrics", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := server.New(&cfg.Server)

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(upload.NewFeature(sess, logg, observer))
		mgr.Register(health.NewFeature(sess, logg, observer))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation and Prometheus metrics (public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("bucket", sess.Bucket()),
				zap.String("region", sess.Region()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
