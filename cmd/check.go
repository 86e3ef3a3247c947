package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"upload-gateway/core/config"
	"upload-gateway/core/logger"
	"upload-gateway/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// storageCheckReport is the machine-readable output of the check command.
type storageCheckReport struct {
	Endpoint        string   `json:"endpoint"`
	Bucket          string   `json:"bucket"`
	Region          string   `json:"region"`
	BucketsVisible  []string `json:"buckets_visible"`
	BucketInListing bool     `json:"bucket_in_listing"`
	Reachable       bool     `json:"reachable"`
	Error           string   `json:"error,omitempty"`
	ExecutionTime   string   `json:"execution_time"`
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify storage credentials and bucket reachability",
	Long: `Runs the same storage initialization the server performs, without serving traffic:
resolves credentials, enumerates the buckets visible to them, and probes the
configured bucket. Exits non-zero when the server would refuse to start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if cfg.Storage.Bucket == "" {
			return fmt.Errorf("no target bucket configured (set STORAGE_BUCKET)")
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		logg.Info("Checking storage backend...",
			zap.String("endpoint", cfg.Storage.Endpoint),
			zap.String("bucket", cfg.Storage.Bucket))

		sess := storage.NewSession(client, cfg.Storage.Bucket, cfg.Storage.Region)
		report := storageCheckReport{
			Endpoint: cfg.Storage.Endpoint,
			Bucket:   sess.Bucket(),
			Region:   sess.Region(),
		}

		buckets, err := client.ListBuckets(ctx)
		if err != nil {
			report.Error = fmt.Sprintf("failed to list buckets: %v", err)
			return finishCheck(report, startTime, jsonOutput, fmt.Errorf("failed to list buckets: %w", err))
		}
		for _, b := range buckets {
			report.BucketsVisible = append(report.BucketsVisible, b.Name)
			if b.Name == sess.Bucket() {
				report.BucketInListing = true
			}
		}

		if err := sess.CheckBucket(ctx, logg); err != nil {
			report.Error = err.Error()
			return finishCheck(report, startTime, jsonOutput, err)
		}

		report.Reachable = true
		return finishCheck(report, startTime, jsonOutput, nil)
	},
}

// finishCheck renders the report and propagates the verdict.
func finishCheck(report storageCheckReport, startTime time.Time, jsonOutput bool, verdict error) error {
	report.ExecutionTime = time.Since(startTime).String()

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return verdict
	}

	fmt.Println("\n=== Storage Check ===")
	fmt.Printf("Endpoint: %s\n", report.Endpoint)
	fmt.Printf("Bucket: %s\n", report.Bucket)
	fmt.Printf("Region: %s\n", report.Region)
	fmt.Printf("Visible Buckets: %d\n", len(report.BucketsVisible))
	fmt.Printf("Bucket In Listing: %t\n", report.BucketInListing)
	fmt.Printf("Reachable: %t\n", report.Reachable)
	if report.Error != "" {
		fmt.Printf("Error: %s\n", report.Error)
	}
	fmt.Printf("Execution Time: %s\n", report.ExecutionTime)

	return verdict
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("json", false, "Output the report as JSON")
}
