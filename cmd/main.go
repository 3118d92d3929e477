package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/volkfox/tigris-speedtest/benchmark"
	"github.com/volkfox/tigris-speedtest/config"
	"github.com/volkfox/tigris-speedtest/logger"
	"github.com/volkfox/tigris-speedtest/storage"
)

func main() {
	// Interrupts cancel in-flight transfers; deferred cleanup in run still
	// executes before the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "speedtest",
		Usage: "S3 speed test tool",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "create", Usage: "Create test files"},
			&cli.BoolFlag{Name: "upload", Usage: "Upload files to S3"},
			&cli.BoolFlag{Name: "download", Usage: "Download files from S3"},
			&cli.BoolFlag{Name: "list", Usage: "List objects in bucket"},
			&cli.BoolFlag{Name: "purge", Usage: "Delete this harness's objects from the bucket"},
			&cli.BoolFlag{Name: "all", Usage: "Run all tests"},
			&cli.BoolFlag{Name: "large", Usage: "Test large file operations"},
			&cli.BoolFlag{Name: "small", Usage: "Test small files operations"},
			&cli.BoolFlag{Name: "modified", Usage: "Regenerate the large file with fresh content"},
			&cli.Int64Flag{
				Name:  "size",
				Usage: "Size of large file in bytes",
				Value: config.DefaultLargeFileSize,
			},
			&cli.IntFlag{
				Name:  "times",
				Usage: "Number of times to repeat large file download",
				Value: 1,
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "Worker count for small-file batches",
				Value:   10,
				EnvVars: []string{"SPEEDTEST_CONCURRENCY"},
			},
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "Max requests per second for batch transfers (0 means no limit)",
			},
			&cli.StringFlag{
				Name:  "query",
				Usage: `Optional metadata query for listing (e.g. '` + "`Content-Type`" + ` = "text/plain"')`,
			},
			&cli.BoolFlag{
				Name:  "replace-original",
				Usage: "Replace original files with downloaded ones",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"SPEEDTEST_LOG_LEVEL"},
			},
		},
		Action: run,
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Log.Error().Err(err).Msg("speedtest failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger.SetLevel(c.String("log-level"))

	// Fail fast on missing credentials before any network call.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := c.Context

	if c.Bool("list") {
		store, err := storage.NewS3Client(cfg)
		if err != nil {
			return err
		}
		return benchmark.RunList(ctx, store, cfg.Bucket, c.String("query"))
	}

	doCreate := c.Bool("create") || c.Bool("all")
	doUpload := c.Bool("upload") || c.Bool("all")
	doDownload := c.Bool("download") || c.Bool("all")
	doPurge := c.Bool("purge")

	if !doCreate && !doUpload && !doDownload && !doPurge {
		fmt.Println("Please specify an operation (--create, --upload, --download, --list, --purge, or --all)")
		return nil
	}

	params := benchmark.Params{
		Large:           c.Bool("large") || c.Bool("all"),
		Small:           c.Bool("small") || c.Bool("all"),
		Size:            c.Int64("size"),
		Times:           c.Int("times"),
		Concurrency:     c.Int("concurrency"),
		RateLimit:       c.Int("rate-limit"),
		Modified:        c.Bool("modified"),
		ReplaceOriginal: c.Bool("replace-original"),
	}
	// No file type selected: default to both.
	if !params.Large && !params.Small {
		params.Large = true
		params.Small = true
	}

	// Downloads are scoped to the run: remove them on every exit path,
	// normal, error or interrupt.
	staging := benchmark.NewStaging(cfg.DataDir)
	defer staging.CleanupDownloads()

	var store storage.ObjectStore
	if doUpload || doDownload || doPurge {
		s3, err := storage.NewS3Client(cfg)
		if err != nil {
			return err
		}
		store = s3
		if err := benchmark.SetMaxResources(); err != nil {
			logger.Log.Warn().Err(err).Msg("could not raise resource limits")
		}
	}

	if doCreate {
		if err := benchmark.RunCreate(cfg, params); err != nil {
			return err
		}
	}
	if doUpload {
		if err := benchmark.RunUpload(ctx, store, cfg, params); err != nil {
			return err
		}
	}
	if doDownload {
		if err := benchmark.RunDownload(ctx, store, cfg, params); err != nil {
			return err
		}
	}
	if doPurge {
		if err := benchmark.RunPurge(ctx, store, params.Concurrency); err != nil {
			return err
		}
	}
	return nil
}
