package benchmark

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/volkfox/tigris-speedtest/config"
	"github.com/volkfox/tigris-speedtest/logger"
	"github.com/volkfox/tigris-speedtest/progress"
	"github.com/volkfox/tigris-speedtest/report"
	"github.com/volkfox/tigris-speedtest/storage"
)

// RunDownload fetches the previously uploaded corpus, timing every transfer
// and verifying integrity against the staged originals. Per-iteration local
// copies are removed as the run goes; the caller's deferred cleanup catches
// whatever an early exit leaves behind.
func RunDownload(ctx context.Context, store storage.ObjectStore, cfg *config.Config, params Params) error {
	staging := NewStaging(cfg.DataDir)
	var integrityFailures []string
	var runErr error

	if params.Large {
		failures, err := DownloadLarge(ctx, store, staging, params.Times, params.ReplaceOriginal)
		integrityFailures = append(integrityFailures, failures...)
		if err != nil && runErr == nil {
			runErr = err
		}
	}
	if params.Small {
		failures, err := DownloadSmall(ctx, store, staging, cfg.SmallCount, params.Concurrency, params.RateLimit, params.ReplaceOriginal)
		integrityFailures = append(integrityFailures, failures...)
		if err != nil && runErr == nil {
			runErr = err
		}
	}

	if len(integrityFailures) > 0 && !params.ReplaceOriginal {
		fmt.Println("\nIntegrity check failed for the following files:")
		for _, name := range integrityFailures {
			fmt.Printf("- %s\n", name)
		}
		if runErr == nil {
			runErr = fmt.Errorf("%w: %d file(s)", ErrIntegrity, len(integrityFailures))
		}
	}
	return runErr
}

// DownloadLarge repeats the large-file download `times` times, reporting
// per-iteration and aggregate speeds. A failed iteration is reported and the
// loop moves on; it never counts as success. Returns the names of files that
// failed verification.
func DownloadLarge(ctx context.Context, store storage.ObjectStore, staging Staging, times int, replaceOriginal bool) ([]string, error) {
	originalPath := staging.LargePath()
	var stats report.Stats
	var integrityFailures []string
	var failedIterations int

	for i := 0; i < times; i++ {
		if err := ctx.Err(); err != nil {
			return integrityFailures, err
		}

		fmt.Printf("\nDownloading large file (iteration %d/%d)...\n", i+1, times)

		if _, err := os.Stat(originalPath); err == nil && i == 0 && !replaceOriginal {
			if sum, err := FileMD5(originalPath); err == nil {
				fmt.Printf("Original file MD5: %s\n", sum)
			}
		}

		// Only replace the original on the last iteration.
		replaceThisTime := replaceOriginal && i == times-1
		dest := staging.DownloadPath(LargeFileName)
		if replaceThisTime {
			dest = originalPath
		} else if err := os.MkdirAll(staging.DownloadDir(), 0o755); err != nil {
			return integrityFailures, fmt.Errorf("failed to create download directory: %w", err)
		}

		start := time.Now()
		if err := store.Download(ctx, LargeFileName, dest); err != nil {
			logger.Log.Error().Err(err).Int("iteration", i+1).Msg("large file download failed")
			failedIterations++
			continue
		}
		elapsed := time.Since(start)

		fi, err := os.Stat(dest)
		if err != nil {
			return integrityFailures, fmt.Errorf("downloaded file vanished: %w", err)
		}

		sample := report.Sample{Operation: "Download", Bytes: fi.Size(), Elapsed: elapsed}
		if speed, err := sample.SpeedMBps(); err == nil {
			stats.Record(speed)
		}
		if sum, err := FileMD5(dest); err == nil {
			fmt.Printf("Downloaded file MD5: %s\n", sum)
		}
		report.PrintSample(sample)

		if _, err := os.Stat(originalPath); err == nil && !replaceThisTime {
			fmt.Println("Verifying file integrity...")
			ok, err := VerifyIntegrity(originalPath, dest)
			switch {
			case err != nil:
				logger.Log.Error().Err(err).Msg("verification failed to run")
				integrityFailures = append(integrityFailures, fmt.Sprintf("%s (iteration %d)", LargeFileName, i+1))
			case ok:
				fmt.Printf("%s Large file integrity verified\n", report.Good("✓"))
			default:
				fmt.Printf("%s Large file integrity check failed\n", report.Bad("✗"))
				integrityFailures = append(integrityFailures, fmt.Sprintf("%s (iteration %d)", LargeFileName, i+1))
			}
		}

		// Drop the local copy between iterations so each download starts
		// from a cold file.
		if i < times-1 && !replaceOriginal {
			staging.CleanupDownloads()
		}
	}

	if times > 1 {
		stats.PrintSummary("Large file download")
	}
	if failedIterations > 0 {
		return integrityFailures, fmt.Errorf("%w: %d of %d download iterations failed", ErrTransfer, failedIterations, times)
	}
	return integrityFailures, nil
}

// DownloadSmall fetches the whole small-file set once through a bounded
// worker pool, then verifies every downloaded file against its original.
// Returns the names of files that failed verification.
func DownloadSmall(ctx context.Context, store storage.ObjectStore, staging Staging, count, concurrency, rateLimit int, replaceOriginal bool) ([]string, error) {
	fmt.Printf("\nDownloading %d small files...\n", count)

	if !replaceOriginal {
		if err := os.MkdirAll(staging.DownloadDir(), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create download directory: %w", err)
		}
	}

	bar := progress.NewBar(int64(count)).SetCaption("Downloading")
	limiter := newLimiter(rateLimit)
	var totalBytes, failed int64

	destPath := func(n int) string {
		if replaceOriginal {
			return staging.SmallPath(n)
		}
		return staging.DownloadPath(SmallFileName(n))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	start := time.Now()
	for i := 0; i < count; i++ {
		n := i
		g.Go(func() error {
			if err := limiterWait(gctx, limiter); err != nil {
				return err
			}
			if err := store.Download(gctx, SmallFileName(n), destPath(n)); err != nil {
				atomic.AddInt64(&failed, 1)
				logger.Log.Error().Err(err).Str("key", SmallFileName(n)).Msg("download failed")
				return nil
			}
			if fi, err := os.Stat(destPath(n)); err == nil {
				atomic.AddInt64(&totalBytes, fi.Size())
			}
			bar.Increment()
			return nil
		})
	}
	err := g.Wait()
	bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	report.PrintSample(report.Sample{Operation: "Download", Bytes: atomic.LoadInt64(&totalBytes), Elapsed: time.Since(start)})

	var integrityFailures []string
	if !replaceOriginal {
		fmt.Println("Verifying files integrity...")
		verifyBar := progress.NewBar(int64(count)).SetCaption("Verifying")
		verified := 0
		for i := 0; i < count; i++ {
			name := SmallFileName(i)
			originalPath := staging.SmallPath(i)
			downloadPath := staging.DownloadPath(name)
			if _, err := os.Stat(originalPath); err == nil {
				if ok, err := VerifyIntegrity(originalPath, downloadPath); err == nil && ok {
					verified++
				} else {
					integrityFailures = append(integrityFailures, name)
				}
			}
			verifyBar.Increment()
		}
		verifyBar.Finish()

		fmt.Printf("%s %d files verified successfully\n", report.Good("✓"), verified)
		if len(integrityFailures) > 0 {
			fmt.Printf("%s %d files failed integrity check\n", report.Bad("✗"), len(integrityFailures))
		}
	}

	if n := atomic.LoadInt64(&failed); n > 0 {
		return integrityFailures, fmt.Errorf("%w: %d of %d downloads failed", ErrTransfer, n, count)
	}
	return integrityFailures, nil
}
