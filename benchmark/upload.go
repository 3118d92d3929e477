package benchmark

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/volkfox/tigris-speedtest/config"
	"github.com/volkfox/tigris-speedtest/logger"
	"github.com/volkfox/tigris-speedtest/progress"
	"github.com/volkfox/tigris-speedtest/report"
	"github.com/volkfox/tigris-speedtest/storage"
)

// RunUpload transfers the staged corpus selected by params to the bucket.
func RunUpload(ctx context.Context, store storage.ObjectStore, cfg *config.Config, params Params) error {
	staging := NewStaging(cfg.DataDir)

	if params.Large {
		if err := UploadLarge(ctx, store, staging); err != nil {
			return err
		}
	}
	if params.Small {
		if err := UploadSmall(ctx, store, staging, cfg.SmallCount, params.Concurrency, params.RateLimit); err != nil {
			return err
		}
	}
	return nil
}

// UploadLarge sends the staged large file as a single transfer, printing the
// source hash first so a later download can be checked by eye as well.
func UploadLarge(ctx context.Context, store storage.ObjectStore, staging Staging) error {
	path := staging.LargePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotStaged, path)
	}

	sum, err := FileMD5(path)
	if err != nil {
		return err
	}
	fmt.Println("\nUploading large file...")
	fmt.Printf("Source file MD5: %s\n", sum)

	start := time.Now()
	n, err := store.Upload(ctx, LargeFileName, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	report.PrintSample(report.Sample{Operation: "Upload", Bytes: n, Elapsed: time.Since(start)})
	return nil
}

// UploadSmall pushes the staged small-file batch through a bounded worker
// pool. Individual failures are logged and counted rather than aborting the
// batch; any failure makes the whole run report ErrTransfer.
func UploadSmall(ctx context.Context, store storage.ObjectStore, staging Staging, count, concurrency, rateLimit int) error {
	if _, err := os.Stat(staging.SmallPath(0)); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotStaged, staging.SmallPath(0))
	}

	fmt.Printf("\nUploading %d small files...\n", count)
	bar := progress.NewBar(int64(count)).SetCaption("Uploading")

	limiter := newLimiter(rateLimit)
	var totalBytes, failed int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	start := time.Now()
	for i := 0; i < count; i++ {
		n := i
		g.Go(func() error {
			if err := limiterWait(gctx, limiter); err != nil {
				return err
			}
			size, err := store.Upload(gctx, SmallFileName(n), staging.SmallPath(n))
			if err != nil {
				atomic.AddInt64(&failed, 1)
				logger.Log.Error().Err(err).Str("key", SmallFileName(n)).Msg("upload failed")
				return nil
			}
			atomic.AddInt64(&totalBytes, size)
			bar.Increment()
			return nil
		})
	}
	err := g.Wait()
	bar.Finish()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	report.PrintSample(report.Sample{Operation: "Upload", Bytes: atomic.LoadInt64(&totalBytes), Elapsed: time.Since(start)})
	if n := atomic.LoadInt64(&failed); n > 0 {
		return fmt.Errorf("%w: %d of %d uploads failed", ErrTransfer, n, count)
	}
	return nil
}

// newLimiter builds a request rate limiter, nil when unlimited.
func newLimiter(rps int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), 10)
}

func limiterWait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}
