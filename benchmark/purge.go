package benchmark

import (
	"context"
	"fmt"
	"regexp"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/volkfox/tigris-speedtest/logger"
	"github.com/volkfox/tigris-speedtest/progress"
	"github.com/volkfox/tigris-speedtest/storage"
)

var smallFilePattern = regexp.MustCompile(`^small_file_\d+\.txt$`)

// isTestObject reports whether key was uploaded by this harness.
func isTestObject(key string) bool {
	return key == LargeFileName || smallFilePattern.MatchString(key)
}

// RunPurge removes the harness's objects from the bucket so a finished
// benchmark leaves no remote garbage behind. Foreign objects in the bucket
// are left untouched.
func RunPurge(ctx context.Context, store storage.ObjectStore, concurrency int) error {
	objects, err := store.List(ctx, "")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	var keys []string
	for _, obj := range objects {
		if isTestObject(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) == 0 {
		fmt.Println("No test objects found in bucket")
		return nil
	}

	fmt.Printf("\nDeleting %d test objects...\n", len(keys))
	bar := progress.NewBar(int64(len(keys))).SetCaption("Deleting")

	var failed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := store.Remove(gctx, key); err != nil {
				atomic.AddInt64(&failed, 1)
				logger.Log.Error().Err(err).Str("key", key).Msg("delete failed")
				return nil
			}
			bar.Increment()
			return nil
		})
	}
	err = g.Wait()
	bar.Finish()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	if n := atomic.LoadInt64(&failed); n > 0 {
		return fmt.Errorf("%w: %d of %d deletions failed", ErrTransfer, n, len(keys))
	}
	fmt.Printf("Deleted %d objects\n", len(keys))
	return nil
}
