package benchmark

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/volkfox/tigris-speedtest/config"
	"github.com/volkfox/tigris-speedtest/progress"
)

// RunCreate generates the test corpus selected by params in the staging
// directory.
func RunCreate(cfg *config.Config, params Params) error {
	staging := NewStaging(cfg.DataDir)
	if err := staging.Ensure(); err != nil {
		return err
	}

	if params.Large {
		if err := CreateLargeFile(staging.LargePath(), params.Size); err != nil {
			return err
		}
		if params.Modified {
			// Fresh random content under the same name, so a re-upload
			// transfers a genuinely different object.
			if err := CreateLargeFile(staging.LargePath(), params.Size); err != nil {
				return err
			}
		}
	}

	if params.Small {
		if err := CreateSmallFiles(staging, cfg.SmallCount, cfg.SmallSizeMin, cfg.SmallSizeMax); err != nil {
			return err
		}
	}

	return nil
}

// CreateLargeFile writes exactly `size` bytes of random content to path in
// 1MB chunks.
func CreateLargeFile(path string, size int64) error {
	fmt.Printf("Generating large file %s (%.2f GB)...\n", path, float64(size)/1024/1024/1024)

	if err := checkDiskSpace(filepath.Dir(path), size); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	bar := progress.NewByteBar(size)
	defer bar.Finish()

	w := bufio.NewWriter(f)
	chunk := getBuffer(generationChunkLen)
	defer putBuffer(chunk)

	var written int64
	for written < size {
		remaining := int64(len(chunk))
		if size-written < remaining {
			remaining = size - written
		}
		fillRandom(chunk[:remaining])
		if _, err := w.Write(chunk[:remaining]); err != nil {
			return fmt.Errorf("failed writing %s: %w", path, err)
		}
		written += remaining
		bar.Add64(remaining)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed writing %s: %w", path, err)
	}
	return f.Sync()
}

// CreateSmallFiles generates `count` files with sizes uniform in
// [minSize, maxSize).
func CreateSmallFiles(staging Staging, count, minSize, maxSize int) error {
	fmt.Printf("Generating %d small files...\n", count)

	if err := checkDiskSpace(staging.Dir(), int64(count)*int64(maxSize)); err != nil {
		return err
	}

	bar := progress.NewBar(int64(count))
	defer bar.Finish()

	buf := getBuffer(maxSize)
	defer putBuffer(buf)

	for i := 0; i < count; i++ {
		size := randomSize(minSize, maxSize)
		fillRandom(buf[:size])
		if err := os.WriteFile(staging.SmallPath(i), buf[:size], 0o644); err != nil {
			return fmt.Errorf("failed writing %s: %w", staging.SmallPath(i), err)
		}
		bar.Increment()
	}
	return nil
}
