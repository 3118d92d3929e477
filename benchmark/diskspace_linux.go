//go:build linux
// +build linux

package benchmark

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkDiskSpace fails with ErrDiskSpace when the filesystem holding dir
// cannot fit `required` more bytes.
func checkDiskSpace(dir string, required int64) error {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return fmt.Errorf("unable to stat filesystem of %s: %w", dir, err)
	}
	available := int64(stat.Bavail) * stat.Bsize
	if available < required {
		return fmt.Errorf("%w: need %d bytes, %d available in %s", ErrDiskSpace, required, available, dir)
	}
	return nil
}
