//go:build linux
// +build linux

package benchmark

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/volkfox/tigris-speedtest/logger"
)

// SetMaxResources raises the open-file limit to the hard maximum so a
// 10,000-file batch doesn't exhaust descriptors, and widens the Go runtime's
// thread ceiling to match the kernel's.
func SetMaxResources() error {
	const threadLimit = 10000
	rLimit := unix.Rlimit{}

	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("unable to get rlimit: %w", err)
	}

	rLimit.Cur = rLimit.Max
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return fmt.Errorf("unable to set open file limit: %w", err)
	}

	threads, err := readLinuxMaxThreads()
	if err != nil {
		return fmt.Errorf("unable to read max threads: %w", err)
	}

	maxThreads := (int(threads) * 90) / 100
	if maxThreads > threadLimit {
		debug.SetMaxThreads(maxThreads)
	}

	logger.Log.Debug().Uint64("nofile", rLimit.Cur).Msg("system resource limits raised")
	return nil
}

// readLinuxMaxThreads reads the max threads from /proc/sys/kernel/threads-max.
func readLinuxMaxThreads() (uint32, error) {
	data, err := os.ReadFile("/proc/sys/kernel/threads-max")
	if err != nil {
		return 0, fmt.Errorf("unable to read /proc/sys/kernel/threads-max: %w", err)
	}
	trimmed := strings.TrimSpace(string(data))
	threads, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse max threads value: %w", err)
	}
	return uint32(threads), nil
}
