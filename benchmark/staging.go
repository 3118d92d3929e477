package benchmark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/volkfox/tigris-speedtest/logger"
)

// Deterministic names for staged artifacts.
const (
	LargeFileName      = "large_file.dat"
	downloadSubdir     = "downloads"
	smallFileNameFmt   = "small_file_%d.txt"
	generationChunkLen = 1024 * 1024 // 1MB chunks
)

// SmallFileName returns the deterministic name of the n-th small test file.
func SmallFileName(n int) string {
	return fmt.Sprintf(smallFileNameFmt, n)
}

// Staging is the local directory holding generated and downloaded test
// artifacts for the duration of a run.
type Staging struct {
	dir string
}

// NewStaging wraps the configured staging directory path.
func NewStaging(dir string) Staging {
	return Staging{dir: dir}
}

// Dir returns the staging directory path.
func (s Staging) Dir() string { return s.dir }

// Ensure creates the staging directory if it doesn't exist.
func (s Staging) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging directory %s: %w", s.dir, err)
	}
	return nil
}

// LargePath is the location of the staged large file.
func (s Staging) LargePath() string {
	return filepath.Join(s.dir, LargeFileName)
}

// SmallPath is the location of the n-th staged small file.
func (s Staging) SmallPath(n int) string {
	return filepath.Join(s.dir, SmallFileName(n))
}

// DownloadDir is where downloaded copies land so they never clobber the
// staged originals.
func (s Staging) DownloadDir() string {
	return filepath.Join(s.dir, downloadSubdir)
}

// DownloadPath is the download location for the named object.
func (s Staging) DownloadPath(name string) string {
	return filepath.Join(s.DownloadDir(), name)
}

// CleanupDownloads removes every downloaded artifact, truncated partials
// included. Best effort: failures are logged, never fatal, so it is safe to
// run on every exit path.
func (s Staging) CleanupDownloads() {
	if _, err := os.Stat(s.DownloadDir()); os.IsNotExist(err) {
		return
	}
	if err := os.RemoveAll(s.DownloadDir()); err != nil {
		logger.Log.Warn().Err(err).Str("dir", s.DownloadDir()).Msg("cleanup of downloads failed")
	}
}
