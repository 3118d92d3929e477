package benchmark

import (
	"os"
	"testing"

	"github.com/volkfox/tigris-speedtest/config"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Bucket:        "test-bucket",
		DataDir:       dir,
		LargeFileSize: 2048,
		SmallCount:    20,
		SmallSizeMin:  2,
		SmallSizeMax:  64,
	}
}

// stageSmallFiles writes the small-file corpus the upload helpers expect.
func stageSmallFiles(t *testing.T, staging Staging, count int) {
	t.Helper()
	if err := staging.Ensure(); err != nil {
		t.Fatal(err)
	}
	if err := CreateSmallFiles(staging, count, 2, 64); err != nil {
		t.Fatal(err)
	}
}

// stageLargeFile writes a staged large file of the given size.
func stageLargeFile(t *testing.T, staging Staging, size int64) {
	t.Helper()
	if err := staging.Ensure(); err != nil {
		t.Fatal(err)
	}
	if err := CreateLargeFile(staging.LargePath(), size); err != nil {
		t.Fatal(err)
	}
}

// downloadsLeftBehind lists leftover files under the downloads dir.
func downloadsLeftBehind(t *testing.T, staging Staging) []string {
	t.Helper()
	entries, err := os.ReadDir(staging.DownloadDir())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
