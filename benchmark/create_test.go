package benchmark

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateLargeFileExactSize(t *testing.T) {
	sizes := []int64{
		1,
		1024,
		generationChunkLen,
		generationChunkLen + 1,
		2*generationChunkLen - 7,
	}

	for _, size := range sizes {
		path := filepath.Join(t.TempDir(), LargeFileName)
		if err := CreateLargeFile(path, size); err != nil {
			t.Fatalf("CreateLargeFile(%d) returned error: %v", size, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat after create: %v", err)
		}
		if fi.Size() != size {
			t.Errorf("file size expected %d, got %d", size, fi.Size())
		}
	}
}

func TestCreateLargeFileContentIsFromCharset(t *testing.T) {
	path := filepath.Join(t.TempDir(), LargeFileName)
	if err := CreateLargeFile(path, 4096); err != nil {
		t.Fatalf("CreateLargeFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range data {
		if !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')) {
			t.Fatalf("byte %d is %q, not alphanumeric", i, b)
		}
	}
}

func TestCreateSmallFiles(t *testing.T) {
	staging := NewStaging(t.TempDir())
	const (
		count   = 50
		minSize = 2
		maxSize = 512
	)

	if err := CreateSmallFiles(staging, count, minSize, maxSize); err != nil {
		t.Fatalf("CreateSmallFiles returned error: %v", err)
	}

	for i := 0; i < count; i++ {
		fi, err := os.Stat(staging.SmallPath(i))
		if err != nil {
			t.Fatalf("small file %d missing: %v", i, err)
		}
		if fi.Size() < minSize || fi.Size() >= maxSize {
			t.Errorf("small file %d size %d outside [%d, %d)", i, fi.Size(), minSize, maxSize)
		}
	}
	if _, err := os.Stat(staging.SmallPath(count)); !os.IsNotExist(err) {
		t.Errorf("file %d should not exist", count)
	}
}

func TestRunCreateModifiedRegenerates(t *testing.T) {
	dir := t.TempDir()
	staging := NewStaging(dir)
	cfg := testConfig(dir)

	params := Params{Large: true, Size: 2048}
	if err := RunCreate(cfg, params); err != nil {
		t.Fatalf("RunCreate returned error: %v", err)
	}
	before, err := FileMD5(staging.LargePath())
	if err != nil {
		t.Fatal(err)
	}

	params.Modified = true
	if err := RunCreate(cfg, params); err != nil {
		t.Fatalf("RunCreate --modified returned error: %v", err)
	}
	after, err := FileMD5(staging.LargePath())
	if err != nil {
		t.Fatal(err)
	}
	if before == after {
		t.Error("modified create should produce different content under the same name")
	}
}
