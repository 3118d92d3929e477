package benchmark

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileMD5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	sum, err := FileMD5(path)
	if err != nil {
		t.Fatalf("FileMD5 returned error: %v", err)
	}
	// md5("hello world")
	expect := "5eb63bbbe01eeed093cb22bb8f5acdc3"
	if sum != expect {
		t.Errorf("FileMD5 expected %s, got %s", expect, sum)
	}

	if _, err := FileMD5(filepath.Join(dir, "missing")); err == nil {
		t.Error("FileMD5 on missing file should error")
	}
}

func TestVerifyIntegrity(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	if err := os.WriteFile(a, []byte("same content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("same content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c, []byte("other content"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyIntegrity(a, b)
	if err != nil {
		t.Fatalf("VerifyIntegrity returned error: %v", err)
	}
	if !ok {
		t.Error("identical files should verify")
	}

	ok, err = VerifyIntegrity(a, c)
	if err != nil {
		t.Fatalf("VerifyIntegrity returned error: %v", err)
	}
	if ok {
		t.Error("different files should not verify")
	}
}
