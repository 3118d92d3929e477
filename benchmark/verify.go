package benchmark

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileMD5 streams the file through MD5 and returns the hex digest.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyIntegrity compares MD5 digests of an original and its downloaded
// copy.
func VerifyIntegrity(originalPath, downloadedPath string) (bool, error) {
	originalMD5, err := FileMD5(originalPath)
	if err != nil {
		return false, err
	}
	downloadedMD5, err := FileMD5(downloadedPath)
	if err != nil {
		return false, err
	}
	return originalMD5 == downloadedMD5, nil
}
