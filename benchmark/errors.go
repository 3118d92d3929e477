package benchmark

import "errors"

// Error kinds surfaced to the invoker. Configuration errors are produced by
// the config package before any of these can occur.
var (
	// ErrNotStaged means an upload was requested before the matching
	// create run.
	ErrNotStaged = errors.New("test files not staged, run --create first")

	// ErrDiskSpace means the staging directory cannot hold the requested
	// test data.
	ErrDiskSpace = errors.New("insufficient disk space in staging directory")

	// ErrTransfer marks an upload or download failure reported by the SDK.
	ErrTransfer = errors.New("transfer failed")

	// ErrIntegrity marks an MD5 mismatch between an original and its
	// downloaded copy. Reported distinctly from transfer failures.
	ErrIntegrity = errors.New("integrity check failed")
)
