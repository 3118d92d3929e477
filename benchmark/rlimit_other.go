//go:build !linux
// +build !linux

package benchmark

import "runtime/debug"

// SetMaxResources adjusts what it can on platforms without rlimit support:
// only the Go runtime's thread ceiling.
func SetMaxResources() error {
	debug.SetMaxThreads(8000)
	return nil
}
