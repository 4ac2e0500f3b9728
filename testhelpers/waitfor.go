package testhelpers

import (
	"testing"
	"time"
)

// WaitFor polls condition every 10ms until it returns true or timeout
// elapses, failing the test in the latter case. Adapted from the
// teacher's testhelpers.WaitFor (testhelpers/setup.go), useful here
// for asserting on the VFS's fsnotify-driven watch/reload flow
// (spec.md §9) without arbitrary sleeps.
func WaitFor(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("testhelpers.WaitFor: condition not met within %s", timeout)
		}
		<-ticker.C
	}
}
