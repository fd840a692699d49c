package main

import (
	"bytes"
	"testing"
)

// useBufferWriters swaps stdOut/stdErr with in-memory buffers for the
// duration of a test, allowing assertions on CLI output without polluting
// test logs.
func useBufferWriters(t *testing.T) {
	t.Helper()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	prevOut := stdOut
	prevErr := stdErr

	stdOut = outBuf
	stdErr = errBuf

	t.Cleanup(func() {
		stdOut = prevOut
		stdErr = prevErr
	})
}
