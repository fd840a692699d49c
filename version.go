package main

import (
	"fmt"

	"github.com/linkveil/linkveil/internal/version"
)

// printVersion writes the injected version + commit information.
func printVersion() {
	fmt.Fprintln(stdOut, version.Full())
}
