// SPDX-License-Identifier: EPL-2.0

// Command audxform applies voice effects to audio files, from the command
// line or over HTTP.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "audxform:", err)
		os.Exit(1)
	}
}
