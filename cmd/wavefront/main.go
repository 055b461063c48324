// SPDX-License-Identifier: MIT

// Command wavefront runs breadth-first traversals over integer edge lists.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wavefront/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
