// Command depscope is the CLI front-end for the dependency-analysis
// pipeline: it discovers .csproj-shaped project files under a directory,
// runs the C1-C7 pipeline over them, and writes the resulting DOT diagram
// and CSV reports to disk.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
