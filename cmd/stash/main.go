// Stash is a small inspection tool for the stash persistence library.
// It shows where a given identity's settings and data artifacts resolve on
// this machine and can render sample documents with the registered codecs.
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
