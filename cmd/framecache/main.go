// Command framecache inspects and manages disk-backed frame cache
// directories. The cache core itself stays CLI-free; this tool only
// consumes its exported APIs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "framecache: %v\n", err)
		os.Exit(1)
	}
}
