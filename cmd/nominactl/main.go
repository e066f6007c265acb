// Command nominactl runs maintenance tasks against a nomina database:
// migrations, the starter seed and one-off background jobs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
