// Command ordseqctl runs a command stream (spec.md §6) against an in-memory
// ordered-sequence engine and prints its results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is the module version reported by the version subcommand. It is
// set at build time via -ldflags "-X main.version=...", matching the
// teacher's own binaries; "dev" is the fallback for a plain go build.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ordseqctl",
	Short: "Run a command stream against an ordered-sequence engine",
	Long: `ordseqctl drives treap.Engine from a length-prefixed command stream:
an initial sequence followed by sum, insert, remove, assign, add,
next_permutation, and prev_permutation commands.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
