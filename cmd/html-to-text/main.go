// Command html-to-text converts an HTML document read from a file or
// standard input into plain text on standard output.
package main

import (
	"os"

	"github.com/custodia-labs/htmlparser/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
