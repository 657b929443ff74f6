// Command spotcheck samples passages from a document's chapters and searches
// the web for exact matches.
package main

import (
	"os"

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
