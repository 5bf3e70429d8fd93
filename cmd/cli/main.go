// logsculpt - Training Log Series Editor
//
// logsculpt parses training-run logs into per-epoch metric series,
// applies deterministic signal edits, and writes them back without
// disturbing the log's formatting.
package main

import (
	"os"

	"github.com/logsculpt/logsculpt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
