// Command zenjsonfmt formats, patches, and diffs zenjson documents from the
// command line, colorizing diff output when writing to a terminal.
//
// Grounded on go-tony/cmd/o's command tree: a MainCommand carrying shared
// I/O options, with fmt/patch/diff wired in as subcommands the same way o
// wires in view/get/diff/patch.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
