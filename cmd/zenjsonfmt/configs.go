package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/zenjson-go/zenjson/encode"
)

// MainConfig carries the options shared by every subcommand, the same role
// go-tony/cmd/o's MainConfig plays for its own subcommand tree.
type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='write compact JSON instead of indented'"`
	Color   bool `cli:"name=color desc='force colorized output'"`
	NoColor bool `cli:"name=no-color desc='disable colorized output'"`

	Out string `cli:"name=o desc='output file (default stdout)'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	if cfg.Compact {
		return nil
	}
	return []encode.EncodeOption{encode.Formatted()}
}

// useColor decides whether to colorize w, following go-tony/cmd/o/configs.go's encOpts:
// an explicit flag wins, otherwise color turns on only when w is a
// terminal.
func (cfg *MainConfig) useColor(w *os.File) bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(w.Fd())
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='treat the patch argument as a file path instead of inline JSON'"`
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
