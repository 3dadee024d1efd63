package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/zenjson-go/zenjson/diff"
	"github.com/zenjson-go/zenjson/zenjson"
)

// runDiff prints one line per Change, colored the way `git diff` colors
// additions/removals when writing to a terminal — the same
// terminal-aware color decision go-tony/cmd/o/configs.go's encOpts makes
// for its own colorized output, narrowed here to fatih/color's plain
// *String helpers since a diff line has no token structure to colorize.
func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return fmt.Errorf("zenjsonfmt: %s: %w", args[0], err)
	}
	b, err := readDoc(args[1])
	if err != nil {
		return fmt.Errorf("zenjsonfmt: %s: %w", args[1], err)
	}

	changes := diff.Diff(a.Root(), b.Root())
	useColor := cfg.useColor(os.Stdout)
	for _, c := range changes {
		fmt.Println(formatChange(c, useColor))
	}
	return nil
}

func formatChange(c diff.Change, useColor bool) string {
	switch c.Kind {
	case diff.Added:
		line := fmt.Sprintf("+ %s: %s", c.Path, c.To)
		if useColor {
			return color.GreenString(line)
		}
		return line
	case diff.Removed:
		line := fmt.Sprintf("- %s: %s", c.Path, c.From)
		if useColor {
			return color.RedString(line)
		}
		return line
	default:
		line := fmt.Sprintf("~ %s: %s -> %s", c.Path, c.From, c.To)
		if useColor {
			return color.YellowString(line)
		}
		return line
	}
}

func readDoc(arg string) (*zenjson.Document, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	doc := zenjson.NewDocument()
	if err := doc.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	return doc, nil
}
