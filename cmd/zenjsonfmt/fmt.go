package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/zenjson-go/zenjson/zenjson"
)

// runFmt mirrors go-tony/cmd/o/list.go's queryArg loop: read each argument
// as a file (or stdin for "-" / no arguments at all), parse, and re-emit.
func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	w, closeW, err := openOut(cfg.MainConfig)
	if err != nil {
		return err
	}
	if closeW != nil {
		defer closeW()
	}
	for _, arg := range args {
		if err := fmtOne(cfg.MainConfig, w, arg); err != nil {
			return fmt.Errorf("zenjsonfmt: %s: %w", arg, err)
		}
	}
	return nil
}

func fmtOne(cfg *MainConfig, w io.Writer, arg string) error {
	data, err := readArg(arg)
	if err != nil {
		return err
	}
	doc := zenjson.NewDocument()
	if err := doc.Parse(data); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}
	out, err := doc.Emit(cfg.encOpts()...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// openOut returns cfg.Out opened for writing, or stdout, matching
// go-tony/cmd/o/o.go's MainConfig.outOpt fallback of "-" meaning stdout.
func openOut(cfg *MainConfig) (io.Writer, func() error, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return os.Stdout, nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}
