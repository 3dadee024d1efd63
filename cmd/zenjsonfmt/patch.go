package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/zenjson-go/zenjson/patch"
	"github.com/zenjson-go/zenjson/zenjson"
)

// runPatch mirrors go-tony/cmd/o/commands.go's PatchCommand: the patch
// itself is the first positional argument (inline JSON, or a file path
// when -f is given), the document to patch is the remaining argument or
// stdin.
func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document argument", cli.ErrUsage)
	}
	patchArg := args[0]
	target := "-"
	if len(args) > 1 {
		target = args[1]
	}

	var patchJSON []byte
	if cfg.File {
		patchJSON, err = readArg(patchArg)
	} else {
		patchJSON = []byte(patchArg)
	}
	if err != nil {
		return fmt.Errorf("zenjsonfmt: reading patch: %w", err)
	}

	data, err := readArg(target)
	if err != nil {
		return fmt.Errorf("zenjsonfmt: %s: %w", target, err)
	}
	doc := zenjson.NewDocument()
	if err := doc.Parse(data); err != nil {
		return fmt.Errorf("zenjsonfmt: parsing %s: %w", target, err)
	}
	if err := patch.Apply(doc, patchJSON); err != nil {
		return fmt.Errorf("zenjsonfmt: applying patch: %w", err)
	}

	w, closeW, err := openOut(cfg.MainConfig)
	if err != nil {
		return err
	}
	if closeW != nil {
		defer closeW()
	}
	out, err := doc.Emit(cfg.encOpts()...)
	if err != nil {
		return fmt.Errorf("zenjsonfmt: encoding result: %w", err)
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
