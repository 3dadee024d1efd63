// Package patch applies an RFC 6902 JSON Patch document to a zenjson
// Document by delegating to github.com/evanphx/json-patch and re-parsing
// the result through this module's own parser.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/zenjson-go/zenjson/debug"
	"github.com/zenjson-go/zenjson/zenjson"
)

// Apply patches doc in place: doc is serialized to JSON, the patch
// operations are applied by jsonpatch, and the result replaces doc's
// tree entirely (a fresh Parse, not a merge). doc is left unchanged if
// anything fails along the way.
//
// This mirrors go-tony/mergeop/jsonpatch.go's jPatchOp.Patch almost
// verbatim in control flow (marshal, jsonpatch.Apply, re-parse), except
// there is no marshal step: this module's own encoder already produces
// JSON bytes directly, unlike go-tony's ir.Node which needs
// eval.MarshalJSON to reach JSON at all.
func Apply(doc *zenjson.Document, patchJSON []byte) error {
	if debug.Op() {
		debug.Logf("patch: applying %d bytes of ops\n", len(patchJSON))
	}
	before, err := doc.Emit()
	if err != nil {
		return fmt.Errorf("patch: marshaling document: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("patch: decoding patch: %w", err)
	}
	after, err := ops.Apply(before)
	if err != nil {
		return fmt.Errorf("patch: applying patch: %w", err)
	}
	fresh := zenjson.NewDocument()
	if err := fresh.Parse(after); err != nil {
		return fmt.Errorf("patch: re-parsing patched document: %w", err)
	}
	*doc = *fresh
	return nil
}
