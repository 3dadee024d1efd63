// Package diff computes a structural diff between two zenjson documents:
// added/removed/changed leaves by path, with a character-level diff for
// changed string leaves.
//
// The matching strategy is grounded on go-tony/libdiff's approach of
// mapping each object's field names (or each array's element "shape") to
// runes and running diffmatchpatch's Myers diff over the resulting rune
// sequences, then recursing on the runs that matched. What differs is the
// output shape: go-tony encodes a diff as another ir.Node carrying
// !insert/!delete/!replace tags so it can be re-serialized and re-applied
// as Tony text; value.Value has no tag mechanism to hang that on, so this
// package returns a plain []Change instead of a diff tree.
package diff

import (
	"strconv"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zenjson-go/zenjson/debug"
	"github.com/zenjson-go/zenjson/value"
	"github.com/zenjson-go/zenjson/zenjson"
)

// Kind identifies what happened to the value at a Change's Path.
type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "kind(?)"
	}
}

// Change describes one add/remove/change at Path, a dotted/bracketed
// path expression like "a.b[2]". From/To are empty for the side that
// does not apply (From for Added, To for Removed). TextDiffs is set only
// when Kind is Changed and both sides are strings, giving a
// character-level diff of From against To.
type Change struct {
	Path      string
	Kind      Kind
	From      string
	To        string
	TextDiffs []dmp.Diff
}

// Diff compares two views and returns every add/remove/change between
// them, in document order.
func Diff(from, to zenjson.View) []Change {
	if debug.Op() {
		debug.Logf("diff: comparing %s vs %s\n", from.Type(), to.Type())
	}
	var changes []Change
	walk("", from, to, &changes)
	return changes
}

func walk(path string, from, to zenjson.View, out *[]Change) {
	if from.IsObject() && to.IsObject() {
		diffObject(path, from, to, out)
		return
	}
	if from.IsArray() && to.IsArray() {
		diffArray(path, from, to, out)
		return
	}
	if summary(from) == summary(to) {
		return
	}
	c := Change{Path: path, Kind: Changed, From: summary(from), To: summary(to)}
	if from.IsString() && to.IsString() {
		c.TextDiffs = dmp.New().DiffMain(from.Str(""), to.Str(""), false)
	}
	*out = append(*out, c)
}

// fieldNames and diffObject mirror go-tony/libdiff/object.go's
// DiffObject: map each side's field name sequence to a private alphabet
// of runes, diff those rune sequences, then recurse on equal runs and
// report insert/delete runs directly.
func diffObject(path string, from, to zenjson.View, out *[]Change) {
	fromNames := objectFieldNames(from)
	toNames := objectFieldNames(to)
	alphabet := map[string]rune{}
	fromRunes := mapNames(alphabet, fromNames)
	toRunes := mapNames(alphabet, toNames)
	diffs := dmp.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case dmp.DiffDelete:
			for range d.Text {
				name := fromNames[fi]
				*out = append(*out, Change{Path: joinPath(path, name), Kind: Removed, From: summary(from.Field(name))})
				fi++
			}
		case dmp.DiffInsert:
			for range d.Text {
				name := toNames[ti]
				*out = append(*out, Change{Path: joinPath(path, name), Kind: Added, To: summary(to.Field(name))})
				ti++
			}
		case dmp.DiffEqual:
			for range d.Text {
				name := fromNames[fi]
				walk(joinPath(path, name), from.Field(name), to.Field(name), out)
				fi++
				ti++
			}
		}
	}
}

// diffArray mirrors go-tony/libdiff/array_by_index.go's DiffArrayByIndex:
// each element is summarized to a rune keyed by its "shape" (type plus
// scalar text), the two shape sequences are diffed, equal-shape runs
// recurse, and an insert immediately following a delete at the same
// position collapses into one Changed entry instead of a Removed+Added
// pair — the same delIndex/ri bookkeeping the source uses to turn
// adjacent delete+insert into a replace.
func diffArray(path string, from, to zenjson.View, out *[]Change) {
	fromLen, toLen := from.Len(), to.Len()
	alphabet := map[string]rune{}
	fromShapes := make([]string, fromLen)
	for i := 0; i < fromLen; i++ {
		fromShapes[i] = summary(from.Index(i))
	}
	toShapes := make([]string, toLen)
	for i := 0; i < toLen; i++ {
		toShapes[i] = summary(to.Index(i))
	}
	fromRunes := mapNames(alphabet, fromShapes)
	toRunes := mapNames(alphabet, toShapes)
	diffs := dmp.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	lastDeleteAt, lastDeleteIdx := -1, -1
	var lastDeleted zenjson.View
	for _, d := range diffs {
		switch d.Type {
		case dmp.DiffDelete:
			for range d.Text {
				lastDeleted = from.Index(fi)
				*out = append(*out, Change{Path: indexPath(path, ri), Kind: Removed, From: fromShapes[fi]})
				lastDeleteAt, lastDeleteIdx = ri, len(*out)-1
				fi++
				ri++
			}
		case dmp.DiffEqual:
			lastDeleteAt = -1
			for range d.Text {
				walk(indexPath(path, ri), from.Index(fi), to.Index(ti), out)
				fi++
				ti++
				ri++
			}
		case dmp.DiffInsert:
			for range d.Text {
				inserted := to.Index(ti)
				if lastDeleteAt == ri-1 {
					c := &(*out)[lastDeleteIdx]
					c.Kind = Changed
					c.To = toShapes[ti]
					if lastDeleted.IsString() && inserted.IsString() {
						c.TextDiffs = dmp.New().DiffMain(lastDeleted.Str(""), inserted.Str(""), false)
					}
				} else {
					*out = append(*out, Change{Path: indexPath(path, ri), Kind: Added, To: toShapes[ti]})
				}
				lastDeleteAt = -1
				ti++
				ri++
			}
		}
	}
}

func objectFieldNames(v zenjson.View) []string {
	names := make([]string, 0, v.Len())
	v.Each(func(name string, _ zenjson.View) bool {
		names = append(names, name)
		return true
	})
	return names
}

func mapNames(alphabet map[string]rune, names []string) []rune {
	rs := make([]rune, len(names))
	for i, n := range names {
		r, ok := alphabet[n]
		if !ok {
			r = rune(len(alphabet))
			alphabet[n] = r
		}
		rs[i] = r
	}
	return rs
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// summary renders v's type and, for scalars, its value, as a comparison
// key — the same role go-tony/libdiff's summaryStr plays for array
// elements, generalized here to every leaf kind.
func summary(v zenjson.View) string {
	switch v.Type() {
	case value.TagNull:
		return "null"
	case value.TagTrue:
		return "bool-true"
	case value.TagFalse:
		return "bool-false"
	case value.TagInt:
		return "int-" + strconv.FormatInt(int64(v.Int(0)), 10)
	case value.TagNumber:
		return "number-" + strconv.FormatFloat(v.Float64(0), 'g', -1, 64)
	case value.TagString:
		return "string-" + v.Str("")
	case value.TagArray:
		return "array"
	case value.TagObject:
		return "object"
	default:
		return "?"
	}
}
