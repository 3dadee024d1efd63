package value

import (
	"log/slog"

	"github.com/zenjson-go/zenjson/arena"
)

// Trees bundles the two node arenas a parsed (or hand-built) document's
// tree is allocated from — one per Node layout, since ArrayNode and
// ObjectNode are distinct Go types living in distinct generic Arenas.
// Package parse builds into a Trees; package encode walks one back out.
type Trees struct {
	Arrays  *arena.Arena[ArrayNode]
	Objects *arena.Arena[ObjectNode]
}

// NewTrees constructs an empty Trees. log may be nil.
func NewTrees(log *slog.Logger) *Trees {
	return &Trees{
		Arrays:  arena.New[ArrayNode](log),
		Objects: arena.New[ObjectNode](log),
	}
}

// Reset recycles both arenas for reuse by the next parse.
func (t *Trees) Reset() {
	t.Arrays.Reset()
	t.Objects.Reset()
}
