package parse

import (
	"log/slog"

	"github.com/zenjson-go/zenjson/value"
)

// Arenas is the pair of node arenas a parse allocates from. It is an
// alias for value.Trees so the tree package and the encoder that later
// walks the same tree share one type without either depending on parse.
type Arenas = value.Trees

// NewArenas constructs a fresh, empty Arenas. log may be nil.
func NewArenas(log *slog.Logger) *Arenas {
	return value.NewTrees(log)
}
