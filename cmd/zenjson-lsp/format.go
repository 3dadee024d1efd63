package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/zenjson-go/zenjson/encode"
	"github.com/zenjson-go/zenjson/zenjson"
)

// Formatting mirrors go-tony/cmd/tony-lsp/format.go: parse the stored
// text, re-encode it, and if that changed anything return one edit
// replacing the whole document. Any parse or encode failure yields no
// edits rather than an error, since a malformed document mid-edit isn't
// something the client should surface as a formatting failure.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	d := zenjson.NewDocument()
	if err := d.Parse([]byte(doc.content)); err != nil {
		return nil, nil
	}
	out, err := d.Emit(encode.Formatted())
	if err != nil {
		return nil, nil
	}
	formatted := string(out)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
