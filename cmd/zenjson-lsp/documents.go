package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"
)

// documentStore tracks each open document's latest text, mirroring
// go-tony/cmd/tony-lsp/diagnostics.go's documentStore. This server does
// not need position-tracked parse trees the way tony-lsp's does for
// diagnostics, so document carries only what Formatting needs.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	content string
	version int32
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{content: content, version: version}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	return nil
}

// DidChange assumes full-document sync (TextDocumentSyncKindFull, as
// advertised in Initialize), so the only content change is the whole new
// text — unlike tony-lsp's DidChange, this server never has to splice an
// incremental range edit into the stored text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	last := params.ContentChanges[len(params.ContentChanges)-1]
	s.docs.put(string(params.TextDocument.URI), last.Text, params.TextDocument.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
