package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/parseproof"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri        string
	content    string
	version    int32
	result     *parseproof.Result
	parseErr   error
	verifyErr  error
	failedLine int
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put parses and checks content, replacing any previous version stored
// under uri. A parse failure leaves result nil; a verify failure leaves
// result set but records the first failing line and its error.
func (ds *documentStore) put(uri, content string, version int32) *document {
	doc := &document{uri: uri, content: content, version: version}
	res, err := parseproof.Parse(content)
	if err != nil {
		doc.parseErr = err
	} else {
		doc.result = res
		checker.Verify(res.Context, func(line *checker.Line, err error) {
			if err != nil && doc.failedLine == 0 {
				doc.failedLine = line.Num
				doc.verifyErr = err
			}
		})
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := []protocol.Diagnostic{}
	switch {
	case doc.parseErr != nil:
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   lsName,
		})
	case doc.verifyErr != nil:
		ln := docLineForProofLine(doc.content, doc.failedLine)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(ln)},
				End:   protocol.Position{Line: uint32(ln), Character: 1 << 16},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.verifyErr.Error(),
			Source:   lsName,
		})
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// docLineForProofLine finds the 0-indexed document line that begins the
// numbered proof line num, tolerating the `| ` indentation markers
// parseproof.Preprocess strips before parsing.
func docLineForProofLine(content string, num int) int {
	prefix := fmt.Sprintf("%d.", num)
	for i, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, "| \t"), prefix) {
			return i
		}
	}
	return 0
}

// proofLineAtDocLine is docLineForProofLine's inverse: it reads the
// leading line number directly off the document line the cursor is on.
func proofLineAtDocLine(content string, docLine int) (int, bool) {
	lines := strings.Split(content, "\n")
	if docLine < 0 || docLine >= len(lines) {
		return 0, false
	}
	trimmed := strings.TrimLeft(lines[docLine], "| \t")
	var num int
	if _, err := fmt.Sscanf(trimmed, "%d.", &num); err != nil {
		return 0, false
	}
	return num, true
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// TextDocumentSyncKindFull: the last change carries the whole document.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
