package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/yasmin-shahed/mouse/checker"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.result == nil {
		return nil, nil
	}

	num, ok := proofLineAtDocLine(doc.content, int(params.Position.Line))
	if !ok {
		return nil, nil
	}
	line, ok := doc.result.Context.Lines[num]
	if !ok {
		return nil, nil
	}

	text := buildHoverText(line, doc, num)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func buildHoverText(line *checker.Line, doc *document, num int) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Formula:** `%s`", line.Typ))

	rule := line.Just.Name
	if len(line.Just.Args) > 0 {
		args := make([]string, len(line.Just.Args))
		for i, a := range line.Just.Args {
			args[i] = fmt.Sprintf("%d", a)
		}
		rule = fmt.Sprintf("%s %s", rule, strings.Join(args, ", "))
	}
	parts = append(parts, fmt.Sprintf("**Rule:** `%s`", rule))

	if len(line.Vars) > 0 {
		names := make([]string, 0, len(line.Vars))
		for v := range line.Vars {
			names = append(names, v)
		}
		sort.Strings(names)
		parts = append(parts, fmt.Sprintf("**In scope:** `%s`", strings.Join(names, ", ")))
	}

	status := "unchecked"
	if line.Checked {
		status = "checked"
	}
	if doc.verifyErr != nil && doc.failedLine == num {
		status = fmt.Sprintf("failed: %v", doc.verifyErr)
	}
	parts = append(parts, fmt.Sprintf("**Status:** %s", status))

	return strings.Join(parts, "\n\n")
}
