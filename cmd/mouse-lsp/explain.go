package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"

	"go.lsp.dev/protocol"
)

const explainScopeCommand = "mouse.explainScope"

// varsJSON renders a line's variable-scope map (name -> dependent
// constant names) as JSON, sorted so the same scope always serializes
// identically.
func varsJSON(vars map[string]map[string]struct{}) ([]byte, error) {
	out := map[string][]string{}
	for name, deps := range vars {
		depNames := make([]string, 0, len(deps))
		for d := range deps {
			depNames = append(depNames, d)
		}
		sort.Strings(depNames)
		out[name] = depNames
	}
	return json.Marshal(out)
}

// explainScope reports the scope change a quantifier rule produced on
// lineNum as an RFC 7386 JSON Merge Patch from its first cited line's scope
// to its own, so an editor extension can render "what changed" (an
// eigenvariable registered, or a dependent recorded/discharged)
// structurally instead of diffing two JSON objects by eye.
func (s *Server) explainScope(uri string, lineNum int) (interface{}, error) {
	doc := s.docs.get(uri)
	if doc == nil || doc.result == nil {
		return nil, fmt.Errorf("mouse-lsp: %s has no checked result", uri)
	}
	line, ok := doc.result.Context.Lines[lineNum]
	if !ok {
		return nil, fmt.Errorf("mouse-lsp: line %d not found", lineNum)
	}

	before := map[string]map[string]struct{}{}
	if len(line.Just.Args) > 0 {
		if cited, ok := doc.result.Context.Lines[line.Just.Args[0]]; ok {
			before = cited.Vars
		}
	}
	beforeJSON, err := varsJSON(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := varsJSON(line.Vars)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.CreateMergePatch(beforeJSON, afterJSON)
	if err != nil {
		return nil, err
	}
	// Replaying the patch against the "before" scope must reproduce the
	// "after" scope; if it doesn't, something upstream built an
	// inconsistent Vars map and that should surface as an error here
	// rather than as a confusing diff in the editor.
	replayed, err := jsonpatch.MergePatch(beforeJSON, patch)
	if err != nil {
		return nil, err
	}
	if string(replayed) != string(afterJSON) && !jsonEqual(replayed, afterJSON) {
		return nil, fmt.Errorf("mouse-lsp: scope patch for line %d did not replay cleanly", lineNum)
	}

	var result interface{}
	if err := json.Unmarshal(patch, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func jsonEqual(a, b []byte) bool {
	var va, vb interface{}
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return false
	}
	ab, _ := json.Marshal(va)
	bb, _ := json.Marshal(vb)
	return string(ab) == string(bb)
}

func (s *Server) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	if params.Command != explainScopeCommand || len(params.Arguments) < 2 {
		return nil, nil
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("mouse-lsp: %s expects [uri, line]", explainScopeCommand)
	}
	lineNum, ok := toInt(params.Arguments[1])
	if !ok {
		return nil, fmt.Errorf("mouse-lsp: %s expects [uri, line]", explainScopeCommand)
	}
	return s.explainScope(uri, lineNum)
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}
