// Package parseproof turns the surface proof-file grammar into a
// checker.Context plus the obligation list at its head. It is kept
// outside the core's import graph: checker, rule and unify never import
// it, only cmd/mouse and cmd/mouse-lsp do.
package parseproof

import "errors"

// ErrParse is returned for any malformed surface syntax.
var ErrParse = errors.New("parse error")
