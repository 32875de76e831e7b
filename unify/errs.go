package unify

import "errors"

// ErrRewrite is returned when no orientation of a bidirectional rewrite
// rule unifies the cited formula with the asserted one.
var ErrRewrite = errors.New("rewrite error")

// ErrQuantifier is returned when an alpha-renaming witness cannot be
// determined uniquely, or would instantiate into a bound variable.
var ErrQuantifier = errors.New("quantifier side-condition error")
