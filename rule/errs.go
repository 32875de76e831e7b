package rule

import "errors"

// ErrEquality is returned when a rule's computed conclusion differs from
// the formula a proof line actually asserts — distinct from ErrShape
// (prop.ErrShape), which means a rule's precondition wasn't met at all.
var ErrEquality = errors.New("equality error")
