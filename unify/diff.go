package unify

import "github.com/yasmin-shahed/mouse/prop"

// DiffTree descends two formulas of identical shape to the single pair of
// subterms where they diverge, following the one differing child for as
// long as exactly one child differs. It is used to locate the subformula an
// equivalence rewrite rule should be matched against, rather than matching
// the rule against the whole formula (which would miss rewrites applied
// deep inside a larger formula).
//
// Only And/Or/Imp nodes are descended into; anything else — including a
// full mismatch on both children, which would make the point of difference
// ambiguous — is returned as-is.
func DiffTree(p, q *prop.Prop) (*prop.Prop, *prop.Prop) {
	if p.Kind != q.Kind {
		return p, q
	}
	switch p.Kind {
	case prop.AndKind, prop.OrKind, prop.ImpKind:
		leftEq := prop.Equal(p.P, q.P)
		rightEq := prop.Equal(p.Q, q.Q)
		switch {
		case leftEq && !rightEq:
			return DiffTree(p.Q, q.Q)
		case rightEq && !leftEq:
			return DiffTree(p.P, q.P)
		default:
			return p, q
		}
	default:
		return p, q
	}
}
