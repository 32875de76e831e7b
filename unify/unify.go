// Package unify provides syntactic unification over prop.Prop patterns,
// the single-point-of-difference descent that drives rewrite checking, and
// the bidirectional rewrite-rule table for propositional and quantifier
// equivalences.
package unify

import (
	"github.com/yasmin-shahed/mouse/tracedbg"
	"github.com/yasmin-shahed/mouse/prop"
)

// Unify attempts to unify p against q, extending subst with PropHole
// bindings and varSubst with ModelRefHole bindings. It mutates both maps
// in place and reports whether unification succeeded; on failure the maps
// may hold a partial, unusable set of bindings, so callers that need to
// retry should pass fresh maps.
//
// A PropHole matches any formula: the first occurrence binds, later
// occurrences must unify to a structurally equal formula. A ModelRefHole
// matches only a ModelRef, with the same bind-once-then-check rule.
// Unifying two distinct holes against each other is intentionally
// unsupported — this checker only ever unifies a pattern against a
// concrete formula, never pattern against pattern.
func Unify(p, q *prop.Prop, subst, varSubst map[string]*prop.Prop) bool {
	if tracedbg.Unify() {
		tracedbg.Logf("unify: %s =?= %s\n", p, q)
	}
	if p.Kind.IsHole() || q.Kind.IsHole() {
		return unifyHole(p, q, subst, varSubst)
	}
	if p.Kind != q.Kind {
		return false
	}
	switch p.Kind {
	case prop.BaseKind, prop.ModelRefKind:
		return p.Name == q.Name
	case prop.TrueKind, prop.FalseKind:
		return true
	case prop.AndKind, prop.OrKind, prop.ImpKind:
		return Unify(p.P, q.P, subst, varSubst) && Unify(p.Q, q.Q, subst, varSubst)
	case prop.ForAllKind, prop.ExistsKind:
		return Unify(p.Var, q.Var, subst, varSubst) && Unify(p.Body, q.Body, subst, varSubst)
	case prop.PredicateKind:
		if p.Name != q.Name || len(p.Args) != len(q.Args) {
			return false
		}
		for i := range p.Args {
			if !Unify(p.Args[i], q.Args[i], subst, varSubst) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// unifyHole binds whichever of p, q is a pattern hole against the other
// side, enforcing ModelRefHole's ModelRef-only constraint. Called only
// once Unify has established that at least one of p, q is a hole.
func unifyHole(p, q *prop.Prop, subst, varSubst map[string]*prop.Prop) bool {
	if p.Kind == prop.PropHoleKind {
		return bind(subst, p.Name, q)
	}
	if q.Kind == prop.PropHoleKind {
		return bind(subst, q.Name, p)
	}
	if p.Kind == prop.ModelRefHoleKind {
		if q.Kind != prop.ModelRefKind {
			return false
		}
		return bind(varSubst, p.Name, q)
	}
	if q.Kind == prop.ModelRefHoleKind {
		if p.Kind != prop.ModelRefKind {
			return false
		}
		return bind(varSubst, q.Name, p)
	}
	return false
}

// bind records name ↦ val in m, or checks val against an existing binding.
func bind(m map[string]*prop.Prop, name string, val *prop.Prop) bool {
	if existing, ok := m[name]; ok {
		return prop.Equal(existing, val)
	}
	m[name] = val
	return true
}
