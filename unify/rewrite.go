package unify

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/tracedbg"
	"github.com/yasmin-shahed/mouse/prop"
)

// RewriteRule is a single bidirectional equivalence: LHS and RHS unify with
// the two formulas at a rewrite's point of difference, in either
// orientation.
type RewriteRule struct {
	Name string
	LHS  *prop.Prop
	RHS  *prop.Prop
}

// TryRewrite reports whether after can be derived from before by a single
// application of rule, in either direction, at one point of difference.
// On success it returns the PropHole/ModelRefHole bindings that witnessed
// the match.
func TryRewrite(before, after *prop.Prop, rule RewriteRule) (subst, varSubst map[string]*prop.Prop, err error) {
	if prop.Equal(before, after) {
		return map[string]*prop.Prop{}, map[string]*prop.Prop{}, nil
	}
	oldT, newT := DiffTree(before, after)
	if tracedbg.Rewrite() {
		tracedbg.Logf("rewrite %s: diff point %s / %s\n", rule.Name, oldT, newT)
	}

	subst, varSubst = map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if Unify(oldT, rule.LHS, subst, varSubst) && Unify(newT, rule.RHS, subst, varSubst) {
		return subst, varSubst, nil
	}

	subst, varSubst = map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if Unify(oldT, rule.RHS, subst, varSubst) && Unify(newT, rule.LHS, subst, varSubst) {
		return subst, varSubst, nil
	}

	return nil, nil, fmt.Errorf("%w: %s does not relate %s to %s", ErrRewrite, rule.Name, before, after)
}
