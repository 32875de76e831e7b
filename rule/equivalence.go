package rule

import (
	"github.com/yasmin-shahed/mouse/prop"
	"github.com/yasmin-shahed/mouse/unify"
)

// equivalenceRules wraps every entry of unify.RewriteRules as a one-place
// propositional rule: given a source line and the asserted target
// formula, it accepts iff unify.TryRewrite succeeds in either direction.
func equivalenceRules() map[string]PropFunc {
	out := make(map[string]PropFunc, len(unify.RewriteRules))
	for name, r := range unify.RewriteRules {
		r := r
		out[name] = func(cited []*prop.Prop, expected *prop.Prop) error {
			if len(cited) != 1 {
				return arityError(r.Name, 1, cited)
			}
			_, _, err := unify.TryRewrite(cited[0], expected, r)
			return err
		}
	}
	return out
}
