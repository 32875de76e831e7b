package unify

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/prop"
)

// AlphaRename walks orig and renamed in lockstep, checking that renamed is
// orig with every free occurrence of origVar replaced by one consistent
// ModelRef. It is how existential/universal instantiation recovers the
// witness term a student claims to have substituted: every occurrence of
// origVar in orig must line up with the same ModelRef in renamed, and a
// nested quantifier that rebinds origVar shadows it, so the subtree below
// must match orig exactly rather than continue substituting.
//
// subst accumulates the witness under origVar.Name; callers read it back
// after a successful call.
func AlphaRename(orig, renamed, origVar *prop.Prop, subst map[string]*prop.Prop) error {
	if orig.Kind == prop.ModelRefKind && orig.Name == origVar.Name {
		if renamed.Kind != prop.ModelRefKind {
			return fmt.Errorf("%w: %s must be replaced by a constant, got %s", ErrQuantifier, origVar, renamed)
		}
		return bindWitness(subst, origVar.Name, renamed)
	}
	if orig.Kind != renamed.Kind {
		return fmt.Errorf("%w: shape mismatch %s vs %s", ErrQuantifier, orig, renamed)
	}
	switch orig.Kind {
	case prop.BaseKind, prop.ModelRefKind, prop.PropHoleKind, prop.ModelRefHoleKind, prop.TrueKind, prop.FalseKind:
		if !prop.Equal(orig, renamed) {
			return fmt.Errorf("%w: %s != %s", ErrQuantifier, orig, renamed)
		}
		return nil
	case prop.AndKind, prop.OrKind, prop.ImpKind:
		if err := AlphaRename(orig.P, renamed.P, origVar, subst); err != nil {
			return err
		}
		return AlphaRename(orig.Q, renamed.Q, origVar, subst)
	case prop.PredicateKind:
		if orig.Name != renamed.Name || len(orig.Args) != len(renamed.Args) {
			return fmt.Errorf("%w: %s != %s", ErrQuantifier, orig, renamed)
		}
		for i := range orig.Args {
			if err := AlphaRename(orig.Args[i], renamed.Args[i], origVar, subst); err != nil {
				return err
			}
		}
		return nil
	case prop.ForAllKind, prop.ExistsKind:
		if prop.Equal(orig.Var, origVar) {
			// origVar is shadowed below this binder: no substitution may
			// reach inside it.
			if !prop.Equal(orig, renamed) {
				return fmt.Errorf("%w: cannot instantiate %s inside a binder that rebinds it", ErrQuantifier, origVar)
			}
			return nil
		}
		if !prop.Equal(orig.Var, renamed.Var) {
			return fmt.Errorf("%w: bound variable changed: %s vs %s", ErrQuantifier, orig.Var, renamed.Var)
		}
		return AlphaRename(orig.Body, renamed.Body, origVar, subst)
	default:
		return fmt.Errorf("%w: unhandled kind in %s", ErrQuantifier, orig)
	}
}

func bindWitness(subst map[string]*prop.Prop, name string, val *prop.Prop) error {
	if existing, ok := subst[name]; ok {
		if !prop.Equal(existing, val) {
			return fmt.Errorf("%w: inconsistent witness for %s: %s vs %s", ErrQuantifier, name, existing, val)
		}
		return nil
	}
	subst[name] = val
	return nil
}
