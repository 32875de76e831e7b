package unify

import "github.com/yasmin-shahed/mouse/prop"

// FormulaUses reports whether ref — a ModelRef — occurs anywhere inside
// formula, as a predicate argument or a quantifier's bound variable.
// Universal instantiation uses it to decide whether a witness is a new
// eigenvariable: a witness that does not occur in the universal's body is
// registered into scope. The witness is checked against that body, never
// against the instantiated formula, where it always occurs.
func FormulaUses(formula, ref *prop.Prop) bool {
	switch formula.Kind {
	case prop.ModelRefKind:
		return prop.Equal(formula, ref)
	case prop.AndKind, prop.OrKind, prop.ImpKind:
		return FormulaUses(formula.P, ref) || FormulaUses(formula.Q, ref)
	case prop.PredicateKind:
		for _, a := range formula.Args {
			if FormulaUses(a, ref) {
				return true
			}
		}
		return false
	case prop.ForAllKind, prop.ExistsKind:
		return FormulaUses(formula.Var, ref) || FormulaUses(formula.Body, ref)
	default:
		return false
	}
}

// Symbols returns the set of ModelRef names occurring anywhere in formula,
// bound or free. Universal generalization uses it to check that a
// constant introduced by existential instantiation does not escape into a
// generalized formula's symbol set.
func Symbols(formula *prop.Prop) map[string]struct{} {
	res := map[string]struct{}{}
	collectSymbols(formula, res)
	return res
}

func collectSymbols(p *prop.Prop, res map[string]struct{}) {
	switch p.Kind {
	case prop.ModelRefKind:
		res[p.Name] = struct{}{}
	case prop.AndKind, prop.OrKind, prop.ImpKind:
		collectSymbols(p.P, res)
		collectSymbols(p.Q, res)
	case prop.PredicateKind:
		for _, a := range p.Args {
			collectSymbols(a, res)
		}
	case prop.ForAllKind, prop.ExistsKind:
		collectSymbols(p.Var, res)
		collectSymbols(p.Body, res)
	}
}
