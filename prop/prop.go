// Package prop is the formula algebra: an immutable tagged term
// representing classical propositional and first-order formulas, with
// structural equality, stable hashing, and a small library of partial
// operations that encode the intended semantics of inference rules.
package prop

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// Prop is a formula node. Zero value is not meaningful; use the
// constructors below. Props are immutable once built and safe to share.
type Prop struct {
	Kind Kind

	// Name holds: the Base/PropHole identifier, the ModelRef/ModelRefHole
	// identifier, or the Predicate name.
	Name string

	// P, Q are the operands of And/Or/Imp.
	P, Q *Prop

	// Var is the bound variable of a ForAll/Exists: a ModelRef in a
	// concrete proof, or a ModelRefHole inside a rewrite-rule pattern.
	Var *Prop

	// Body is the quantified formula of a ForAll/Exists.
	Body *Prop

	// Args are the arguments of a Predicate, each a ModelRef or
	// ModelRefHole.
	Args []*Prop
}

func Base(name string) *Prop         { return &Prop{Kind: BaseKind, Name: name} }
func PropHole(name string) *Prop     { return &Prop{Kind: PropHoleKind, Name: name} }
func And(p, q *Prop) *Prop           { return &Prop{Kind: AndKind, P: p, Q: q} }
func Or(p, q *Prop) *Prop            { return &Prop{Kind: OrKind, P: p, Q: q} }
func Imp(p, q *Prop) *Prop           { return &Prop{Kind: ImpKind, P: p, Q: q} }
func True() *Prop                    { return &Prop{Kind: TrueKind} }
func False() *Prop                   { return &Prop{Kind: FalseKind} }
func ModelRef(name string) *Prop     { return &Prop{Kind: ModelRefKind, Name: name} }
func ModelRefHole(name string) *Prop { return &Prop{Kind: ModelRefHoleKind, Name: name} }

func Predicate(name string, args ...*Prop) *Prop {
	return &Prop{Kind: PredicateKind, Name: name, Args: args}
}

// ForAll binds v (a ModelRef or, inside a rewrite-rule pattern, a
// ModelRefHole) over body.
func ForAll(v *Prop, body *Prop) *Prop {
	return &Prop{Kind: ForAllKind, Var: v, Body: body}
}

func Exists(v *Prop, body *Prop) *Prop {
	return &Prop{Kind: ExistsKind, Var: v, Body: body}
}

// Not encodes negation as Imp(p, False), per the data model: the algebra
// has no dedicated negation node.
func Not(p *Prop) *Prop {
	return Imp(p, False())
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Prop) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BaseKind, PropHoleKind, ModelRefKind, ModelRefHoleKind:
		return a.Name == b.Name
	case TrueKind, FalseKind:
		return true
	case AndKind, OrKind, ImpKind:
		return Equal(a.P, b.P) && Equal(a.Q, b.Q)
	case ForAllKind, ExistsKind:
		return Equal(a.Var, b.Var) && Equal(a.Body, b.Body)
	case PredicateKind:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a stable structural hash, so Set membership and map keys
// keyed off formulas are O(depth) to compute and O(1) to compare, per the
// "formula identity" design note. It panics on a nil Prop.
func (p *Prop) Hash() uint64 {
	if p == nil {
		panic("prop: Hash called on nil Prop")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(p.Kind))
	switch p.Kind {
	case BaseKind, PropHoleKind, ModelRefKind, ModelRefHoleKind:
		h.WriteString(p.Name)
	case TrueKind, FalseKind:
	case AndKind, OrKind, ImpKind:
		writeChildHash(&h, p.P)
		writeChildHash(&h, p.Q)
	case ForAllKind, ExistsKind:
		writeChildHash(&h, p.Var)
		writeChildHash(&h, p.Body)
	case PredicateKind:
		h.WriteString(p.Name)
		for _, a := range p.Args {
			writeChildHash(&h, a)
		}
	}
	return h.Sum64()
}

// hashSeed is shared by every Hash call, so equal formulas hash equally
// for the life of the process.
var hashSeed = maphash.MakeSeed()

func writeChildHash(h *maphash.Hash, child *Prop) {
	v := child.Hash()
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	h.Write(b[:])
}

// String renders the formula using the surface grammar's connectives,
// always parenthesizing binary operators (no precedence-driven elision),
// matching the original implementation's unconditional __repr__ style.
func (p *Prop) String() string {
	if p == nil {
		return "<nil>"
	}
	switch p.Kind {
	case BaseKind:
		return p.Name
	case PropHoleKind:
		return "?" + p.Name
	case ModelRefKind:
		return p.Name
	case ModelRefHoleKind:
		return "?" + p.Name
	case TrueKind:
		return "True"
	case FalseKind:
		return "False"
	case AndKind:
		return fmt.Sprintf("(%s /\\ %s)", p.P, p.Q)
	case OrKind:
		return fmt.Sprintf("(%s \\/ %s)", p.P, p.Q)
	case ImpKind:
		return fmt.Sprintf("(%s -> %s)", p.P, p.Q)
	case ForAllKind:
		return fmt.Sprintf("forall %s, %s", p.Var, p.Body)
	case ExistsKind:
		return fmt.Sprintf("exists %s, %s", p.Var, p.Body)
	case PredicateKind:
		args := make([]string, len(p.Args))
		for i, a := range p.Args {
			args[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", p.Name, strings.Join(args, ", "))
	default:
		return "<?>"
	}
}
