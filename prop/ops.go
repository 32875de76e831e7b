package prop

import (
	"errors"
	"fmt"
)

// ErrShape is returned by the partial operations below when a formula does
// not have the shape an operation requires (e.g. Apply given a non-Imp).
var ErrShape = errors.New("shape error")

// Apply requires f = Imp(a, b) and a = x; it returns b.
func Apply(f, x *Prop) (*Prop, error) {
	if f.Kind != ImpKind {
		return nil, fmt.Errorf("%w: %s is not an implication", ErrShape, f)
	}
	if !Equal(f.P, x) {
		return nil, fmt.Errorf("%w: implication expects %s, got %s", ErrShape, f.P, x)
	}
	return f.Q, nil
}

// Compose requires both f and g to be implications with f.Q = g.P; it
// returns Imp(f.P, g.Q).
func Compose(f, g *Prop) (*Prop, error) {
	if f.Kind != ImpKind {
		return nil, fmt.Errorf("%w: %s is not an implication", ErrShape, f)
	}
	if g.Kind != ImpKind {
		return nil, fmt.Errorf("%w: %s is not an implication", ErrShape, g)
	}
	if !Equal(f.Q, g.P) {
		return nil, fmt.Errorf("%w: cannot compose %s and %s, since %s != %s", ErrShape, f, g, f.Q, g.P)
	}
	return Imp(f.P, g.Q), nil
}

// ProjL projects the left conjunct of an And.
func ProjL(p *Prop) (*Prop, error) {
	if p.Kind != AndKind {
		return nil, fmt.Errorf("%w: %s is not a conjunction", ErrShape, p)
	}
	return p.P, nil
}

// ProjR projects the right conjunct of an And.
func ProjR(p *Prop) (*Prop, error) {
	if p.Kind != AndKind {
		return nil, fmt.Errorf("%w: %s is not a conjunction", ErrShape, p)
	}
	return p.Q, nil
}

// InspectNot requires p = Imp(a, False); it returns a.
func InspectNot(p *Prop) (*Prop, error) {
	if p.Kind != ImpKind || p.Q.Kind != FalseKind {
		return nil, fmt.Errorf("%w: %s is not a negation", ErrShape, p)
	}
	return p.P, nil
}

// UnivCoprod requires f and g to be implications with f.Q = g.Q; it returns
// Imp(Or(f.P, g.P), f.Q) — the universal property used by disjunctive
// elimination.
func UnivCoprod(f, g *Prop) (*Prop, error) {
	if f.Kind != ImpKind {
		return nil, fmt.Errorf("%w: %s is not an implication", ErrShape, f)
	}
	if g.Kind != ImpKind {
		return nil, fmt.Errorf("%w: %s is not an implication", ErrShape, g)
	}
	if !Equal(f.Q, g.Q) {
		return nil, fmt.Errorf("%w: codomains of %s and %s do not match", ErrShape, f, g)
	}
	return Imp(Or(f.P, g.P), f.Q), nil
}
