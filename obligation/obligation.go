// Package obligation discharges the proof obligations listed at the top
// of an input file against a checked Context's main proof, per §4.6.
package obligation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/prop"
	"github.com/yasmin-shahed/mouse/unify"
)

// ErrNotDischarged is returned when an obligation is not among the main
// proof's conclusions.
var ErrNotDischarged = errors.New("obligation not discharged")

// Sequent is one discharged obligation: the non-axiom hypotheses it
// depends on, and the obligation itself.
type Sequent struct {
	Hypotheses []*prop.Prop
	Conclusion *prop.Prop
}

func (s Sequent) String() string {
	parts := make([]string, len(s.Hypotheses))
	for i, h := range s.Hypotheses {
		parts[i] = h.String()
	}
	return fmt.Sprintf("{%s} |- %s", strings.Join(parts, ", "), s.Conclusion)
}

var axiomHole = prop.PropHole("a")
var axiomPatternAN = prop.Or(axiomHole, prop.Not(axiomHole))
var axiomPatternNA = prop.Or(prop.Not(axiomHole), axiomHole)

// isAxiom reports whether h is literally Or(a, ~a) or Or(~a, a) for some
// a. Only these two literal shapes are recognized — a double-negated or
// otherwise restated excluded middle is not suppressed, matching the
// source behavior this checker preserves.
func isAxiom(h *prop.Prop) bool {
	subst, varSubst := map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if unify.Unify(h, axiomPatternAN, subst, varSubst) {
		return true
	}
	subst, varSubst = map[string]*prop.Prop{}, map[string]*prop.Prop{}
	return unify.Unify(h, axiomPatternNA, subst, varSubst)
}

// Discharge emits one Sequent per obligation, in order, once ctx's main
// proof has finished verifying. It fails at the first obligation not
// among the main proof's conclusions.
func Discharge(ctx *checker.Context, obligations []*prop.Prop) ([]Sequent, error) {
	if ctx.MainProof == nil {
		return nil, fmt.Errorf("%w: no main proof registered", ErrNotDischarged)
	}
	pt, ok := ctx.ProofTypes[ctx.MainProof]
	if !ok {
		return nil, fmt.Errorf("%w: main proof has not finished verifying", ErrNotDischarged)
	}

	var nonAxiomHyps []*prop.Prop
	pt.Hypotheses.Each(func(h *prop.Prop) {
		if !isAxiom(h) {
			nonAxiomHyps = append(nonAxiomHyps, h)
		}
	})

	out := make([]Sequent, 0, len(obligations))
	for _, ob := range obligations {
		if !pt.Conclusions.Contains(ob) {
			return nil, fmt.Errorf("%w: %s", ErrNotDischarged, ob)
		}
		out = append(out, Sequent{Hypotheses: nonAxiomHyps, Conclusion: ob})
	}
	return out, nil
}
