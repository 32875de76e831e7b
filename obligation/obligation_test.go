package obligation

import (
	"testing"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/prop"
)

func TestDischargeSuppressesExcludedMiddle(t *testing.T) {
	p := prop.Base("P")
	notP := prop.Not(p)

	ctx := checker.NewContext()
	l1 := &checker.Line{Num: 1, Typ: prop.Or(p, notP), Just: checker.UninterpretedJustification{Name: "prem"}}
	l2 := &checker.Line{Num: 2, Typ: p, Just: checker.UninterpretedJustification{Name: "prem"}}
	for _, l := range []*checker.Line{l1, l2} {
		if err := ctx.AddLine(l); err != nil {
			t.Fatalf("AddLine: %v", err)
		}
	}
	proof := &checker.Proof{Nums: []int{1, 2}, Lines: ctx.Lines}
	ctx.AddProof(proof)
	if err := checker.Verify(ctx, nil); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	seqs, err := Discharge(ctx, []*prop.Prop{p})
	if err != nil {
		t.Fatalf("Discharge: %v", err)
	}
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequent, got %d", len(seqs))
	}
	// Line 2 is itself a premise, so P stays; only P \/ ~P is suppressed.
	if len(seqs[0].Hypotheses) != 1 || !prop.Equal(seqs[0].Hypotheses[0], p) {
		t.Fatalf("expected the excluded-middle hypothesis to be suppressed, leaving only P, got %v", seqs[0].Hypotheses)
	}
}

func TestDischargeFailsOnMissingObligation(t *testing.T) {
	ctx := checker.NewContext()
	l1 := &checker.Line{Num: 1, Typ: prop.Base("A"), Just: checker.UninterpretedJustification{Name: "prem"}}
	ctx.AddLine(l1)
	proof := &checker.Proof{Nums: []int{1}, Lines: ctx.Lines}
	ctx.AddProof(proof)
	if err := checker.Verify(ctx, nil); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if _, err := Discharge(ctx, []*prop.Prop{prop.Base("B")}); err == nil {
		t.Fatalf("expected discharge of an unproven obligation to fail")
	}
}
