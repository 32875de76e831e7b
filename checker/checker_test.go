package checker

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yasmin-shahed/mouse/prop"
)

// conclusionStrings renders a ProofType's conclusions as a sorted slice
// of formula text, for cmp-based snapshot assertions.
func conclusionStrings(pt ProofType) []string {
	out := make([]string, 0, pt.Conclusions.Len())
	pt.Conclusions.Each(func(p *prop.Prop) { out = append(out, p.String()) })
	sort.Strings(out)
	return out
}

func line(num int, typ *prop.Prop, rule string, args ...int) *Line {
	return &Line{Num: num, Typ: typ, Just: UninterpretedJustification{Name: rule, Args: args}}
}

// TestPropositionalChain reproduces the spec's literal propositional chain
// scenario: from ~(Q /\ ~Z), R -> P, R, P -> Q, derive Z.
func TestPropositionalChain(t *testing.T) {
	q, z, r, p := prop.Base("Q"), prop.Base("Z"), prop.Base("R"), prop.Base("P")

	ctx := NewContext()
	lines := []*Line{
		line(1, prop.Not(prop.And(q, prop.Not(z))), "prem"),
		line(2, prop.Or(prop.Not(q), prop.Not(prop.Not(z))), "dm_ao", 1),
		line(3, prop.Or(prop.Not(q), z), "dn", 2),
		line(4, prop.Imp(q, z), "imp", 3),
		line(5, prop.Imp(r, p), "prem"),
		line(6, r, "prem"),
		line(7, p, "mp", 5, 6),
		line(8, prop.Imp(p, q), "prem"),
		line(9, q, "mp", 8, 7),
		line(10, z, "mp", 4, 9),
	}
	for _, l := range lines {
		if err := ctx.AddLine(l); err != nil {
			t.Fatalf("AddLine: %v", err)
		}
	}
	proof := &Proof{Nums: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Lines: ctx.Lines}
	ctx.AddProof(proof)

	if err := Verify(ctx, nil); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	pt := ctx.ProofTypes[proof]
	wantForms := []*prop.Prop{
		prop.Not(prop.And(q, prop.Not(z))),
		prop.Or(prop.Not(q), prop.Not(prop.Not(z))),
		prop.Or(prop.Not(q), z),
		prop.Imp(q, z),
		prop.Imp(r, p),
		r,
		p,
		prop.Imp(p, q),
		q,
		z,
	}
	want := make([]string, len(wantForms))
	for i, f := range wantForms {
		want[i] = f.String()
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, conclusionStrings(pt)); diff != "" {
		t.Fatalf("conclusions mismatch (-want +got):\n%s", diff)
	}
	if pt.Hypotheses.Len() != 4 {
		t.Fatalf("expected 4 hypotheses (prem lines), got %d", pt.Hypotheses.Len())
	}
}

// TestDeductionSubProof reproduces the spec's deduction scenario: a
// sub-proof {1. A prem; 2. A mp ...} (collapsed here to a single
// hypothesis line) cited by a ded line deriving A -> A.
func TestDeductionSubProof(t *testing.T) {
	a := prop.Base("A")

	ctx := NewContext()
	sub := []*Line{
		line(1, a, "prem"),
	}
	for _, l := range sub {
		if err := ctx.AddLine(l); err != nil {
			t.Fatalf("AddLine: %v", err)
		}
	}
	subProof := &Proof{Nums: []int{1}, Lines: ctx.Lines}
	ctx.AddProof(subProof)

	outer := line(2, prop.Imp(a, a), "ded", 1)
	if err := ctx.AddLine(outer); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	mainProof := &Proof{Nums: []int{2}, Lines: ctx.Lines}
	ctx.AddProof(mainProof)

	if err := Verify(ctx, nil); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	pt := ctx.ProofTypes[mainProof]
	if pt.Hypotheses.Len() != 0 {
		t.Fatalf("expected the outer proof to have no hypotheses of its own, got %d", pt.Hypotheses.Len())
	}
	if !pt.Conclusions.Contains(prop.Imp(a, a)) {
		t.Fatalf("expected A -> A among conclusions")
	}
}

func TestUnknownRuleIsStructureError(t *testing.T) {
	ctx := NewContext()
	l := line(1, prop.Base("A"), "no_such_rule")
	ctx.AddLine(l)
	ctx.AddProof(&Proof{Nums: []int{1}, Lines: ctx.Lines})
	if err := Verify(ctx, nil); err == nil {
		t.Fatalf("expected an unknown rule to fail verification")
	}
}
