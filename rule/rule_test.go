package rule

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yasmin-shahed/mouse/prop"
	"github.com/yasmin-shahed/mouse/unify"
)

func TestModusPonens(t *testing.T) {
	entry, ok := Lookup("mp")
	if !ok {
		t.Fatalf("mp not registered")
	}
	p, q := prop.Base("P"), prop.Base("Q")
	if err := entry.Prop([]*prop.Prop{prop.Imp(p, q), p}, q); err != nil {
		t.Fatalf("mp rejected a valid application: %v", err)
	}
	if err := entry.Prop([]*prop.Prop{prop.Imp(p, q), q}, p); err == nil {
		t.Fatalf("mp accepted a mismatched antecedent")
	}
}

func TestSimp(t *testing.T) {
	entry, _ := Lookup("simp")
	p, q := prop.Base("P"), prop.Base("Q")
	if err := entry.Prop([]*prop.Prop{prop.And(p, q)}, q); err != nil {
		t.Fatalf("simp rejected right conjunct: %v", err)
	}
	if err := entry.Prop([]*prop.Prop{prop.And(p, q)}, prop.Base("R")); err == nil {
		t.Fatalf("simp accepted a non-conjunct")
	}
}

func TestDisjunctiveSyllogism(t *testing.T) {
	entry, _ := Lookup("ds")
	a, b := prop.Base("A"), prop.Base("B")
	if err := entry.Prop([]*prop.Prop{prop.Or(a, b), prop.Not(a)}, b); err != nil {
		t.Fatalf("ds rejected a valid application: %v", err)
	}
}

func TestDisjunctiveElimination(t *testing.T) {
	entry, _ := Lookup("de")
	a, b, c := prop.Base("A"), prop.Base("B"), prop.Base("C")
	args := []*prop.Prop{prop.Or(a, b), prop.Imp(a, c), prop.Imp(b, c)}
	if err := entry.Prop(args, c); err != nil {
		t.Fatalf("de rejected a valid application: %v", err)
	}
}

func TestEquivalenceRuleOrComm(t *testing.T) {
	entry, ok := Lookup("or_comm")
	if !ok {
		t.Fatalf("or_comm not registered")
	}
	a, b := prop.Base("A"), prop.Base("B")
	if err := entry.Prop([]*prop.Prop{prop.Or(a, b)}, prop.Or(b, a)); err != nil {
		t.Fatalf("or_comm rejected a valid rewrite: %v", err)
	}
}

func freshAlways(string) bool { return true }

func TestUniversalInstantiationRegistersEigenvariable(t *testing.T) {
	entry, _ := Lookup("ui")
	x, c := prop.ModelRef("x"), prop.ModelRef("c")
	source := &LineView{Typ: prop.ForAll(x, prop.Predicate("P", x))}
	conclusion := &LineView{Typ: prop.Predicate("P", c)}
	if err := entry.Quant(source, conclusion, freshAlways); err != nil {
		t.Fatalf("ui rejected a valid instantiation: %v", err)
	}
	want := map[string]map[string]struct{}{"c": {}}
	if diff := cmp.Diff(want, conclusion.Vars); diff != "" {
		t.Fatalf("ui scope mismatch (-want +got):\n%s", diff)
	}
}

func TestExistentialInstantiationRequiresFreshConstant(t *testing.T) {
	entry, _ := Lookup("ei")
	x, c := prop.ModelRef("x"), prop.ModelRef("c")
	source := &LineView{Typ: prop.Exists(x, prop.Predicate("P", x))}
	conclusion := &LineView{Typ: prop.Predicate("P", c)}
	notFresh := func(name string) bool { return false }
	if err := entry.Quant(source, conclusion, notFresh); err == nil {
		t.Fatalf("ei should reject a non-fresh constant")
	}
}

func TestUniversalGeneralizationAcceptsNonEscapingDependent(t *testing.T) {
	entry, _ := Lookup("ug")
	u := prop.ModelRef("u")
	v := prop.ModelRef("v")
	source := &LineView{
		Typ:  prop.Predicate("P", u),
		Vars: map[string]map[string]struct{}{"u": {"c": {}}},
	}
	conclusion := &LineView{
		Typ:  prop.ForAll(v, prop.Predicate("P", v)),
		Vars: map[string]map[string]struct{}{"u": {"c": {}}},
	}
	// ψ = Predicate("P", v) does not mention "c", so this should succeed.
	if err := entry.Quant(source, conclusion, freshAlways); err != nil {
		t.Fatalf("ug rejected a valid generalization: %v", err)
	}
	if _, stillInScope := conclusion.Vars["u"]; stillInScope {
		t.Fatalf("expected ug to remove u from scope")
	}
}

func TestUniversalGeneralizationRejectsEscapingDependent(t *testing.T) {
	entry, _ := Lookup("ug")
	u := prop.ModelRef("u")
	v := prop.ModelRef("v")
	c := prop.ModelRef("c")
	source := &LineView{
		Typ:  prop.Predicate("P", u, c),
		Vars: map[string]map[string]struct{}{"u": {"c": {}}},
	}
	conclusion := &LineView{
		Typ:  prop.ForAll(v, prop.Predicate("P", v, c)),
		Vars: map[string]map[string]struct{}{"u": {"c": {}}},
	}
	// ψ = Predicate("P", v, c) still mentions the EI-introduced dependent
	// "c" of u, so generalizing over u must be rejected.
	err := entry.Quant(source, conclusion, freshAlways)
	if err == nil {
		t.Fatalf("expected ug to reject a generalization whose dependent escapes")
	}
	if !errors.Is(err, unify.ErrQuantifier) {
		t.Fatalf("expected unify.ErrQuantifier, got %v", err)
	}
	if _, stillInScope := conclusion.Vars["u"]; !stillInScope {
		t.Fatalf("expected u to remain in scope after a rejected generalization")
	}
}
