package unify

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yasmin-shahed/mouse/prop"
)

func TestUnifyPropHole(t *testing.T) {
	a, b := prop.Base("A"), prop.Base("B")
	subst, varSubst := map[string]*prop.Prop{}, map[string]*prop.Prop{}
	pattern := prop.Or(prop.PropHole("x"), prop.PropHole("x"))
	if Unify(pattern, prop.Or(a, a), subst, varSubst) != true {
		t.Fatalf("expected Or(x,x) to unify with Or(A,A)")
	}
	if !prop.Equal(subst["x"], a) {
		t.Fatalf("expected x to bind to A, got %v", subst["x"])
	}

	subst, varSubst = map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if Unify(pattern, prop.Or(a, b), subst, varSubst) != false {
		t.Fatalf("expected Or(x,x) not to unify with Or(A,B): inconsistent binding")
	}
}

func TestUnifyBindsExactlyTheExpectedHoles(t *testing.T) {
	a, b := prop.Base("A"), prop.Base("B")
	pattern := prop.And(prop.PropHole("x"), prop.Imp(prop.PropHole("y"), prop.PropHole("x")))
	subst, varSubst := map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if !Unify(pattern, prop.And(a, prop.Imp(b, a)), subst, varSubst) {
		t.Fatalf("expected pattern to unify")
	}
	names := make([]string, 0, len(subst))
	for n := range subst {
		names = append(names, n)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"x", "y"}, names); diff != "" {
		t.Fatalf("bound hole names mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyModelRefHole(t *testing.T) {
	x := prop.ModelRef("x")
	pattern := prop.Predicate("P", prop.ModelRefHole("v"))
	subst, varSubst := map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if !Unify(pattern, prop.Predicate("P", x), subst, varSubst) {
		t.Fatalf("expected predicate pattern to unify")
	}
	if !prop.Equal(varSubst["v"], x) {
		t.Fatalf("expected v to bind to x, got %v", varSubst["v"])
	}

	// a ModelRefHole must not unify against a non-ModelRef such as a Base.
	subst, varSubst = map[string]*prop.Prop{}, map[string]*prop.Prop{}
	if Unify(pattern, prop.Predicate("P", prop.Base("A")), subst, varSubst) {
		t.Fatalf("ModelRefHole should not unify against a non-ModelRef")
	}
}

func TestDiffTree(t *testing.T) {
	a, b, c := prop.Base("A"), prop.Base("B"), prop.Base("C")
	before := prop.And(a, prop.Or(b, c))
	after := prop.And(a, prop.Or(c, b))
	oldT, newT := DiffTree(before, after)
	if !prop.Equal(oldT, prop.Or(b, c)) || !prop.Equal(newT, prop.Or(c, b)) {
		t.Fatalf("DiffTree = %s / %s, want Or(B,C) / Or(C,B)", oldT, newT)
	}
}

func TestTryRewriteOrComm(t *testing.T) {
	a, b := prop.Base("A"), prop.Base("B")
	before := prop.And(a, prop.Or(a, b))
	after := prop.And(a, prop.Or(b, a))
	if _, _, err := TryRewrite(before, after, RewriteRules["or_comm"]); err != nil {
		t.Fatalf("expected or_comm to relate %s and %s: %v", before, after, err)
	}
	if _, _, err := TryRewrite(before, after, RewriteRules["and_comm"]); err == nil {
		t.Fatalf("and_comm should not relate an Or-swap")
	}
}

func TestTryRewriteDoubleNegation(t *testing.T) {
	a := prop.Base("A")
	before := a
	after := prop.Not(prop.Not(a))
	if _, _, err := TryRewrite(before, after, RewriteRules["dn"]); err != nil {
		t.Fatalf("expected dn to relate %s and %s: %v", before, after, err)
	}
}

func TestTryRewriteQuantifierDeMorgan(t *testing.T) {
	x := prop.ModelRef("x")
	p := prop.Predicate("P", x)
	before := prop.ForAll(x, prop.Not(p))
	after := prop.Not(prop.Exists(x, p))
	if _, _, err := TryRewrite(before, after, RewriteRules["dm_fe"]); err != nil {
		t.Fatalf("expected dm_fe to relate %s and %s: %v", before, after, err)
	}
}

func TestAlphaRename(t *testing.T) {
	x := prop.ModelRef("x")
	c := prop.ModelRef("c")
	body := prop.Predicate("P", x, prop.ModelRef("y"))
	renamed := prop.Predicate("P", c, prop.ModelRef("y"))
	subst := map[string]*prop.Prop{}
	if err := AlphaRename(body, renamed, x, subst); err != nil {
		t.Fatalf("AlphaRename failed: %v", err)
	}
	if !prop.Equal(subst["x"], c) {
		t.Fatalf("expected witness x=c, got %v", subst["x"])
	}
}

func TestAlphaRenameRejectsShadowedBinder(t *testing.T) {
	x := prop.ModelRef("x")
	c := prop.ModelRef("c")
	orig := prop.ForAll(x, prop.Predicate("P", x))
	renamed := prop.ForAll(x, prop.Predicate("P", c))
	subst := map[string]*prop.Prop{}
	if err := AlphaRename(orig, renamed, x, subst); err == nil {
		t.Fatalf("expected AlphaRename to reject instantiating a variable shadowed by its own binder")
	}
}

func TestFormulaUsesAndSymbols(t *testing.T) {
	x, y := prop.ModelRef("x"), prop.ModelRef("y")
	f := prop.Predicate("P", x)
	if !FormulaUses(f, x) {
		t.Fatalf("expected FormulaUses to find x in %s", f)
	}
	if FormulaUses(f, y) {
		t.Fatalf("did not expect FormulaUses to find y in %s", f)
	}
	syms := Symbols(prop.ForAll(x, prop.Predicate("Q", x, y)))
	if _, ok := syms["x"]; !ok {
		t.Fatalf("expected x in symbol set")
	}
	if _, ok := syms["y"]; !ok {
		t.Fatalf("expected y in symbol set")
	}
}
