package prop

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	a, b := Base("A"), Base("B")
	tests := []struct {
		name string
		x, y *Prop
		want bool
	}{
		{"same base", a, Base("A"), true},
		{"different base", a, b, false},
		{"and comm not equal", And(a, b), And(b, a), false},
		{"and same", And(a, b), And(a, b), true},
		{"not via imp", Not(a), Imp(a, False()), true},
		{"true not false", True(), False(), false},
		{"predicate same", Predicate("P", ModelRef("x")), Predicate("P", ModelRef("x")), true},
		{"predicate diff arg", Predicate("P", ModelRef("x")), Predicate("P", ModelRef("y")), false},
		{"quantifier same", ForAll(ModelRef("x"), Predicate("P", ModelRef("x"))), ForAll(ModelRef("x"), Predicate("P", ModelRef("x"))), true},
		{"quantifier diff var name", ForAll(ModelRef("x"), Predicate("P", ModelRef("x"))), ForAll(ModelRef("y"), Predicate("P", ModelRef("x"))), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.x, tc.y); got != tc.want {
				t.Fatalf("Equal(%s, %s) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestHashMatchesEqual(t *testing.T) {
	x := Imp(And(Base("A"), Base("B")), Or(Base("C"), Base("D")))
	y := Imp(And(Base("A"), Base("B")), Or(Base("C"), Base("D")))
	z := Imp(And(Base("A"), Base("B")), Or(Base("C"), Base("E")))
	if x.Hash() != y.Hash() {
		t.Fatalf("equal formulas hashed differently")
	}
	if x.Hash() == z.Hash() {
		t.Fatalf("different formulas hashed the same (likely a collision, but worth knowing)")
	}
}

func TestApplyCompose(t *testing.T) {
	p, q, r := Base("P"), Base("Q"), Base("R")
	imp := Imp(p, q)
	got, err := Apply(imp, p)
	if err != nil || !Equal(got, q) {
		t.Fatalf("Apply(%s, %s) = %v, %v; want %s, nil", imp, p, got, err, q)
	}
	if _, err := Apply(imp, q); err == nil {
		t.Fatalf("Apply with wrong antecedent should fail")
	}
	composed, err := Compose(Imp(p, q), Imp(q, r))
	if err != nil || !Equal(composed, Imp(p, r)) {
		t.Fatalf("Compose = %v, %v; want %s, nil", composed, err, Imp(p, r))
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet()
	a := And(Base("A"), Base("B"))
	if !s.Add(a) {
		t.Fatalf("first Add should succeed")
	}
	if s.Add(And(Base("A"), Base("B"))) {
		t.Fatalf("Add of a structurally-equal formula should report false")
	}
	if !s.Contains(And(Base("A"), Base("B"))) {
		t.Fatalf("Contains should find a structurally-equal formula")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestSetSliceMatchesInsertedFormulas(t *testing.T) {
	s := NewSet()
	want := []*Prop{Base("A"), Base("B"), And(Base("A"), Base("B"))}
	for _, p := range want {
		s.Add(p)
	}
	got := s.Slice()
	wantStrs := make([]string, len(want))
	for i, p := range want {
		wantStrs[i] = p.String()
	}
	gotStrs := make([]string, len(got))
	for i, p := range got {
		gotStrs[i] = p.String()
	}
	sort.Strings(wantStrs)
	sort.Strings(gotStrs)
	if diff := cmp.Diff(wantStrs, gotStrs); diff != "" {
		t.Fatalf("Set.Slice content mismatch (-want +got):\n%s", diff)
	}
}
