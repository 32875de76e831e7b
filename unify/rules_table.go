package unify

import "github.com/yasmin-shahed/mouse/prop"

// RewriteRules is the table of named bidirectional equivalences every
// one-place equivalence rule (or_comm, dn, cp, ...) checks against. The
// rule package wraps each entry as a named argument; this package only
// owns their formula shape.
var RewriteRules = map[string]RewriteRule{
	"or_comm":  {Name: "or_comm", LHS: prop.Or(hA, hB), RHS: prop.Or(hB, hA)},
	"and_comm": {Name: "and_comm", LHS: prop.And(hA, hB), RHS: prop.And(hB, hA)},

	"or_assoc":  {Name: "or_assoc", LHS: prop.Or(prop.Or(hA, hB), hC), RHS: prop.Or(hA, prop.Or(hB, hC))},
	"and_assoc": {Name: "and_assoc", LHS: prop.And(prop.And(hA, hB), hC), RHS: prop.And(hA, prop.And(hB, hC))},

	// double negation: a <=> ~~a
	"dn": {Name: "dn", LHS: hA, RHS: prop.Not(prop.Not(hA))},

	// contrapositive: (a -> b) <=> (~b -> ~a)
	"cp": {Name: "cp", LHS: prop.Imp(hA, hB), RHS: prop.Imp(prop.Not(hB), prop.Not(hA))},

	// material implication: (a -> b) <=> (~a \/ b)
	"imp": {Name: "imp", LHS: prop.Imp(hA, hB), RHS: prop.Or(prop.Not(hA), hB)},

	// distributivity
	"dist_ao": {Name: "dist_ao", LHS: prop.And(hA, prop.Or(hB, hC)), RHS: prop.Or(prop.And(hA, hB), prop.And(hA, hC))},
	"dist_oa": {Name: "dist_oa", LHS: prop.Or(hA, prop.And(hB, hC)), RHS: prop.And(prop.Or(hA, hB), prop.Or(hA, hC))},

	// De Morgan, propositional
	"dm_ao": {Name: "dm_ao", LHS: prop.Not(prop.And(hA, hB)), RHS: prop.Or(prop.Not(hA), prop.Not(hB))},
	"dm_oa": {Name: "dm_oa", LHS: prop.Not(prop.Or(hA, hB)), RHS: prop.And(prop.Not(hA), prop.Not(hB))},

	// De Morgan, over quantifiers: forall/exists and exists/forall
	"dm_fe": {Name: "dm_fe", LHS: prop.ForAll(hV, prop.Not(hA)), RHS: prop.Not(prop.Exists(hV, hA))},
	"dm_ef": {Name: "dm_ef", LHS: prop.Exists(hV, prop.Not(hA)), RHS: prop.Not(prop.ForAll(hV, hA))},

	// exportation: (a -> (b -> c)) <=> ((a /\ b) -> c)
	"exp": {Name: "exp", LHS: prop.Imp(hA, prop.Imp(hB, hC)), RHS: prop.Imp(prop.And(hA, hB), hC)},

	// self-conjunction / self-disjunction: a <=> a /\ a, a <=> a \/ a
	"and_self": {Name: "and_self", LHS: hA, RHS: prop.And(hA, hA)},
	"or_self":  {Name: "or_self", LHS: hA, RHS: prop.Or(hA, hA)},
}

// Pattern holes shared by the table above. A fresh unify.Unify call is
// made per TryRewrite invocation with its own subst/varSubst maps, so
// reusing these *prop.Prop values across rules is safe: holes are never
// mutated, only matched against.
var (
	hA = prop.PropHole("a")
	hB = prop.PropHole("b")
	hC = prop.PropHole("c")
	hV = prop.ModelRefHole("v")
)
