package prop

import "fmt"

// Kind tags the shape of a Prop node, mirroring the teacher's ir.Type enum.
type Kind int

const (
	BaseKind Kind = iota
	PropHoleKind
	AndKind
	OrKind
	ImpKind
	TrueKind
	FalseKind
	PredicateKind
	ModelRefKind
	ModelRefHoleKind
	ForAllKind
	ExistsKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BaseKind:         "Base",
		PropHoleKind:     "PropHole",
		AndKind:          "And",
		OrKind:           "Or",
		ImpKind:          "Imp",
		TrueKind:         "True",
		FalseKind:        "False",
		PredicateKind:    "Predicate",
		ModelRefKind:     "ModelRef",
		ModelRefHoleKind: "ModelRefHole",
		ForAllKind:       "ForAll",
		ExistsKind:       "Exists",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// IsHole reports whether k is one of the two pattern-hole kinds that
// appear in rewrite-rule templates; unify.Unify dispatches on it before
// binding either kind of hole.
func (k Kind) IsHole() bool {
	return k == PropHoleKind || k == ModelRefHoleKind
}
