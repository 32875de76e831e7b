package rule

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/prop"
)

func arityError(name string, want int, got []*prop.Prop) error {
	return fmt.Errorf("%w: %s expects %d line(s), got %d", prop.ErrShape, name, want, len(got))
}

func init() {
	registerProp("mp", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("mp", 2, cited)
		}
		got, err := prop.Apply(cited[0], cited[1])
		if err != nil {
			return err
		}
		return requireEqual(got, expected, "mp")
	})

	registerProp("mt", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("mt", 2, cited)
		}
		got, err := prop.Compose(cited[0], cited[1])
		if err != nil {
			return err
		}
		return requireEqual(got, expected, "mt")
	})

	registerProp("hs", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("hs", 2, cited)
		}
		got, err := prop.Compose(cited[0], cited[1])
		if err != nil {
			return err
		}
		return requireEqual(got, expected, "hs")
	})

	registerProp("simp", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 1 {
			return arityError("simp", 1, cited)
		}
		l, err := prop.ProjL(cited[0])
		if err != nil {
			return err
		}
		r, err := prop.ProjR(cited[0])
		if err != nil {
			return err
		}
		if prop.Equal(expected, l) || prop.Equal(expected, r) {
			return nil
		}
		return fmt.Errorf("%w: simp: %s is neither conjunct of %s", prop.ErrShape, expected, cited[0])
	})

	registerProp("add", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 1 {
			return arityError("add", 1, cited)
		}
		if expected.Kind != prop.OrKind {
			return fmt.Errorf("%w: add: %s is not a disjunction", prop.ErrShape, expected)
		}
		if prop.Equal(cited[0], expected.P) || prop.Equal(cited[0], expected.Q) {
			return nil
		}
		return fmt.Errorf("%w: add: %s is not a disjunct of %s", prop.ErrShape, cited[0], expected)
	})

	registerProp("conj", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("conj", 2, cited)
		}
		return requireEqual(prop.And(cited[0], cited[1]), expected, "conj")
	})

	registerProp("disj", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("disj", 2, cited)
		}
		return requireEqual(prop.Or(cited[0], cited[1]), expected, "disj")
	})

	registerProp("ds", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 2 {
			return arityError("ds", 2, cited)
		}
		disjunction, negated := cited[0], cited[1]
		if disjunction.Kind != prop.OrKind {
			return fmt.Errorf("%w: ds: %s is not a disjunction", prop.ErrShape, disjunction)
		}
		x, err := prop.InspectNot(negated)
		if err != nil {
			return err
		}
		if !prop.Equal(x, disjunction.P) && !prop.Equal(x, disjunction.Q) {
			return fmt.Errorf("%w: ds: %s negates neither disjunct of %s", prop.ErrShape, negated, disjunction)
		}
		if prop.Equal(expected, disjunction.P) || prop.Equal(expected, disjunction.Q) {
			return nil
		}
		return fmt.Errorf("%w: ds: %s is not a disjunct of %s", prop.ErrShape, expected, disjunction)
	})

	registerProp("de", func(cited []*prop.Prop, expected *prop.Prop) error {
		if len(cited) != 3 {
			return arityError("de", 3, cited)
		}
		disjunction, left, right := cited[0], cited[1], cited[2]
		coprod, err := prop.UnivCoprod(left, right)
		if err != nil {
			return err
		}
		got, err := prop.Apply(coprod, disjunction)
		if err != nil {
			return err
		}
		return requireEqual(got, expected, "de")
	})

	for name, r := range equivalenceRules() {
		registerProp(name, r)
	}
}

func requireEqual(got, expected *prop.Prop, name string) error {
	if prop.Equal(got, expected) {
		return nil
	}
	return fmt.Errorf("%w: %s: computed %s, asserted %s", ErrEquality, name, got, expected)
}
