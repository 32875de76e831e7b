// Package rule holds the named inference rules a proof line's
// justification resolves to: the propositional rules of §4.3, the
// bidirectional equivalence rules of §4.2 wrapped as one-place rules, and
// the four quantifier rules of §4.4. Two distinct rule shapes exist
// because quantifier rules both decide acceptance and mutate a line's
// variable-scope bookkeeping, while propositional rules only ever compare
// formulas.
package rule

import (
	"sync"

	"github.com/yasmin-shahed/mouse/prop"
)

// Kind distinguishes the two rule shapes the registry holds.
type Kind int

const (
	Propositional Kind = iota
	Quantifier
)

// LineView is the narrow slice of a checker line a rule needs: its
// asserted formula and its variable-scope map. Quantifier rules mutate
// Vars in place; propositional rules never see it.
type LineView struct {
	Typ  *prop.Prop
	Vars map[string]map[string]struct{}
}

// PropFunc checks a propositional rule: given the formulas of the lines
// a justification cites, in citation order, and the line's asserted
// formula, it reports a non-nil error when the rule rejects.
type PropFunc func(cited []*prop.Prop, expected *prop.Prop) error

// QuantFunc checks a quantifier rule. fresh reports whether a ModelRef
// name is not already used as a constant anywhere else in the context —
// only EI consults it. conclusion.Vars arrives already merged from the
// cited line(s) and is mutated in place on success.
type QuantFunc func(source, conclusion *LineView, fresh func(name string) bool) error

// Entry is a registered rule.
type Entry struct {
	Name  string
	Kind  Kind
	Prop  PropFunc
	Quant QuantFunc
}

var (
	mu       sync.RWMutex
	registry = map[string]Entry{}
)

// Register adds or replaces a named rule. Built-in rules register
// themselves from init(); callers normally only need Lookup.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()
	registry[e.Name] = e
}

// Lookup finds a rule by name.
func Lookup(name string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

func registerProp(name string, f PropFunc) {
	Register(Entry{Name: name, Kind: Propositional, Prop: f})
}

func registerQuant(name string, f QuantFunc) {
	Register(Entry{Name: name, Kind: Quantifier, Quant: f})
}
