package checker

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yasmin-shahed/mouse/prop"
)

// UninterpretedJustification is what the parser hands the checker: a rule
// name and the line numbers it cites, before the checker resolves the
// name against the rule registry and the numbers against the context.
type UninterpretedJustification struct {
	Name string
	Args []int
}

// Line is one asserted step of a proof.
type Line struct {
	Num     int
	Typ     *prop.Prop
	Just    UninterpretedJustification
	Vars    map[string]map[string]struct{}
	Checked bool
}

// Proof is an ordered, contiguously-numbered set of lines.
type Proof struct {
	Nums  []int
	Lines map[int]*Line
}

// Range returns the proof's sorted line numbers, the key under which it
// registers itself in a Context.
func (p *Proof) Range() []int {
	out := append([]int(nil), p.Nums...)
	sort.Ints(out)
	return out
}

func rangeKey(nums []int) string {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// ProofType is a sub-proof's discharged sequent shape: the hypotheses it
// assumes and the conclusions (every line, hypotheses included, per the
// variant the deduction rule requires) available to cite.
type ProofType struct {
	Hypotheses *prop.Set
	Conclusions *prop.Set
}

// Context is the process-scope checker state: every line and proof seen
// so far, and the sequent type of every sub-proof that has finished
// verifying.
type Context struct {
	Lines      map[int]*Line
	Proofs     map[string]*Proof
	ProofTypes map[*Proof]ProofType
	MainProof  *Proof

	compiled map[*Proof]bool
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{
		Lines:      map[int]*Line{},
		Proofs:     map[string]*Proof{},
		ProofTypes: map[*Proof]ProofType{},
		compiled:   map[*Proof]bool{},
	}
}

// AddLine registers a line. Line numbers must be globally unique.
func (c *Context) AddLine(l *Line) error {
	if _, dup := c.Lines[l.Num]; dup {
		return &DuplicateLineError{Num: l.Num}
	}
	c.Lines[l.Num] = l
	return nil
}

// AddProof registers a proof under its sorted line-range key. The most
// recently registered proof becomes the main (outermost) proof, per the
// parser's bottom-up registration of nested sub-proofs before their
// enclosing proof.
func (c *Context) AddProof(p *Proof) {
	c.Proofs[rangeKey(p.Range())] = p
	c.MainProof = p
}

// DuplicateLineError reports a line number used twice.
type DuplicateLineError struct{ Num int }

func (e *DuplicateLineError) Error() string {
	return "structure error: duplicate line number " + strconv.Itoa(e.Num)
}

func (e *DuplicateLineError) Unwrap() error { return ErrStructure }
