package checker

import (
	"fmt"
	"sort"

	"github.com/yasmin-shahed/mouse/tracedbg"
	"github.com/yasmin-shahed/mouse/prop"
	"github.com/yasmin-shahed/mouse/rule"
	"github.com/yasmin-shahed/mouse/unify"
)

// Progress is called once per line as Verify reaches it, after the line
// either passes or fails, so a caller (typically the CLI) can print a
// ✓/✗ progress marker without Verify itself owning any output stream.
type Progress func(line *Line, err error)

// Verify checks every line of ctx in ascending line-number order,
// following §4.5: merge scope from cited lines, resolve the
// justification, invoke the rule, mark the line checked, then compile any
// sub-proof whose lines are now all checked. It aborts and returns the
// first failure; there is no partial or best-effort checking.
func Verify(ctx *Context, onProgress Progress) error {
	nums := make([]int, 0, len(ctx.Lines))
	for n := range ctx.Lines {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	checked := map[int]bool{}

	for _, num := range nums {
		line := ctx.Lines[num]
		err := verifyLine(ctx, line, checked)
		if onProgress != nil {
			onProgress(line, err)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		line.Checked = true
		checked[num] = true

		for _, p := range ctx.Proofs {
			if ctx.compiled[p] {
				continue
			}
			if subsetChecked(p.Nums, checked) {
				compileProof(ctx, p)
			}
		}
	}
	return nil
}

func subsetChecked(nums []int, checked map[int]bool) bool {
	for _, n := range nums {
		if !checked[n] {
			return false
		}
	}
	return true
}

func verifyLine(ctx *Context, line *Line, checked map[int]bool) error {
	cited, err := resolveCited(ctx, line.Just.Args)
	if err != nil {
		return err
	}

	switch line.Just.Name {
	case "hyp", "prem":
		// No side conditions: the invariant that a Hypothesis line is
		// never checked beyond its own existence.
		line.Vars = mergeVars(cited)
		return nil
	case "ded":
		line.Vars = mergeVars(cited)
		return checkDeduction(ctx, line.Just.Args, line.Typ)
	}

	entry, ok := rule.Lookup(line.Just.Name)
	if !ok {
		return fmt.Errorf("%w: unknown rule %q", ErrStructure, line.Just.Name)
	}

	if tracedbg.Check() {
		tracedbg.Logf("check line %d: %s %v -> %s\n", line.Num, line.Just.Name, line.Just.Args, line.Typ)
	}

	switch entry.Kind {
	case rule.Propositional:
		line.Vars = mergeVars(cited)
		formulas := make([]*prop.Prop, len(cited))
		for i, l := range cited {
			formulas[i] = l.Typ
		}
		return entry.Prop(formulas, line.Typ)
	case rule.Quantifier:
		if len(cited) != 1 {
			return fmt.Errorf("%w: %s expects exactly one cited line, got %d", ErrStructure, line.Just.Name, len(cited))
		}
		source := &rule.LineView{Typ: cited[0].Typ, Vars: cited[0].Vars}
		conclusion := &rule.LineView{Typ: line.Typ, Vars: mergeVars(cited)}
		if err := entry.Quant(source, conclusion, freshFunc(ctx, line.Num)); err != nil {
			return err
		}
		line.Vars = conclusion.Vars
		return nil
	default:
		return fmt.Errorf("%w: rule %q has no recognized kind", ErrStructure, line.Just.Name)
	}
}

func resolveCited(ctx *Context, nums []int) ([]*Line, error) {
	out := make([]*Line, len(nums))
	for i, n := range nums {
		l, ok := ctx.Lines[n]
		if !ok {
			return nil, fmt.Errorf("%w: cited line %d does not exist", ErrStructure, n)
		}
		out[i] = l
	}
	return out, nil
}

// mergeVars combines the vars maps of the cited lines by key-wise set
// union, per §4.4's "Variable-context merging". It always returns a fresh
// map so a quantifier rule can mutate it without corrupting a cited
// line's own scope.
func mergeVars(cited []*Line) map[string]map[string]struct{} {
	out := map[string]map[string]struct{}{}
	for _, l := range cited {
		for name, deps := range l.Vars {
			set, ok := out[name]
			if !ok {
				set = map[string]struct{}{}
				out[name] = set
			}
			for d := range deps {
				set[d] = struct{}{}
			}
		}
	}
	return out
}

// freshFunc reports whether name is not used as a ModelRef symbol in any
// line other than lineNum — the "fresh constant" side condition EI needs.
func freshFunc(ctx *Context, lineNum int) func(string) bool {
	return func(name string) bool {
		for num, l := range ctx.Lines {
			if num == lineNum {
				continue
			}
			if _, used := unify.Symbols(l.Typ)[name]; used {
				return false
			}
		}
		return true
	}
}

func checkDeduction(ctx *Context, cited []int, expected *prop.Prop) error {
	key := rangeKey(cited)
	p, ok := ctx.Proofs[key]
	if !ok {
		return fmt.Errorf("%w: ded: %v is not a registered sub-proof", ErrStructure, cited)
	}
	pt, ok := ctx.ProofTypes[p]
	if !ok {
		return fmt.Errorf("%w: ded: sub-proof %v has not finished verifying", ErrStructure, cited)
	}
	hyps := pt.Hypotheses.Slice()
	if len(hyps) != 1 {
		return fmt.Errorf("%w: ded: sub-proof %v must have exactly one hypothesis, has %d", rule.ErrEquality, cited, len(hyps))
	}
	h := hyps[0]
	if expected.Kind != prop.ImpKind || !prop.Equal(expected.P, h) {
		return fmt.Errorf("%w: ded: expected %s to be an implication from %s", rule.ErrEquality, expected, h)
	}
	if !pt.Conclusions.Contains(expected.Q) {
		return fmt.Errorf("%w: ded: %s is not among the sub-proof's conclusions", rule.ErrEquality, expected.Q)
	}
	return nil
}

// compileProof partitions p's lines into hypotheses and conclusions and
// registers its type. Conclusions include hypothesis lines too, so a ded
// justification in an enclosing proof may cite a sub-proof whose entire
// content is a single hypothesis line.
func compileProof(ctx *Context, p *Proof) {
	hyps := prop.NewSet()
	concls := prop.NewSet()
	for _, num := range p.Nums {
		line := ctx.Lines[num]
		concls.Add(line.Typ)
		if line.Just.Name == "hyp" || line.Just.Name == "prem" {
			hyps.Add(line.Typ)
		}
	}
	ctx.ProofTypes[p] = ProofType{Hypotheses: hyps, Conclusions: concls}
	ctx.compiled[p] = true
}
