package parseproof

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/checker"
	"github.com/yasmin-shahed/mouse/prop"
)

// Result is everything a checked input file needs: the context ready for
// checker.Verify, and the obligations listed at the top of the file.
type Result struct {
	Context     *checker.Context
	Obligations []*prop.Prop
}

// Parse runs the `| `-prefix preprocessor and then the surface grammar
// parser over src, registering every line and sub-proof it finds into a
// fresh checker.Context.
func Parse(src string) (*Result, error) {
	c := newCursor(Preprocess(src))

	obligations, err := c.parseObligationList()
	if err != nil {
		return nil, err
	}

	ctx := checker.NewContext()
	main, err := c.parseProofBody(ctx)
	if err != nil {
		return nil, err
	}
	ctx.AddProof(main)

	c.skipWS()
	if !c.atEOF() {
		return nil, fmt.Errorf("%w: unexpected trailing input at position %d", ErrParse, c.pos)
	}

	return &Result{Context: ctx, Obligations: obligations}, nil
}

func (c *cursor) parseObligationList() ([]*prop.Prop, error) {
	var out []*prop.Prop
	f, err := c.parseForm()
	if err != nil {
		return nil, err
	}
	out = append(out, f)
	for c.consume(",") {
		f, err := c.parseForm()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// parseProofBody parses a sequence of lines and nested `{ ... }` blocks
// until it hits an unmatched '}' or end of input. Nested blocks are fully
// parsed and registered as their own sub-proofs (depth-first, so a block
// registers before any proof enclosing it) before parsing continues;
// their line numbers do not belong to the enclosing proof's own range.
func (c *cursor) parseProofBody(ctx *checker.Context) (*checker.Proof, error) {
	var nums []int
	for {
		c.skipWS()
		if c.atEOF() || c.peek() == '}' {
			break
		}
		if c.consume("{") {
			sub, err := c.parseProofBody(ctx)
			if err != nil {
				return nil, err
			}
			if err := c.expect("}"); err != nil {
				return nil, err
			}
			ctx.AddProof(sub)
			continue
		}
		l, err := c.parseLine()
		if err != nil {
			return nil, err
		}
		if err := ctx.AddLine(l); err != nil {
			return nil, err
		}
		nums = append(nums, l.Num)
	}
	return &checker.Proof{Nums: nums, Lines: ctx.Lines}, nil
}

// parseLine : num '.' form just ';'
func (c *cursor) parseLine() (*checker.Line, error) {
	num, err := c.parseNumber()
	if err != nil {
		return nil, err
	}
	if err := c.expect("."); err != nil {
		return nil, err
	}
	form, err := c.parseForm()
	if err != nil {
		return nil, err
	}
	just, err := c.parseJust()
	if err != nil {
		return nil, err
	}
	if err := c.expect(";"); err != nil {
		return nil, err
	}
	return &checker.Line{Num: num, Typ: form, Just: just}, nil
}

// parseJust : lowercase_name args?
// args      : num (',' num)* | num '-' num
func (c *cursor) parseJust() (checker.UninterpretedJustification, error) {
	name, err := c.parseLowerIdent()
	if err != nil {
		return checker.UninterpretedJustification{}, err
	}
	c.skipWS()
	if c.peek() < '0' || c.peek() > '9' {
		return checker.UninterpretedJustification{Name: name}, nil
	}
	first, err := c.parseNumber()
	if err != nil {
		return checker.UninterpretedJustification{}, err
	}
	if c.consume("-") {
		last, err := c.parseNumber()
		if err != nil {
			return checker.UninterpretedJustification{}, err
		}
		args := make([]int, 0, last-first+1)
		for n := first; n <= last; n++ {
			args = append(args, n)
		}
		return checker.UninterpretedJustification{Name: name, Args: args}, nil
	}
	args := []int{first}
	for c.consume(",") {
		n, err := c.parseNumber()
		if err != nil {
			return checker.UninterpretedJustification{}, err
		}
		args = append(args, n)
	}
	return checker.UninterpretedJustification{Name: name, Args: args}, nil
}
