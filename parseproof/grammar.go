package parseproof

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/prop"
)

// parseForm : disj ('->' disj)* , right-associative.
func (c *cursor) parseForm() (*prop.Prop, error) {
	left, err := c.parseDisj()
	if err != nil {
		return nil, err
	}
	if c.consume("->") {
		right, err := c.parseForm()
		if err != nil {
			return nil, err
		}
		return prop.Imp(left, right), nil
	}
	return left, nil
}

// parseDisj : conj ('\/' conj)*
func (c *cursor) parseDisj() (*prop.Prop, error) {
	left, err := c.parseConj()
	if err != nil {
		return nil, err
	}
	for c.consume(`\/`) {
		right, err := c.parseConj()
		if err != nil {
			return nil, err
		}
		left = prop.Or(left, right)
	}
	return left, nil
}

// parseConj : prop ('/\' prop)*
func (c *cursor) parseConj() (*prop.Prop, error) {
	left, err := c.parseProp()
	if err != nil {
		return nil, err
	}
	for c.consume(`/\`) {
		right, err := c.parseProp()
		if err != nil {
			return nil, err
		}
		left = prop.And(left, right)
	}
	return left, nil
}

// parseProp : UPPER | '(' form ')' | '~' prop | predicate
//           | 'forall' lower ',' form | 'exists' lower ',' form
func (c *cursor) parseProp() (*prop.Prop, error) {
	c.skipWS()
	switch {
	case c.consume("~"):
		inner, err := c.parseProp()
		if err != nil {
			return nil, err
		}
		return prop.Not(inner), nil

	case c.consume("("):
		f, err := c.parseForm()
		if err != nil {
			return nil, err
		}
		if err := c.expect(")"); err != nil {
			return nil, err
		}
		return f, nil

	case c.consumeKeyword("forall"):
		v, err := c.parseLowerIdent()
		if err != nil {
			return nil, err
		}
		if err := c.expect(","); err != nil {
			return nil, err
		}
		body, err := c.parseForm()
		if err != nil {
			return nil, err
		}
		return prop.ForAll(prop.ModelRef(v), body), nil

	case c.consumeKeyword("exists"):
		v, err := c.parseLowerIdent()
		if err != nil {
			return nil, err
		}
		if err := c.expect(","); err != nil {
			return nil, err
		}
		body, err := c.parseForm()
		if err != nil {
			return nil, err
		}
		return prop.Exists(prop.ModelRef(v), body), nil
	}

	c.skipWS()
	r := c.peek()
	switch {
	case isUpperStart(r):
		name, err := c.parseUpperIdent()
		if err != nil {
			return nil, err
		}
		return prop.Base(name), nil
	case isLowerStart(r):
		return c.parsePredicate()
	default:
		return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, r, c.pos)
	}
}

func (c *cursor) parsePredicate() (*prop.Prop, error) {
	name, err := c.parseLowerIdent()
	if err != nil {
		return nil, err
	}
	if err := c.expect("("); err != nil {
		return nil, err
	}
	var args []*prop.Prop
	first, err := c.parseLowerIdent()
	if err != nil {
		return nil, err
	}
	args = append(args, prop.ModelRef(first))
	for c.consume(",") {
		next, err := c.parseLowerIdent()
		if err != nil {
			return nil, err
		}
		args = append(args, prop.ModelRef(next))
	}
	if err := c.expect(")"); err != nil {
		return nil, err
	}
	return prop.Predicate(name, args...), nil
}

func isUpperStart(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLowerStart(r rune) bool { return r >= 'a' && r <= 'z' }
