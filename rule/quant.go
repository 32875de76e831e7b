package rule

import (
	"fmt"

	"github.com/yasmin-shahed/mouse/prop"
	"github.com/yasmin-shahed/mouse/unify"
)

func init() {
	registerQuant("ui", universalInstantiation)
	registerQuant("ug", universalGeneralization)
	registerQuant("ei", existentialInstantiation)
	registerQuant("eg", existentialGeneralization)
}

// universalInstantiation: source is ∀v.φ(v); conclusion is φ[v:=t]. If t
// is v itself, or t does not already occur in φ, t is a fresh eigenvariable
// and is registered into scope with no dependents yet.
func universalInstantiation(source, conclusion *LineView, fresh func(string) bool) error {
	if source.Typ.Kind != prop.ForAllKind {
		return fmt.Errorf("%w: ui: %s is not a universal", prop.ErrShape, source.Typ)
	}
	v, body := source.Typ.Var, source.Typ.Body
	subst := map[string]*prop.Prop{}
	if err := unify.AlphaRename(body, conclusion.Typ, v, subst); err != nil {
		return err
	}
	t, ok := subst[v.Name]
	if !ok {
		return fmt.Errorf("%w: ui: %s does not mention %s; no unique witness", unify.ErrQuantifier, body, v)
	}
	if t.Name == v.Name || !unify.FormulaUses(body, t) {
		if conclusion.Vars == nil {
			conclusion.Vars = map[string]map[string]struct{}{}
		}
		if _, exists := conclusion.Vars[t.Name]; !exists {
			conclusion.Vars[t.Name] = map[string]struct{}{}
		}
	}
	return nil
}

// universalGeneralization: source is ψ[v:=u]; conclusion is ∀v.ψ(v). u
// must currently be an in-scope eigenvariable with no EI-introduced
// dependent free in ψ.
func universalGeneralization(source, conclusion *LineView, fresh func(string) bool) error {
	if conclusion.Typ.Kind != prop.ForAllKind {
		return fmt.Errorf("%w: ug: %s is not a universal", prop.ErrShape, conclusion.Typ)
	}
	v, body := conclusion.Typ.Var, conclusion.Typ.Body
	subst := map[string]*prop.Prop{}
	if err := unify.AlphaRename(body, source.Typ, v, subst); err != nil {
		return err
	}
	u, ok := subst[v.Name]
	if !ok {
		return fmt.Errorf("%w: ug: %s does not mention %s; no unique witness", unify.ErrQuantifier, body, v)
	}
	deps, inScope := conclusion.Vars[u.Name]
	if !inScope {
		return fmt.Errorf("%w: ug: %s was never introduced by an in-scope universal instantiation", unify.ErrQuantifier, u)
	}
	free := unify.Symbols(body)
	for dep := range deps {
		if _, escapes := free[dep]; escapes {
			return fmt.Errorf("%w: ug: %s still depends on existentially-introduced %s, free in %s", unify.ErrQuantifier, u, dep, body)
		}
	}
	delete(conclusion.Vars, u.Name)
	return nil
}

// existentialInstantiation: source is ∃v.φ(v); conclusion is φ[v:=c]. c
// must be fresh: not used as a constant anywhere else in the context. c
// becomes a dependent of every universal variable currently in scope.
func existentialInstantiation(source, conclusion *LineView, fresh func(string) bool) error {
	if source.Typ.Kind != prop.ExistsKind {
		return fmt.Errorf("%w: ei: %s is not an existential", prop.ErrShape, source.Typ)
	}
	v, body := source.Typ.Var, source.Typ.Body
	subst := map[string]*prop.Prop{}
	if err := unify.AlphaRename(body, conclusion.Typ, v, subst); err != nil {
		return err
	}
	c, ok := subst[v.Name]
	if !ok {
		return fmt.Errorf("%w: ei: %s does not mention %s; no unique witness", unify.ErrQuantifier, body, v)
	}
	if !fresh(c.Name) {
		return fmt.Errorf("%w: ei: %s is not a fresh constant", unify.ErrQuantifier, c)
	}
	if conclusion.Vars == nil {
		conclusion.Vars = map[string]map[string]struct{}{}
	}
	for _, deps := range conclusion.Vars {
		deps[c.Name] = struct{}{}
	}
	return nil
}

// existentialGeneralization: source is ψ[v:=t]; conclusion is ∃v.ψ(v). t
// is existentially closed off: it stops counting as a dependent of any
// universal still in scope.
func existentialGeneralization(source, conclusion *LineView, fresh func(string) bool) error {
	if conclusion.Typ.Kind != prop.ExistsKind {
		return fmt.Errorf("%w: eg: %s is not an existential", prop.ErrShape, conclusion.Typ)
	}
	v, body := conclusion.Typ.Var, conclusion.Typ.Body
	subst := map[string]*prop.Prop{}
	if err := unify.AlphaRename(body, source.Typ, v, subst); err != nil {
		return err
	}
	t, ok := subst[v.Name]
	if !ok {
		return fmt.Errorf("%w: eg: %s does not mention %s; no unique witness", unify.ErrQuantifier, body, v)
	}
	for _, deps := range conclusion.Vars {
		delete(deps, t.Name)
	}
	return nil
}
