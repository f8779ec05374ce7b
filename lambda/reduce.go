package lambda

import (
	"github.com/samber/lo"
)

// Kind tags a one-step reduction.
type Kind uint8

const (
	// Rename is an alpha step: parameters are renamed so a later
	// substitution cannot capture a free variable.
	Rename Kind = iota
	// Reduce is a beta step: one redex is substituted.
	Reduce
)

func (k Kind) String() string {
	switch k {
	case Rename:
		return "alpha"
	case Reduce:
		return "beta"
	}
	panic("unreachable")
}

// Reduction is a whole expression with exactly one redex resolved.
type Reduction struct {
	Kind Kind
	Term Term
}

type reducer struct {
	a    *Arena
	env  Env
	used map[string]bool
}

// Reductions lists every one-step reduction of t. For a redex (λx.b)a the
// redex itself comes first, then the reductions inside a; for any other
// application those of the function precede those of the argument. A
// redex that needs renaming yields the renamed redex instead of the
// substituted one.
func Reductions(t Term) ([]Reduction, error) {
	env := NewEnv(t)
	used := env.Names()
	for _, name := range Names(t) {
		used[name] = true
	}
	r := reducer{a: t.Arena(), env: env, used: used}
	return r.all(t)
}

func (r *reducer) wrap(rs []Reduction, f func(Term) Term) []Reduction {
	return lo.Map(rs, func(red Reduction, _ int) Reduction {
		return Reduction{Kind: red.Kind, Term: f(red.Term)}
	})
}

func (r *reducer) all(t Term) ([]Reduction, error) {
	switch t := t.(type) {
	case *Var:
		return nil, nil
	case *Abs:
		rs, err := r.all(t.Body)
		if err != nil {
			return nil, err
		}
		return r.wrap(rs, func(body Term) Term { return r.a.abs(t.Params, body) }), nil
	case *App:
		var head []Reduction
		if fun, ok := t.Fn.(*Abs); ok {
			red, err := r.redex(fun, t.Arg)
			if err != nil {
				return nil, err
			}
			head = []Reduction{red}
		} else {
			fns, err := r.all(t.Fn)
			if err != nil {
				return nil, err
			}
			head = r.wrap(fns, func(fn Term) Term { return r.a.App(fn, t.Arg) })
		}
		args, err := r.all(t.Arg)
		if err != nil {
			return nil, err
		}
		return append(head, r.wrap(args, func(arg Term) Term { return r.a.App(t.Fn, arg) })...), nil
	}
	panic("unreachable")
}

func (r *reducer) redex(fun *Abs, arg Term) (Reduction, error) {
	if hz := hazards(fun, arg, r.env); len(hz) > 0 {
		renamed, err := rename(r.a, fun, hz, r.used, r.env)
		if err != nil {
			return Reduction{}, err
		}
		return Reduction{Kind: Rename, Term: r.a.App(renamed, arg)}, nil
	}
	body := substitute(r.a, fun.Body, fun.Params[0], arg, fun.ID(), r.env)
	if len(fun.Params) > 1 {
		return Reduction{Kind: Reduce, Term: r.a.abs(fun.Params[1:], body)}, nil
	}
	return Reduction{Kind: Reduce, Term: body}, nil
}

// IsSimple reports whether t is in normal form, i.e. Reductions(t) is empty.
func IsSimple(t Term) bool {
	switch t := t.(type) {
	case *Var:
		return true
	case *Abs:
		return IsSimple(t.Body)
	case *App:
		if _, ok := t.Fn.(*Abs); ok {
			return false
		}
		return IsSimple(t.Fn) && IsSimple(t.Arg)
	}
	panic("unreachable")
}

// IsValidReduction reports whether candidate is alpha-equivalent to one of
// the reductions of t.
func IsValidReduction(t, candidate Term) (bool, error) {
	rs, err := Reductions(t)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(rs, func(red Reduction) bool { return Equivalent(red.Term, candidate) }), nil
}
