package lambda

import (
	"errors"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrExhaustedNames = errors.New("ran out of fresh variable names")

// freshNames is the pool alpha-renaming draws from, in order.
var freshNames = func() []string {
	letters := lo.Times(26, func(i int) string { return string(rune('a' + i)) })
	return append(letters, lo.Map(letters, func(s string, _ int) string { return s + "'" })...)
}()

// FreshName returns the first name of the pool not in used.
func FreshName(used map[string]bool) (string, error) {
	name, ok := lo.Find(freshNames, func(n string) bool { return !used[n] })
	if !ok {
		return "", ErrExhaustedNames
	}
	return name, nil
}

// substitute replaces the occurrences of param in t that env binds to
// binder with replacement. Untouched subterms are shared, not copied.
func substitute(a *Arena, t Term, param string, replacement Term, binder NodeID, env Env) Term {
	switch t := t.(type) {
	case *Var:
		if t.Name == param && env[t.ID()].Binder == binder {
			return replacement
		}
		return t
	case *Abs:
		if slices.Contains(t.Params, param) {
			return t
		}
		body := substitute(a, t.Body, param, replacement, binder, env)
		if body == t.Body {
			return t
		}
		return a.abs(t.Params, body)
	case *App:
		fn := substitute(a, t.Fn, param, replacement, binder, env)
		arg := substitute(a, t.Arg, param, replacement, binder, env)
		if fn == t.Fn && arg == t.Arg {
			return t
		}
		return a.App(fn, arg)
	}
	panic("unreachable")
}

// hazard is a parameter of an abstraction that would capture a free
// variable of the argument being substituted.
type hazard struct {
	binder NodeID
	name   string
}

// hazards finds, for the redex (fun arg), every abstraction enclosing an
// occurrence of fun's first parameter that declares a name free in arg.
// fun's own remaining parameters enclose every such occurrence.
func hazards(fun *Abs, arg Term, env Env) map[hazard]bool {
	free := NewEnv(arg).FreeNames()
	if len(free) == 0 {
		return nil
	}
	param := fun.Params[0]
	found := make(map[hazard]bool)
	var walk func(t Term, scope map[string][]NodeID)
	walk = func(t Term, scope map[string][]NodeID) {
		switch t := t.(type) {
		case *Var:
			if t.Name != param || env[t.ID()].Binder != fun.ID() {
				return
			}
			for _, name := range free {
				for _, binder := range scope[name] {
					found[hazard{binder, name}] = true
				}
			}
		case *Abs:
			inner := maps.Clone(scope)
			for _, p := range t.Params {
				inner[p] = append(slices.Clone(scope[p]), t.ID())
			}
			walk(t.Body, inner)
		case *App:
			walk(t.Fn, scope)
			walk(t.Arg, scope)
		}
	}
	scope := make(map[string][]NodeID)
	for _, p := range fun.Params[1:] {
		scope[p] = []NodeID{fun.ID()}
	}
	walk(fun.Body, scope)
	return found
}

type renamer struct {
	a       *Arena
	env     Env
	hazards map[hazard]bool
	used    map[string]bool
	fresh   map[hazard]string
}

// rename gives every hazardous parameter in t a fresh name throughout its
// own scope. Occurrences are matched by binder, so a nested abstraction
// that redeclares the name keeps its own.
func rename(a *Arena, t Term, hz map[hazard]bool, used map[string]bool, env Env) (Term, error) {
	r := renamer{a: a, env: env, hazards: hz, used: maps.Clone(used), fresh: make(map[hazard]string)}
	return r.term(t)
}

func (r *renamer) term(t Term) (Term, error) {
	switch t := t.(type) {
	case *Var:
		b := r.env[t.ID()]
		if b.Free() {
			return t, nil
		}
		if name, ok := r.fresh[hazard{b.Binder, t.Name}]; ok {
			return r.a.Var(name), nil
		}
		return t, nil
	case *Abs:
		params, renamed := t.Params, false
		for i, p := range t.Params {
			h := hazard{t.ID(), p}
			if !r.hazards[h] {
				continue
			}
			name, err := FreshName(r.used)
			if err != nil {
				return nil, err
			}
			r.used[name] = true
			r.fresh[h] = name
			if !renamed {
				params, renamed = slices.Clone(t.Params), true
			}
			params[i] = name
		}
		body, err := r.term(t.Body)
		if err != nil {
			return nil, err
		}
		if !renamed && body == t.Body {
			return t, nil
		}
		return r.a.abs(params, body), nil
	case *App:
		fn, err := r.term(t.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := r.term(t.Arg)
		if err != nil {
			return nil, err
		}
		if fn == t.Fn && arg == t.Arg {
			return t, nil
		}
		return r.a.App(fn, arg), nil
	}
	panic("unreachable")
}
