package lambda

import (
	"sort"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
)

// Binding pairs a variable occurrence with the abstraction that binds it,
// or Free when no enclosing abstraction declares its name.
type Binding struct {
	Var    *Var
	Binder NodeID
}

func (b Binding) Free() bool {
	return b.Binder == Free
}

// Env maps every variable occurrence of one expression, by ID, to its
// binding. It describes exactly the expression it was built from.
type Env map[NodeID]Binding

func NewEnv(t Term) Env {
	env := make(Env)
	env.build(t, map[string]NodeID{})
	return env
}

func (env Env) build(t Term, scope map[string]NodeID) {
	switch t := t.(type) {
	case *Var:
		binder, ok := scope[t.Name]
		if !ok {
			binder = Free
		}
		env[t.ID()] = Binding{Var: t, Binder: binder}
	case *Abs:
		inner := maps.Clone(scope)
		for _, p := range t.Params {
			inner[p] = t.ID()
		}
		env.build(t.Body, inner)
	case *App:
		env.build(t.Fn, scope)
		env.build(t.Arg, scope)
	default:
		panic("unreachable")
	}
}

// Binder returns the abstraction binding v, or false if v is free or not
// part of the expression env describes.
func (env Env) Binder(v *Var) (*Abs, bool) {
	b, ok := env[v.ID()]
	if !ok || b.Free() {
		return nil, false
	}
	abs, ok := v.Arena().Node(b.Binder).(*Abs)
	return abs, ok
}

func (env Env) bindings() []Binding {
	return maps.Values(env)
}

// FreeNames returns the sorted names of the free occurrences.
func (env Env) FreeNames() []string {
	free := lo.Filter(env.bindings(), func(b Binding, _ int) bool { return b.Free() })
	names := lo.Uniq(lo.Map(free, func(b Binding, _ int) string { return b.Var.Name }))
	sort.Strings(names)
	return names
}

// Names returns the set of names of all occurrences, bound or free.
func (env Env) Names() map[string]bool {
	names := make(map[string]bool, len(env))
	for _, b := range env {
		names[b.Var.Name] = true
	}
	return names
}
