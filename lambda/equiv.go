package lambda

type pair [2]NodeID

type equiv struct {
	env1, env2 Env

	// bound occurrence pairs whose binders are already under comparison
	seen map[pair]bool
}

// Equivalent reports whether t1 and t2 are equal up to consistent renaming
// of bound variables. Multi-parameter abstractions compare equal to their
// curried forms.
func Equivalent(t1, t2 Term) bool {
	scratch := NewArena()
	c1, c2 := curryInto(scratch, t1), curryInto(scratch, t2)
	eq := equiv{env1: NewEnv(c1), env2: NewEnv(c2), seen: make(map[pair]bool)}
	return eq.terms(c1, c2)
}

func (eq *equiv) terms(t1, t2 Term) bool {
	switch t1 := t1.(type) {
	case *Var:
		t2, ok := t2.(*Var)
		return ok && eq.vars(t1, t2)
	case *Abs:
		t2, ok := t2.(*Abs)
		return ok && len(t1.Params) == len(t2.Params) && eq.terms(t1.Body, t2.Body)
	case *App:
		t2, ok := t2.(*App)
		return ok && eq.terms(t1.Fn, t2.Fn) && eq.terms(t1.Arg, t2.Arg)
	}
	panic("unreachable")
}

func (eq *equiv) vars(v1, v2 *Var) bool {
	p := pair{v1.ID(), v2.ID()}
	if eq.seen[p] {
		return true
	}
	b1, b2 := eq.env1[v1.ID()], eq.env2[v2.ID()]
	switch {
	case b1.Free() && b2.Free():
		return v1.Name == v2.Name
	case b1.Free() || b2.Free():
		return false
	}
	eq.seen[p] = true
	s1, _ := eq.env1.Binder(v1)
	s2, _ := eq.env2.Binder(v2)
	return eq.terms(s1, s2)
}
