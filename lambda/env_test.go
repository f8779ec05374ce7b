package lambda

import (
	"testing"

	"github.com/kr/pretty"
)

func TestNewEnv(t *testing.T) {
	f := MustParse("λx. λy.x (λz.wy)").(*Abs)
	g := f.Body.(*Abs)
	body := g.Body.(*App)
	x := body.Fn.(*Var)
	h := body.Arg.(*Abs)
	w := h.Body.(*App).Fn.(*Var)
	y := h.Body.(*App).Arg.(*Var)

	env := NewEnv(f)
	if len(env) != 3 {
		t.Fatalf("env has %d occurrences, want 3", len(env))
	}
	if b, ok := env.Binder(x); !ok || b != f {
		t.Errorf("x bound to %v, want %v", b, f)
	}
	if b, ok := env.Binder(y); !ok || b != g {
		t.Errorf("y bound to %v, want %v", b, g)
	}
	if _, ok := env.Binder(w); ok || !env[w.ID()].Free() {
		t.Error("w should be free")
	}
	if diff := pretty.Diff(env.FreeNames(), []string{"w"}); len(diff) > 0 {
		t.Errorf("FreeNames: %v", diff)
	}
}

func TestNewEnvShadowing(t *testing.T) {
	outer := MustParse("λx.x(λx.x)").(*Abs)
	app := outer.Body.(*App)
	inner := app.Arg.(*Abs)
	env := NewEnv(outer)
	if b, _ := env.Binder(app.Fn.(*Var)); b != outer {
		t.Errorf("first x bound to %v, want the outer abstraction", b)
	}
	if b, _ := env.Binder(inner.Body.(*Var)); b != inner {
		t.Errorf("second x bound to %v, want the inner abstraction", b)
	}
}

func TestEnvNames(t *testing.T) {
	env := NewEnv(MustParse("λab.a c (λd.e)"))
	want := map[string]bool{"a": true, "c": true, "e": true}
	if diff := pretty.Diff(env.Names(), want); len(diff) > 0 {
		t.Errorf("Names: %v", diff)
	}
	if diff := pretty.Diff(env.FreeNames(), []string{"c", "e"}); len(diff) > 0 {
		t.Errorf("FreeNames: %v", diff)
	}
}
