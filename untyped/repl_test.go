package main

import "testing"

func TestSession(t *testing.T) {
	var s session
	steps := []struct {
		in, want string
		quit     bool
	}{
		{in: "(λx.x)(λz.yz)(z)", want: "(λx.x)(λz.yz)z\n"},
		{in: ":i λxy.x", want: "Abs([x y], Var(x))\n"},
		{in: ":r (λx.x)(λz.yz)(z)", want: "0. beta (λz.yz)z\n"},
		{in: ":r 0", want: "0. beta yz\n"},
		{in: ":r 0", want: "no reductions possible\n"},
		{in: ":r 3", want: "no reduction 3\n"},
		{in: ":r (λx.λy.x)y", want: "0. alpha (λx.λa.x)y\n"},
		{in: "λxx.x", want: "syntax error: duplicate parameter in [\"x\" \"x\"]\n"},
		{in: ":e x", want: "unknown command. Type :help for a list.\n"},
		{in: ":help", want: helpText},
		{in: ":q", quit: true},
	}
	for _, step := range steps {
		got, quit := s.eval(step.in)
		if got != step.want || quit != step.quit {
			t.Errorf("eval(%q) = %q, %v; want %q, %v", step.in, got, quit, step.want, step.quit)
		}
	}
}
