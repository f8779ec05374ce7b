package lambda

import (
	"strings"

	"github.com/samber/lo"
)

func (v *Var) String() string {
	return v.Name
}

func (a *Abs) String() string {
	return "λ" + strings.Join(a.Params, "") + "." + a.Body.String()
}

func (a *App) String() string {
	fn := a.Fn.String()
	if _, ok := a.Fn.(*Abs); ok {
		fn = "(" + fn + ")"
	}
	arg := a.Arg.String()
	if _, ok := a.Arg.(*Var); !ok {
		arg = "(" + arg + ")"
	}
	return fn + arg
}

// Dump renders the node structure of t, e.g. Abs([x], App(Var(x), Var(x))).
func Dump(t Term) string {
	switch t := t.(type) {
	case *Var:
		return "Var(" + t.Name + ")"
	case *Abs:
		return "Abs([" + strings.Join(t.Params, " ") + "], " + Dump(t.Body) + ")"
	case *App:
		return "App(" + Dump(t.Fn) + ", " + Dump(t.Arg) + ")"
	}
	panic("unreachable")
}

// Names returns every variable and parameter name appearing in t.
func Names(t Term) []string {
	switch t := t.(type) {
	case *Var:
		return []string{t.Name}
	case *Abs:
		return lo.Uniq(append(Names(t.Body), t.Params...))
	case *App:
		return lo.Uniq(append(Names(t.Fn), Names(t.Arg)...))
	}
	panic("unreachable")
}
