package lambda

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// NodeID is the index of a node in the Arena that built it.
type NodeID int

// Free is the binder of a variable occurrence no abstraction declares.
const Free NodeID = -1

// Term is an immutable lambda expression: *Var, *Abs or *App.
type Term interface {
	isTerm()
	ID() NodeID
	Arena() *Arena
	String() string
}

type node struct {
	id    NodeID
	arena *Arena
}

func (n node) ID() NodeID    { return n.id }
func (n node) Arena() *Arena { return n.arena }

type Var struct {
	node
	Name string
}

func (*Var) isTerm() {}

// Abs is a possibly multi-parameter abstraction. Params are pairwise distinct.
type Abs struct {
	node
	Params []string
	Body   Term
}

func (*Abs) isTerm() {}

type App struct {
	node
	Fn  Term
	Arg Term
}

func (*App) isTerm() {}

// Arena owns nodes and hands out their IDs. Allocation is serialised, so
// terms owned by one arena may be reduced from several goroutines.
type Arena struct {
	mu    sync.Mutex
	nodes []Term
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) next() node {
	return node{id: NodeID(len(a.nodes)), arena: a}
}

func (a *Arena) Var(name string) *Var {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := &Var{node: a.next(), Name: name}
	a.nodes = append(a.nodes, v)
	return v
}

// Abs builds an abstraction, rejecting parameter lists the grammar would.
func (a *Arena) Abs(params []string, body Term) (*Abs, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: abstraction without parameters", ErrSyntax)
	}
	if bad, ok := lo.Find(params, func(p string) bool { return !isVarName(p) }); ok {
		return nil, fmt.Errorf("%w: invalid parameter %q", ErrSyntax, bad)
	}
	if len(lo.Uniq(params)) != len(params) {
		return nil, fmt.Errorf("%w: duplicate parameter in %q", ErrSyntax, params)
	}
	return a.abs(params, body), nil
}

func (a *Arena) abs(params []string, body Term) *Abs {
	body = a.adopt(body)
	a.mu.Lock()
	defer a.mu.Unlock()
	t := &Abs{node: a.next(), Params: slices.Clone(params), Body: body}
	a.nodes = append(a.nodes, t)
	return t
}

func (a *Arena) App(fn, arg Term) *App {
	fn, arg = a.adopt(fn), a.adopt(arg)
	a.mu.Lock()
	defer a.mu.Unlock()
	t := &App{node: a.next(), Fn: fn, Arg: arg}
	a.nodes = append(a.nodes, t)
	return t
}

// Node returns the node with the given ID, or nil if a did not build it.
func (a *Arena) Node(id NodeID) Term {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.nodes)
}

// adopt copies t into a when another arena owns it.
func (a *Arena) adopt(t Term) Term {
	if t.Arena() == a {
		return t
	}
	return a.copy(t)
}

func (a *Arena) copy(t Term) Term {
	switch t := t.(type) {
	case *Var:
		return a.Var(t.Name)
	case *Abs:
		return a.abs(t.Params, a.copy(t.Body))
	case *App:
		return a.App(a.copy(t.Fn), a.copy(t.Arg))
	}
	panic("unreachable")
}

// Curry desugars every multi-parameter abstraction in t into nested
// single-parameter ones. The result is built in t's arena.
func Curry(t Term) Term {
	return curryInto(t.Arena(), t)
}

func curryInto(a *Arena, t Term) Term {
	switch t := t.(type) {
	case *Var:
		return a.Var(t.Name)
	case *Abs:
		body := curryInto(a, t.Body)
		for i := len(t.Params) - 1; i >= 0; i-- {
			body = a.abs(t.Params[i:i+1], body)
		}
		return body
	case *App:
		return a.App(curryInto(a, t.Fn), curryInto(a, t.Arg))
	}
	panic("unreachable")
}

func isVarName(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	return !lo.ContainsBy([]byte(s[1:]), func(c byte) bool { return c != '\'' })
}
