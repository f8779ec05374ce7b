package lambda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var ErrSyntax = errors.New("syntax error")

var (
	lambdas     = []string{"λ", `\`, "L"}
	punctuation = append([]string{"(", ")", "."}, lambdas...)
)

func isLambda(tok string) bool {
	return slices.Contains(lambdas, tok)
}

func unexpected(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: unexpected token \"EOF\"", ErrSyntax)
	}
	return fmt.Errorf("%w: unexpected token %q", ErrSyntax, tokens[0])
}

func expect(tok string, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: expected token %q, got \"EOF\"", ErrSyntax, tok)
	}
	if hd := tokens[0]; hd != tok {
		return nil, fmt.Errorf("%w: expected token %q, got %q", ErrSyntax, tok, hd)
	}
	return tokens[1:], nil
}

// splitVars breaks a run like "xy'z" into the variables "x", "y'" and "z".
// Anything that is not a letter or a prime becomes its own token.
func splitVars(s string, _ int) (ret []string) {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			ret = append(ret, string(r))
		case r == '\'' && len(ret) > 0 && isVarName(ret[len(ret)-1]):
			ret[len(ret)-1] += "'"
		default:
			ret = append(ret, string(r))
		}
	}
	return ret
}

func scan(s string) ([]string, error) {
	res := strings.Fields(s)
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			if s == c {
				return []string{s}
			}
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range punctuation {
		res = sep(c)
	}
	res = lo.FlatMap(res, func(s string, i int) []string {
		if slices.Contains(punctuation, s) {
			return []string{s}
		}
		return splitVars(s, i)
	})
	for _, tok := range res {
		if !slices.Contains(punctuation, tok) && !isVarName(tok) {
			return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, tok)
		}
	}
	return res, nil
}

func parseLambda(a *Arena, tokens []string) (Term, []string, error) {
	var params []string
	for len(tokens) > 0 && isVarName(tokens[0]) {
		params = append(params, tokens[0])
		tokens = tokens[1:]
	}
	if len(params) == 0 {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("%w: expected identifier, got \"EOF\"", ErrSyntax)
		}
		return nil, nil, fmt.Errorf("%w: expected identifier, got %q", ErrSyntax, tokens[0])
	}
	tokens, err := expect(".", tokens)
	if err != nil {
		return nil, nil, err
	}
	body, tokens, err := parseExpr(a, tokens)
	if err != nil {
		return nil, nil, err
	}
	abs, err := a.Abs(params, body)
	if err != nil {
		return nil, nil, err
	}
	return abs, tokens, nil
}

func parseParenExpr(a *Arena, tokens []string) (Term, []string, error) {
	t, tokens, err := parseExpr(a, tokens)
	if err != nil {
		return nil, nil, err
	}
	tokens, err = expect(")", tokens)
	return t, tokens, err
}

// parseExpr folds a run of atoms into left-associated applications. An
// abstraction swallows everything up to the enclosing ")" or EOF.
func parseExpr(a *Arena, tokens []string) (Term, []string, error) {
	var items []Term
loop:
	for len(tokens) > 0 {
		var (
			t   Term
			err error
		)
		switch tok := tokens[0]; {
		case isLambda(tok):
			t, tokens, err = parseLambda(a, tokens[1:])
		case tok == "(":
			t, tokens, err = parseParenExpr(a, tokens[1:])
		case isVarName(tok):
			t, tokens = a.Var(tok), tokens[1:]
		default:
			break loop
		}
		if err != nil {
			return nil, nil, err
		}
		items = append(items, t)
	}
	if len(items) == 0 {
		return nil, nil, unexpected(tokens)
	}
	return lo.Reduce(items[1:], func(fn Term, arg Term, _ int) Term {
		return a.App(fn, arg)
	}, items[0]), tokens, nil
}

// Parse reads an expression into a fresh arena.
func Parse(src string) (Term, error) {
	return NewArena().Parse(src)
}

func (a *Arena) Parse(src string) (Term, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	t, tokens, err := parseExpr(a, tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 0 {
		return nil, fmt.Errorf("%w: expected token \"EOF\", got %q", ErrSyntax, tokens[0])
	}
	return t, nil
}

// MustParse is Parse for inputs known to be well formed.
func MustParse(src string) Term {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}
