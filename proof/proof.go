// Package proof checks step-by-step reduction proofs of lambda expressions.
//
// A proof is text whose first non-blank line is the starting expression and
// whose following non-blank lines are "a-> expr" (an alpha renaming) or
// "b-> expr" (a beta reduction). Lines are numbered from 0, the starting
// expression, ignoring blank lines.
package proof

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/smasher164/lambdaproof/lambda"
)

// Class groups diagnostics by what went wrong.
type Class uint8

const (
	// Syntax: a line is not a well formed step.
	Syntax Class = iota
	// Mismatch: the proof does not start from the expected expression.
	Mismatch
	// InvalidStep: a step is not the renaming or reduction it claims to be.
	InvalidStep
	// UnnecessaryStep: a step of the wrong kind, or one after normal form.
	UnnecessaryStep
	// Incomplete: the proof stops before normal form.
	Incomplete
	// Exhausted: renaming ran out of fresh names.
	Exhausted
)

func (c Class) String() string {
	switch c {
	case Syntax:
		return "syntax"
	case Mismatch:
		return "mismatch"
	case InvalidStep:
		return "invalid step"
	case UnnecessaryStep:
		return "unnecessary step"
	case Incomplete:
		return "incomplete"
	case Exhausted:
		return "exhausted"
	}
	panic("unreachable")
}

type Diagnostic struct {
	Line  int
	Class Class
	Msg   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Msg)
}

func (d Diagnostic) Error() string {
	return d.String()
}

// Messages renders diagnostics as "Line <n>: <message>" strings.
func Messages(ds []Diagnostic) []string {
	return lo.Map(ds, func(d Diagnostic, _ int) string { return d.String() })
}

var prefixes = map[string]lambda.Kind{
	"a->": lambda.Rename,
	"b->": lambda.Reduce,
}

// Lines returns the trimmed non-blank lines of text.
func Lines(text string) []string {
	lines := lo.Map(strings.Split(text, "\n"), func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Filter(lines, func(s string, _ int) bool { return s != "" })
}

func splitKind(line string) (lambda.Kind, string, bool) {
	for prefix, kind := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return kind, line[len(prefix):], true
		}
	}
	return 0, "", false
}

type Validator struct {
	// Logger traces every checked line at debug level. Nil discards.
	Logger *slog.Logger
}

// Validate checks proof against the expected starting expression using a
// Validator without logging.
func Validate(start, proof string) []Diagnostic {
	return new(Validator).Validate(start, proof)
}

func (v *Validator) logger() *slog.Logger {
	if v.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return v.Logger
}

// Validate returns the diagnostics for proof in line order. An empty result
// means every step is legal, correctly tagged, and the proof ends in normal
// form.
func (v *Validator) Validate(start, proof string) []Diagnostic {
	log := v.logger()
	want, err := lambda.Parse(start)
	if err != nil {
		return []Diagnostic{{0, Syntax, fmt.Sprintf("could not parse starting expression: %v", err)}}
	}
	lines := Lines(proof)
	if len(lines) == 0 {
		return []Diagnostic{{0, Mismatch, "proof is empty"}}
	}
	current, err := lambda.Parse(lines[0])
	if err != nil {
		return []Diagnostic{{0, Syntax, fmt.Sprintf("could not parse initial lambda expression: %v", err)}}
	}
	if !lambda.Equivalent(current, want) {
		return []Diagnostic{{0, Mismatch, fmt.Sprintf("initial expression does not match %s", want)}}
	}

	var ds []Diagnostic
	report := func(n int, c Class, format string, args ...any) {
		d := Diagnostic{n, c, fmt.Sprintf(format, args...)}
		log.Debug("diagnostic", "line", n, "class", c, "msg", d.Msg)
		ds = append(ds, d)
	}
	for n := 1; n < len(lines); n++ {
		kind, src, ok := splitKind(lines[n])
		if !ok {
			report(n, Syntax, "invalid reduction type, expected a-> or b->")
			continue
		}
		claimed, err := lambda.Parse(src)
		if err != nil {
			report(n, Syntax, "could not parse lambda expression: %v", err)
			continue
		}
		log.Debug("checking step", "line", n, "kind", kind, "from", current, "to", claimed)

		rs, err := lambda.Reductions(current)
		if err != nil {
			report(n, Exhausted, "%v", err)
			return ds
		}
		if len(rs) == 0 {
			report(n, UnnecessaryStep, "expression is already simple, line %d onwards is unnecessary", n)
			return ds
		}
		required := rs[0].Kind

		switch kind {
		case lambda.Rename:
			if !lambda.Equivalent(current, claimed) {
				report(n, InvalidStep, "not a valid alpha reduction")
				continue
			}
			if required != lambda.Rename {
				report(n, UnnecessaryStep, "alpha reduction is not necessary")
			}
		case lambda.Reduce:
			valid, err := lambda.IsValidReduction(current, claimed)
			if err != nil {
				report(n, Exhausted, "%v", err)
				return ds
			}
			if !valid {
				report(n, InvalidStep, "not a valid beta reduction")
				continue
			}
			if required != lambda.Reduce {
				report(n, UnnecessaryStep, "alpha reduction required before beta reduction")
			}
		}
		current = claimed
	}
	if !lambda.IsSimple(current) {
		report(len(lines)-1, Incomplete, "last expression %s is not a simple expression", current)
	}
	return ds
}
