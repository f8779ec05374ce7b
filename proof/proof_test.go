package proof

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestScenarios(t *testing.T) {
	s, err := LoadSuiteFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Exercises) == 0 {
		t.Fatal("no exercises loaded")
	}
	for _, r := range s.Run(new(Validator)) {
		r := r
		t.Run(r.Exercise.Name, func(t *testing.T) {
			if !r.Passed() {
				got := Messages(r.Diagnostics)
				t.Errorf("got %q\n%v", got, pretty.Diff(got, r.Exercise.Want))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		start, proof string
		want         []string
	}{
		{
			name:  "empty proof",
			start: "x",
			proof: "\n  \n",
			want:  []string{"Line 0: proof is empty"},
		},
		{
			name:  "unparsable first line",
			start: "(λx.x)y",
			proof: "(λx.x\nb-> y",
			want:  []string{`Line 0: could not parse initial lambda expression: syntax error: expected token ")", got "EOF"`},
		},
		{
			name:  "unparsable step",
			start: "(λx.x)y",
			proof: "(λx.x)y\nb-> (y\nb-> y",
			want:  []string{`Line 1: could not parse lambda expression: syntax error: expected token ")", got "EOF"`},
		},
		{
			name:  "wrong head symbol",
			start: "(λx.x)(λz.yz)(z)",
			proof: "(λx.x)(λz.yz)(z)\nb-> ((λz.cz)z)\na-> ((λx.yx)z)\nb-> (y z)",
			want: []string{
				"Line 1: not a valid beta reduction",
				"Line 2: not a valid alpha reduction",
				"Line 3: not a valid beta reduction",
				"Line 3: last expression (λx.x)(λz.yz)z is not a simple expression",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Messages(Validate(tt.start, tt.proof))
			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("got %q\n%v", got, diff)
			}
		})
	}
}

func TestValidateClasses(t *testing.T) {
	tests := []struct {
		start, proof string
		want         []Class
	}{
		{"(", "x", []Class{Syntax}},
		{"(λx.x)y", "(λx.x)z", []Class{Mismatch}},
		{"(λx.x)y", "(λx.x)y\nb-> z", []Class{InvalidStep, Incomplete}},
		{"(λx.x)y", "(λx.x)y\nb-> y\na-> y", []Class{UnnecessaryStep}},
		{"(λx.λy.x)y", "(λx.λy.x)y\nb-> (λx.λa.x)y\nb-> λa.y", []Class{UnnecessaryStep}},
		{"(λx.x)y", "(λx.x)y\nx-> y\nb-> y", []Class{Syntax}},
	}
	for _, tt := range tests {
		ds := Validate(tt.start, tt.proof)
		got := make([]Class, len(ds))
		for i, d := range ds {
			got[i] = d.Class
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("Validate(%q, %q): got %v\n%v", tt.start, tt.proof, ds, diff)
		}
	}
}

func TestValidateExhausted(t *testing.T) {
	letters := "a b c d e f g h i j k l m n o p q r s t u v w x y z"
	primed := strings.ReplaceAll(letters, " ", "' ") + "'"
	start := "(λx.λy.x)y " + letters + " " + primed
	ds := Validate(start, start+"\na-> "+start+"\nb-> y")
	if len(ds) != 1 || ds[0].Class != Exhausted || ds[0].Line != 1 {
		t.Errorf("got %v, want a single exhausted diagnostic on line 1", ds)
	}
}

func TestValidatorLogs(t *testing.T) {
	var buf bytes.Buffer
	v := &Validator{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	ds := v.Validate("(λx.x)y", "(λx.x)y\nb-> y")
	if len(ds) != 0 {
		t.Fatalf("unexpected diagnostics %v", ds)
	}
	if out := buf.String(); !strings.Contains(out, "checking step") || !strings.Contains(out, "line=1") {
		t.Errorf("missing step trace in log output:\n%s", out)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 4, Class: InvalidStep, Msg: "not a valid beta reduction"}
	if got := d.Error(); got != "Line 4: not a valid beta reduction" {
		t.Errorf("got %q", got)
	}
	if InvalidStep.String() != "invalid step" {
		t.Errorf("got %q", InvalidStep)
	}
}
