package proof

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Suite is a set of exercises, each a proof and the diagnostics it should
// produce.
//
//	exercises:
//	  - name: identity
//	    start: (λx.x)y
//	    proof: |
//	      (λx.x)y
//	      b-> y
type Suite struct {
	Exercises []Exercise `yaml:"exercises"`
}

type Exercise struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	Proof string `yaml:"proof"`

	// Want lists the expected diagnostics; empty means the proof is correct.
	Want []string `yaml:"want,omitempty"`
}

type Result struct {
	Exercise    Exercise
	Diagnostics []Diagnostic
}

func (r Result) Passed() bool {
	return slices.Equal(Messages(r.Diagnostics), r.Exercise.Want)
}

func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("suite: parse: %w", err)
	}
	for i, e := range s.Exercises {
		if e.Name == "" {
			return nil, fmt.Errorf("suite: exercise %d has no name", i)
		}
	}
	return &s, nil
}

func LoadSuiteFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := LoadSuite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Run validates every exercise in order.
func (s *Suite) Run(v *Validator) []Result {
	results := make([]Result, len(s.Exercises))
	for i, e := range s.Exercises {
		results[i] = Result{Exercise: e, Diagnostics: v.Validate(e.Start, e.Proof)}
	}
	return results
}
