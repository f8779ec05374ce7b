package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/smasher164/lambdaproof/lambda"
	"github.com/smasher164/lambdaproof/proof"
)

var (
	check      = flag.Bool("check", false, "check the reduction proof in file")
	reductions = flag.Bool("reductions", false, "list the one-step reductions of the expression in file")
	suite      = flag.Bool("suite", false, "run the YAML exercise suite in file")
	repl       = flag.Bool("repl", false, "start an interactive session")
	start      = flag.String("start", "", "expected starting expression for -check (default: the proof's first line)")
	verbose    = flag.Bool("v", false, "trace checked steps on stderr")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: untyped ( -check [-start expr] | -reductions | -suite ) file\n")
	fmt.Fprint(os.Stderr, "       untyped -repl\n\n")
	fmt.Fprint(os.Stderr, "untyped checks alpha/beta reduction proofs in the untyped lambda calculus.\n")
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func readFile() string {
	args := flag.Args()
	if len(args) != 1 {
		usage()
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		usage()
	}
	return string(b)
}

func validator() *proof.Validator {
	if !*verbose {
		return new(proof.Validator)
	}
	return &proof.Validator{Logger: slog.Default()}
}

func runCheck(text string) int {
	want := *start
	if want == "" {
		if lines := proof.Lines(text); len(lines) > 0 {
			want = lines[0]
		}
	}
	ds := validator().Validate(want, text)
	if len(ds) == 0 {
		fmt.Println("proof is correct")
		return 0
	}
	for _, d := range ds {
		fmt.Println(d)
	}
	return 1
}

func runReductions(text string) int {
	t, err := lambda.Parse(text)
	if err != nil {
		errExit(err)
	}
	rs, err := lambda.Reductions(t)
	if err != nil {
		errExit(err)
	}
	fmt.Print(listReductions(rs))
	return 0
}

func runSuite(path string) int {
	s, err := proof.LoadSuiteFile(path)
	if err != nil {
		errExit(err)
	}
	results := s.Run(validator())
	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Printf("PASS %s\n", r.Exercise.Name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", r.Exercise.Name)
		for _, m := range proof.Messages(r.Diagnostics) {
			fmt.Printf("\tgot:  %s\n", m)
		}
		for _, m := range r.Exercise.Want {
			fmt.Printf("\twant: %s\n", m)
		}
	}
	fmt.Printf("%d/%d passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return 1
	}
	return 0
}

func main() {
	flag.Usage = usage
	flag.Parse()
	modes := 0
	for _, on := range []bool{*check, *reductions, *suite, *repl} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		usage()
	}
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	switch {
	case *repl:
		if flag.NArg() != 0 {
			usage()
		}
		os.Exit(runRepl())
	case *check:
		os.Exit(runCheck(readFile()))
	case *reductions:
		os.Exit(runReductions(readFile()))
	case *suite:
		if flag.NArg() != 1 {
			usage()
		}
		os.Exit(runSuite(flag.Arg(0)))
	}
}
