package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/smasher164/lambdaproof/lambda"
)

const (
	historyFile = ".lambdaproof_history"
	prompt      = "λ> "
	helpText    = `commands:
  expr      print expr
  :r expr   list the one-step reductions of expr
  :r N      list the reductions of reduction N from the last listing
  :i expr   print the node structure of expr
  :q        exit
`
)

func listReductions(rs []lambda.Reduction) string {
	if len(rs) == 0 {
		return "no reductions possible\n"
	}
	var b strings.Builder
	for i, r := range rs {
		fmt.Fprintf(&b, "%d. %s %s\n", i, r.Kind, r.Term)
	}
	return b.String()
}

type session struct {
	last []lambda.Reduction
}

// eval runs one line of input and returns what to print, and whether the
// session is over.
func (s *session) eval(line string) (string, bool) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(cmd, ":") {
		cmd, arg = "", strings.TrimSpace(line)
	}
	switch cmd {
	case ":q", ":quit":
		return "", true
	case ":help":
		return helpText, false
	case ":r":
		var t lambda.Term
		if i, err := strconv.Atoi(arg); err == nil {
			if i < 0 || i >= len(s.last) {
				return fmt.Sprintf("no reduction %d\n", i), false
			}
			t = s.last[i].Term
		} else {
			if t, err = lambda.Parse(arg); err != nil {
				return err.Error() + "\n", false
			}
		}
		rs, err := lambda.Reductions(t)
		if err != nil {
			return err.Error() + "\n", false
		}
		s.last = rs
		return listReductions(rs), false
	case ":i":
		t, err := lambda.Parse(arg)
		if err != nil {
			return err.Error() + "\n", false
		}
		return lambda.Dump(t) + "\n", false
	case "":
		t, err := lambda.Parse(arg)
		if err != nil {
			return err.Error() + "\n", false
		}
		return t.String() + "\n", false
	}
	return "unknown command. Type :help for a list.\n", false
}

func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var s session
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		out, quit := s.eval(line)
		if quit {
			return 0
		}
		fmt.Print(out)
	}
}
