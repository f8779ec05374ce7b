package untyped_test

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	testPath = func() string {
		cwd, err := os.Getwd()
		panicErr(err)
		return cwd
	}()
	projectRoot = filepath.Dir(filepath.Dir(testPath))
	testDir     = os.DirFS(testPath)
	// inOut maps each mode directory (named after its flag) to its
	// input files and their expected outputs.
	inOut = func() map[string]map[string]string {
		m := make(map[string]map[string]string)
		panicErr(fs.WalkDir(testDir, ".", func(path string, d fs.DirEntry, err error) error {
			parts := strings.Split(path, ".")
			if len(parts) == 3 && parts[1] == "in" {
				mode := filepath.Dir(path)
				if m[mode] == nil {
					m[mode] = make(map[string]string)
				}
				m[mode][filepath.Join(testPath, path)] = strings.Join([]string{parts[0], "out.txt"}, ".")
			}
			return err
		}))
		return m
	}()
)

func panicErr(err error) {
	if err != nil {
		panic(err)
	}
}

func binExec(flag string, files map[string]string) func(t *testing.T) {
	return func(t *testing.T) {
		for in, out := range files {
			got, err := exec.Command("./untyped", flag, in).CombinedOutput()
			if _, ok := err.(*exec.ExitError); !ok && err != nil {
				t.Fatal(err)
			}
			want, err := fs.ReadFile(testDir, out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("%s does not match output:\n`%s`", out, got)
			}
		}
	}
}

func TestGo(t *testing.T) {
	goDir := filepath.Join(projectRoot, "untyped")
	os.Chdir(goDir)
	if out, err := exec.Command("go", "build").CombinedOutput(); err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	for mode, files := range inOut {
		t.Run(mode, binExec("-"+mode, files))
	}
}
