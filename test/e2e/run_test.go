package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/madx/internal/repl"
)

// TestE2E runs end-to-end tests for all .mx files in testdata/.
// Each test:
//  1. Feeds the file line by line through a REPL session
//  2. Collects values and diagnostics in one stream, in order
//  3. Compares the stream against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.mx")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .mx test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".mx")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, mxFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(mxFile, ".mx") + ".golden"

	src, err := os.Open(mxFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	var out bytes.Buffer
	s := repl.NewSession(&out, &out)
	s.Verify = true
	if err := s.Loop(src, ""); err != nil {
		t.Fatalf("session: %v", err)
	}
	got := out.String()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if want := string(expected); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}
