package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock runner and environment
// ---------------------------------------------------------------------------

// mockRunner records every invocation and answers with fn.
type mockRunner struct {
	mu    sync.Mutex
	calls [][]string
	fn    func(name string, args []string) (string, string, error)
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string{name}, args...))
	m.mu.Unlock()

	if m.fn == nil {
		return "", "", nil
	}
	return m.fn(name, args)
}

func (m *mockRunner) getCalls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls...)
}

// callsTo returns the recorded invocations of one executable.
func (m *mockRunner) callsTo(name string) [][]string {
	var out [][]string
	for _, c := range m.getCalls() {
		if c[0] == name {
			out = append(out, c)
		}
	}
	return out
}

// exitError mimics *exec.ExitError for the service error mapping.
type exitError struct{ code int }

func (e *exitError) Error() string { return "exit status " + strconv.Itoa(e.code) }
func (e *exitError) ExitCode() int { return e.code }

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(runner *mockRunner) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Stdin:    strings.NewReader(""),
			Stdout:   &stdout,
			Stderr:   &stderr,
			Runner:   runner,
			LookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// dumpRunner answers pdftk dump_data calls from dumps keyed by PDF path.
func dumpRunner(dumps map[string]string) *mockRunner {
	return &mockRunner{fn: func(name string, args []string) (string, string, error) {
		if name == "pdftk" && len(args) == 2 && args[1] == "dump_data" {
			if dump, ok := dumps[args[0]]; ok {
				return dump, "", nil
			}
			return "", "Error: Unable to find file.", &exitError{code: 1}
		}
		return "", "", nil
	}}
}

// writeFile creates a file under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

const introDump = `NumberOfPages: 4
BookmarkBegin
BookmarkTitle: Intro
BookmarkLevel: 1
BookmarkPageNumber: 1
`

const bodyDump = `NumberOfPages: 3
BookmarkBegin
BookmarkTitle: Body
BookmarkLevel: 1
BookmarkPageNumber: 2
`
