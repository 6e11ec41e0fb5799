package main

// Notes:
// - runDoctorCmd: executables are located through a stubbed LookPath and
//   versions come from the mock runner. Env overrides are set with
//   t.Setenv(), so tests run sequentially.
// - Container detection reads the real host; only its presence in the
//   output shape is checked.

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func versionRunner() *mockRunner {
	return &mockRunner{fn: func(name string, _ []string) (string, string, error) {
		switch {
		case strings.HasSuffix(name, "pdftk"):
			return "\npdftk port to java 3.3.3 a Handy Tool for Manipulating PDF Documents\nCopyright (c) ...\n", "", nil
		case strings.HasSuffix(name, "gs"):
			return "10.02.1\n", "", nil
		}
		return "", "", errors.New("unexpected executable")
	}}
}

func clearToolEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envPdftk, "")
	t.Setenv(envGhostscript, "")
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd - Diagnostics
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	clearToolEnv(t)

	runner := versionRunner()
	env := newTestEnv(runner)

	if code := runDoctorCmd(context.Background(), []string{"--json"}, env.Environment); code != ExitSuccess {
		t.Fatalf("runDoctorCmd() = %d, want %d\n%s", code, ExitSuccess, env.stdout)
	}

	var result doctorResult
	if err := json.Unmarshal(env.stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if !result.Pdftk.Found || result.Pdftk.Path != "/usr/bin/pdftk" {
		t.Errorf("Pdftk = %+v, want found at /usr/bin/pdftk", result.Pdftk)
	}
	if result.Pdftk.Version != "pdftk port to java 3.3.3 a Handy Tool for Manipulating PDF Documents" {
		t.Errorf("Pdftk.Version = %q, want first non-blank line", result.Pdftk.Version)
	}
	if result.Gs.Version != "10.02.1" {
		t.Errorf("Gs.Version = %q, want 10.02.1", result.Gs.Version)
	}
	if result.Env.OS == "" || result.Env.Arch == "" {
		t.Errorf("Env = %+v, want platform filled", result.Env)
	}

	wantCall := []string{"/usr/bin/gs", "--version"}
	if calls := runner.callsTo("/usr/bin/gs"); len(calls) != 1 || strings.Join(calls[0], " ") != strings.Join(wantCall, " ") {
		t.Errorf("gs calls = %v, want %v", calls, wantCall)
	}
}

func TestRunDoctorCmd_ToolMissing(t *testing.T) {
	clearToolEnv(t)

	env := newTestEnv(versionRunner())
	env.LookPath = func(file string) (string, error) {
		if file == "gs" {
			return "", exec.ErrNotFound
		}
		return "/usr/bin/" + file, nil
	}

	if code := runDoctorCmd(context.Background(), nil, env.Environment); code != ExitGeneral {
		t.Errorf("runDoctorCmd() = %d, want %d", code, ExitGeneral)
	}

	out := env.stdout.String()
	for _, want := range []string{
		"pdf-bookmark doctor",
		"[OK] Found at /usr/bin/pdftk",
		"[ERROR] gs not found",
		"set " + envGhostscript,
		"Status: Not ready",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunDoctorCmd_VersionFailureWarns(t *testing.T) {
	clearToolEnv(t)

	runner := &mockRunner{fn: func(string, []string) (string, string, error) {
		return "", "", &exitError{code: 2}
	}}
	env := newTestEnv(runner)

	if code := runDoctorCmd(context.Background(), nil, env.Environment); code != ExitSuccess {
		t.Errorf("runDoctorCmd() = %d, want %d (warnings only)", code, ExitSuccess)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "[WARN] Could not get pdftk version") {
		t.Errorf("output should warn about the version probe, got:\n%s", out)
	}
	if !strings.Contains(out, "Status: Ready with warnings") {
		t.Errorf("output should report warnings status, got:\n%s", out)
	}
}

func TestRunDoctorCmd_EnvOverrides(t *testing.T) {
	t.Setenv(envPdftk, "/opt/pdftk/bin/pdftk")
	t.Setenv(envGhostscript, "/opt/gs/bin/gs")

	var looked []string
	env := newTestEnv(versionRunner())
	env.LookPath = func(file string) (string, error) {
		looked = append(looked, file)
		return file, nil
	}

	runDoctorCmd(context.Background(), []string{"--json"}, env.Environment)

	if strings.Join(looked, ",") != "/opt/pdftk/bin/pdftk,/opt/gs/bin/gs" {
		t.Errorf("looked up %v, want env executables", looked)
	}

	var result doctorResult
	if err := json.Unmarshal(env.stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result.Env.PdftkVar != "/opt/pdftk/bin/pdftk" || result.Env.GsVar != "/opt/gs/bin/gs" {
		t.Errorf("Env = %+v, want env vars reported", result.Env)
	}
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                "",
		"10.02.1\n":       "10.02.1",
		"\n\n  v2  \nx\n": "v2",
	}
	for in, want := range tests {
		if got := firstLine(in); got != want {
			t.Errorf("firstLine(%q) = %q, want %q", in, got, want)
		}
	}
}
