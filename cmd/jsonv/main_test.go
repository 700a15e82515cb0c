package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runWith(t *testing.T, cfg config, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	out, errb := &bytes.Buffer{}, &bytes.Buffer{}
	code = run(cfg, strings.NewReader(stdin), out, errb)
	return code, out.String(), errb.String()
}

func TestRunValidStdin(t *testing.T) {
	code, stdout, stderr := runWith(t, config{}, `{"a": [1, 2]}`)
	if code != exitOK {
		t.Fatalf("exit code: got %d, want %d (stderr: %s)", code, exitOK, stderr)
	}
	if stdout != "JSON is valid.\n" {
		t.Errorf("stdout: got %q", stdout)
	}
}

func TestRunInvalidStdin(t *testing.T) {
	code, _, stderr := runWith(t, config{}, `{"a": 1,}`)
	if code != exitSyntax {
		t.Fatalf("exit code: got %d, want %d", code, exitSyntax)
	}
	if !strings.Contains(stderr, "Invalid JSON:") || !strings.Contains(stderr, "Trailing comma") {
		t.Errorf("stderr: got %q", stderr)
	}
}

func TestRunQuiet(t *testing.T) {
	code, stdout, stderr := runWith(t, config{quiet: true}, `{"a": 1,}`)
	if code != exitSyntax {
		t.Fatalf("exit code: got %d, want %d", code, exitSyntax)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("quiet mode produced output: stdout %q, stderr %q", stdout, stderr)
	}
}

func TestRunPretty(t *testing.T) {
	code, stdout, _ := runWith(t, config{pretty: true}, `{"a":[1,2]}`)
	if code != exitOK {
		t.Fatalf("exit code: got %d, want %d", code, exitOK)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n"
	if stdout != want {
		t.Errorf("pretty output:\ngot  %q\nwant %q", stdout, want)
	}
}

func TestRunConflictingFlags(t *testing.T) {
	code, _, stderr := runWith(t, config{quiet: true, verbose: true}, `null`)
	if code != exitArgs {
		t.Fatalf("exit code: got %d, want %d", code, exitArgs)
	}
	if !strings.Contains(stderr, "--quiet and --verbose") {
		t.Errorf("stderr: got %q", stderr)
	}
}

func TestRunEmptyStdin(t *testing.T) {
	code, _, stderr := runWith(t, config{}, "")
	if code != exitIO {
		t.Fatalf("exit code: got %d, want %d", code, exitIO)
	}
	if !strings.Contains(stderr, "No input provided") {
		t.Errorf("stderr: got %q", stderr)
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, stderr := runWith(t, config{file: filepath.Join(t.TempDir(), "nope.json")}, "")
	if code != exitFile {
		t.Fatalf("exit code: got %d, want %d", code, exitFile)
	}
	if !strings.Contains(stderr, "File not found") {
		t.Errorf("stderr: got %q", stderr)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`[true, false]`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runWith(t, config{file: path}, "")
	if code != exitOK {
		t.Fatalf("exit code: got %d, want %d (stderr: %s)", code, exitOK, stderr)
	}
	if stdout != "JSON is valid.\n" {
		t.Errorf("stdout: got %q", stdout)
	}
}

func TestRunNonUTF8(t *testing.T) {
	code, _, stderr := runWith(t, config{}, "\"\xff\xfe\"")
	if code != exitIO {
		t.Fatalf("exit code: got %d, want %d", code, exitIO)
	}
	if !strings.Contains(stderr, "not valid UTF-8") {
		t.Errorf("stderr: got %q", stderr)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, stderr := runWith(t, config{verbose: true}, `null`)
	if code != exitOK {
		t.Fatalf("exit code: got %d, want %d", code, exitOK)
	}
	if !strings.Contains(stderr, "source=stdin") {
		t.Errorf("verbose diagnostics missing: %q", stderr)
	}
}
