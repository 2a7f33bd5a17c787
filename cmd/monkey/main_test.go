package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"monkey", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"monkey", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"monkey"})
	if err == nil || !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	scriptPath := writeScript(t, `let x = missing;`)

	if err := runCommand([]string{"-check", scriptPath}); err != nil {
		t.Fatalf("runCommand check failed: %v", err)
	}
}

func TestRunCommandCheckReportsParseErrors(t *testing.T) {
	scriptPath := writeScript(t, "let = 1;")

	err := runCommand([]string{"-check", scriptPath})
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if !strings.Contains(err.Error(), "compile failed: parse error at 1:5: expected next token to be IDENT, got = instead") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandPrintsResult(t *testing.T) {
	scriptPath := writeScript(t, `
let greet = fn(name) { "hello " + name };
puts("side effect");
greet("monkey")`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "side effect\nhello monkey\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandSkipsNullResult(t *testing.T) {
	scriptPath := writeScript(t, `if (false) { 1 }`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestRunCommandRuntimeError(t *testing.T) {
	scriptPath := writeScript(t, "5 + true")

	err := runCommand([]string{scriptPath})
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if !strings.HasPrefix(err.Error(), "execution failed: ERROR: type mismatch: INTEGER + BOOLEAN") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandAppliesConfigLimits(t *testing.T) {
	scriptPath := writeScript(t, "let f = fn(n) { f(n + 1) }; f(0)")
	configPath := writeFile(t, "monkey.yaml", "engine:\n  recursion_limit: 10\n")

	err := runCommand([]string{"-config", configPath, scriptPath})
	if err == nil || !strings.Contains(err.Error(), "recursion depth exceeded (10)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	err := runCommand(nil)
	if err == nil || !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommand(t *testing.T) {
	scriptPath := writeScript(t, "let x = \"hi\";")

	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("tokensCommand failed: %v", err)
	}
	want := "1:1 LET let\n1:5 IDENT x\n1:7 = =\n1:9 STRING hi\n1:13 ; ;\n1:14 EOF\n"
	if out != want {
		t.Fatalf("unexpected tokens:\n%s\nwant:\n%s", out, want)
	}
}

func TestASTCommand(t *testing.T) {
	scriptPath := writeScript(t, "let x = 1 + 2 * 3;\nx[0]")

	out, err := captureStdout(t, func() error {
		return astCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("astCommand failed: %v", err)
	}
	if out != "let x = (1 + (2 * 3));\n(x[0])\n" {
		t.Fatalf("unexpected ast output: %q", out)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	return writeFile(t, "script.monkey", source)
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
