package monkey

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewEngineRejectsNegativeLimits(t *testing.T) {
	if _, err := NewEngine(Config{StepQuota: -1}); err == nil {
		t.Fatalf("expected error for negative step quota")
	}
	if _, err := NewEngine(Config{RecursionLimit: -1}); err == nil {
		t.Fatalf("expected error for negative recursion limit")
	}
}

func TestMustNewEnginePanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustNewEngine(Config{StepQuota: -5})
}

func TestEngineRun(t *testing.T) {
	engine := MustNewEngine(Config{})
	env := NewEnv()
	if _, err := engine.Run(context.Background(), "let double = fn(x) { x * 2 };", env); err != nil {
		t.Fatalf("run: %v", err)
	}
	result, err := engine.Run(context.Background(), "double(21)", env)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Kind() != KindInteger || result.Int() != 42 {
		t.Fatalf("unexpected result: %s", result.Inspect())
	}
}

func TestEngineRunCompileError(t *testing.T) {
	engine := MustNewEngine(Config{})
	_, err := engine.Run(context.Background(), "let x 5;\nlet = 1;", NewEnv())
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %T: %v", err, err)
	}
	if len(ce.Errors) != 3 {
		t.Fatalf("expected 3 parse errors, got %d: %v", len(ce.Errors), ce.Messages())
	}
	msg := err.Error()
	if !strings.Contains(msg, "parse error at 1:7: expected next token to be =, got INT instead") {
		t.Fatalf("missing first error: %s", msg)
	}
	if !strings.Contains(msg, "  --> line 2, column 5\n 2 | let = 1;\n   |     ^") {
		t.Fatalf("missing code frame: %s", msg)
	}
}

func TestEngineRunRuntimeError(t *testing.T) {
	engine := MustNewEngine(Config{})
	source := "let f = fn(x) {\n  x + true\n};\nf(1)"
	result, err := engine.Run(context.Background(), source, NewEnv())
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if !result.IsError() {
		t.Fatalf("expected ERROR value alongside the error, got %s", result.Inspect())
	}
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %T", err)
	}
	if !IsRuntimeError(err) {
		t.Fatalf("IsRuntimeError should report true")
	}
	if re.Message != "type mismatch: INTEGER + BOOLEAN" {
		t.Fatalf("unexpected message: %q", re.Message)
	}
	if re.Pos != (Position{Line: 2, Column: 5}) {
		t.Fatalf("unexpected position: %+v", re.Pos)
	}
	if len(re.Frames) != 1 || re.Frames[0].Function != "f" || re.Frames[0].Pos != (Position{Line: 4, Column: 1}) {
		t.Fatalf("unexpected frames: %+v", re.Frames)
	}
	want := "type mismatch: INTEGER + BOOLEAN\n  --> line 2, column 5\n 2 |   x + true\n   |     ^\n  at f (4:1)"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected error text:\n%s\nwant:\n%s", got, want)
	}
}

func TestRuntimeErrorTruncatesFrames(t *testing.T) {
	engine := MustNewEngine(Config{RecursionLimit: 40})
	_, err := engine.Run(context.Background(), "let f = fn(n) { f(n + 1) }; f(0)", NewEnv())
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if len(re.Frames) != 40 {
		t.Fatalf("expected 40 frames, got %d", len(re.Frames))
	}
	if !strings.Contains(err.Error(), "... 24 frames omitted ...") {
		t.Fatalf("expected truncated frames: %s", err)
	}
}

func TestRuntimeErrorCodeFrameUsesDefiningSource(t *testing.T) {
	engine := MustNewEngine(Config{})
	env := NewEnv()
	if _, err := engine.Run(context.Background(), "let f = fn(x) {\n  x + true\n};", env); err != nil {
		t.Fatalf("define: %v", err)
	}

	_, err := engine.Run(context.Background(), "let y = 1;\nlet z = 2;\nf(y)", env)
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if re.Pos != (Position{Line: 2, Column: 5}) {
		t.Fatalf("unexpected position: %+v", re.Pos)
	}
	want := "  --> line 2, column 5\n 2 |   x + true\n   |     ^"
	if re.CodeFrame != want {
		t.Fatalf("unexpected code frame:\n%s", re.CodeFrame)
	}
	if len(re.Frames) != 1 || re.Frames[0] != (StackFrame{Function: "f", Pos: Position{Line: 3, Column: 1}}) {
		t.Fatalf("unexpected frames: %+v", re.Frames)
	}
}

func TestRuntimeErrorWithoutKnownSourceHasNoCodeFrame(t *testing.T) {
	engine := MustNewEngine(Config{})
	env := NewEnv()
	program, err := engine.Compile("let g = fn() { missing };")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	engine.Eval(program, env)

	_, err = engine.Run(context.Background(), "g()", env)
	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %v", err)
	}
	if re.Message != "identifier not found: missing" || re.CodeFrame != "" {
		t.Fatalf("unexpected error: %q frame %q", re.Message, re.CodeFrame)
	}
}

func TestEngineRunCanceled(t *testing.T) {
	engine := MustNewEngine(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Run(ctx, "1 + 1", NewEnv())
	if err == nil || !strings.Contains(err.Error(), "execution interrupted: context canceled") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEngineLogsCompileAndRuntimeErrors(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := MustNewEngine(Config{Logger: logger})

	engine.Run(context.Background(), "let", NewEnv())
	engine.Run(context.Background(), "missing", NewEnv())

	out := logs.String()
	if !strings.Contains(out, `msg="compile failed" errors=1`) {
		t.Fatalf("missing compile log: %s", out)
	}
	if !strings.Contains(out, `msg="runtime error" message="identifier not found: missing"`) {
		t.Fatalf("missing runtime log: %s", out)
	}
}

func TestEngineBuiltinsAndSummary(t *testing.T) {
	engine := MustNewEngine(Config{StepQuota: 100})
	if got := strings.Join(engine.Builtins(), ","); got != "first,last,len,push,puts,rest" {
		t.Fatalf("unexpected builtins: %s", got)
	}
	if got := engine.ConfigSummary(); got != "steps=100 recursion=unlimited" {
		t.Fatalf("unexpected summary: %s", got)
	}
}
