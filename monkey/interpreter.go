package monkey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config controls evaluation limits and where the engine writes output and
// logs. The zero Config is valid and leaves evaluation unbounded.
type Config struct {
	// StepQuota caps the number of AST nodes evaluated per run. Zero means
	// unlimited.
	StepQuota int `yaml:"step_quota"`
	// RecursionLimit caps the depth of nested function calls. Zero means
	// unlimited.
	RecursionLimit int `yaml:"recursion_limit"`

	Stdout io.Writer    `yaml:"-"`
	Logger *slog.Logger `yaml:"-"`
}

// Engine parses and evaluates Monkey programs against a fixed builtin
// registry. An Engine is immutable after NewEngine and may be shared.
type Engine struct {
	config   Config
	builtins *Registry
}

// NewEngine validates cfg, fills in defaults and registers the builtins.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.StepQuota < 0 {
		return nil, fmt.Errorf("step quota must be non-negative, got %d", cfg.StepQuota)
	}
	if cfg.RecursionLimit < 0 {
		return nil, fmt.Errorf("recursion limit must be non-negative, got %d", cfg.RecursionLimit)
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		config:   cfg,
		builtins: NewRegistry(),
	}, nil
}

// MustNewEngine constructs an Engine or panics if the config is invalid.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile parses source. Syntax errors are reported together as a
// *CompileError.
func (e *Engine) Compile(source string) (*Program, error) {
	p := NewParser(NewLexer(source))
	program := p.ParseProgram()
	if parseErrors := p.ParseErrors(); len(parseErrors) > 0 {
		e.config.Logger.Debug("compile failed", "errors", len(parseErrors))
		return nil, &CompileError{Errors: parseErrors, source: source}
	}
	e.config.Logger.Debug("compiled", "statements", len(program.Statements))
	return program, nil
}

// Run compiles and evaluates source in env. A program whose result is an
// ERROR value returns it as a *RuntimeError alongside the value.
func (e *Engine) Run(ctx context.Context, source string, env *Env) (Value, error) {
	program, err := e.Compile(source)
	if err != nil {
		return NewNull(), err
	}

	exec := e.newExecution(ctx)
	exec.source = source
	result := exec.eval(program, env)
	if result.IsError() {
		rerr := newRuntimeError(result)
		e.config.Logger.Debug("runtime error", "message", rerr.Message, "line", rerr.Pos.Line, "column", rerr.Pos.Column)
		return result, rerr
	}
	return result, nil
}

// Eval interprets an already-parsed node in env. Failures come back as ERROR
// values, never as Go errors.
func (e *Engine) Eval(node Node, env *Env) Value {
	return e.EvalContext(context.Background(), node, env)
}

// EvalContext is Eval with cancellation: once ctx is done the evaluation
// stops with an ERROR value.
func (e *Engine) EvalContext(ctx context.Context, node Node, env *Env) Value {
	return e.newExecution(ctx).eval(node, env)
}

// Builtins lists the names of the registered builtins.
func (e *Engine) Builtins() []string {
	return e.builtins.Names()
}

// ConfigSummary provides a human-readable description of the evaluation
// limits.
func (e *Engine) ConfigSummary() string {
	return fmt.Sprintf("steps=%s recursion=%s", limitString(e.config.StepQuota), limitString(e.config.RecursionLimit))
}

func limitString(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

// IsRuntimeError reports whether err carries a *RuntimeError.
func IsRuntimeError(err error) bool {
	var rerr *RuntimeError
	return errors.As(err, &rerr)
}
