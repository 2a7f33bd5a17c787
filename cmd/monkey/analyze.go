package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/mgomes/monkey/monkey"
)

const topLevelFunction = "<main>"

type lintWarning struct {
	Function string
	Pos      monkey.Position
	Message  string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	scriptPath, source, err := readScript("analyze", fs.Args())
	if err != nil {
		return err
	}

	engine := monkey.MustNewEngine(monkey.Config{})
	program, err := engine.Compile(source)
	if err != nil {
		return fmt.Errorf("analysis compile failed: %w", err)
	}

	warnings := analyzeProgramWarnings(engine, program)
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		line := max(warning.Pos.Line, 1)
		column := max(warning.Pos.Column, 1)
		fmt.Printf("%s:%d:%d: %s (%s)\n", scriptPath, line, column, warning.Message, warning.Function)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

// lintScope tracks let bindings visible at a point in the program. A nil
// function means the name is bound to something other than a function
// literal, so calls through it cannot be checked.
type lintScope struct {
	outer     *lintScope
	functions map[string]*monkey.FunctionLiteral
}

func newLintScope(outer *lintScope) *lintScope {
	return &lintScope{outer: outer, functions: make(map[string]*monkey.FunctionLiteral)}
}

func (s *lintScope) lookup(name string) (*monkey.FunctionLiteral, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if fn, ok := scope.functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

type linter struct {
	builtins map[string]struct{}
	warnings []lintWarning
}

func analyzeProgramWarnings(engine *monkey.Engine, program *monkey.Program) []lintWarning {
	l := &linter{builtins: make(map[string]struct{})}
	for _, name := range engine.Builtins() {
		l.builtins[name] = struct{}{}
	}
	l.lintStatements(topLevelFunction, program.Statements, newLintScope(nil))

	warnings := l.warnings
	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		if warnings[i].Pos.Column != warnings[j].Pos.Column {
			return warnings[i].Pos.Column < warnings[j].Pos.Column
		}
		return warnings[i].Function < warnings[j].Function
	})
	return warnings
}

func (l *linter) warn(function string, pos monkey.Position, format string, args ...any) {
	l.warnings = append(l.warnings, lintWarning{
		Function: function,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// lintStatements reports statements that follow a return and reports whether
// the sequence always returns.
func (l *linter) lintStatements(function string, statements []monkey.Statement, scope *lintScope) bool {
	terminated := false
	for _, stmt := range statements {
		if terminated {
			l.warn(function, stmt.Pos(), "unreachable statement")
			continue
		}
		if l.lintStatement(function, stmt, scope) {
			terminated = true
		}
	}
	return terminated
}

func (l *linter) lintStatement(function string, stmt monkey.Statement, scope *lintScope) bool {
	switch s := stmt.(type) {
	case *monkey.LetStatement:
		name := s.Name.Name
		if _, ok := l.builtins[name]; ok {
			l.warn(function, s.Pos(), "let %s shadows builtin", name)
		}
		if fn, ok := s.Value.(*monkey.FunctionLiteral); ok {
			// Bound first so recursive calls inside the body resolve.
			scope.functions[name] = fn
			l.lintFunction(name, fn, scope)
			return false
		}
		l.lintExpression(function, s.Value, scope)
		scope.functions[name] = nil
		return false
	case *monkey.ReturnStatement:
		l.lintExpression(function, s.ReturnValue, scope)
		return true
	case *monkey.ExpressionStatement:
		if ifExpr, ok := s.Expression.(*monkey.IfExpression); ok {
			return l.lintIf(function, ifExpr, scope)
		}
		l.lintExpression(function, s.Expression, scope)
		return false
	default:
		return false
	}
}

// lintIf reports whether both branches of an if always return.
func (l *linter) lintIf(function string, expr *monkey.IfExpression, scope *lintScope) bool {
	l.lintExpression(function, expr.Condition, scope)
	consequentTerminated := l.lintStatements(function, expr.Consequence.Statements, scope)
	if expr.Alternative == nil {
		return false
	}
	alternateTerminated := l.lintStatements(function, expr.Alternative.Statements, scope)
	return consequentTerminated && alternateTerminated
}

func (l *linter) lintFunction(name string, fn *monkey.FunctionLiteral, scope *lintScope) {
	inner := newLintScope(scope)
	for _, param := range fn.Parameters {
		inner.functions[param.Name] = nil
	}
	l.lintStatements(name, fn.Body.Statements, inner)
}

func (l *linter) lintExpression(function string, expr monkey.Expression, scope *lintScope) {
	switch e := expr.(type) {
	case *monkey.PrefixExpression:
		l.lintExpression(function, e.Right, scope)
	case *monkey.InfixExpression:
		l.lintExpression(function, e.Left, scope)
		l.lintExpression(function, e.Right, scope)
	case *monkey.IfExpression:
		l.lintIf(function, e, scope)
	case *monkey.FunctionLiteral:
		l.lintFunction("fn", e, scope)
	case *monkey.CallExpression:
		l.lintCall(function, e, scope)
	case *monkey.ArrayLiteral:
		for _, elem := range e.Elements {
			l.lintExpression(function, elem, scope)
		}
	case *monkey.IndexExpression:
		l.lintExpression(function, e.Left, scope)
		l.lintExpression(function, e.Index, scope)
	case *monkey.HashLiteral:
		for _, pair := range e.Pairs {
			l.lintExpression(function, pair.Key, scope)
			l.lintExpression(function, pair.Value, scope)
		}
	}
}

func (l *linter) lintCall(function string, call *monkey.CallExpression, scope *lintScope) {
	l.lintExpression(function, call.Function, scope)
	for _, arg := range call.Arguments {
		l.lintExpression(function, arg, scope)
	}

	ident, ok := call.Function.(*monkey.Identifier)
	if !ok {
		return
	}
	fn, ok := scope.lookup(ident.Name)
	if !ok || fn == nil {
		return
	}
	if got, want := len(call.Arguments), len(fn.Parameters); got != want {
		l.warn(function, call.Pos(), "call to %s with %d argument(s), want %d", ident.Name, got, want)
	}
}
