package monkey

import (
	"context"
	"fmt"
	"io"
	"slices"
)

// Execution carries the per-evaluation state: the owning engine and the step
// and call-depth counters used to enforce the configured limits.
type Execution struct {
	engine       *Engine
	ctx          context.Context
	quota        int
	recursionCap int
	steps        int
	callStack    []StackFrame

	// source is the text positions currently refer to. It follows calls into
	// closures defined by other sources and is empty when unknown.
	source string
}

func (e *Engine) newExecution(ctx context.Context) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Execution{
		engine:       e,
		ctx:          ctx,
		quota:        e.config.StepQuota,
		recursionCap: e.config.RecursionLimit,
	}
}

// Stdout is where builtins that print write their output.
func (exec *Execution) Stdout() io.Writer {
	return exec.engine.config.Stdout
}

// errorAt builds an ERROR value raised at pos, capturing the active calls.
func (exec *Execution) errorAt(pos Position, format string, args ...any) Value {
	err := newErrorAt(pos, fmt.Sprintf(format, args...))
	if len(exec.callStack) > 0 {
		frames := slices.Clone(exec.callStack)
		slices.Reverse(frames)
		err.data.(*errorObject).frames = frames
	}
	err.data.(*errorObject).source = exec.source
	return err
}

func (exec *Execution) step(pos Position) (Value, bool) {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return exec.errorAt(pos, "step quota exceeded (%d)", exec.quota), false
	}
	if err := exec.ctx.Err(); err != nil {
		return exec.errorAt(pos, "execution interrupted: %v", err), false
	}
	return Value{}, true
}

// eval interprets node in env. ERROR and RETURN_VALUE results travel back up
// through ordinary return values; every composite rule checks its children
// and forwards them before doing anything else.
func (exec *Execution) eval(node Node, env *Env) Value {
	if node == nil {
		return NewError("unknown node: <nil>")
	}
	if errVal, ok := exec.step(node.Pos()); !ok {
		return errVal
	}

	switch n := node.(type) {
	case *Program:
		return exec.evalProgram(n, env)
	case *ExpressionStatement:
		return exec.eval(n.Expression, env)
	case *BlockStatement:
		return exec.evalBlockStatement(n, env)
	case *LetStatement:
		val := exec.eval(n.Value, env)
		if val.IsError() {
			return val
		}
		return env.Set(n.Name.Name, val)
	case *ReturnStatement:
		val := exec.eval(n.ReturnValue, env)
		if val.IsError() {
			return val
		}
		return NewReturn(val)
	case *IntegerLiteral:
		return NewInt(n.Value)
	case *BooleanLiteral:
		return NewBool(n.Value)
	case *StringLiteral:
		return NewString(n.Value)
	case *Identifier:
		return exec.evalIdentifier(n, env)
	case *PrefixExpression:
		right := exec.eval(n.Right, env)
		if right.IsError() {
			return right
		}
		return exec.evalPrefixExpression(n, right)
	case *InfixExpression:
		left := exec.eval(n.Left, env)
		if left.IsError() {
			return left
		}
		right := exec.eval(n.Right, env)
		if right.IsError() {
			return right
		}
		return exec.evalInfixExpression(n, left, right)
	case *IfExpression:
		return exec.evalIfExpression(n, env)
	case *FunctionLiteral:
		fn := NewFunction(n.Parameters, n.Body, env)
		fn.data.(*Function).source = exec.source
		return fn
	case *CallExpression:
		return exec.evalCallExpression(n, env)
	case *ArrayLiteral:
		elements, errVal, ok := exec.evalExpressions(n.Elements, env)
		if !ok {
			return errVal
		}
		return NewArray(elements)
	case *IndexExpression:
		return exec.evalIndexExpression(n, env)
	case *HashLiteral:
		return exec.errorAt(n.Pos(), "hash literals are not supported")
	default:
		return exec.errorAt(node.Pos(), "unknown node: %T", node)
	}
}

// evalProgram stops at the first ERROR or return signal. A top-level return
// is unwrapped so it reads as the program's result.
func (exec *Execution) evalProgram(program *Program, env *Env) Value {
	result := NewNull()
	for _, stmt := range program.Statements {
		result = exec.eval(stmt, env)
		switch result.Kind() {
		case KindReturn:
			return result.Unwrap()
		case KindError:
			return result
		}
	}
	return result
}

// evalBlockStatement forwards return signals still wrapped so they keep
// unwinding until a function call boundary.
func (exec *Execution) evalBlockStatement(block *BlockStatement, env *Env) Value {
	result := NewNull()
	for _, stmt := range block.Statements {
		result = exec.eval(stmt, env)
		if kind := result.Kind(); kind == KindReturn || kind == KindError {
			return result
		}
	}
	return result
}

func (exec *Execution) evalIdentifier(ident *Identifier, env *Env) Value {
	if val, ok := env.Get(ident.Name); ok {
		return val
	}
	if builtin, ok := exec.engine.builtins.Lookup(ident.Name); ok {
		return builtin
	}
	return exec.errorAt(ident.Pos(), "identifier not found: %s", ident.Name)
}

func (exec *Execution) evalIfExpression(expr *IfExpression, env *Env) Value {
	condition := exec.eval(expr.Condition, env)
	if condition.IsError() {
		return condition
	}

	switch {
	case condition.Truthy():
		return exec.eval(expr.Consequence, env)
	case expr.Alternative != nil:
		return exec.eval(expr.Alternative, env)
	default:
		return NewNull()
	}
}

// evalExpressions evaluates exprs left to right and stops at the first ERROR.
func (exec *Execution) evalExpressions(exprs []Expression, env *Env) ([]Value, Value, bool) {
	values := make([]Value, 0, len(exprs))
	for _, expr := range exprs {
		val := exec.eval(expr, env)
		if val.IsError() {
			return nil, val, false
		}
		values = append(values, val)
	}
	return values, Value{}, true
}
