package monkey

func (exec *Execution) evalCallExpression(call *CallExpression, env *Env) Value {
	callee := exec.eval(call.Function, env)
	if callee.IsError() {
		return callee
	}

	args, errVal, ok := exec.evalExpressions(call.Arguments, env)
	if !ok {
		return errVal
	}

	name := "fn"
	if ident, ok := call.Function.(*Identifier); ok {
		name = ident.Name
	}
	return exec.applyFunction(name, callee, args, call.Pos())
}

func (exec *Execution) applyFunction(name string, callee Value, args []Value, pos Position) Value {
	switch callee.Kind() {
	case KindFunction:
		return exec.callFunction(name, callee.Function(), args, pos)
	case KindBuiltin:
		return exec.callBuiltin(callee.Builtin(), args, pos)
	default:
		return exec.errorAt(pos, "not a function: %s", callee.Kind())
	}
}

// callFunction binds parameters positionally in a scope enclosed by the
// closure's environment. Missing arguments bind NULL and extra arguments are
// ignored.
func (exec *Execution) callFunction(name string, fn *Function, args []Value, pos Position) Value {
	if exec.recursionCap > 0 && len(exec.callStack) >= exec.recursionCap {
		return exec.errorAt(pos, "recursion depth exceeded (%d)", exec.recursionCap)
	}
	exec.callStack = append(exec.callStack, StackFrame{Function: name, Pos: pos})
	callerSource := exec.source
	exec.source = fn.source
	defer func() {
		exec.callStack = exec.callStack[:len(exec.callStack)-1]
		exec.source = callerSource
	}()

	scope := NewEnclosedEnv(fn.Env)
	for i, param := range fn.Parameters {
		if i < len(args) {
			scope.Set(param.Name, args[i])
		} else {
			scope.Set(param.Name, NewNull())
		}
	}

	return exec.eval(fn.Body, scope).Unwrap()
}

func (exec *Execution) callBuiltin(builtin *Builtin, args []Value, pos Position) Value {
	if builtin.Arity >= 0 && len(args) != builtin.Arity {
		return exec.withErrorPos(wrongArgumentCount(len(args), builtin.Arity), pos)
	}
	return exec.withErrorPos(builtin.Fn(exec, args), pos)
}

// withErrorPos attaches pos and the call stack to an ERROR value that has no
// position yet.
func (exec *Execution) withErrorPos(v Value, pos Position) Value {
	if !v.IsError() || v.ErrorPos() != (Position{}) {
		return v
	}
	return exec.errorAt(pos, "%s", v.ErrorMessage())
}
