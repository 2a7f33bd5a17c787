package monkey

func (exec *Execution) evalPrefixExpression(expr *PrefixExpression, right Value) Value {
	switch expr.Operator {
	case "!":
		return NewBool(!right.Truthy())
	case "-":
		if right.Kind() != KindInteger {
			return exec.errorAt(expr.Pos(), "unknown operator: -%s", right.Kind())
		}
		return NewInt(-right.Int())
	default:
		return exec.errorAt(expr.Pos(), "unknown operator: %s%s", expr.Operator, right.Kind())
	}
}

func (exec *Execution) evalInfixExpression(expr *InfixExpression, left, right Value) Value {
	op := expr.Operator
	switch {
	case left.Kind() == KindInteger && right.Kind() == KindInteger:
		return exec.evalIntegerInfix(expr, left.Int(), right.Int())
	case left.Kind() == KindString && right.Kind() == KindString:
		if op != "+" {
			return exec.errorAt(expr.Pos(), "unknown operator: %s %s %s", left.Kind(), op, right.Kind())
		}
		return NewString(left.Str() + right.Str())
	case left.Kind() != right.Kind():
		return exec.errorAt(expr.Pos(), "type mismatch: %s %s %s", left.Kind(), op, right.Kind())
	case op == "==":
		return NewBool(left.Equal(right))
	case op == "!=":
		return NewBool(!left.Equal(right))
	default:
		return exec.errorAt(expr.Pos(), "unknown operator: %s %s %s", left.Kind(), op, right.Kind())
	}
}

func (exec *Execution) evalIntegerInfix(expr *InfixExpression, left, right int64) Value {
	switch expr.Operator {
	case "+":
		return NewInt(left + right)
	case "-":
		return NewInt(left - right)
	case "*":
		return NewInt(left * right)
	case "/":
		if right == 0 {
			return exec.errorAt(expr.Pos(), "division by zero")
		}
		// Go integer division truncates toward zero.
		return NewInt(left / right)
	case "<":
		return NewBool(left < right)
	case ">":
		return NewBool(left > right)
	case "==":
		return NewBool(left == right)
	case "!=":
		return NewBool(left != right)
	default:
		return exec.errorAt(expr.Pos(), "unknown operator: INTEGER %s INTEGER", expr.Operator)
	}
}

// evalIndexExpression only supports ARRAY[INTEGER]; indexes outside the array
// yield NULL.
func (exec *Execution) evalIndexExpression(expr *IndexExpression, env *Env) Value {
	left := exec.eval(expr.Left, env)
	if left.IsError() {
		return left
	}
	index := exec.eval(expr.Index, env)
	if index.IsError() {
		return index
	}

	if left.Kind() != KindArray || index.Kind() != KindInteger {
		return exec.errorAt(expr.Pos(), "index operator not supported: %s", left.Kind())
	}

	elems := left.Array()
	i := index.Int()
	if i < 0 || i >= int64(len(elems)) {
		return NewNull()
	}
	return elems[i]
}
