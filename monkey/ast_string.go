package monkey

import (
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (s *LetStatement) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name.String())
	b.WriteString(" = ")
	b.WriteString(nodeString(s.Value))
	b.WriteString(";")
	return b.String()
}

func (s *ReturnStatement) String() string {
	return "return " + nodeString(s.ReturnValue) + ";"
}

func (s *ExpressionStatement) String() string {
	return nodeString(s.Expression)
}

func (s *BlockStatement) String() string {
	var b strings.Builder
	for _, stmt := range s.Statements {
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (e *Identifier) String() string     { return e.Name }
func (e *IntegerLiteral) String() string { return strconv.FormatInt(e.Value, 10) }
func (e *BooleanLiteral) String() string { return strconv.FormatBool(e.Value) }
func (e *StringLiteral) String() string  { return e.Value }

func (e *PrefixExpression) String() string {
	return "(" + e.Operator + nodeString(e.Right) + ")"
}

func (e *InfixExpression) String() string {
	return "(" + nodeString(e.Left) + " " + e.Operator + " " + nodeString(e.Right) + ")"
}

// String renders "if<cond> <consequence>" with no space after the keyword,
// followed by "else <alternative>" when an else branch exists.
func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if")
	b.WriteString(nodeString(e.Condition))
	b.WriteString(" ")
	b.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		b.WriteString("else ")
		b.WriteString(e.Alternative.String())
	}
	return b.String()
}

func (e *FunctionLiteral) String() string {
	params := make([]string, len(e.Parameters))
	for i, param := range e.Parameters {
		params[i] = param.String()
	}
	return "fn(" + strings.Join(params, ", ") + "){ " + e.Body.String() + " }"
}

func (e *CallExpression) String() string {
	return nodeString(e.Function) + "(" + joinExpressions(e.Arguments) + ")"
}

func (e *ArrayLiteral) String() string {
	return "[" + joinExpressions(e.Elements) + "]"
}

func (e *IndexExpression) String() string {
	return "(" + nodeString(e.Left) + "[" + nodeString(e.Index) + "])"
}

func (e *HashLiteral) String() string {
	pairs := make([]string, len(e.Pairs))
	for i, pair := range e.Pairs {
		pairs[i] = nodeString(pair.Key) + ": " + nodeString(pair.Value)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = nodeString(expr)
	}
	return strings.Join(parts, ", ")
}

func nodeString(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}
