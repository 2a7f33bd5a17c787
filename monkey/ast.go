package monkey

// Node is implemented by every AST node. String renders the node back to a
// fully parenthesized source form.
type Node interface {
	Pos() Position
	String() string
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

type LetStatement struct {
	Name     *Identifier
	Value    Expression
	position Position
}

func (s *LetStatement) stmtNode()     {}
func (s *LetStatement) Pos() Position { return s.position }

type ReturnStatement struct {
	ReturnValue Expression
	position    Position
}

func (s *ReturnStatement) stmtNode()     {}
func (s *ReturnStatement) Pos() Position { return s.position }

type ExpressionStatement struct {
	Expression Expression
	position   Position
}

func (s *ExpressionStatement) stmtNode()     {}
func (s *ExpressionStatement) Pos() Position { return s.position }

type BlockStatement struct {
	Statements []Statement
	position   Position
}

func (s *BlockStatement) stmtNode()     {}
func (s *BlockStatement) Pos() Position { return s.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type IntegerLiteral struct {
	Value    int64
	position Position
}

func (e *IntegerLiteral) exprNode()     {}
func (e *IntegerLiteral) Pos() Position { return e.position }

type BooleanLiteral struct {
	Value    bool
	position Position
}

func (e *BooleanLiteral) exprNode()     {}
func (e *BooleanLiteral) Pos() Position { return e.position }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type PrefixExpression struct {
	Operator string
	Right    Expression
	position Position
}

func (e *PrefixExpression) exprNode()     {}
func (e *PrefixExpression) Pos() Position { return e.position }

type InfixExpression struct {
	Left     Expression
	Operator string
	Right    Expression
	position Position
}

func (e *InfixExpression) exprNode()     {}
func (e *InfixExpression) Pos() Position { return e.position }

// IfExpression has an optional Alternative; a nil Alternative means no else
// branch was written.
type IfExpression struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
	position    Position
}

func (e *IfExpression) exprNode()     {}
func (e *IfExpression) Pos() Position { return e.position }

type FunctionLiteral struct {
	Parameters []*Identifier
	Body       *BlockStatement
	position   Position
}

func (e *FunctionLiteral) exprNode()     {}
func (e *FunctionLiteral) Pos() Position { return e.position }

type CallExpression struct {
	Function  Expression
	Arguments []Expression
	position  Position
}

func (e *CallExpression) exprNode()     {}
func (e *CallExpression) Pos() Position { return e.position }

type ArrayLiteral struct {
	Elements []Expression
	position Position
}

func (e *ArrayLiteral) exprNode()     {}
func (e *ArrayLiteral) Pos() Position { return e.position }

type IndexExpression struct {
	Left     Expression
	Index    Expression
	position Position
}

func (e *IndexExpression) exprNode()     {}
func (e *IndexExpression) Pos() Position { return e.position }

type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral keeps its pairs in source order. Keys are unique by their
// rendered form; the parser replaces the value of a repeated key in place.
type HashLiteral struct {
	Pairs    []HashPair
	position Position
}

func (e *HashLiteral) exprNode()     {}
func (e *HashLiteral) Pos() Position { return e.position }
