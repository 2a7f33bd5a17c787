package monkey

import "fmt"

// ParseError is a syntax error with the position of the offending token.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parser builds an AST from a Lexer's tokens with one token of lookahead.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errors []*ParseError
}

// NewParser primes the current and peek tokens from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses source and returns the program together with every syntax
// error message, in the order they were found.
func Parse(source string) (*Program, []string) {
	p := NewParser(NewLexer(source))
	program := p.ParseProgram()
	return program, p.Errors()
}

// Errors returns the accumulated error messages without positions.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errors))
	for i, err := range p.errors {
		msgs[i] = err.Msg
	}
	return msgs
}

// ParseErrors returns the accumulated errors with their positions.
func (p *Parser) ParseErrors() []*ParseError {
	return append([]*ParseError(nil), p.errors...)
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram parses statements until EOF. A malformed statement records an
// error and parsing resumes with the following token.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenLet:
		return p.parseLetStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}

	if !p.expectPeek(tokenAssign) {
		return nil
	}

	p.nextToken()
	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	p.skipOptionalSemicolon()

	return &LetStatement{Name: name, Value: value, position: pos}
}

func (p *Parser) parseReturnStatement() Statement {
	pos := p.curToken.Pos
	p.nextToken()
	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	p.skipOptionalSemicolon()

	return &ReturnStatement{ReturnValue: value, position: pos}
}

func (p *Parser) parseExpressionStatement() Statement {
	pos := p.curToken.Pos
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	// Optional so that one-liners like `5 + 5` work in the REPL.
	p.skipOptionalSemicolon()

	return &ExpressionStatement{Expression: expr, position: pos}
}

// parseBlockStatement expects the current token to be `{` and stops on the
// matching `}` or at EOF.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Statements: []Statement{}, position: p.curToken.Pos}

	p.nextToken()
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
	}
}

func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt TokenType) {
	p.errorAt(p.peekToken.Pos, "expected next token to be %s, got %s instead", tt, p.peekToken.Type)
}

func (p *Parser) noPrefixParseFnError(tok Token) {
	p.errorAt(tok.Pos, "no prefix parse function for %s found", tok.Type)
}

func (p *Parser) errorAt(pos Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
