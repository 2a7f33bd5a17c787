package monkey

import (
	"fmt"
	"strconv"
)

func (p *Parser) parseExpression(precedence int) Expression {
	prefix := prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}

	left := prefix(p)
	if left == nil {
		return nil
	}

	for p.peekToken.Type != tokenSemicolon && precedence < p.peekPrecedence() {
		infix := infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(p, left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorAt(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &IntegerLiteral{Value: value, position: p.curToken.Pos}
}

func (p *Parser) parseStringLiteral() Expression {
	if p.curToken.unterminated {
		p.errorAt(p.curToken.Pos, "unterminated string literal")
		return nil
	}
	return &StringLiteral{Value: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Value: p.curToken.Type == tokenTrue, position: p.curToken.Pos}
}

func (p *Parser) parsePrefixExpression() Expression {
	pos := p.curToken.Pos
	operator := p.curToken.Literal
	p.nextToken()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &PrefixExpression{Operator: operator, Right: right, position: pos}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	pos := p.curToken.Pos
	operator := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &InfixExpression{Left: left, Operator: operator, Right: right, position: pos}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	p.nextToken()
	condition := p.parseExpression(precLowest)
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenRParen) {
		return nil
	}
	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	expr := &IfExpression{Condition: condition, position: pos}
	expr.Consequence = p.parseBlockStatement()

	if p.peekToken.Type == tokenElse {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	return &FunctionLiteral{Parameters: params, Body: p.parseBlockStatement(), position: pos}
}

func (p *Parser) parseFunctionParameters() ([]*Identifier, bool) {
	list, ok := p.parseExpressionList(tokenRParen)
	if !ok {
		return nil, false
	}

	params := make([]*Identifier, 0, len(list))
	for _, expr := range list {
		ident, isIdent := expr.(*Identifier)
		if !isIdent {
			p.errorAt(expr.Pos(), "expected parameter name, got %s", expr.String())
			return nil, false
		}
		params = append(params, ident)
	}
	return params, true
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	args, ok := p.parseExpressionList(tokenRParen)
	if !ok {
		return nil
	}
	return &CallExpression{Function: function, Arguments: args, position: function.Pos()}
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	pos := p.curToken.Pos
	p.nextToken()
	index := p.parseExpression(precLowest)
	if index == nil {
		return nil
	}
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return &IndexExpression{Left: left, Index: index, position: pos}
}

func (p *Parser) parseArrayLiteral() Expression {
	pos := p.curToken.Pos
	elements, ok := p.parseExpressionList(tokenRBracket)
	if !ok {
		return nil
	}
	return &ArrayLiteral{Elements: elements, position: pos}
}

// parseExpressionList parses comma separated expressions up to and including
// the end token. The current token is the opening delimiter.
func (p *Parser) parseExpressionList(end TokenType) ([]Expression, bool) {
	list := []Expression{}

	if p.peekToken.Type == end {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	first := p.parseExpression(precLowest)
	if first == nil {
		return nil, false
	}
	list = append(list, first)

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		expr := p.parseExpression(precLowest)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil, false
	}

	return list, true
}

func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Pairs: []HashPair{}, position: p.curToken.Pos}
	index := make(map[string]int)

	for p.peekToken.Type != tokenRBrace {
		p.nextToken()
		key := p.parseExpression(precLowest)
		if key == nil {
			return nil
		}

		if !p.expectPeek(tokenColon) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(precLowest)
		if value == nil {
			return nil
		}

		identity := hashKeyIdentity(key)
		if i, seen := index[identity]; seen {
			hash.Pairs[i].Value = value
		} else {
			index[identity] = len(hash.Pairs)
			hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})
		}

		if p.peekToken.Type != tokenRBrace && !p.expectPeek(tokenComma) {
			return nil
		}
	}

	if !p.expectPeek(tokenRBrace) {
		return nil
	}

	return hash
}

func hashKeyIdentity(key Expression) string {
	return fmt.Sprintf("%T:%s", key, key.String())
}
