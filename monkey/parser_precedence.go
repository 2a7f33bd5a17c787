package monkey

const (
	precLowest = iota + 1
	precEquals
	precLessGreater
	precSum
	precProduct
	precPrefix
	precCall
	precIndex
)

var precedences = map[TokenType]int{
	tokenEQ:       precEquals,
	tokenNotEQ:    precEquals,
	tokenLT:       precLessGreater,
	tokenGT:       precLessGreater,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenSlash:    precProduct,
	tokenAsterisk: precProduct,
	tokenLParen:   precCall,
	tokenLBracket: precIndex,
}

type (
	prefixParseFn func(*Parser) Expression
	infixParseFn  func(*Parser, Expression) Expression
)

// The handler tables are shared by every parser; handlers receive the parser
// explicitly. They are filled in init because the handlers refer back to the
// tables through parseExpression.
var (
	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
)

func init() {
	prefixParseFns = map[TokenType]prefixParseFn{
		tokenIdent:    (*Parser).parseIdentifier,
		tokenInt:      (*Parser).parseIntegerLiteral,
		tokenString:   (*Parser).parseStringLiteral,
		tokenTrue:     (*Parser).parseBooleanLiteral,
		tokenFalse:    (*Parser).parseBooleanLiteral,
		tokenBang:     (*Parser).parsePrefixExpression,
		tokenMinus:    (*Parser).parsePrefixExpression,
		tokenLParen:   (*Parser).parseGroupedExpression,
		tokenIf:       (*Parser).parseIfExpression,
		tokenFunction: (*Parser).parseFunctionLiteral,
		tokenLBracket: (*Parser).parseArrayLiteral,
		tokenLBrace:   (*Parser).parseHashLiteral,
	}

	infixParseFns = map[TokenType]infixParseFn{
		tokenPlus:     (*Parser).parseInfixExpression,
		tokenMinus:    (*Parser).parseInfixExpression,
		tokenSlash:    (*Parser).parseInfixExpression,
		tokenAsterisk: (*Parser).parseInfixExpression,
		tokenEQ:       (*Parser).parseInfixExpression,
		tokenNotEQ:    (*Parser).parseInfixExpression,
		tokenLT:       (*Parser).parseInfixExpression,
		tokenGT:       (*Parser).parseInfixExpression,
		tokenLParen:   (*Parser).parseCallExpression,
		tokenLBracket: (*Parser).parseIndexExpression,
	}
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return precLowest
}
