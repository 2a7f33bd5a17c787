package monkey

import (
	"maps"
	"slices"
)

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma     TokenType = ","
	tokenSemicolon TokenType = ";"
	tokenColon     TokenType = ":"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"

	tokenFunction TokenType = "FUNCTION"
	tokenLet      TokenType = "LET"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenReturn   TokenType = "RETURN"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position

	unterminated bool
}

// Position identifies a 1-based line and column in the source text.
type Position struct {
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"fn":     tokenFunction,
	"let":    tokenLet,
	"true":   tokenTrue,
	"false":  tokenFalse,
	"if":     tokenIf,
	"else":   tokenElse,
	"return": tokenReturn,
}

// Keywords returns the reserved words of the language in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(keywords))
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return tokenIdent
}
