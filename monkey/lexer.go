package monkey

import "unicode/utf8"

// Lexer scans source text into tokens one call at a time. A Lexer is not
// restartable; construct a new one to scan the input again.
type Lexer struct {
	input string

	position     int
	readPosition int

	line   int
	column int

	ch byte
}

// NewLexer prepares a lexer positioned at the first byte of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize scans the whole source and returns every token through EOF.
func Tokenize(source string) []Token {
	l := NewLexer(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.position = len(l.input)
		l.ch = 0
		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.atEOF() {
		return Token{Type: tokenEOF, Pos: Position{Line: l.line, Column: l.column + 1}}
	}

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			tok = l.makeToken(tokenEQ, "==")
			l.readChar()
		} else {
			tok = l.makeToken(tokenAssign, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.makeToken(tokenNotEQ, "!=")
			l.readChar()
		} else {
			tok = l.makeToken(tokenBang, "!")
		}
	case '+':
		tok = l.makeToken(tokenPlus, "+")
	case '-':
		tok = l.makeToken(tokenMinus, "-")
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
	case '/':
		tok = l.makeToken(tokenSlash, "/")
	case '<':
		tok = l.makeToken(tokenLT, "<")
	case '>':
		tok = l.makeToken(tokenGT, ">")
	case ',':
		tok = l.makeToken(tokenComma, ",")
	case ';':
		tok = l.makeToken(tokenSemicolon, ";")
	case ':':
		tok = l.makeToken(tokenColon, ":")
	case '(':
		tok = l.makeToken(tokenLParen, "(")
	case ')':
		tok = l.makeToken(tokenRParen, ")")
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
	case '"':
		tok = l.makeToken(tokenString, "")
		literal, terminated := l.readString()
		tok.Literal = literal
		tok.unterminated = !terminated
		if !terminated {
			return tok
		}
	default:
		switch {
		case isLetter(l.ch):
			tok = l.makeToken(tokenIdent, "")
			tok.Literal = l.readIdentifier()
			tok.Type = lookupIdent(tok.Literal)
			return tok
		case isDigit(l.ch):
			tok = l.makeToken(tokenInt, "")
			tok.Literal = l.readNumber()
			return tok
		default:
			// A multi-byte character is one ILLEGAL token, not one per byte.
			_, size := utf8.DecodeRuneInString(l.input[l.position:])
			tok = l.makeToken(tokenIllegal, l.input[l.position:l.position+size])
			for range size - 1 {
				l.readChar()
			}
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\n', '\r':
			l.readChar()
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEOF() && isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString consumes a double-quoted string starting at the opening quote.
// Backslashes are literal. The boolean reports whether a closing quote was
// found before the end of input.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1
	for {
		l.readChar()
		if l.atEOF() {
			return l.input[start:], false
		}
		if l.ch == '"' {
			return l.input[start:l.position], true
		}
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
