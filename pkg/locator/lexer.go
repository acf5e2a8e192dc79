package locator

import (
	"fmt"
	"strings"
)

// TokenKind classifies a UiSelector source token.
type TokenKind int

const (
	TokenIdent TokenKind = iota
	TokenString
	TokenBool
	TokenInt
	TokenPunct
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenBool:
		return "boolean"
	case TokenInt:
		return "integer"
	case TokenPunct:
		return "punctuation"
	default:
		return "end of input"
	}
}

// Token is one lexical unit of UiSelector source. String tokens carry the
// unescaped text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) describe() string {
	if t.Kind == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// Tokenize splits UiSelector source into tokens. The returned slice always
// ends with a TokenEOF token.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: src}
	var toks []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// lexer is a single-pass scanner over UiSelector source.
type lexer struct {
	src string
	pos int
}

func (lx *lexer) next() (Token, error) {
	for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
		lx.pos++
	}
	if lx.pos >= len(lx.src) {
		return Token{Kind: TokenEOF, Pos: lx.pos}, nil
	}

	start := lx.pos
	ch := lx.src[lx.pos]

	switch {
	case ch == '(' || ch == ')' || ch == '.' || ch == ',' || ch == ';':
		lx.pos++
		return Token{Kind: TokenPunct, Text: string(ch), Pos: start}, nil

	case ch == '"':
		return lx.scanString()

	case ch == '-' || isDigit(ch):
		if ch == '-' && (lx.pos+1 >= len(lx.src) || !isDigit(lx.src[lx.pos+1])) {
			return Token{}, &LexError{Pos: start, Msg: "unexpected character '-'"}
		}
		lx.pos++
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.pos++
		}
		return Token{Kind: TokenInt, Text: lx.src[start:lx.pos], Pos: start}, nil

	case isIdentStart(ch):
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		text := lx.src[start:lx.pos]
		kind := TokenIdent
		if text == "true" || text == "false" {
			kind = TokenBool
		}
		return Token{Kind: kind, Text: text, Pos: start}, nil

	default:
		return Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", ch)}
	}
}

// scanString consumes a double-quoted literal, resolving escapes.
func (lx *lexer) scanString() (Token, error) {
	start := lx.pos
	lx.pos++ // opening quote
	var buf strings.Builder
	for {
		if lx.pos >= len(lx.src) {
			return Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
		}
		ch := lx.src[lx.pos]
		lx.pos++
		switch ch {
		case '"':
			return Token{Kind: TokenString, Text: buf.String(), Pos: start}, nil
		case '\\':
			if lx.pos >= len(lx.src) {
				return Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
			}
			esc := lx.src[lx.pos]
			lx.pos++
			switch esc {
			case '"', '\\':
				buf.WriteByte(esc)
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case 'r':
				buf.WriteByte('\r')
			default:
				// unknown escape, keep verbatim
				buf.WriteByte('\\')
				buf.WriteByte(esc)
			}
		default:
			buf.WriteByte(ch)
		}
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
