package locator

import (
	"fmt"
	"strconv"
)

// ParseUiSelector parses UiSelector source text into a selector tree.
func ParseUiSelector(src string) (*Selector, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse consumes a token stream produced by Tokenize. The stream must hold
// exactly one `new UiSelector()...;` expression.
func Parse(toks []Token) (*Selector, error) {
	p := &parser{toks: toks}
	sel, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.fail("end of input", tok)
	}
	return sel, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) fail(expected string, found Token) error {
	return &ParseError{Pos: found.Pos, Expected: expected, Found: found.describe()}
}

func (p *parser) expectPunct(text string) error {
	tok := p.peek()
	if tok.Kind != TokenPunct || tok.Text != text {
		return p.fail(fmt.Sprintf("%q", text), tok)
	}
	p.advance()
	return nil
}

func (p *parser) expectKeyword(word string) error {
	tok := p.peek()
	if tok.Kind != TokenIdent || tok.Text != word {
		return p.fail(fmt.Sprintf("%q", word), tok)
	}
	p.advance()
	return nil
}

// parseSelector reads `new UiSelector()` followed by chained method calls.
// The top-level selector is terminated by `;` (consumed by Parse); a nested
// one ends at the enclosing `)`.
func (p *parser) parseSelector() (*Selector, error) {
	if err := p.expectKeyword("new"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("UiSelector"); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	sel := &Selector{}
	for p.peek().Kind == TokenPunct && p.peek().Text == "." {
		p.advance()
		if err := p.parseMethodCall(sel); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

// parseMethodCall reads one `method(arg)` link and appends it to sel.
func (p *parser) parseMethodCall(sel *Selector) error {
	nameTok := p.peek()
	if nameTok.Kind != TokenIdent {
		return p.fail("method name", nameTok)
	}
	p.advance()
	if err := p.expectPunct("("); err != nil {
		return err
	}

	switch nameTok.Text {
	case methodChildSelector, methodFromParent:
		if sel.Relation != nil {
			return &ParseError{
				Pos:      nameTok.Pos,
				Expected: "at most one childSelector/fromParent per selector",
				Found:    fmt.Sprintf("second relation %q", nameTok.Text),
			}
		}
		nested, err := p.parseSelector()
		if err != nil {
			return err
		}
		kind := RelationChild
		if nameTok.Text == methodFromParent {
			kind = RelationParent
		}
		sel.Relation = &Relation{Kind: kind, Selector: nested}

	default:
		attr, ok := AttributeByMethod(nameTok.Text)
		if !ok {
			return &ParseError{
				Pos:      nameTok.Pos,
				Expected: "UiSelector method",
				Found:    fmt.Sprintf("unknown method %q", nameTok.Text),
			}
		}
		value, err := p.parseArg(attr)
		if err != nil {
			return err
		}
		sel.Criteria = append(sel.Criteria, Criterion{Attribute: attr, Value: value})
	}

	return p.expectPunct(")")
}

// parseArg reads one literal argument of the attribute's declared type.
func (p *parser) parseArg(attr Attribute) (any, error) {
	tok := p.peek()
	switch attr.ArgType() {
	case ArgString:
		if tok.Kind != TokenString {
			return nil, p.fail(fmt.Sprintf("string argument for %s", attr.Method()), tok)
		}
		p.advance()
		return tok.Text, nil
	case ArgBool:
		if tok.Kind != TokenBool {
			return nil, p.fail(fmt.Sprintf("boolean argument for %s", attr.Method()), tok)
		}
		p.advance()
		return tok.Text == "true", nil
	default:
		if tok.Kind != TokenInt {
			return nil, p.fail(fmt.Sprintf("integer argument for %s", attr.Method()), tok)
		}
		p.advance()
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, &ParseError{Pos: tok.Pos, Expected: "integer", Found: tok.Text}
		}
		return n, nil
	}
}
