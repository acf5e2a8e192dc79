package locator

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeXPath renders the selector as an XPath expression rooted at //.
// A className criterion becomes the node test; every other criterion becomes
// a bracket predicate in criteria order. Relations extend the path:
// childSelector appends a child step, fromParent routes through parent::*
// so the nested selector becomes the match target.
func EncodeXPath(sel *Selector) (string, error) {
	var buf strings.Builder
	buf.WriteString("//")
	if err := writeXPathStep(&buf, sel); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeXPathStep(buf *strings.Builder, sel *Selector) error {
	if sel == nil {
		buf.WriteString("*")
		return nil
	}

	tag := "*"
	criteria := sel.Criteria
	for i, c := range criteria {
		if c.Attribute == AttrClassName && !c.Negated && !c.IsNull() {
			tag = fmt.Sprint(c.Value)
			criteria = make([]Criterion, 0, len(sel.Criteria)-1)
			criteria = append(criteria, sel.Criteria[:i]...)
			criteria = append(criteria, sel.Criteria[i+1:]...)
			break
		}
	}
	buf.WriteString(tag)

	for _, c := range criteria {
		pred, err := xpathPredicate(c)
		if err != nil {
			return err
		}
		buf.WriteString(pred)
	}

	if sel.Relation != nil {
		if sel.Relation.Kind == RelationParent {
			buf.WriteString("/parent::*")
		}
		buf.WriteString("/")
		return writeXPathStep(buf, sel.Relation.Selector)
	}
	return nil
}

func xpathPredicate(c Criterion) (string, error) {
	expr, err := xpathPredicateExpr(c)
	if err != nil {
		return "", err
	}
	if c.Negated {
		expr = "not(" + expr + ")"
	}
	return "[" + expr + "]", nil
}

func xpathPredicateExpr(c Criterion) (string, error) {
	attr := "@" + c.Attribute.XPathAttr()

	if c.IsNull() {
		return attr, nil
	}

	switch c.Attribute {
	case AttrIndex:
		n, ok := c.Value.(int)
		if !ok {
			return "", fmt.Errorf("index criterion holds %T, want int", c.Value)
		}
		return fmt.Sprintf("position()=%d", n+1), nil
	case AttrInstance:
		n, ok := c.Value.(int)
		if !ok {
			return "", fmt.Errorf("instance criterion holds %T, want int", c.Value)
		}
		return strconv.Itoa(n + 1), nil
	}

	var value string
	switch v := c.Value.(type) {
	case bool:
		value = strconv.FormatBool(v)
	default:
		value = fmt.Sprint(v)
	}
	lit := xpathLiteral(value)

	switch c.Operator() {
	case OpContains:
		return fmt.Sprintf("contains(%s,%s)", attr, lit), nil
	case OpStartsWith:
		return fmt.Sprintf("starts-with(%s,%s)", attr, lit), nil
	case OpMatches:
		return fmt.Sprintf("matches(%s,%s)", attr, lit), nil
	default:
		return attr + "=" + lit, nil
	}
}

// xpathLiteral quotes a string as an XPath 1.0 literal. XPath strings have
// no escape syntax, so a value containing both quote characters falls back
// to the standard concat() workaround.
func xpathLiteral(v string) string {
	hasSingle := strings.Contains(v, "'")
	hasDouble := strings.Contains(v, `"`)
	switch {
	case !hasSingle:
		return "'" + v + "'"
	case !hasDouble:
		return `"` + v + `"`
	}

	parts := strings.Split(v, "'")
	segs := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if part != "" {
			segs = append(segs, "'"+part+"'")
		}
		if i < len(parts)-1 {
			segs = append(segs, `"'"`)
		}
	}
	return "concat(" + strings.Join(segs, ", ") + ")"
}

// ParseXPath builds a selector from an XPath expression. Only the subset
// EncodeXPath produces is accepted, plus the following-sibling axis that
// other framework layers generate for sibling lookups; anything else fails
// with XPathParseError rather than guessing.
func ParseXPath(expr string) (*Selector, error) {
	src := strings.TrimSpace(expr)
	rest, ok := strings.CutPrefix(src, "//")
	if !ok {
		return nil, &XPathParseError{XPath: expr, Reason: "must start with //"}
	}

	sc := &xpathScanner{src: rest, full: expr}
	root, err := sc.parseStep()
	if err != nil {
		return nil, err
	}

	cur := root
	for !sc.done() {
		var kind RelationKind
		switch {
		case sc.consume("/parent::*/"):
			kind = RelationParent
		case sc.consume("/following-sibling::"):
			// sibling lookup: same parent, so normalize to fromParent
			kind = RelationParent
		case sc.hasPrefix("//") || sc.hasPrefix("/..") || sc.hasPrefix("/parent::"):
			return nil, &XPathParseError{XPath: expr, Reason: fmt.Sprintf("unsupported axis at %q", sc.remaining())}
		case sc.consume("/"):
			kind = RelationChild
		default:
			return nil, &XPathParseError{XPath: expr, Reason: fmt.Sprintf("unexpected trailing %q", sc.remaining())}
		}

		nested, err := sc.parseStep()
		if err != nil {
			return nil, err
		}
		cur.Relation = &Relation{Kind: kind, Selector: nested}
		cur = nested
	}
	return root, nil
}

type xpathScanner struct {
	src  string
	pos  int
	full string // original expression, for error context
}

func (sc *xpathScanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *xpathScanner) remaining() string { return sc.src[sc.pos:] }

func (sc *xpathScanner) hasPrefix(p string) bool {
	return strings.HasPrefix(sc.remaining(), p)
}

func (sc *xpathScanner) consume(p string) bool {
	if sc.hasPrefix(p) {
		sc.pos += len(p)
		return true
	}
	return false
}

func (sc *xpathScanner) fail(reason string) error {
	return &XPathParseError{XPath: sc.full, Reason: reason}
}

// parseStep reads a node test plus its bracket predicates.
func (sc *xpathScanner) parseStep() (*Selector, error) {
	tag, err := sc.parseNodeTest()
	if err != nil {
		return nil, err
	}

	sel := &Selector{}
	if tag != "*" {
		sel.Criteria = append(sel.Criteria, Criterion{Attribute: AttrClassName, Value: tag})
	}

	for !sc.done() && sc.hasPrefix("[") {
		content, err := sc.readPredicate()
		if err != nil {
			return nil, err
		}
		crit, skip, err := sc.parsePredicate(content)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		sel.Criteria = append(sel.Criteria, crit)
	}
	return sel, nil
}

func (sc *xpathScanner) parseNodeTest() (string, error) {
	if sc.consume("*") {
		return "*", nil
	}
	start := sc.pos
	for sc.pos < len(sc.src) {
		ch := sc.src[sc.pos]
		if isIdentPart(ch) || ch == '.' || ch == '$' || ch == '-' {
			sc.pos++
			continue
		}
		break
	}
	if sc.pos == start {
		return "", sc.fail(fmt.Sprintf("expected node test at %q", sc.remaining()))
	}
	return sc.src[start:sc.pos], nil
}

// readPredicate consumes one balanced [...] group, ignoring brackets inside
// quoted literals, and returns its content.
func (sc *xpathScanner) readPredicate() (string, error) {
	sc.pos++ // opening bracket
	start := sc.pos
	var quote byte
	for sc.pos < len(sc.src) {
		ch := sc.src[sc.pos]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ']':
			content := sc.src[start:sc.pos]
			sc.pos++
			return content, nil
		}
		sc.pos++
	}
	return "", sc.fail("unterminated predicate")
}

// parsePredicate turns one predicate body into a criterion. The skip result
// marks predicates on the reserved hint attribute, which are dropped without
// error for compatibility with upstream producers.
func (sc *xpathScanner) parsePredicate(content string) (Criterion, bool, error) {
	body := strings.TrimSpace(content)

	if inner, ok := strings.CutPrefix(body, "not("); ok && strings.HasSuffix(inner, ")") {
		crit, skip, err := sc.parsePredicate(inner[:len(inner)-1])
		if err != nil || skip {
			return crit, skip, err
		}
		crit.Negated = !crit.Negated
		return crit, false, nil
	}

	// bare positional predicate -> instance
	if n, err := strconv.Atoi(body); err == nil {
		if n < 1 {
			return Criterion{}, false, sc.fail(fmt.Sprintf("position %d out of range", n))
		}
		return Criterion{Attribute: AttrInstance, Value: n - 1}, false, nil
	}

	if rest, ok := strings.CutPrefix(body, "position()"); ok {
		rest = strings.TrimSpace(rest)
		rest, ok = strings.CutPrefix(rest, "=")
		if !ok {
			return Criterion{}, false, sc.fail("position() predicate must compare with =")
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 1 {
			return Criterion{}, false, sc.fail(fmt.Sprintf("invalid position() value %q", rest))
		}
		return Criterion{Attribute: AttrIndex, Value: n - 1}, false, nil
	}

	if strings.HasPrefix(body, "@") {
		return sc.parseAttrPredicate(body)
	}

	for _, fn := range []struct {
		name string
		op   Operator
	}{
		{"contains", OpContains},
		{"starts-with", OpStartsWith},
		{"matches", OpMatches},
	} {
		if strings.HasPrefix(body, fn.name+"(") {
			return sc.parseFuncPredicate(body, fn.name, fn.op)
		}
	}

	return Criterion{}, false, sc.fail(fmt.Sprintf("unsupported predicate %q", body))
}

// parseAttrPredicate handles [@attr] and [@attr=value] shapes.
func (sc *xpathScanner) parseAttrPredicate(body string) (Criterion, bool, error) {
	name := body[1:]
	var rawValue string
	hasValue := false
	if i := strings.IndexByte(name, '='); i >= 0 {
		rawValue = strings.TrimSpace(name[i+1:])
		name = strings.TrimSpace(name[:i])
		hasValue = true
	}

	if name == excludedDictKey {
		return Criterion{}, true, nil
	}
	attr, ok := attributeByXPath(name, OpEquals)
	if !ok {
		return Criterion{}, false, sc.fail(fmt.Sprintf("unknown attribute @%s", name))
	}

	if !hasValue {
		return Criterion{Attribute: attr, Value: NullValue}, false, nil
	}

	text, err := sc.parseLiteralString(rawValue)
	if err != nil {
		return Criterion{}, false, err
	}
	value, err := coerceXPathValue(attr, text)
	if err != nil {
		return Criterion{}, false, sc.fail(err.Error())
	}
	return Criterion{Attribute: attr, Value: value}, false, nil
}

// parseFuncPredicate handles contains/starts-with/matches(@attr, literal).
func (sc *xpathScanner) parseFuncPredicate(body, fn string, op Operator) (Criterion, bool, error) {
	inner, ok := strings.CutSuffix(body[len(fn)+1:], ")")
	if !ok {
		return Criterion{}, false, sc.fail(fmt.Sprintf("unterminated %s()", fn))
	}
	comma := strings.IndexByte(inner, ',')
	if comma < 0 {
		return Criterion{}, false, sc.fail(fmt.Sprintf("%s() needs two arguments", fn))
	}
	attrArg := strings.TrimSpace(inner[:comma])
	name, ok := strings.CutPrefix(attrArg, "@")
	if !ok {
		return Criterion{}, false, sc.fail(fmt.Sprintf("%s() first argument must be an attribute", fn))
	}
	if name == excludedDictKey {
		return Criterion{}, true, nil
	}
	attr, ok := attributeByXPath(name, op)
	if !ok {
		return Criterion{}, false, sc.fail(fmt.Sprintf("%s(@%s, ...) has no UiSelector equivalent", fn, name))
	}
	text, err := sc.parseLiteralString(strings.TrimSpace(inner[comma+1:]))
	if err != nil {
		return Criterion{}, false, err
	}
	return Criterion{Attribute: attr, Value: text}, false, nil
}

// parseLiteralString evaluates a quoted literal or a concat(...) of quoted
// literals to its string value.
func (sc *xpathScanner) parseLiteralString(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if inner, ok := strings.CutPrefix(raw, "concat("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return "", sc.fail("unterminated concat()")
		}
		var buf strings.Builder
		for _, part := range splitConcatArgs(inner) {
			text, err := sc.parseLiteralString(part)
			if err != nil {
				return "", err
			}
			buf.WriteString(text)
		}
		return buf.String(), nil
	}

	if len(raw) >= 2 {
		q := raw[0]
		if (q == '\'' || q == '"') && raw[len(raw)-1] == q {
			body := raw[1 : len(raw)-1]
			if !strings.ContainsRune(body, rune(q)) {
				return body, nil
			}
		}
	}
	return "", sc.fail(fmt.Sprintf("invalid string literal %q", raw))
}

// splitConcatArgs splits concat arguments on commas outside quotes.
func splitConcatArgs(s string) []string {
	var parts []string
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ',':
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// coerceXPathValue converts a predicate's literal text to the attribute's
// argument type.
func coerceXPathValue(attr Attribute, text string) (any, error) {
	if text == NullValue {
		return NullValue, nil
	}
	switch attr.ArgType() {
	case ArgBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("@%s is boolean, got %q", attr.XPathAttr(), text)
		}
		return b, nil
	case ArgInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("@%s is integer, got %q", attr.XPathAttr(), text)
		}
		return n, nil
	default:
		return text, nil
	}
}
