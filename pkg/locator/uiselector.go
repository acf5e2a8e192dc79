package locator

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeUiSelector renders the selector as UiSelector source text, the
// inverse of ParseUiSelector. Existence sentinels and negated criteria have
// no UiSelector form: with strict set they produce an
// UnsupportedConversionError, otherwise they are dropped.
func EncodeUiSelector(sel *Selector, strict bool) (string, error) {
	var buf strings.Builder
	if err := writeUiSelector(&buf, sel, strict); err != nil {
		return "", err
	}
	buf.WriteByte(';')
	return buf.String(), nil
}

func writeUiSelector(buf *strings.Builder, sel *Selector, strict bool) error {
	buf.WriteString("new UiSelector()")
	if sel == nil {
		return nil
	}
	for _, c := range sel.Criteria {
		if c.IsNull() {
			if strict {
				return &UnsupportedConversionError{Feature: "existence sentinel", Target: "uiselector"}
			}
			continue
		}
		if c.Negated {
			if strict {
				return &UnsupportedConversionError{Feature: "negated criterion", Target: "uiselector"}
			}
			continue
		}
		fmt.Fprintf(buf, ".%s(%s)", c.Attribute.Method(), uiSelectorArg(c))
	}
	if sel.Relation != nil {
		fmt.Fprintf(buf, ".%s(", sel.Relation.Kind.Method())
		if err := writeUiSelector(buf, sel.Relation.Selector, strict); err != nil {
			return err
		}
		buf.WriteByte(')')
	}
	return nil
}

// uiSelectorArg renders one literal argument in Java syntax.
func uiSelectorArg(c Criterion) string {
	switch v := c.Value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return `"` + escapeUiSelectorString(fmt.Sprint(c.Value)) + `"`
	}
}

func escapeUiSelectorString(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
