package locator

import (
	"fmt"
	"sort"
	"strconv"
)

// EncodeDict renders the selector as a flat attribute map. The flat form
// cannot express hierarchy or negation: with strict set those produce an
// UnsupportedConversionError, otherwise they are dropped (documented data
// loss, not an error).
func EncodeDict(sel *Selector, strict bool) (map[string]any, error) {
	out := make(map[string]any)
	if sel == nil {
		return out, nil
	}
	if sel.Relation != nil && strict {
		return nil, &UnsupportedConversionError{
			Feature: sel.Relation.Kind.Method(),
			Target:  "dict",
		}
	}
	for _, c := range sel.Criteria {
		if c.Negated {
			if strict {
				return nil, &UnsupportedConversionError{Feature: "negated criterion", Target: "dict"}
			}
			continue
		}
		out[c.Attribute.DictKey()] = dictValue(c)
	}
	return out, nil
}

// dictValue stringifies integer values; booleans and strings pass through.
// The existence sentinel is already the string "null".
func dictValue(c Criterion) any {
	switch v := c.Value.(type) {
	case bool:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// DecodeDict builds a selector from a flat attribute map. Unknown keys are
// ignored for forward compatibility; the reserved "hint" key is always
// ignored. Criteria come out in canonical attribute order since maps carry
// no ordering of their own.
func DecodeDict(d map[string]any) (*Selector, error) {
	byAttr := make(map[Attribute]Criterion)
	for key, raw := range d {
		if key == excludedDictKey {
			continue
		}
		attr, ok := attributeByDictKey(key)
		if !ok {
			continue
		}
		value, err := coerceDictValue(attr, raw)
		if err != nil {
			return nil, err
		}
		byAttr[attr] = Criterion{Attribute: attr, Value: value}
	}

	attrs := make([]Attribute, 0, len(byAttr))
	for a := range byAttr {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i] < attrs[j] })

	sel := &Selector{}
	for _, a := range attrs {
		sel.Criteria = append(sel.Criteria, byAttr[a])
	}
	return sel, nil
}

// coerceDictValue normalizes a map value to the attribute's argument type.
// Upstream producers send both typed and stringified values.
func coerceDictValue(attr Attribute, raw any) (any, error) {
	if s, ok := raw.(string); ok && s == NullValue {
		return NullValue, nil
	}
	switch attr.ArgType() {
	case ArgBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %q is not a boolean", attr.DictKey(), v)
			}
			return b, nil
		}
	case ArgInt:
		switch v := raw.(type) {
		case int:
			return v, nil
		case float64:
			// JSON numbers decode as float64
			if v != float64(int(v)) {
				return nil, fmt.Errorf("key %q: %v is not an integer", attr.DictKey(), v)
			}
			return int(v), nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %q is not an integer", attr.DictKey(), v)
			}
			return n, nil
		}
	default:
		switch v := raw.(type) {
		case string:
			return v, nil
		case bool:
			return strconv.FormatBool(v), nil
		case int:
			return strconv.Itoa(v), nil
		}
	}
	return nil, fmt.Errorf("key %q: unsupported value type %T", attr.DictKey(), raw)
}
