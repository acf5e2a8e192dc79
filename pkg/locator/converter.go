package locator

import (
	"fmt"
	"strings"
)

// StrategyXPath is the WebDriver locator strategy name for XPath expressions.
const StrategyXPath = "xpath"

// StrategyPair is a (strategy, expression) pair as consumed by the
// element-lookup layer's find_element call.
type StrategyPair struct {
	Strategy string
	Value    string
}

// Format names a target locator representation.
type Format string

const (
	FormatDict       Format = "dict"
	FormatXPath      Format = "xpath"
	FormatUiSelector Format = "uiselector"
)

// ParseFormat resolves a format name as given on a command line.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatDict:
		return FormatDict, nil
	case FormatXPath:
		return FormatXPath, nil
	case FormatUiSelector:
		return FormatUiSelector, nil
	}
	return "", fmt.Errorf("unknown target format %q (want dict, xpath or uiselector)", s)
}

// Converter detects the representation of an arbitrary locator input and
// converts it to any target representation. The zero value is usable and
// runs in best-effort mode; see WithStrict.
type Converter struct {
	strict bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithStrict makes conversions fail with UnsupportedConversionError instead
// of silently dropping selector features (relations, existence sentinels,
// negations) the target format cannot express.
func WithStrict() Option {
	return func(c *Converter) { c.strict = true }
}

// New returns a converter with the given options applied.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Detect classifies the input's representation and returns its selector
// tree. Accepted inputs: *Selector, StrategyPair with the xpath strategy,
// flat maps, XPath strings (leading /) and UiSelector strings (leading
// "new UiSelector"). The input is never mutated.
func (c *Converter) Detect(input any) (*Selector, error) {
	switch v := input.(type) {
	case *Selector:
		return v.Clone(), nil
	case Selector:
		return v.Clone(), nil
	case StrategyPair:
		if v.Strategy != StrategyXPath {
			return nil, &UnrecognizedLocatorError{Input: input}
		}
		return ParseXPath(v.Value)
	case map[string]any:
		return DecodeDict(v)
	case map[string]string:
		d := make(map[string]any, len(v))
		for key, value := range v {
			d[key] = value
		}
		return DecodeDict(d)
	case string:
		trimmed := strings.TrimSpace(v)
		switch {
		case strings.HasPrefix(trimmed, "/"):
			return ParseXPath(trimmed)
		case strings.HasPrefix(trimmed, "new UiSelector"):
			return ParseUiSelector(trimmed)
		}
	}
	return nil, &UnrecognizedLocatorError{Input: input}
}

// ToDict converts any locator input to the flat attribute map form.
func (c *Converter) ToDict(input any) (map[string]any, error) {
	sel, err := c.Detect(input)
	if err != nil {
		return nil, err
	}
	return EncodeDict(sel, c.strict)
}

// ToXPath converts any locator input to an XPath expression string.
func (c *Converter) ToXPath(input any) (string, error) {
	sel, err := c.Detect(input)
	if err != nil {
		return "", err
	}
	return EncodeXPath(sel)
}

// ToXPathPair converts any locator input to the (strategy, expression) pair
// handed to find_element.
func (c *Converter) ToXPathPair(input any) (StrategyPair, error) {
	expr, err := c.ToXPath(input)
	if err != nil {
		return StrategyPair{}, err
	}
	return StrategyPair{Strategy: StrategyXPath, Value: expr}, nil
}

// ToUiSelector converts any locator input to UiSelector source text.
func (c *Converter) ToUiSelector(input any) (string, error) {
	sel, err := c.Detect(input)
	if err != nil {
		return "", err
	}
	return EncodeUiSelector(sel, c.strict)
}

// Convert converts any locator input to the target format. The result is a
// map[string]any for FormatDict and a string for the other formats.
func (c *Converter) Convert(input any, target Format) (any, error) {
	switch target {
	case FormatDict:
		return c.ToDict(input)
	case FormatXPath:
		return c.ToXPath(input)
	case FormatUiSelector:
		return c.ToUiSelector(input)
	}
	return nil, fmt.Errorf("unknown target format %q", target)
}

// Direct pair conversions, for callers that already know both formats.

// DictToXPath converts a flat attribute map to an XPath expression.
func (c *Converter) DictToXPath(d map[string]any) (string, error) {
	sel, err := DecodeDict(d)
	if err != nil {
		return "", err
	}
	return EncodeXPath(sel)
}

// DictToUiSelector converts a flat attribute map to UiSelector source.
func (c *Converter) DictToUiSelector(d map[string]any) (string, error) {
	sel, err := DecodeDict(d)
	if err != nil {
		return "", err
	}
	return EncodeUiSelector(sel, c.strict)
}

// XPathToDict converts an XPath expression to a flat attribute map.
func (c *Converter) XPathToDict(expr string) (map[string]any, error) {
	sel, err := ParseXPath(expr)
	if err != nil {
		return nil, err
	}
	return EncodeDict(sel, c.strict)
}

// XPathToUiSelector converts an XPath expression to UiSelector source.
func (c *Converter) XPathToUiSelector(expr string) (string, error) {
	sel, err := ParseXPath(expr)
	if err != nil {
		return "", err
	}
	return EncodeUiSelector(sel, c.strict)
}

// UiSelectorToDict converts UiSelector source to a flat attribute map.
func (c *Converter) UiSelectorToDict(src string) (map[string]any, error) {
	sel, err := ParseUiSelector(src)
	if err != nil {
		return nil, err
	}
	return EncodeDict(sel, c.strict)
}

// UiSelectorToXPath converts UiSelector source to an XPath expression.
func (c *Converter) UiSelectorToXPath(src string) (string, error) {
	sel, err := ParseUiSelector(src)
	if err != nil {
		return "", err
	}
	return EncodeXPath(sel)
}

// Validate checks that the input is classifiable and non-empty. A wildcard
// selector value is legal; an empty string or empty map is not, since
// upstream code producing one almost always lost its locator on the way.
func (c *Converter) Validate(input any) error {
	switch v := input.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return &UnrecognizedLocatorError{Input: input}
		}
	case map[string]any:
		if len(v) == 0 {
			return &UnrecognizedLocatorError{Input: input}
		}
	case map[string]string:
		if len(v) == 0 {
			return &UnrecognizedLocatorError{Input: input}
		}
	}
	_, err := c.Detect(input)
	return err
}
