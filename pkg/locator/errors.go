package locator

import "fmt"

// LexError reports a malformed UiSelector token stream.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

// ParseError reports structurally invalid UiSelector source.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// XPathParseError reports an XPath expression outside the supported subset.
type XPathParseError struct {
	XPath  string
	Reason string
}

func (e *XPathParseError) Error() string {
	return fmt.Sprintf("unsupported xpath %q: %s", e.XPath, e.Reason)
}

// UnrecognizedLocatorError reports an input whose representation could not
// be classified by the converter.
type UnrecognizedLocatorError struct {
	Input any
}

func (e *UnrecognizedLocatorError) Error() string {
	return fmt.Sprintf("unrecognized locator input %T: %v", e.Input, e.Input)
}

// UnsupportedConversionError reports a selector feature that has no
// representation in the requested target format.
type UnsupportedConversionError struct {
	Feature string
	Target  string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("%s cannot be represented in %s format", e.Feature, e.Target)
}
