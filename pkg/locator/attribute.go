package locator

import "strings"

// Attribute identifies one UiSelector constraint method.
// The set is closed: it mirrors the UiSelector API exposed by UiAutomator.
type Attribute int

const (
	AttrText Attribute = iota
	AttrTextContains
	AttrTextStartsWith
	AttrTextMatches
	AttrClassName
	AttrClassNameMatches
	AttrDescription
	AttrDescriptionContains
	AttrDescriptionStartsWith
	AttrDescriptionMatches
	AttrResourceID
	AttrResourceIDMatches
	AttrPackageName
	AttrPackageNameMatches
	AttrCheckable
	AttrChecked
	AttrClickable
	AttrEnabled
	AttrFocusable
	AttrFocused
	AttrLongClickable
	AttrScrollable
	AttrSelected
	AttrPassword
	AttrIndex
	AttrInstance

	attrCount // sentinel, keep last
)

// Operator is the comparison a criterion applies to its attribute.
type Operator int

const (
	OpEquals Operator = iota
	OpContains
	OpStartsWith
	OpMatches
)

// String returns the XPath function spelling of the operator.
func (op Operator) String() string {
	switch op {
	case OpContains:
		return "contains"
	case OpStartsWith:
		return "starts-with"
	case OpMatches:
		return "matches"
	default:
		return "equals"
	}
}

// ArgType is the literal type a UiSelector method accepts.
type ArgType int

const (
	ArgString ArgType = iota
	ArgBool
	ArgInt
)

// attrInfo describes everything the codecs need to know about one attribute.
// This table is the single source of truth: dict, XPath and UiSelector codecs
// all consult it instead of carrying their own literal mappings.
type attrInfo struct {
	method    string   // UiSelector method name, also used for suffixed dict keys
	dictKey   string   // canonical flat-map key
	xpathAttr string   // XPath attribute name, without the leading @
	arg       ArgType  // literal type the method takes
	op        Operator // comparison the method implies
}

var attrTable = [attrCount]attrInfo{
	AttrText:                  {method: "text", dictKey: "text", xpathAttr: "text", arg: ArgString, op: OpEquals},
	AttrTextContains:          {method: "textContains", dictKey: "textContains", xpathAttr: "text", arg: ArgString, op: OpContains},
	AttrTextStartsWith:        {method: "textStartsWith", dictKey: "textStartsWith", xpathAttr: "text", arg: ArgString, op: OpStartsWith},
	AttrTextMatches:           {method: "textMatches", dictKey: "textMatches", xpathAttr: "text", arg: ArgString, op: OpMatches},
	AttrClassName:             {method: "className", dictKey: "class", xpathAttr: "class", arg: ArgString, op: OpEquals},
	AttrClassNameMatches:      {method: "classNameMatches", dictKey: "classNameMatches", xpathAttr: "class", arg: ArgString, op: OpMatches},
	AttrDescription:           {method: "description", dictKey: "content-desc", xpathAttr: "content-desc", arg: ArgString, op: OpEquals},
	AttrDescriptionContains:   {method: "descriptionContains", dictKey: "descriptionContains", xpathAttr: "content-desc", arg: ArgString, op: OpContains},
	AttrDescriptionStartsWith: {method: "descriptionStartsWith", dictKey: "descriptionStartsWith", xpathAttr: "content-desc", arg: ArgString, op: OpStartsWith},
	AttrDescriptionMatches:    {method: "descriptionMatches", dictKey: "descriptionMatches", xpathAttr: "content-desc", arg: ArgString, op: OpMatches},
	AttrResourceID:            {method: "resourceId", dictKey: "resource-id", xpathAttr: "resource-id", arg: ArgString, op: OpEquals},
	AttrResourceIDMatches:     {method: "resourceIdMatches", dictKey: "resourceIdMatches", xpathAttr: "resource-id", arg: ArgString, op: OpMatches},
	AttrPackageName:           {method: "packageName", dictKey: "package", xpathAttr: "package", arg: ArgString, op: OpEquals},
	AttrPackageNameMatches:    {method: "packageNameMatches", dictKey: "packageNameMatches", xpathAttr: "package", arg: ArgString, op: OpMatches},
	AttrCheckable:             {method: "checkable", dictKey: "checkable", xpathAttr: "checkable", arg: ArgBool, op: OpEquals},
	AttrChecked:               {method: "checked", dictKey: "checked", xpathAttr: "checked", arg: ArgBool, op: OpEquals},
	AttrClickable:             {method: "clickable", dictKey: "clickable", xpathAttr: "clickable", arg: ArgBool, op: OpEquals},
	AttrEnabled:               {method: "enabled", dictKey: "enabled", xpathAttr: "enabled", arg: ArgBool, op: OpEquals},
	AttrFocusable:             {method: "focusable", dictKey: "focusable", xpathAttr: "focusable", arg: ArgBool, op: OpEquals},
	AttrFocused:               {method: "focused", dictKey: "focused", xpathAttr: "focused", arg: ArgBool, op: OpEquals},
	AttrLongClickable:         {method: "longClickable", dictKey: "long-clickable", xpathAttr: "long-clickable", arg: ArgBool, op: OpEquals},
	AttrScrollable:            {method: "scrollable", dictKey: "scrollable", xpathAttr: "scrollable", arg: ArgBool, op: OpEquals},
	AttrSelected:              {method: "selected", dictKey: "selected", xpathAttr: "selected", arg: ArgBool, op: OpEquals},
	AttrPassword:              {method: "password", dictKey: "password", xpathAttr: "password", arg: ArgBool, op: OpEquals},
	AttrIndex:                 {method: "index", dictKey: "index", xpathAttr: "index", arg: ArgInt, op: OpEquals},
	AttrInstance:              {method: "instance", dictKey: "instance", xpathAttr: "instance", arg: ArgInt, op: OpEquals},
}

// Relation method names. These take a nested selector instead of a literal
// and are therefore not part of the attribute table.
const (
	methodChildSelector = "childSelector"
	methodFromParent    = "fromParent"
)

// excludedDictKey is accepted from upstream producers but never converted.
const excludedDictKey = "hint"

// Method returns the UiSelector method name for the attribute.
func (a Attribute) Method() string { return attrTable[a].method }

// DictKey returns the canonical flat-map key for the attribute.
func (a Attribute) DictKey() string { return attrTable[a].dictKey }

// XPathAttr returns the XPath attribute name (without @) for the attribute.
func (a Attribute) XPathAttr() string { return attrTable[a].xpathAttr }

// ArgType returns the literal type the attribute's method accepts.
func (a Attribute) ArgType() ArgType { return attrTable[a].arg }

// Operator returns the comparison the attribute implies.
func (a Attribute) Operator() Operator { return attrTable[a].op }

// Valid reports whether a is a known attribute.
func (a Attribute) Valid() bool { return a >= 0 && a < attrCount }

func (a Attribute) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return attrTable[a].method
}

var methodIndex = buildMethodIndex()

func buildMethodIndex() map[string]Attribute {
	m := make(map[string]Attribute, attrCount)
	for a := Attribute(0); a < attrCount; a++ {
		m[attrTable[a].method] = a
	}
	return m
}

// AttributeByMethod resolves a UiSelector method name to its attribute.
func AttributeByMethod(name string) (Attribute, bool) {
	a, ok := methodIndex[name]
	return a, ok
}

var dictKeyIndex = buildDictKeyIndex()

func buildDictKeyIndex() map[string]Attribute {
	m := make(map[string]Attribute, attrCount)
	for a := Attribute(0); a < attrCount; a++ {
		// method names are also valid dict keys, so exact method lookups
		// resolve first and the canonical key wins on collision
		if _, taken := m[attrTable[a].method]; !taken {
			m[attrTable[a].method] = a
		}
	}
	for a := Attribute(0); a < attrCount; a++ {
		m[attrTable[a].dictKey] = a
	}
	return m
}

// attributeByDictKey resolves a flat-map key to its attribute. It accepts
// both canonical keys ("resource-id") and method names ("resourceId"), plus
// the suffix convention for operators ("content-descContains").
func attributeByDictKey(key string) (Attribute, bool) {
	if a, ok := dictKeyIndex[key]; ok {
		return a, true
	}
	for _, suf := range []struct {
		text string
		op   Operator
	}{
		{"Contains", OpContains},
		{"StartsWith", OpStartsWith},
		{"Matches", OpMatches},
	} {
		base, found := strings.CutSuffix(key, suf.text)
		if !found || base == "" {
			continue
		}
		a, ok := dictKeyIndex[base]
		if !ok {
			continue
		}
		if v, ok := operatorVariant(a, suf.op); ok {
			return v, true
		}
	}
	return 0, false
}

// operatorVariant finds the attribute in the same family as a but with the
// requested comparison, e.g. (AttrText, OpContains) -> AttrTextContains.
func operatorVariant(a Attribute, op Operator) (Attribute, bool) {
	attr := attrTable[a].xpathAttr
	for v := Attribute(0); v < attrCount; v++ {
		if attrTable[v].xpathAttr == attr && attrTable[v].op == op {
			return v, true
		}
	}
	return 0, false
}

// attributeByXPath resolves an XPath attribute name and comparison to the
// matching attribute, e.g. ("content-desc", OpContains).
func attributeByXPath(name string, op Operator) (Attribute, bool) {
	for a := Attribute(0); a < attrCount; a++ {
		if attrTable[a].xpathAttr == name && attrTable[a].op == op {
			return a, true
		}
	}
	return 0, false
}
