// Package locator converts UI element locators between the three formats the
// automation stack understands: flat attribute maps, XPath expressions and
// Android UiSelector source text. All three are views of one canonical
// Selector tree; each codec reads and writes only that tree.
package locator

// NullValue is the existence sentinel: a criterion whose value is the string
// "null" requires the attribute to be present without constraining it.
// It renders as a bare [@attr] predicate in XPath and has no UiSelector form.
const NullValue = "null"

// RelationKind links a selector to a nested one.
type RelationKind int

const (
	// RelationChild matches a child of the current selector's element.
	RelationChild RelationKind = iota
	// RelationParent matches via the current element's parent (sibling lookup).
	RelationParent
)

// Method returns the UiSelector method name for the relation.
func (k RelationKind) Method() string {
	if k == RelationParent {
		return methodFromParent
	}
	return methodChildSelector
}

// Criterion is one attribute constraint. Value holds a string, bool or int
// depending on the attribute's argument type.
type Criterion struct {
	Attribute Attribute
	Value     any
	Negated   bool
}

// Operator returns the comparison this criterion applies.
func (c Criterion) Operator() Operator { return c.Attribute.Operator() }

// IsNull reports whether the criterion is the existence sentinel.
func (c Criterion) IsNull() bool {
	s, ok := c.Value.(string)
	return ok && s == NullValue
}

// Relation attaches a nested selector to its parent.
type Relation struct {
	Kind     RelationKind
	Selector *Selector
}

// Selector is the canonical locator representation. Criteria order is the
// UiSelector method-chain order; at most one relation per selector.
type Selector struct {
	Criteria []Criterion
	Relation *Relation
}

// IsWildcard reports whether the selector matches anything
// (no criteria, no relation).
func (s *Selector) IsWildcard() bool {
	return s == nil || (len(s.Criteria) == 0 && s.Relation == nil)
}

// Equal reports deep equality with o.
func (s *Selector) Equal(o *Selector) bool {
	if s == nil || o == nil {
		return s.IsWildcard() && o.IsWildcard()
	}
	if len(s.Criteria) != len(o.Criteria) {
		return false
	}
	for i := range s.Criteria {
		if s.Criteria[i] != o.Criteria[i] {
			return false
		}
	}
	if (s.Relation == nil) != (o.Relation == nil) {
		return false
	}
	if s.Relation != nil {
		if s.Relation.Kind != o.Relation.Kind {
			return false
		}
		return s.Relation.Selector.Equal(o.Relation.Selector)
	}
	return true
}

// Clone returns an independent deep copy.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	out := &Selector{}
	if len(s.Criteria) > 0 {
		out.Criteria = make([]Criterion, len(s.Criteria))
		copy(out.Criteria, s.Criteria)
	}
	if s.Relation != nil {
		out.Relation = &Relation{
			Kind:     s.Relation.Kind,
			Selector: s.Relation.Selector.Clone(),
		}
	}
	return out
}
