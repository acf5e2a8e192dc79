package locator

// Builder methods construct selector trees programmatically, mirroring the
// fluent UiSelector API. Every call returns a new selector; the receiver is
// never modified, so partial chains can be shared and extended freely.

// NewSelector returns the wildcard selector as a chain starting point.
func NewSelector() *Selector { return &Selector{} }

func (s *Selector) with(attr Attribute, value any) *Selector {
	out := s.Clone()
	if out == nil {
		out = &Selector{}
	}
	out.Criteria = append(out.Criteria, Criterion{Attribute: attr, Value: value})
	return out
}

func (s *Selector) withRelation(kind RelationKind, nested *Selector) *Selector {
	out := s.Clone()
	if out == nil {
		out = &Selector{}
	}
	out.Relation = &Relation{Kind: kind, Selector: nested.Clone()}
	return out
}

// Text matches elements with exactly the given text.
func (s *Selector) Text(v string) *Selector { return s.with(AttrText, v) }

// TextContains matches elements whose text contains the substring.
func (s *Selector) TextContains(v string) *Selector { return s.with(AttrTextContains, v) }

// TextStartsWith matches elements whose text starts with the prefix.
func (s *Selector) TextStartsWith(v string) *Selector { return s.with(AttrTextStartsWith, v) }

// TextMatches matches elements whose text matches the regex.
func (s *Selector) TextMatches(v string) *Selector { return s.with(AttrTextMatches, v) }

// ClassName matches elements with the given class.
func (s *Selector) ClassName(v string) *Selector { return s.with(AttrClassName, v) }

// ClassNameMatches matches elements whose class matches the regex.
func (s *Selector) ClassNameMatches(v string) *Selector { return s.with(AttrClassNameMatches, v) }

// Description matches elements with exactly the given content description.
func (s *Selector) Description(v string) *Selector { return s.with(AttrDescription, v) }

// DescriptionContains matches on a content description substring.
func (s *Selector) DescriptionContains(v string) *Selector {
	return s.with(AttrDescriptionContains, v)
}

// DescriptionStartsWith matches on a content description prefix.
func (s *Selector) DescriptionStartsWith(v string) *Selector {
	return s.with(AttrDescriptionStartsWith, v)
}

// DescriptionMatches matches the content description against a regex.
func (s *Selector) DescriptionMatches(v string) *Selector {
	return s.with(AttrDescriptionMatches, v)
}

// ResourceID matches elements by exact resource id.
func (s *Selector) ResourceID(v string) *Selector { return s.with(AttrResourceID, v) }

// ResourceIDMatches matches the resource id against a regex.
func (s *Selector) ResourceIDMatches(v string) *Selector { return s.with(AttrResourceIDMatches, v) }

// PackageName matches elements in the given package.
func (s *Selector) PackageName(v string) *Selector { return s.with(AttrPackageName, v) }

// PackageNameMatches matches the package name against a regex.
func (s *Selector) PackageNameMatches(v string) *Selector {
	return s.with(AttrPackageNameMatches, v)
}

// Checkable matches elements by checkable state.
func (s *Selector) Checkable(v bool) *Selector { return s.with(AttrCheckable, v) }

// Checked matches elements by checked state.
func (s *Selector) Checked(v bool) *Selector { return s.with(AttrChecked, v) }

// Clickable matches elements by clickable state.
func (s *Selector) Clickable(v bool) *Selector { return s.with(AttrClickable, v) }

// Enabled matches elements by enabled state.
func (s *Selector) Enabled(v bool) *Selector { return s.with(AttrEnabled, v) }

// Focusable matches elements by focusable state.
func (s *Selector) Focusable(v bool) *Selector { return s.with(AttrFocusable, v) }

// Focused matches elements by focused state.
func (s *Selector) Focused(v bool) *Selector { return s.with(AttrFocused, v) }

// LongClickable matches elements by long-clickable state.
func (s *Selector) LongClickable(v bool) *Selector { return s.with(AttrLongClickable, v) }

// Scrollable matches elements by scrollable state.
func (s *Selector) Scrollable(v bool) *Selector { return s.with(AttrScrollable, v) }

// Selected matches elements by selected state.
func (s *Selector) Selected(v bool) *Selector { return s.with(AttrSelected, v) }

// Password matches password fields.
func (s *Selector) Password(v bool) *Selector { return s.with(AttrPassword, v) }

// Index matches the element at the given index among its siblings.
func (s *Selector) Index(v int) *Selector { return s.with(AttrIndex, v) }

// Instance matches the n-th element matching the rest of the selector.
func (s *Selector) Instance(v int) *Selector { return s.with(AttrInstance, v) }

// ChildSelector matches a child of the current element.
func (s *Selector) ChildSelector(nested *Selector) *Selector {
	return s.withRelation(RelationChild, nested)
}

// FromParent matches a sibling by going through the parent element.
func (s *Selector) FromParent(nested *Selector) *Selector {
	return s.withRelation(RelationParent, nested)
}
