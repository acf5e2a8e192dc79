package locator

import "testing"

func TestIsWildcard(t *testing.T) {
	var nilSel *Selector
	if !nilSel.IsWildcard() {
		t.Error("nil selector should be a wildcard")
	}
	if !NewSelector().IsWildcard() {
		t.Error("empty selector should be a wildcard")
	}
	if NewSelector().Text("x").IsWildcard() {
		t.Error("selector with criteria is not a wildcard")
	}
	if NewSelector().ChildSelector(NewSelector()).IsWildcard() {
		t.Error("selector with a relation is not a wildcard")
	}
}

func TestEqual(t *testing.T) {
	a := NewSelector().Text("x").Clickable(true).
		ChildSelector(NewSelector().ClassName("a.B"))

	if !a.Equal(a.Clone()) {
		t.Error("clone should compare equal")
	}
	if a.Equal(NewSelector().Clickable(true).Text("x")) {
		t.Error("criteria order is significant")
	}
	if a.Equal(NewSelector().Text("x").Clickable(true)) {
		t.Error("relation presence is significant")
	}
	if a.Equal(NewSelector().Text("x").Clickable(true).FromParent(NewSelector().ClassName("a.B"))) {
		t.Error("relation kind is significant")
	}

	var nilSel *Selector
	if !nilSel.Equal(NewSelector()) {
		t.Error("nil and empty selectors are both wildcards")
	}
	if nilSel.Equal(NewSelector().Text("x")) {
		t.Error("nil selector does not equal a constrained one")
	}

	neg := &Selector{Criteria: []Criterion{{Attribute: AttrText, Value: "x", Negated: true}}}
	if neg.Equal(NewSelector().Text("x")) {
		t.Error("negation is significant")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewSelector().Text("x").ChildSelector(NewSelector().Text("y"))
	clone := orig.Clone()

	clone.Criteria[0].Value = "changed"
	clone.Relation.Selector.Criteria[0].Value = "changed"

	if orig.Criteria[0].Value != "x" {
		t.Error("clone shares top-level criteria with the original")
	}
	if orig.Relation.Selector.Criteria[0].Value != "y" {
		t.Error("clone shares nested criteria with the original")
	}
}

func TestBuilderDoesNotMutate(t *testing.T) {
	base := NewSelector().Text("x")
	derived := base.Clickable(true)

	if len(base.Criteria) != 1 {
		t.Errorf("base selector grew to %d criteria", len(base.Criteria))
	}
	if len(derived.Criteria) != 2 {
		t.Errorf("derived selector has %d criteria, want 2", len(derived.Criteria))
	}
}

func TestRelationKindMethod(t *testing.T) {
	if got := RelationChild.Method(); got != "childSelector" {
		t.Errorf("RelationChild.Method() = %q", got)
	}
	if got := RelationParent.Method(); got != "fromParent" {
		t.Errorf("RelationParent.Method() = %q", got)
	}
}
