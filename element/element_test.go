package element

import "testing"

func TestElementName(t *testing.T) {
	tests := []struct {
		el   *Element
		want string
	}{
		{NewObject(), "object"},
		{NewArray(""), "array"},
		{NewString(), "string"},
		{NewNumber(), "number"},
		{NewBoolean(), "boolean"},
		{NewGeneric("Person"), "Person"},
		{NewGeneric("enum"), "enum"},
	}
	for _, tt := range tests {
		if got := tt.el.ElementName(); got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
}

func TestWithMetaDropsEmpty(t *testing.T) {
	el := NewString().WithMeta("", "")
	if el.Meta != nil {
		t.Errorf("empty meta kept: %+v", el.Meta)
	}
	el.WithMeta("Foo", "")
	if el.Meta == nil || el.Meta.ID != "Foo" {
		t.Errorf("meta not set: %+v", el.Meta)
	}
}

func TestArrayMemberType(t *testing.T) {
	a := NewArray("Bar")
	if len(a.Content) != 1 || a.Content[0].ElementName() != "Bar" {
		t.Errorf("got %+v", a.Content)
	}
	if len(NewArray("").Content) != 0 {
		t.Error("unconstrained array has content")
	}
}

func TestVisit(t *testing.T) {
	root := NewObject(
		&Member{Key: "a", Value: NewObject(
			&Member{Key: "b", Value: NewString()},
		)},
		&Member{Key: "c", Value: NewArray("D")},
	)
	count := 0
	err := root.Visit(func(e *Element, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a's object, b's string, c's array and its member ref
	if count != 5 {
		t.Errorf("visited %d elements", count)
	}
}
