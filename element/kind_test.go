package element

import "testing"

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Kind
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != k {
			t.Errorf("got %v want %v", g, k)
		}
	}
	var g Kind
	if err := g.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("no error on unknown kind")
	}
}

func TestKindIsLeaf(t *testing.T) {
	for _, k := range Kinds() {
		leaf := k.IsLeaf()
		structural := k == ObjectKind || k == ArrayKind
		if leaf == structural {
			t.Errorf("%v: leaf=%v", k, leaf)
		}
	}
}
