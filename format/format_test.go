package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, v := range []string{"j", "json"} {
		f, err := ParseFormat(v)
		if err != nil || !f.IsJSON() {
			t.Errorf("%q: %v %v", v, f, err)
		}
	}
	for _, v := range []string{"y", "yaml"} {
		f, err := ParseFormat(v)
		if err != nil || !f.IsYAML() {
			t.Errorf("%q: %v %v", v, f, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %v want %v", g, f)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("suffix mismatch")
	}
}
