package encode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mson-format/go-mson/element"
	"github.com/mson-format/go-mson/format"

	"github.com/goccy/go-yaml"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func testDoc() *element.Document {
	obj := element.NewObject(
		&element.Member{
			Key:   "bar",
			Value: element.NewString(),
			Meta:  &element.Metadata{Description: "name"},
		},
	).WithMeta("Foo", "A thing")
	obj.Attrs = element.Attributes{TypeAttributes: []string{"fixed"}}
	return &element.Document{Content: []*element.Element{obj}}
}

func diffString(want, got string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "element": "array",
  "content": [
    {
      "element": "object",
      "meta": {
        "id": {
          "element": "string",
          "content": "Foo"
        },
        "description": {
          "element": "string",
          "content": "A thing"
        }
      },
      "attributes": {
        "typeAttributes": ["fixed"]
      },
      "content": [
        {
          "element": "member",
          "meta": {
            "description": {
              "element": "string",
              "content": "name"
            }
          },
          "content": {
            "key": {
              "element": "string",
              "content": "bar"
            },
            "value": {
              "element": "string"
            }
          }
        }
      ]
    }
  ]
}`
	got := MustString(testDoc())
	if got != want {
		t.Errorf("output mismatch:\n%s", diffString(want, got))
	}
}

func TestEncodeWire(t *testing.T) {
	doc := &element.Document{Content: []*element.Element{
		element.NewArray("Foo").WithMeta("Foos", ""),
	}}
	want := `{"element":"array","content":[{"element":"array","meta":{"id":{"element":"string","content":"Foos"}},"content":[{"element":"Foo"}]}]}`
	got := MustString(doc, EncodeWire(true))
	if got != want {
		t.Errorf("output mismatch:\n%s", diffString(want, got))
	}
}

func TestEncodeValidJSON(t *testing.T) {
	for _, wire := range []bool{false, true} {
		var buf bytes.Buffer
		if err := Encode(testDoc(), &buf, EncodeWire(wire)); err != nil {
			t.Fatalf("encode error: %v", err)
		}
		var v any
		if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
			t.Errorf("wire=%v produced invalid json: %v\n%s", wire, err, buf.String())
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	if !FormatFromOpts(EncodeFormat(format.YAMLFormat)).IsYAML() {
		t.Fatal("format option not extractable")
	}
	var buf bytes.Buffer
	err := Encode(testDoc(), &buf, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	var v struct {
		Element string `yaml:"element"`
		Content []struct {
			Element string `yaml:"element"`
			Meta    struct {
				ID struct {
					Content string `yaml:"content"`
				} `yaml:"id"`
			} `yaml:"meta"`
			Attributes struct {
				TypeAttributes []string `yaml:"typeAttributes"`
			} `yaml:"attributes"`
		} `yaml:"content"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal error: %v\n%s", err, buf.String())
	}
	if v.Element != "array" {
		t.Errorf("document element %q", v.Element)
	}
	if len(v.Content) != 1 {
		t.Fatalf("got %d roots", len(v.Content))
	}
	root := v.Content[0]
	if root.Element != "object" {
		t.Errorf("root element %q", root.Element)
	}
	if root.Meta.ID.Content != "Foo" {
		t.Errorf("root id %q", root.Meta.ID.Content)
	}
	if len(root.Attributes.TypeAttributes) != 1 || root.Attributes.TypeAttributes[0] != "fixed" {
		t.Errorf("type attributes %v", root.Attributes.TypeAttributes)
	}
}

func TestEncodeColorsCover(t *testing.T) {
	// colored output must still nest like the plain output
	var plain, colored bytes.Buffer
	if err := Encode(testDoc(), &plain); err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if err := Encode(testDoc(), &colored, EncodeColors(NewColors())); err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if colored.Len() < plain.Len() {
		t.Errorf("colored output shorter than plain")
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	got := MustString(&element.Document{})
	want := `{
  "element": "array"
}`
	if got != want {
		t.Errorf("output mismatch:\n%s", diffString(want, got))
	}
}
