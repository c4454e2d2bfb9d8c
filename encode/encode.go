package encode

import (
	"io"
	"strconv"

	"github.com/mson-format/go-mson/element"
	"github.com/mson-format/go-mson/format"
)

type EncState struct {
	line          int
	depth, indent int
	wire          bool

	format format.Format

	colorKind element.Kind
	Color     func(element.Kind, ColorAttr, string) string
}

// Encode writes the interchange representation of doc to w. A
// document renders as an array element whose content lists the
// document's named types in source order.
func Encode(doc *element.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(doc, w, es)
	}
	if err := encodeDocument(doc, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	es.line++
	pad := make([]byte, 0, 1+es.depth*es.indent)
	pad = append(pad, '\n')
	for i := 0; i < es.depth*es.indent; i++ {
		pad = append(pad, ' ')
	}
	_, err := w.Write(pad)
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(es.colorKind, attr, v)
}

func writePunct(w io.Writer, es *EncState, s string) error {
	return writeString(w, applyColor(es, SepColor, s))
}

func writeField(w io.Writer, es *EncState, name string) error {
	sep := ": "
	if es.wire {
		sep = ":"
	}
	if err := writeString(w, applyColor(es, FieldColor, strconv.Quote(name))); err != nil {
		return err
	}
	return writePunct(w, es, sep)
}

// nextField separates one field or list entry from the next.
func nextField(w io.Writer, es *EncState) error {
	if err := writePunct(w, es, ","); err != nil {
		return err
	}
	return writeNL(w, es)
}

func openBracket(w io.Writer, es *EncState, b string) error {
	if err := writePunct(w, es, b); err != nil {
		return err
	}
	es.depth++
	return writeNL(w, es)
}

func closeBracket(w io.Writer, es *EncState, b string) error {
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writePunct(w, es, b)
}

// encodeDocument

func encodeDocument(doc *element.Document, w io.Writer, es *EncState) error {
	es.colorKind = element.ArrayKind
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "element"); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ValueColor, `"array"`)); err != nil {
		return err
	}
	if len(doc.Content) > 0 {
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, "content"); err != nil {
			return err
		}
		if err := openBracket(w, es, "["); err != nil {
			return err
		}
		for i, el := range doc.Content {
			if i > 0 {
				es.colorKind = element.ArrayKind
				if err := nextField(w, es); err != nil {
					return err
				}
			}
			if err := encodeElement(el, w, es); err != nil {
				return err
			}
		}
		es.colorKind = element.ArrayKind
		if err := closeBracket(w, es, "]"); err != nil {
			return err
		}
	}
	es.colorKind = element.ArrayKind
	return closeBracket(w, es, "}")
}

// encodeElement

func encodeElement(el *element.Element, w io.Writer, es *EncState) error {
	es.colorKind = el.Kind
	kind := el.Kind
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "element"); err != nil {
		return err
	}
	name := strconv.Quote(el.ElementName())
	if err := writeString(w, applyColor(es, ValueColor, name)); err != nil {
		return err
	}
	if hasMeta(el.Meta) {
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, "meta"); err != nil {
			return err
		}
		if err := encodeMeta(el.Meta, w, es); err != nil {
			return err
		}
		es.colorKind = kind
	}
	if len(el.Attrs.TypeAttributes) > 0 {
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := encodeAttrs(&el.Attrs, w, es); err != nil {
			return err
		}
	}
	switch {
	case len(el.Members) > 0:
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, "content"); err != nil {
			return err
		}
		if err := openBracket(w, es, "["); err != nil {
			return err
		}
		for i, m := range el.Members {
			if i > 0 {
				es.colorKind = kind
				if err := nextField(w, es); err != nil {
					return err
				}
			}
			if err := encodeMember(m, w, es); err != nil {
				return err
			}
		}
		es.colorKind = kind
		if err := closeBracket(w, es, "]"); err != nil {
			return err
		}
	case len(el.Content) > 0:
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, "content"); err != nil {
			return err
		}
		if err := openBracket(w, es, "["); err != nil {
			return err
		}
		for i, sub := range el.Content {
			if i > 0 {
				es.colorKind = kind
				if err := nextField(w, es); err != nil {
					return err
				}
			}
			if err := encodeElement(sub, w, es); err != nil {
				return err
			}
		}
		es.colorKind = kind
		if err := closeBracket(w, es, "]"); err != nil {
			return err
		}
	}
	es.colorKind = kind
	return closeBracket(w, es, "}")
}

// encodeMember

func encodeMember(m *element.Member, w io.Writer, es *EncState) error {
	es.colorKind = element.ObjectKind
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "element"); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ValueColor, `"member"`)); err != nil {
		return err
	}
	if hasMeta(m.Meta) {
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, "meta"); err != nil {
			return err
		}
		if err := encodeMeta(m.Meta, w, es); err != nil {
			return err
		}
		es.colorKind = element.ObjectKind
	}
	if len(m.Attrs.TypeAttributes) > 0 {
		if err := nextField(w, es); err != nil {
			return err
		}
		if err := encodeAttrs(&m.Attrs, w, es); err != nil {
			return err
		}
	}
	if err := nextField(w, es); err != nil {
		return err
	}
	if err := writeField(w, es, "content"); err != nil {
		return err
	}
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "key"); err != nil {
		return err
	}
	if err := encodeStringElement(m.Key, w, es); err != nil {
		return err
	}
	es.colorKind = element.ObjectKind
	if err := nextField(w, es); err != nil {
		return err
	}
	if err := writeField(w, es, "value"); err != nil {
		return err
	}
	if err := encodeElement(m.Value, w, es); err != nil {
		return err
	}
	es.colorKind = element.ObjectKind
	if err := closeBracket(w, es, "}"); err != nil {
		return err
	}
	return closeBracket(w, es, "}")
}

// encodeMeta writes id and description, each as a string element.
func encodeMeta(meta *element.Metadata, w io.Writer, es *EncState) error {
	kind := es.colorKind
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	first := true
	if meta.ID != "" {
		if err := writeField(w, es, "id"); err != nil {
			return err
		}
		if err := encodeStringElement(meta.ID, w, es); err != nil {
			return err
		}
		es.colorKind = kind
		first = false
	}
	if meta.Description != "" {
		if !first {
			if err := nextField(w, es); err != nil {
				return err
			}
		}
		if err := writeField(w, es, "description"); err != nil {
			return err
		}
		if err := encodeStringElement(meta.Description, w, es); err != nil {
			return err
		}
		es.colorKind = kind
	}
	return closeBracket(w, es, "}")
}

func encodeAttrs(attrs *element.Attributes, w io.Writer, es *EncState) error {
	if err := writeField(w, es, "attributes"); err != nil {
		return err
	}
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "typeAttributes"); err != nil {
		return err
	}
	if err := writePunct(w, es, "["); err != nil {
		return err
	}
	sep := ", "
	if es.wire {
		sep = ","
	}
	for i, a := range attrs.TypeAttributes {
		if i > 0 {
			if err := writePunct(w, es, sep); err != nil {
				return err
			}
		}
		if err := writeString(w, applyColor(es, ValueColor, strconv.Quote(a))); err != nil {
			return err
		}
	}
	if err := writePunct(w, es, "]"); err != nil {
		return err
	}
	return closeBracket(w, es, "}")
}

func encodeStringElement(v string, w io.Writer, es *EncState) error {
	es.colorKind = element.StringKind
	if err := openBracket(w, es, "{"); err != nil {
		return err
	}
	if err := writeField(w, es, "element"); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ValueColor, `"string"`)); err != nil {
		return err
	}
	if err := nextField(w, es); err != nil {
		return err
	}
	if err := writeField(w, es, "content"); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, ValueColor, strconv.Quote(v))); err != nil {
		return err
	}
	return closeBracket(w, es, "}")
}

func hasMeta(meta *element.Metadata) bool {
	return meta != nil && (meta.ID != "" || meta.Description != "")
}
