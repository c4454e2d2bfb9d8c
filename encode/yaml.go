package encode

import (
	"fmt"
	"io"

	"github.com/mson-format/go-mson/element"

	"github.com/goccy/go-yaml"
)

// encodeYAML marshals the same interchange structure the JSON writer
// produces. MapSlice keeps the field order stable.
func encodeYAML(doc *element.Document, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(yamlDocument(doc), yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

func yamlDocument(doc *element.Document) yaml.MapSlice {
	res := yaml.MapSlice{{Key: "element", Value: "array"}}
	if len(doc.Content) == 0 {
		return res
	}
	content := make([]yaml.MapSlice, 0, len(doc.Content))
	for _, el := range doc.Content {
		content = append(content, yamlElement(el))
	}
	return append(res, yaml.MapItem{Key: "content", Value: content})
}

func yamlElement(el *element.Element) yaml.MapSlice {
	res := yaml.MapSlice{{Key: "element", Value: el.ElementName()}}
	if hasMeta(el.Meta) {
		res = append(res, yaml.MapItem{Key: "meta", Value: yamlMeta(el.Meta)})
	}
	if len(el.Attrs.TypeAttributes) > 0 {
		res = append(res, yaml.MapItem{Key: "attributes", Value: yamlAttrs(&el.Attrs)})
	}
	switch {
	case len(el.Members) > 0:
		content := make([]yaml.MapSlice, 0, len(el.Members))
		for _, m := range el.Members {
			content = append(content, yamlMember(m))
		}
		res = append(res, yaml.MapItem{Key: "content", Value: content})
	case len(el.Content) > 0:
		content := make([]yaml.MapSlice, 0, len(el.Content))
		for _, sub := range el.Content {
			content = append(content, yamlElement(sub))
		}
		res = append(res, yaml.MapItem{Key: "content", Value: content})
	}
	return res
}

func yamlMember(m *element.Member) yaml.MapSlice {
	res := yaml.MapSlice{{Key: "element", Value: "member"}}
	if hasMeta(m.Meta) {
		res = append(res, yaml.MapItem{Key: "meta", Value: yamlMeta(m.Meta)})
	}
	if len(m.Attrs.TypeAttributes) > 0 {
		res = append(res, yaml.MapItem{Key: "attributes", Value: yamlAttrs(&m.Attrs)})
	}
	content := yaml.MapSlice{
		{Key: "key", Value: yamlString(m.Key)},
		{Key: "value", Value: yamlElement(m.Value)},
	}
	return append(res, yaml.MapItem{Key: "content", Value: content})
}

func yamlMeta(meta *element.Metadata) yaml.MapSlice {
	res := yaml.MapSlice{}
	if meta.ID != "" {
		res = append(res, yaml.MapItem{Key: "id", Value: yamlString(meta.ID)})
	}
	if meta.Description != "" {
		res = append(res, yaml.MapItem{Key: "description", Value: yamlString(meta.Description)})
	}
	return res
}

func yamlAttrs(attrs *element.Attributes) yaml.MapSlice {
	return yaml.MapSlice{{Key: "typeAttributes", Value: attrs.TypeAttributes}}
}

func yamlString(v string) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "element", Value: "string"},
		{Key: "content", Value: v},
	}
}
