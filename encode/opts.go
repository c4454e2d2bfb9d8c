package encode

import "github.com/mson-format/go-mson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire suppresses all whitespace in JSON output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
