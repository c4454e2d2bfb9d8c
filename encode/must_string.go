package encode

import (
	"bytes"
	"strings"

	"github.com/mson-format/go-mson/element"
)

func MustString(doc *element.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
