package parse

import (
	"github.com/mson-format/go-mson/element"
	"github.com/mson-format/go-mson/token"
)

type parseOpts struct {
	positions map[*element.Element]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of each element the
// parser constructs into m, keyed by the element.
func ParsePositions(m map[*element.Element]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*element.Element]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
