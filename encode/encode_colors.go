package encode

import (
	"strings"

	"github.com/mson-format/go-mson/element"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind element.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range element.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: NameColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = element.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = element.BooleanKind
	colors.Map[able] = color.CyanString

	able.Kind = element.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = element.GenericKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Kind = element.ObjectKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k element.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k element.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
