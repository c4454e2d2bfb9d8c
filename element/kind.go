package element

import "fmt"

type Kind int

const (
	ObjectKind Kind = iota
	ArrayKind
	StringKind
	NumberKind
	BooleanKind
	GenericKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ObjectKind:  "Object",
		ArrayKind:   "Array",
		StringKind:  "String",
		NumberKind:  "Number",
		BooleanKind: "Boolean",
		GenericKind: "Generic",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Object":  ObjectKind,
		"Array":   ArrayKind,
		"String":  StringKind,
		"Number":  NumberKind,
		"Boolean": BooleanKind,
		"Generic": GenericKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ObjectKind,
		ArrayKind,
		StringKind,
		NumberKind,
		BooleanKind,
		GenericKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
