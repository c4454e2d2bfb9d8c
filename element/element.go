package element

// Metadata is the optional identity of an Element or Member: the name
// it was declared under and its prose description.
type Metadata struct {
	ID          string
	Description string
}

// Attributes carries the structural modifier tags of a type
// annotation. TypeAttributes preserves declaration order; the only
// recognized values are "fixed" and "fixed-type".
type Attributes struct {
	TypeAttributes []string
}

// Element is one node of the document tree. The content payload
// depends on Kind: Members for ObjectKind (and generic named types
// such as enums), Content for ArrayKind, nothing for the primitive
// kinds. A GenericKind element names its type in Name.
type Element struct {
	Kind  Kind
	Name  string
	Meta  *Metadata
	Attrs Attributes

	Members []*Member
	Content []*Element
}

// Member is one key/value entry of an object's content. Keys are not
// required to be unique; declaration order is preserved.
type Member struct {
	Key   string
	Value *Element
	Meta  *Metadata
	Attrs Attributes
}

// Document is the compiled form of one source document: its root
// elements in source order, one per header section.
type Document struct {
	Content []*Element
}

func NewObject(members ...*Member) *Element {
	return &Element{Kind: ObjectKind, Members: members}
}

// NewArray returns an array element referencing memberType as the
// type of its members; an empty memberType leaves the array
// unconstrained.
func NewArray(memberType string) *Element {
	a := &Element{Kind: ArrayKind}
	if memberType != "" {
		a.Content = []*Element{NewGeneric(memberType)}
	}
	return a
}

func NewString() *Element {
	return &Element{Kind: StringKind}
}

func NewNumber() *Element {
	return &Element{Kind: NumberKind}
}

func NewBoolean() *Element {
	return &Element{Kind: BooleanKind}
}

func NewGeneric(name string) *Element {
	return &Element{Kind: GenericKind, Name: name}
}

// ElementName returns the interchange name of the element's type:
// the lowercase kind name, or the declared type name for generics.
func (e *Element) ElementName() string {
	switch e.Kind {
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BooleanKind:
		return "boolean"
	default:
		return e.Name
	}
}

// WithMeta sets the element's identity, dropping Metadata entirely
// when both parts are empty.
func (e *Element) WithMeta(id, description string) *Element {
	if id == "" && description == "" {
		e.Meta = nil
		return e
	}
	e.Meta = &Metadata{ID: id, Description: description}
	return e
}

// Visit walks the element and everything reachable from it, members
// included, calling f pre and post order. Returning false from the
// pre order call prunes the subtree.
func (e *Element) Visit(f func(e *Element, isPost bool) (bool, error)) error {
	dive, err := f(e, false)
	if err != nil {
		return err
	}
	if dive {
		for _, m := range e.Members {
			if err := m.Value.Visit(f); err != nil {
				return err
			}
		}
		for _, c := range e.Content {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(e, true); err != nil {
		return err
	}
	return nil
}
