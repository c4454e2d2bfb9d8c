// Package parse builds element trees from schema notation text.
package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mson-format/go-mson/debug"
	"github.com/mson-format/go-mson/element"
	"github.com/mson-format/go-mson/token"
)

// Parse compiles one document into its element tree. The scan,
// normalize and build stages run as a single pull pipeline driven
// from here; all pipeline state is scoped to this call. On any
// lexical, indentation or syntax error the whole parse fails and no
// partial Document is returned.
func Parse(d []byte, opts ...ParseOption) (*element.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Tokens() {
		toks, err := token.Tokens(d)
		if err == nil {
			token.PrintTokens(toks, "parse")
		}
	}
	b := &builder{
		in:   token.NewIndenter(token.NewScanner(d)),
		opts: pOpts,
	}
	doc, err := b.document()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.LogAny(doc)
	}
	return doc, nil
}

// builder drives the token pipeline with bounded lookahead and
// reduces the grammar's productions bottom up.
type builder struct {
	in   *token.Indenter
	buf  []*token.Token
	opts *parseOpts
}

func (b *builder) peek(k int) (*token.Token, error) {
	for len(b.buf) <= k {
		tok, err := b.in.Next()
		if err == io.EOF {
			// the stream always ends with TEndMarker, which no
			// production consumes past
			return nil, fmt.Errorf("%w: token stream exhausted", errInternal)
		}
		if err != nil {
			return nil, err
		}
		b.buf = append(b.buf, tok)
	}
	return b.buf[k], nil
}

func (b *builder) next() (*token.Token, error) {
	tok, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	b.buf = b.buf[1:]
	return tok, nil
}

func (b *builder) expect(t token.TokenType, what string) (*token.Token, error) {
	tok, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Type != t {
		return nil, expectedErr(what, tok)
	}
	return b.next()
}

func (b *builder) skipNewlines() error {
	for {
		tok, err := b.peek(0)
		if err != nil {
			return err
		}
		if tok.Type != token.TNewline {
			return nil
		}
		if _, err := b.next(); err != nil {
			return err
		}
	}
}

func (b *builder) trackPos(el *element.Element, pos *token.Pos) {
	if b.opts.positions != nil && pos != nil {
		b.opts.positions[el] = pos
	}
}

// document := [data-structures-marker] header-section+ end-of-input
func (b *builder) document() (*element.Document, error) {
	if err := b.skipNewlines(); err != nil {
		return nil, err
	}
	t0, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	if t0.Type == token.THeader {
		t1, err := b.peek(1)
		if err != nil {
			return nil, err
		}
		if t1.Type == token.TDataStructures {
			// the marker produces no node
			b.next()
			b.next()
			if _, err := b.expect(token.TNewline, "newline after Data Structures"); err != nil {
				return nil, err
			}
		}
	}
	doc := &element.Document{}
	for {
		if err := b.skipNewlines(); err != nil {
			return nil, err
		}
		tok, err := b.peek(0)
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.THeader:
			root, err := b.headerSection()
			if err != nil {
				return nil, err
			}
			doc.Content = append(doc.Content, root)
		case token.TEndMarker:
			if len(doc.Content) == 0 {
				return nil, expectedErr("header section", tok)
			}
			b.next()
			return doc, nil
		default:
			return nil, unexpected(tok)
		}
	}
}

// headerSection := HEADER name [type-annotation] NEWLINE [description] object-items
func (b *builder) headerSection() (*element.Element, error) {
	hdr, err := b.expect(token.THeader, "header marker")
	if err != nil {
		return nil, err
	}
	nameTok, err := b.expect(token.TText, "type name")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(string(nameTok.Bytes))

	var ann *annotation
	tok, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TLParen {
		ann, err = b.typeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	if _, err := b.expect(token.TNewline, "newline after header"); err != nil {
		return nil, err
	}

	desc, err := b.description()
	if err != nil {
		return nil, err
	}
	items, sole, err := b.objectItems()
	if err != nil {
		return nil, err
	}

	// type resolution, in priority order: explicit annotation wins;
	// a lone implicit block is relabeled as the header's element;
	// otherwise the header is a plain object.
	var el *element.Element
	switch {
	case ann != nil:
		el = ann.resolve()
		el.Attrs = element.Attributes{TypeAttributes: ann.mods}
		el.Members = items
		if sole != nil {
			el.Members = sole.Members
		}
	case sole != nil && len(items) == 0:
		el = sole
	default:
		el = element.NewObject(items...)
	}
	el.WithMeta(name, desc)
	b.trackPos(el, hdr.Pos)
	return el, nil
}

// description := (TEXT NEWLINE)* before any bullet
func (b *builder) description() (string, error) {
	var lines []string
	for {
		tok, err := b.peek(0)
		if err != nil {
			return "", err
		}
		if tok.Type != token.TText {
			break
		}
		b.next()
		lines = append(lines, strings.TrimSpace(string(tok.Bytes)))
		if _, err := b.expect(token.TNewline, "newline after description"); err != nil {
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}

// objectItems := (member-line | implicit-block | section-marker)*
//
// It returns the accumulated members plus, when the block level's
// only content was a single implicit block with no preceding member,
// that block's anonymous object (the header push-down case).
func (b *builder) objectItems() ([]*element.Member, *element.Element, error) {
	var (
		items         []*element.Member
		sole          *element.Element
		membersMarker bool
	)
	for {
		tok, err := b.peek(0)
		if err != nil {
			return nil, nil, err
		}
		switch tok.Type {
		case token.TNewline:
			b.next()

		case token.TDash, token.TPlus:
			if sole != nil {
				// rule 2 requires the implicit block to be the
				// level's only content
				return nil, nil, unexpected(tok)
			}
			m, err := b.memberLine()
			if err != nil {
				return nil, nil, err
			}
			items = append(items, m)
			membersMarker = false

		case token.THeader:
			nxt, err := b.peek(1)
			if err != nil {
				return nil, nil, err
			}
			switch nxt.Type {
			case token.TMembers, token.TProperties:
				// pure signal: the following block lists the
				// enclosing type's members
				b.next()
				b.next()
				if _, err := b.expect(token.TNewline, "newline after section marker"); err != nil {
					return nil, nil, err
				}
				membersMarker = true
			default:
				// next header section
				return items, sole, nil
			}

		case token.TIndent:
			blk, err := b.implicitBlock()
			if err != nil {
				return nil, nil, err
			}
			switch {
			case membersMarker:
				items = append(items, blk.Members...)
				membersMarker = false
			case len(items) > 0:
				fold(items[len(items)-1], blk)
			case sole == nil:
				sole = blk
			default:
				return nil, nil, unexpected(tok)
			}

		case token.TDedent, token.TEndMarker:
			return items, sole, nil

		default:
			return nil, nil, unexpected(tok)
		}
	}
}

// implicit-block := INDENT object-items DEDENT, reduced to an
// anonymous object. A block whose only content is itself a single
// nested block collapses to that inner block.
func (b *builder) implicitBlock() (*element.Element, error) {
	if _, err := b.expect(token.TIndent, "indent"); err != nil {
		return nil, err
	}
	items, sole, err := b.objectItems()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.TDedent, "dedent"); err != nil {
		return nil, err
	}
	if len(items) == 0 && sole != nil {
		return sole, nil
	}
	return element.NewObject(items...), nil
}

// fold attaches an implicit block to the member line preceding it.
// An annotated object or named type with no members yet adopts the
// block's members; any other value, the default string included, is
// superseded by the block itself.
func fold(m *element.Member, blk *element.Element) {
	v := m.Value
	if v != nil && len(v.Members) == 0 {
		switch v.Kind {
		case element.ObjectKind, element.GenericKind:
			v.Members = blk.Members
			return
		}
	}
	m.Value = blk
}

// member-line := ("-"|"+") name [type-annotation] ["-" trailing-text] NEWLINE
func (b *builder) memberLine() (*element.Member, error) {
	bullet, err := b.next()
	if err != nil {
		return nil, err
	}
	if bullet.Type != token.TDash && bullet.Type != token.TPlus {
		return nil, unexpected(bullet)
	}
	nameTok, err := b.expect(token.TText, "member name")
	if err != nil {
		return nil, err
	}
	m := &element.Member{Key: strings.TrimSpace(string(nameTok.Bytes))}

	tok, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TLParen {
		ann, err := b.typeAnnotation()
		if err != nil {
			return nil, err
		}
		m.Value = ann.resolve()
		m.Attrs = element.Attributes{TypeAttributes: ann.mods}
		tok, err = b.peek(0)
		if err != nil {
			return nil, err
		}
	}
	if tok.Type == token.TDash {
		// a bare dash introduces the trailing description whether
		// or not an annotation preceded it
		b.next()
		txt, err := b.expect(token.TText, "member description")
		if err != nil {
			return nil, err
		}
		m.Meta = &element.Metadata{Description: strings.TrimSpace(string(txt.Bytes))}
	}
	if m.Value == nil {
		m.Value = element.NewString()
	}
	if _, err := b.expect(token.TNewline, "newline after member"); err != nil {
		return nil, err
	}
	b.trackPos(m.Value, bullet.Pos)
	return m, nil
}

// annotation is a parsed but not yet constructed type annotation:
// resolution happens before any element is built, never by mutating
// one afterwards.
type annotation struct {
	kind element.Kind
	name string // generic type name
	ref  string // array member type name
	mods []string
}

func (a *annotation) resolve() *element.Element {
	switch a.kind {
	case element.ObjectKind:
		return element.NewObject()
	case element.ArrayKind:
		return element.NewArray(a.ref)
	case element.StringKind:
		return element.NewString()
	case element.NumberKind:
		return element.NewNumber()
	case element.BooleanKind:
		return element.NewBoolean()
	default:
		return element.NewGeneric(a.name)
	}
}

// type-annotation := "(" base-type ["[" name "]"] [ "," ("fixed"|"fixed-type") ] ")"
func (b *builder) typeAnnotation() (*annotation, error) {
	if _, err := b.expect(token.TLParen, "'('"); err != nil {
		return nil, err
	}
	ann := &annotation{}
	base, err := b.next()
	if err != nil {
		return nil, err
	}
	switch base.Type {
	case token.TObject:
		ann.kind = element.ObjectKind
	case token.TNumber:
		ann.kind = element.NumberKind
	case token.TBoolean:
		ann.kind = element.BooleanKind
	case token.TString:
		ann.kind = element.StringKind
	case token.TEnum:
		ann.kind = element.GenericKind
		ann.name = "enum"
	case token.TText:
		ann.kind = element.GenericKind
		ann.name = strings.TrimSpace(string(base.Bytes))
	case token.TArray:
		ann.kind = element.ArrayKind
		tok, err := b.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TLBracket {
			b.next()
			ref, err := b.expect(token.TText, "array member type")
			if err != nil {
				return nil, err
			}
			ann.ref = strings.TrimSpace(string(ref.Bytes))
			if _, err := b.expect(token.TRBracket, "']'"); err != nil {
				return nil, err
			}
		}
	default:
		return nil, expectedErr("base type", base)
	}

	tok, err := b.peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TComma {
		b.next()
		mod, err := b.next()
		if err != nil {
			return nil, err
		}
		switch mod.Type {
		case token.TFixed:
			ann.mods = append(ann.mods, "fixed")
		case token.TFixedType:
			ann.mods = append(ann.mods, "fixed-type")
		default:
			return nil, expectedErr("fixed or fixed-type", mod)
		}
	}
	if _, err := b.expect(token.TRParen, "')'"); err != nil {
		return nil, err
	}
	return ann, nil
}
