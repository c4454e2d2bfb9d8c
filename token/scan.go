package token

import (
	"bytes"
	"io"
)

// reserved words in match priority order. The scanner tries these at
// every scan position before falling back to a free text run, so a
// reserved word wins only where a text run could not already have
// begun, matching the surface language's rule priorities.
var keywords = []struct {
	lit string
	t   TokenType
	ci  bool // initial letter may be capitalized
}{
	{"fixed-type", TFixedType, false},
	{"fixed", TFixed, false},
	{"members", TMembers, true},
	{"properties", TProperties, true},
	{"string", TString, false},
	{"number", TNumber, false},
	{"boolean", TBoolean, false},
	{"object", TObject, false},
	{"array", TArray, false},
	{"enum", TEnum, false},
}

// textExcluded holds the characters that terminate a free text run:
// structural punctuation, header markers, bullet markers and line
// control characters. Note that ' ' is not among them.
func textExcluded(c byte) bool {
	switch c {
	case '#', '-', '+', '\t', '\r', '\f', '\v', '\n', '(', ')', '[', ']', ',':
		return true
	default:
		return false
	}
}

// Scanner turns one document into a lazy token sequence. It is good
// for a single pass over a single document; scanning again requires a
// fresh Scanner. All state (nesting depth, line start flag, position
// index) lives here, never in package scope.
type Scanner struct {
	doc    []byte
	posDoc *PosDoc
	i      int

	// depth counts open '(' and '['. While depth > 0 newlines are
	// absorbed as whitespace so annotations may wrap lines.
	depth     int
	lineStart bool
}

// NewScanner returns a Scanner over d. A trailing newline is appended
// when missing so that every logical line is newline terminated.
func NewScanner(d []byte) *Scanner {
	doc := make([]byte, len(d), len(d)+1)
	copy(doc, d)
	if len(doc) == 0 || doc[len(doc)-1] != '\n' {
		doc = append(doc, '\n')
	}
	return &Scanner{
		doc:       doc,
		posDoc:    &PosDoc{d: doc},
		lineStart: true,
	}
}

// Next returns the next token, or io.EOF after the last one. Line
// start whitespace is forwarded only at nesting depth 0; all other
// whitespace is dropped here and never reaches the caller.
func (s *Scanner) Next() (*Token, error) {
	for {
		if s.i >= len(s.doc) {
			return nil, io.EOF
		}
		c := s.doc[s.i]
		switch c {
		case '#':
			j := s.i
			for j < len(s.doc) && s.doc[j] == '#' {
				j++
			}
			return s.emit(THeader, j), nil

		case ' ', '\t':
			j := s.i
			for j < len(s.doc) && (s.doc[j] == ' ' || s.doc[j] == '\t') {
				j++
			}
			if s.lineStart && s.depth == 0 {
				tok := &Token{
					Type:      TWS,
					Pos:       s.posDoc.Pos(s.i),
					Bytes:     s.doc[s.i:j],
					LineStart: true,
				}
				s.i = j
				return tok, nil
			}
			s.i = j
			continue

		case '\n':
			j := s.i
			for j < len(s.doc) && s.doc[j] == '\n' {
				s.posDoc.nl(j)
				j++
			}
			if s.depth > 0 {
				// annotation wraps across the line break
				s.i = j
				continue
			}
			tok := &Token{
				Type:      TNewline,
				Pos:       s.posDoc.Pos(s.i),
				Bytes:     s.doc[s.i:j],
				LineStart: s.lineStart,
			}
			s.i = j
			s.lineStart = true
			return tok, nil

		case '(':
			s.depth++
			return s.emit(TLParen, s.i+1), nil
		case '[':
			s.depth++
			return s.emit(TLBracket, s.i+1), nil
		case ')':
			if s.depth == 0 {
				return nil, unmatched(c, s.posDoc.Pos(s.i))
			}
			s.depth--
			return s.emit(TRParen, s.i+1), nil
		case ']':
			if s.depth == 0 {
				return nil, unmatched(c, s.posDoc.Pos(s.i))
			}
			s.depth--
			return s.emit(TRBracket, s.i+1), nil
		case ',':
			return s.emit(TComma, s.i+1), nil
		case '-':
			return s.emit(TDash, s.i+1), nil
		case '+':
			return s.emit(TPlus, s.i+1), nil

		default:
			return s.scanWord()
		}
	}
}

// scanWord handles numbers, reserved words and free text runs, in
// that priority order.
func (s *Scanner) scanWord() (*Token, error) {
	d := s.doc[s.i:]
	c := d[0]
	if asciiDigit(c) || (c == '.' && len(d) > 1 && asciiDigit(d[1])) {
		n, err := number(d)
		if err != nil {
			return nil, &LexicalErr{What: err.Error(), Pos: *s.posDoc.Pos(s.i)}
		}
		return s.emit(TNum, s.i+n), nil
	}
	if n := matchDataStructures(d); n > 0 {
		return s.emit(TDataStructures, s.i+n), nil
	}
	for _, kw := range keywords {
		n := matchKeyword(d, kw.lit, kw.ci)
		if n > 0 {
			return s.emit(kw.t, s.i+n), nil
		}
	}
	if !textExcluded(c) {
		j := s.i
		for j < len(s.doc) && !textExcluded(s.doc[j]) {
			j++
		}
		return s.emit(TText, j), nil
	}
	return nil, unexpectedChar(c, s.posDoc.Pos(s.i))
}

func (s *Scanner) emit(t TokenType, end int) *Token {
	tok := &Token{
		Type:      t,
		Pos:       s.posDoc.Pos(s.i),
		Bytes:     s.doc[s.i:end],
		LineStart: s.lineStart,
	}
	s.i = end
	s.lineStart = false
	return tok
}

func matchKeyword(d []byte, lit string, ci bool) int {
	if len(d) < len(lit) {
		return 0
	}
	c := d[0]
	if ci && c == lit[0]-'a'+'A' {
		c = lit[0]
	}
	if c != lit[0] {
		return 0
	}
	if !bytes.Equal(d[1:len(lit)], []byte(lit[1:])) {
		return 0
	}
	return len(lit)
}

// matchDataStructures recognizes the optional leading section marker
// "Data Structures", with either word initial cased either way and
// any run of blanks between the words.
func matchDataStructures(d []byte) int {
	n := matchKeyword(d, "data", true)
	if n == 0 {
		return 0
	}
	i := n
	for i < len(d) && (d[i] == ' ' || d[i] == '\t') {
		i++
	}
	m := matchKeyword(d[i:], "structures", true)
	if m == 0 {
		return 0
	}
	return i + m
}
