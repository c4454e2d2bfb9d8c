package token

import (
	"errors"
	"testing"
)

func countType(toks []Token, t TokenType) int {
	n := 0
	for i := range toks {
		if toks[i].Type == t {
			n++
		}
	}
	return n
}

func TestIndenterBalance(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		indents int
	}{
		{
			name:    "flat",
			in:      "# A\n- a\n- b\n",
			indents: 0,
		},
		{
			name:    "one level",
			in:      "# A\n- a\n  - b\n- c\n",
			indents: 1,
		},
		{
			name:    "two levels closed at eof",
			in:      "# A\n- a\n  - b\n    - c\n",
			indents: 2,
		},
		{
			name:    "reopen after dedent",
			in:      "- a\n  - b\n- c\n  - d\n",
			indents: 2,
		},
		{
			name:    "tab width differs from space width",
			in:      "- a\n\t- b\n",
			indents: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokens([]byte(tt.in))
			if err != nil {
				t.Fatalf("tokens error: %v", err)
			}
			in, de := countType(toks, TIndent), countType(toks, TDedent)
			if in != tt.indents {
				t.Errorf("got %d indents, want %d", in, tt.indents)
			}
			if in != de {
				t.Errorf("unbalanced: %d indents, %d dedents", in, de)
			}
			if n := countType(toks, TEndMarker); n != 1 {
				t.Errorf("got %d end markers", n)
			}
			if toks[len(toks)-1].Type != TEndMarker {
				t.Errorf("stream does not end with the end marker")
			}
			if n := countType(toks, TWS); n != 0 {
				t.Errorf("%d whitespace tokens leaked through", n)
			}
		})
	}
}

func TestIndenterBlankLines(t *testing.T) {
	// a line of only blanks changes no levels, whatever its width
	toks, err := Tokens([]byte("- a\n   \n- b\n"))
	if err != nil {
		t.Fatalf("tokens error: %v", err)
	}
	if n := countType(toks, TIndent); n != 0 {
		t.Errorf("blank line opened %d levels", n)
	}
}

func TestIndenterInconsistent(t *testing.T) {
	_, err := Tokens([]byte("- a\n    - b\n  - c\n"))
	if err == nil {
		t.Fatal("no error")
	}
	if !errors.Is(err, ErrIndentation) {
		t.Errorf("got %v, want indentation error", err)
	}
}

func TestIndenterDedentOrder(t *testing.T) {
	toks, err := Tokens([]byte("- a\n  - b\n    - c\n- d\n"))
	if err != nil {
		t.Fatalf("tokens error: %v", err)
	}
	// both levels close before the final bullet
	var seq []TokenType
	for i := range toks {
		switch toks[i].Type {
		case TIndent, TDedent:
			seq = append(seq, toks[i].Type)
		}
	}
	want := []TokenType{TIndent, TIndent, TDedent, TDedent}
	if len(seq) != len(want) {
		t.Fatalf("got %v", seq)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("got %v, want %v", seq, want)
		}
	}
	depth := 0
	for i := range toks {
		switch toks[i].Type {
		case TIndent:
			depth++
		case TDedent:
			depth--
		}
		if depth < 0 {
			t.Fatal("dedent below base level")
		}
	}
}

func TestIndenterIndentPosition(t *testing.T) {
	toks, err := Tokens([]byte("- a\n  - b\n"))
	if err != nil {
		t.Fatalf("tokens error: %v", err)
	}
	for i := range toks {
		if toks[i].Type != TIndent {
			continue
		}
		// the indent is positioned at the start of the indented line
		line, col := toks[i].Pos.LineCol()
		if line != 1 || col != 0 {
			t.Errorf("got line=%d col=%d", line, col)
		}
		return
	}
	t.Fatal("no indent token")
}
