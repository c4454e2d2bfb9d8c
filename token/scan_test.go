package token

import (
	"errors"
	"io"
	"testing"
)

func scanAll(t *testing.T, in string) []*Token {
	t.Helper()
	sc := NewScanner([]byte(in))
	var toks []*Token
	for {
		tok, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return toks
		}
		if err != nil {
			t.Fatalf("scan error on %q: %v", in, err)
		}
		toks = append(toks, tok)
	}
}

func typesOf(toks []*Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i, tok := range toks {
		res[i] = tok.Type
	}
	return res
}

func eqTypes(got, want []TokenType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestScanTypes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{
			name: "annotated header",
			in:   "# Foo (object)\n",
			want: []TokenType{THeader, TText, TLParen, TObject, TRParen, TNewline},
		},
		{
			name: "member with base type",
			in:   "- bar (string)\n",
			want: []TokenType{TDash, TText, TLParen, TString, TRParen, TNewline},
		},
		{
			name: "member with trailing description",
			in:   "- count (number) - the total\n",
			want: []TokenType{TDash, TText, TLParen, TNumber, TRParen, TDash, TText, TNewline},
		},
		{
			name: "array of named type",
			in:   "(array[Bar])",
			want: []TokenType{TLParen, TArray, TLBracket, TText, TRBracket, TRParen, TNewline},
		},
		{
			name: "fixed-type wins over fixed",
			in:   "(object, fixed-type)",
			want: []TokenType{TLParen, TObject, TComma, TFixedType, TRParen, TNewline},
		},
		{
			name: "data structures marker",
			in:   "# Data Structures\n",
			want: []TokenType{THeader, TDataStructures, TNewline},
		},
		{
			name: "properties marker",
			in:   "## Properties\n",
			want: []TokenType{THeader, TProperties, TNewline},
		},
		{
			name: "reserved word prefix splits text",
			in:   "membership\n",
			want: []TokenType{TMembers, TText, TNewline},
		},
		{
			name: "number forms",
			in:   "4.5, 1e9, .25\n",
			want: []TokenType{TNum, TComma, TNum, TComma, TNum, TNewline},
		},
		{
			name: "leading whitespace at line start",
			in:   "  - a\n",
			want: []TokenType{TWS, TDash, TText, TNewline},
		},
		{
			name: "plus bullet",
			in:   "+ a\n",
			want: []TokenType{TPlus, TText, TNewline},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := typesOf(scanAll(t, tt.in))
			if !eqTypes(got, tt.want) {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestScanTextIncludesSpaces(t *testing.T) {
	toks := scanAll(t, "# Foo Bar (object)\n")
	if toks[1].Type != TText {
		t.Fatalf("expected text, got %s", toks[1].Type)
	}
	if string(toks[1].Bytes) != "Foo Bar " {
		t.Errorf("got %q", toks[1].Bytes)
	}
}

func TestScanNewlineAbsorbedInParens(t *testing.T) {
	toks := scanAll(t, "(array\n[Bar])\n")
	want := []TokenType{TLParen, TArray, TLBracket, TText, TRBracket, TRParen, TNewline}
	if got := typesOf(toks); !eqTypes(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestScanMissingFinalNewline(t *testing.T) {
	toks := scanAll(t, "- a")
	if toks[len(toks)-1].Type != TNewline {
		t.Errorf("expected synthesized trailing newline, got %s", toks[len(toks)-1].Type)
	}
}

func TestScanLineStart(t *testing.T) {
	toks := scanAll(t, "  - a\n- b\n")
	// the whitespace run and the bullet behind it both open the line
	if !toks[0].LineStart || !toks[1].LineStart {
		t.Errorf("expected line start on %s and %s", toks[0].Type, toks[1].Type)
	}
	if toks[2].LineStart {
		t.Errorf("text after bullet is not a line start")
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unmatched close paren", in: "foo)\n"},
		{name: "unmatched close bracket", in: "foo]\n"},
		{name: "carriage return", in: "a\rb\n"},
		{name: "form feed", in: "a\fb\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScanner([]byte(tt.in))
			for {
				_, err := sc.Next()
				if err == nil {
					continue
				}
				if errors.Is(err, io.EOF) {
					t.Fatalf("no error on %q", tt.in)
				}
				if !errors.Is(err, ErrLexical) {
					t.Errorf("got %v, want lexical error", err)
				}
				return
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	toks := scanAll(t, "# A\n- b\n")
	dash := toks[3]
	if dash.Type != TDash {
		t.Fatalf("expected dash, got %s", dash.Type)
	}
	line, col := dash.Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("got line=%d col=%d", line, col)
	}
}
