package token

import (
	"errors"
	"fmt"
)

var (
	ErrLexical     = errors.New("lexical error")
	ErrIndentation = errors.New("inconsistent indentation")
	ErrNumber      = errors.New("malformed number")
)

// LexicalErr reports an input character that matches no scanner rule,
// or structurally invalid punctuation such as an unmatched ')'.
type LexicalErr struct {
	What string
	Pos  Pos
}

func (e *LexicalErr) Unwrap() error {
	return ErrLexical
}

func (e *LexicalErr) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrLexical.Error(), e.What, e.Pos.String())
}

func unexpectedChar(c byte, p *Pos) error {
	return &LexicalErr{What: fmt.Sprintf("unexpected character %q", string(c)), Pos: *p}
}

func unmatched(c byte, p *Pos) error {
	return &LexicalErr{What: fmt.Sprintf("unmatched %q", string(c)), Pos: *p}
}

// IndentErr reports a dedent whose width matches no level on the
// indentation stack.
type IndentErr struct {
	Width int
	Pos   Pos
}

func (e *IndentErr) Unwrap() error {
	return ErrIndentation
}

func (e *IndentErr) Error() string {
	return fmt.Sprintf("%s: width %d matches no open level %s",
		ErrIndentation.Error(), e.Width, e.Pos.String())
}
