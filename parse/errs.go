package parse

import (
	"errors"
	"fmt"

	"github.com/mson-format/go-mson/token"
)

var (
	errInternal = errors.New("internal error")

	ErrSyntax = errors.New("syntax error")
)

// SyntaxErr reports a token no grammar production accepts in the
// current parse state. It carries the offending token.
type SyntaxErr struct {
	Tok token.Token
}

func (e *SyntaxErr) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s: unexpected %s %q %s",
		ErrSyntax.Error(), e.Tok.Type, string(e.Tok.Bytes), e.Tok.Pos)
}

func unexpected(tok *token.Token) error {
	return &SyntaxErr{Tok: *tok}
}

func expectedErr(what string, tok *token.Token) error {
	return fmt.Errorf("%w: expected %s, got %s %q %s",
		ErrSyntax, what, tok.Type, string(tok.Bytes), tok.Pos)
}
