package token

import "io"

// Indenter rewrites a Scanner's token sequence so that every
// indentation driven block boundary is explicit: line start
// whitespace tokens are swallowed and TIndent/TDedent pairs are
// emitted where the leading width changes, using a stack of open
// widths whose base level 0 is never popped. The sequence ends with
// one TDedent per open level followed by a single TEndMarker.
type Indenter struct {
	sc      *Scanner
	levels  []int
	pending int
	q       []*Token
	done    bool
}

func NewIndenter(sc *Scanner) *Indenter {
	return &Indenter{
		sc:     sc,
		levels: []int{0},
	}
}

// Next returns the next normalized token, or io.EOF after the
// TEndMarker. A dedent to a width that was never pushed fails with an
// IndentErr.
func (ix *Indenter) Next() (*Token, error) {
	for {
		if len(ix.q) > 0 {
			tok := ix.q[0]
			ix.q = ix.q[1:]
			return tok, nil
		}
		if ix.done {
			return nil, io.EOF
		}
		tok, err := ix.sc.Next()
		if err == io.EOF {
			end := ix.sc.posDoc.end()
			for len(ix.levels) > 1 {
				ix.levels = ix.levels[:len(ix.levels)-1]
				ix.q = append(ix.q, &Token{Type: TDedent, Pos: end})
			}
			ix.q = append(ix.q, &Token{Type: TEndMarker, Pos: end})
			ix.done = true
			continue
		}
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TWS:
			// only the width matters; the token itself is
			// never forwarded
			ix.pending = len(tok.Bytes)
			continue
		case TNewline:
			ix.pending = 0
			return tok, nil
		}
		if !tok.LineStart {
			return tok, nil
		}
		top := ix.levels[len(ix.levels)-1]
		switch {
		case ix.pending == top:
			return tok, nil
		case ix.pending > top:
			ix.levels = append(ix.levels, ix.pending)
			ix.q = append(ix.q, tok)
			return &Token{
				Type:      TIndent,
				Pos:       ix.sc.posDoc.Pos(tok.Pos.I - ix.pending),
				LineStart: true,
			}, nil
		default:
			for ix.levels[len(ix.levels)-1] > ix.pending {
				ix.levels = ix.levels[:len(ix.levels)-1]
				ix.q = append(ix.q, &Token{Type: TDedent, Pos: tok.Pos})
			}
			if ix.levels[len(ix.levels)-1] != ix.pending {
				return nil, &IndentErr{Width: ix.pending, Pos: *tok.Pos}
			}
			ix.q = append(ix.q, tok)
		}
	}
}

// Tokens runs the full scan and normalize pipeline over d and returns
// the materialized sequence. It is a convenience for callers that
// want the whole stream at once, such as tests and debug dumps.
func Tokens(d []byte) ([]Token, error) {
	ix := NewIndenter(NewScanner(d))
	var toks []Token
	for {
		tok, err := ix.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, *tok)
	}
}
