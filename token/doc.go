// Package token provides the lexical stages of the schema notation
// pipeline: a Scanner turning document bytes into tokens and an
// Indenter turning leading whitespace changes into explicit
// TIndent/TDedent block markers.
//
// Both stages are pull based: construct them per document and drain
// with Next until io.EOF. Neither is restartable and neither shares
// state with other instances, so independent documents may be scanned
// concurrently with independent Scanners.
//
//	ix := token.NewIndenter(token.NewScanner(doc))
//	for {
//		tok, err := ix.Next()
//		...
//	}
//
// # Related Packages
//
//   - github.com/mson-format/go-mson/parse - Builds the element tree
//   - github.com/mson-format/go-mson/element - The tree the parser builds
package token
