// Package element defines the document tree produced by parsing a
// schema notation document.
//
// # Overview
//
// A compiled document is an ordered sequence of root Elements, one
// per header section of the source. An Element is a tagged variant:
// its Kind selects among object, array, string, number, boolean and
// generic named types, and determines which content payload applies.
// Objects carry an ordered list of Members (key/value pairs with
// optional descriptions); arrays reference at most one member type;
// primitives carry nothing.
//
// The types here are passive data. They are built bottom up by the
// parse package and consumed whole by the encode package; nothing
// mutates an element after its parent attaches it. Every non root
// element is owned by exactly one parent: the tree has no sharing and
// no cycles.
//
// Duplicate member keys are deliberately retained, in declaration
// order, rather than rejected or deduplicated.
//
// # Related Packages
//
//   - github.com/mson-format/go-mson/parse - Builds Documents from text
//   - github.com/mson-format/go-mson/encode - Renders Documents
package element
