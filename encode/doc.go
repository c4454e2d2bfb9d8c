// Package encode serializes element trees to the interchange
// representation, as JSON or YAML.
//
// The JSON writer is hand rolled so that indentation depth and
// terminal colors can be threaded through the encoding state. The
// YAML path marshals an order-preserving view of the same structure.
package encode
