// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics, hangs and
// broken tree invariants on arbitrary input.
package fuzztests
