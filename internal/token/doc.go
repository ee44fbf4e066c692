// Package token defines the closed set of node kinds shared by the lexer,
// the parser and the typed views.
// Invariants:
//   - Token.Text is a slice of the file content; Token.Span matches it exactly.
//   - Keywords are classified as themselves but remain usable as names.
//   - Kind values are stable: renaming or merging kinds changes the tree
//     contract for every consumer.
package token
