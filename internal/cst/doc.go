// Package cst stores concrete syntax trees in a flat arena.
//
// Every byte of the input belongs to exactly one leaf, so the leaf texts
// of a tree concatenate back to the source. Composites only reference
// children by NodeID and children point back through Parent.
package cst
