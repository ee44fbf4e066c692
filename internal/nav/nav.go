// Package nav walks a syntax tree looking for the first node a projection
// accepts. Projections are usually view.As instantiations, which keeps this
// package independent of the typed views.
package nav

import "xqfront/internal/cst"

// Projection tries to interpret a node as C.
type Projection[C any] func(t *cst.Tree, id cst.NodeID) (C, bool)

// Ancestor returns the nearest node from id up to the root, id included,
// that as accepts.
func Ancestor[C any](t *cst.Tree, id cst.NodeID, as Projection[C]) (C, bool) {
	for ; id.IsValid(); id = t.Parent(id) {
		if c, ok := as(t, id); ok {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// FirstChildDescendant follows first-child links below id and returns the
// first node that as accepts. id itself is not tested.
func FirstChildDescendant[C any](t *cst.Tree, id cst.NodeID, as Projection[C]) (C, bool) {
	for id = t.FirstChild(id); id.IsValid(); id = t.FirstChild(id) {
		if c, ok := as(t, id); ok {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// Ancestors returns the chain from id's parent up to the root.
func Ancestors(t *cst.Tree, id cst.NodeID) []cst.NodeID {
	var out []cst.NodeID
	for id = t.Parent(id); id.IsValid(); id = t.Parent(id) {
		out = append(out, id)
	}
	return out
}
