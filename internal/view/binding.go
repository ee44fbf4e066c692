package view

import (
	"xqfront/internal/cst"
	"xqfront/internal/token"
)

var bindingKinds = []token.Kind{
	token.ForBinding, token.LetBinding, token.PositionalVar, token.Param,
	token.QuantifiedBinding, token.CopyBinding, token.VarDecl,
}

var bindingSet = token.NewSet(bindingKinds...)

// VariableBinding is any construct that introduces a variable: for, let
// and positional variables, function parameters, quantified and copy
// bindings, and prolog variable declarations.
type VariableBinding struct{ node }

func (b VariableBinding) Variable() (QName, bool) { return nameChild(b.tree, b.id) }

func (b VariableBinding) Name() (QName, bool) { return b.Variable() }

// Resolve finds the binding a variable reference refers to by walking up
// the tree and looking at the bindings that precede each ancestor's child
// on the path. The innermost binding wins. References to undeclared or
// external variables are not resolved.
func Resolve(v VarRef) (VariableBinding, bool) {
	name, ok := v.Name()
	if !ok {
		return VariableBinding{}, false
	}
	want := name.String()
	t := v.tree
	for child, anc := v.id, t.Parent(v.id); anc.IsValid(); child, anc = anc, t.Parent(anc) {
		if bindingSet.Has(t.Kind(anc)) {
			// `for $x in $x`: the expression does not see its own binding
			continue
		}
		var found cst.NodeID
		for _, sib := range t.ChildrenOf(anc) {
			if sib == child {
				break
			}
			for _, b := range binders(t, sib) {
				if q, ok := nameChild(t, b); ok && q.String() == want {
					found = b
				}
			}
		}
		if found.IsValid() {
			return VariableBinding{node{t, found}}, true
		}
	}
	return VariableBinding{}, false
}

// binders returns the bindings id introduces for the nodes that follow it.
func binders(t *cst.Tree, id cst.NodeID) []cst.NodeID {
	switch k := t.Kind(id); {
	case k == token.ForBinding:
		out := []cst.NodeID{id}
		if pv := t.Child(id, token.PositionalVar); pv.IsValid() {
			out = append(out, pv)
		}
		return out
	case bindingSet.Has(k):
		return []cst.NodeID{id}
	case k == token.ForClause, k == token.LetClause, k == token.ParamList, k == token.Prolog:
		var out []cst.NodeID
		for _, c := range t.ChildrenOf(id) {
			out = append(out, binders(t, c)...)
		}
		return out
	}
	return nil
}
