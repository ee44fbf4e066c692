// Package testkit holds structural checks shared by parser, driver and fuzz
// tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"xqfront/internal/cst"
	"xqfront/internal/source"
)

// CheckSpanInvariants verifies the shape of a parsed tree against its file:
//  1. the root covers the whole content
//  2. every leaf's text is exactly the content under its span
//  3. siblings are ordered and do not overlap, and each composite covers
//     its children
//  4. parent links point back at the composite that owns the child
func CheckSpanInvariants(tree *cst.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := tree.Span(tree.Root)
	if root.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", root.File, sf.ID)
	}
	if lenContent > 0 && (root.Start != 0 || root.End != lenContent) {
		return fmt.Errorf("root span %v does not cover content [0,%d)", root, lenContent)
	}
	if p := tree.Parent(tree.Root); p.IsValid() {
		return fmt.Errorf("root has parent %d", p)
	}
	return checkNode(tree, sf, tree.Root, lenContent)
}

func checkNode(tree *cst.Tree, sf *source.File, id cst.NodeID, lenContent uint32) error {
	n := tree.Get(id)
	if n == nil {
		return fmt.Errorf("dangling node id=%d", id)
	}
	if n.Span.Start > n.Span.End || n.Span.End > lenContent {
		return fmt.Errorf("%s span %v out of bounds", n.Kind, n.Span)
	}
	if n.IsLeaf() {
		if len(n.Children) > 0 {
			return fmt.Errorf("leaf %s has children", n.Kind)
		}
		if got := sf.Slice(n.Span); got != n.Text {
			return fmt.Errorf("leaf %s at %v has text %q, content is %q", n.Kind, n.Span, n.Text, got)
		}
		return nil
	}
	prevEnd := n.Span.Start
	for i, c := range n.Children {
		if p := tree.Parent(c); p != id {
			return fmt.Errorf("child %d of %s has parent %d, want %d", c, n.Kind, p, id)
		}
		sp := tree.Span(c)
		if sp.Start < prevEnd {
			return fmt.Errorf("child %d of %s at %v overlaps previous sibling ending at %d", i, n.Kind, sp, prevEnd)
		}
		if sp.End > n.Span.End {
			return fmt.Errorf("child %d of %s at %v exceeds parent span %v", i, n.Kind, sp, n.Span)
		}
		prevEnd = sp.End
		if err := checkNode(tree, sf, c, lenContent); err != nil {
			return err
		}
	}
	return nil
}

// CheckRoundTrip verifies that concatenating the leaves reproduces the
// input byte for byte.
func CheckRoundTrip(tree *cst.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got := tree.Text(tree.Root); got != string(sf.Content) {
		return fmt.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(sf.Content), len(got))
	}
	return nil
}
