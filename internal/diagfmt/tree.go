package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"xqfront/internal/cst"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/view"
)

// NodeJSON is one syntax tree node in JSON output.
type NodeJSON struct {
	Kind       string     `json:"kind"`
	Span       SpanJSON   `json:"span"`
	Text       string     `json:"text,omitempty"`
	Message    string     `json:"message,omitempty"`
	Annotation string     `json:"annotation,omitempty"`
	Children   []NodeJSON `json:"children,omitempty"`
}

// BuildTreeJSON converts the subtree at id.
func BuildTreeJSON(tree *cst.Tree, id cst.NodeID, opts TreeOpts) NodeJSON {
	n := tree.Get(id)
	out := NodeJSON{
		Kind:    n.Kind.String(),
		Span:    SpanJSON{Start: n.Span.Start, End: n.Span.End},
		Text:    n.Text,
		Message: n.Message,
	}
	if opts.Annotate {
		out.Annotation = annotate(tree, id)
	}
	for _, c := range tree.ChildrenOf(id) {
		if !opts.Trivia && isTrivia(tree, c) {
			continue
		}
		out.Children = append(out.Children, BuildTreeJSON(tree, c, opts))
	}
	return out
}

// FormatTreeJSON writes the tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, tree *cst.Tree, opts TreeOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeJSON(tree, tree.Root, opts))
}

// FormatTreePretty writes one node per line indented by depth, with byte
// spans:
//
//	AdditiveExpr [0,5)
//	  Literal [0,1)
//	    IntegerLiteral "1"
func FormatTreePretty(w io.Writer, tree *cst.Tree, opts TreeOpts) error {
	p := newTreePalette(opts.Color)
	var err error
	var walk func(id cst.NodeID, depth int)
	walk = func(id cst.NodeID, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), p.label(tree, id, opts, true))
		for _, c := range tree.ChildrenOf(id) {
			if opts.Trivia || !isTrivia(tree, c) {
				walk(c, depth+1)
			}
		}
	}
	walk(tree.Root, 0)
	return err
}

// FormatTree draws the tree with box characters and line:col spans.
func FormatTree(w io.Writer, tree *cst.Tree, fs *source.FileSet, opts TreeOpts) error {
	p := newTreePalette(opts.Color)
	root := tree.Span(tree.Root)
	header := "Module"
	if fs != nil && int(root.File) < fs.Len() {
		header = formatPath(fs.Get(root.File), fs, PathModeAuto)
	}
	if _, err := fmt.Fprintln(w, p.header.Sprint(header)); err != nil {
		return err
	}

	var sb strings.Builder
	var walk func(id cst.NodeID, prefix string, last bool)
	walk = func(id cst.NodeID, prefix string, last bool) {
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		sb.WriteString(prefix + branch + p.label(tree, id, opts, false))
		if fs != nil {
			start, end := fs.Resolve(tree.Span(id))
			fmt.Fprintf(&sb, " %s", p.span.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col))
		}
		sb.WriteByte('\n')
		kids := visibleChildren(tree, id, opts)
		for i, c := range kids {
			walk(c, prefix+next, i == len(kids)-1)
		}
	}
	kids := visibleChildren(tree, tree.Root, opts)
	for i, c := range kids {
		walk(c, "", i == len(kids)-1)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func visibleChildren(tree *cst.Tree, id cst.NodeID, opts TreeOpts) []cst.NodeID {
	if opts.Trivia {
		return tree.ChildrenOf(id)
	}
	var out []cst.NodeID
	for _, c := range tree.ChildrenOf(id) {
		if !isTrivia(tree, c) {
			out = append(out, c)
		}
	}
	return out
}

func isTrivia(tree *cst.Tree, id cst.NodeID) bool {
	k := tree.Kind(id)
	return token.Trivia.Has(k) || k == token.Comment
}

type treePalette struct {
	header, composite, leaf, errNode, span, note *color.Color
}

func newTreePalette(enabled bool) treePalette {
	return treePalette{
		header:    newColor(enabled, color.Bold),
		composite: newColor(enabled, color.FgBlue, color.Bold),
		leaf:      newColor(enabled, color.FgGreen),
		errNode:   newColor(enabled, color.FgRed, color.Bold),
		span:      newColor(enabled, color.Faint),
		note:      newColor(enabled, color.FgYellow),
	}
}

func (p treePalette) label(tree *cst.Tree, id cst.NodeID, opts TreeOpts, withSpan bool) string {
	n := tree.Get(id)
	var sb strings.Builder
	switch {
	case n.Kind == token.Error:
		sb.WriteString(p.errNode.Sprint(n.Kind.String()))
	case n.IsLeaf():
		sb.WriteString(p.leaf.Sprint(n.Kind.String()))
	default:
		sb.WriteString(p.composite.Sprint(n.Kind.String()))
	}
	if n.IsLeaf() {
		fmt.Fprintf(&sb, " %q", n.Text)
	} else if withSpan {
		sb.WriteString(p.span.Sprintf(" [%d,%d)", n.Span.Start, n.Span.End))
	}
	if n.Message != "" {
		sb.WriteString(" " + p.errNode.Sprintf("(%s)", n.Message))
	}
	if opts.Annotate {
		if a := annotate(tree, id); a != "" {
			sb.WriteString(" " + p.note.Sprint("; "+a))
		}
	}
	return sb.String()
}

// annotate describes what the typed view of a node knows beyond its text.
func annotate(tree *cst.Tree, id cst.NodeID) string {
	switch v := view.Of(tree, id).(type) {
	case view.VarRef:
		name, ok := v.Name()
		if !ok {
			return ""
		}
		b, ok := v.Binding()
		if !ok {
			return "$" + name.String() + " unbound"
		}
		return fmt.Sprintf("$%s bound by %s at %d", name.String(), b.Kind(), b.Span().Start)
	case view.VariableBinding:
		if name, ok := v.Variable(); ok {
			return "binds $" + name.String()
		}
	case view.FunctionCall:
		if name, ok := v.Name(); ok {
			return fmt.Sprintf("%s#%d", name.String(), v.Arity())
		}
	case view.DirElemConstructor:
		if name, ok := v.Name(); ok {
			return "element " + name.String()
		}
	case view.QName:
		if ns, ok := v.Namespace(); ok {
			return "namespace " + ns
		}
	case view.StringLiteral:
		return fmt.Sprintf("value %q", v.Value())
	case view.VersionDecl:
		if ver, ok := v.Version(); ok {
			return "version " + ver
		}
	case view.Valued:
		if s := v.StringValue(); s != v.Text() {
			return fmt.Sprintf("value %q", s)
		}
	}
	return ""
}
