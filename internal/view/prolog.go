package view

import (
	"xqfront/internal/cst"
	"xqfront/internal/token"
)

// VersionDecl is `xquery version "V" encoding "E";`.
type VersionDecl struct{ node }

// Version returns the declared version string.
func (d VersionDecl) Version() (string, bool) { return d.stringAfter(token.KwVersion) }

// Encoding returns the declared encoding label.
func (d VersionDecl) Encoding() (string, bool) { return d.stringAfter(token.KwEncoding) }

func (d VersionDecl) stringAfter(kw token.Kind) (string, bool) {
	if id := after(d.node, kw); d.tree.Kind(id) == token.StringLiteral {
		return StringLiteral{node{d.tree, id}}.Value(), true
	}
	return "", false
}

// after returns the significant child that follows the first child of
// kind k.
func after(n node, k token.Kind) cst.NodeID {
	sig := n.significant()
	for i, c := range sig {
		if n.tree.Kind(c) == k && i+1 < len(sig) {
			return sig[i+1]
		}
	}
	return cst.NoNodeID
}

// prefixAfterNamespace returns the NCName that follows 'namespace'.
func prefixAfterNamespace(n node) string {
	if id := after(n, token.KwNamespace); n.tree.Kind(id).IsNameLike() {
		return n.tree.Get(id).Text
	}
	return ""
}

func uriLiterals(n node) []string {
	var out []string
	for _, c := range n.tree.ChildrenOfKind(n.id, token.NewSet(token.URILiteral)) {
		out = append(out, URILiteral{node{n.tree, c}}.Value())
	}
	return out
}

// ModuleDecl is `module namespace p = "uri";`.
type ModuleDecl struct{ node }

func (d ModuleDecl) Prefix() string { return prefixAfterNamespace(d.node) }

func (d ModuleDecl) URI() string {
	if uris := uriLiterals(d.node); len(uris) > 0 {
		return uris[0]
	}
	return ""
}

// ModuleImport is `import module namespace p = "uri" at "loc", ...;`.
type ModuleImport struct{ node }

// Prefix is "" when the import binds no prefix.
func (d ModuleImport) Prefix() string { return prefixAfterNamespace(d.node) }

func (d ModuleImport) URI() string {
	if uris := uriLiterals(d.node); len(uris) > 0 {
		return uris[0]
	}
	return ""
}

// Locations are the location hints after 'at'.
func (d ModuleImport) Locations() []string {
	if uris := uriLiterals(d.node); len(uris) > 1 {
		return uris[1:]
	}
	return nil
}
