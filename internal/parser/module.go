package parser

import (
	"fmt"

	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/trace"
)

// declStop are the tokens prolog recovery stops at.
var declStop = token.NewSet(token.Separator, token.KwDeclare, token.KwImport, token.KwModule)

// parseModule parses one or more modules. Several main modules separated
// by ';' are a MarkLogic extension.
func (p *Parser) parseModule() {
	for {
		if p.atVersionDecl() {
			p.parseVersionDecl()
		}
		if p.atSeq(token.KwModule, token.KwNamespace) {
			p.parseLibraryModule()
		} else {
			p.parseMainModule()
		}
		if p.at(token.EOF) {
			return
		}
		if p.at(token.Separator) {
			tok := p.bump()
			if !p.cfg.Extensions.Has(dialect.MarkLogic) {
				diag.ReportError(p.rep, diag.SemRequiresExtension, tok.Span,
					"';' between queries requires the 'marklogic' extension").Emit()
			}
			continue
		}
		p.errorf(diag.SynUnexpectedToken, "unexpected %s after the query body", p.peek().Kind.Describe())
		p.recover(token.NewSet(token.Separator), "unexpected input after the query body")
		if p.at(token.EOF) {
			return
		}
	}
}

func (p *Parser) atVersionDecl() bool {
	if !p.at(token.KwXQuery) {
		return false
	}
	next := p.peekAt(1).Kind
	return next == token.KwVersion || next == token.KwEncoding
}

// parseVersionDecl parses `xquery version "V" (encoding "E")? ;` and
// switches the dialect version when V is recognised.
func (p *Parser) parseVersionDecl() {
	m := p.open()
	p.bump() // xquery
	var verSpan source.Span
	version, hasVersion := "", false
	if p.eat(token.KwVersion) {
		verSpan = p.peek().Span
		version, hasVersion = p.parseStringLiteral()
		if !hasVersion {
			p.errorf(diag.SynExpectStringLiteral, "expected version string, got %s", p.peek().Kind.Describe())
		}
		verSpan = verSpan.Cover(p.lastSpan)
	}
	if p.eat(token.KwEncoding) {
		encSpan := p.peek().Span
		enc, ok := p.parseStringLiteral()
		if !ok {
			p.errorf(diag.SynExpectStringLiteral, "expected encoding string, got %s", p.peek().Kind.Describe())
		} else {
			p.checkEncoding(enc, encSpan.Cover(p.lastSpan))
		}
	} else if !hasVersion {
		p.errorf(diag.SynExpectKeyword, "expected 'version' or 'encoding', got %s", p.peek().Kind.Describe())
	}
	if !p.expect(token.Separator, diag.SynExpectSemicolon, "';'") {
		p.recoverDecl("malformed version declaration")
	}
	p.close(m, token.VersionDecl)

	if hasVersion {
		p.applyVersion(version, verSpan)
	}
}

func (p *Parser) applyVersion(version string, sp source.Span) {
	v, req, ok := dialect.ParseVersion(version)
	switch {
	case !ok:
		diag.ReportWarning(p.rep, diag.SemUnsupportedVersion, sp,
			fmt.Sprintf("unsupported XQuery version %q, using %s", version, p.cfg.Version)).Emit()
	case req != 0 && !p.cfg.Extensions.Has(req):
		diag.ReportError(p.rep, diag.SemRequiresExtension, sp,
			fmt.Sprintf("XQuery version %q requires the '%s' extension", version, req)).Emit()
	default:
		p.cfg.Version = v
	}
}

func (p *Parser) checkEncoding(enc string, sp source.Span) {
	if enc == "" {
		diag.ReportWarning(p.rep, diag.SemUnsupportedEncoding, sp, "empty encoding name").Emit()
		return
	}
	if _, err := source.LookupEncoding(enc); err != nil {
		diag.ReportWarning(p.rep, diag.SemUnsupportedEncoding, sp,
			fmt.Sprintf("unsupported encoding %q", enc)).Emit()
		return
	}
	p.encoding = enc
}

func (p *Parser) parseLibraryModule() {
	m := p.open()
	p.parseModuleDecl()
	p.parseProlog()
	if !p.at(token.EOF) && !p.at(token.Separator) && p.canStartExpr() {
		p.errorf(diag.SynUnexpectedToken, "a library module cannot have a query body")
		p.recover(token.NewSet(token.Separator), "query body in library module")
	}
	p.close(m, token.LibraryModule)
}

// parseModuleDecl parses `module namespace NCName = URILiteral ;`.
func (p *Parser) parseModuleDecl() {
	m := p.open()
	p.bump() // module
	p.bump() // namespace
	ok := p.expectNCName() &&
		p.expect(token.Equal, diag.SynExpectAssign, "'='") &&
		p.expectURILiteral() &&
		p.expect(token.Separator, diag.SynExpectSemicolon, "';'")
	if !ok {
		p.recoverDecl("malformed module declaration")
	}
	p.close(m, token.ModuleDecl)
}

func (p *Parser) parseMainModule() {
	m := p.open()
	p.parseProlog()
	if p.at(token.EOF) || p.at(token.Separator) {
		if p.b.Pending(m) > 0 {
			p.errorf(diag.SynExpectExpression, "expected query body, got %s", p.peek().Kind.Describe())
		}
	} else {
		span := trace.Begin(p.tracer, trace.ScopeNode, "query-body", p.spanID)
		qb := p.open()
		if !p.parseExpr() {
			p.errorf(diag.SynExpectExpression, "expected expression, got %s", p.peek().Kind.Describe())
			p.recover(token.NewSet(token.Separator), "unexpected input in query body")
		}
		p.close(qb, token.QueryBody)
		span.End("")
	}
	if p.b.Pending(m) > 0 {
		p.close(m, token.MainModule)
	}
}

// parseProlog parses declarations until something that is not one.
// The Prolog node is only created when there is at least one declaration.
func (p *Parser) parseProlog() {
	span := trace.Begin(p.tracer, trace.ScopeNode, "prolog", p.spanID)
	defer span.End("")
	m := p.open()
	for p.parseDecl() {
	}
	if p.b.Pending(m) > 0 {
		p.close(m, token.Prolog)
	}
}

// parseDecl dispatches on the leading keywords of a prolog declaration.
func (p *Parser) parseDecl() bool {
	switch p.peek().Kind {
	case token.KwImport:
		switch p.peekAt(1).Kind {
		case token.KwModule:
			p.parseModuleImport()
			return true
		case token.KwSchema:
			p.parseSchemaImport()
			return true
		}
	case token.KwDeclare:
		switch p.peekAt(1).Kind {
		case token.KwNamespace:
			p.parseNamespaceDecl()
			return true
		case token.KwDefault:
			switch p.peekAt(2).Kind {
			case token.KwElement, token.KwFunction:
				p.parseDefaultNamespaceDecl()
			default:
				p.parseSetter()
			}
			return true
		case token.KwBoundarySpace, token.KwBaseURI, token.KwConstruction, token.KwOrdering, token.KwCopyNamespaces:
			p.parseSetter()
			return true
		case token.KwVariable, token.KwFunction, token.AnnotationIndicator:
			p.parseAnnotatedDecl()
			return true
		case token.KwOption:
			p.parseOptionDecl()
			return true
		case token.NCName:
			if p.peekAt(1).Text == "updating" {
				p.parseAnnotatedDecl()
				return true
			}
		}
	case token.KwModule:
		if p.peekAt(1).Kind == token.KwNamespace {
			p.errorf(diag.SynMisplacedDeclaration, "module declaration must come first")
			p.parseModuleDecl()
			return true
		}
	case token.KwXQuery:
		if p.atVersionDecl() {
			p.errorf(diag.SynMisplacedDeclaration, "version declaration must come first")
			p.parseVersionDecl()
			return true
		}
	}
	return false
}

// endDecl expects the closing ';' and recovers when anything went wrong.
func (p *Parser) endDecl(ok bool, what string) {
	if ok && p.expect(token.Separator, diag.SynExpectSemicolon, "';'") {
		return
	}
	p.recoverDecl("malformed "+what)
}

// parseModuleImport parses
// `import module (namespace NCName =)? URILiteral (at URILiteral (, URILiteral)*)? ;`.
func (p *Parser) parseModuleImport() {
	m := p.open()
	p.bump() // import
	p.bump() // module
	ok := true
	if p.eat(token.KwNamespace) {
		ok = p.expectNCName() && p.expect(token.Equal, diag.SynExpectAssign, "'='")
	}
	ok = ok && p.expectURILiteral() && p.parseLocationHints()
	p.endDecl(ok, "module import")
	p.close(m, token.ModuleImport)
}

// parseSchemaImport parses
// `import schema (namespace NCName = | default element namespace)? URILiteral (at ...)? ;`.
func (p *Parser) parseSchemaImport() {
	m := p.open()
	p.bump() // import
	p.bump() // schema
	ok := true
	switch {
	case p.eat(token.KwNamespace):
		ok = p.expectNCName() && p.expect(token.Equal, diag.SynExpectAssign, "'='")
	case p.eat(token.KwDefault):
		ok = p.expect(token.KwElement, diag.SynExpectKeyword, "'element'") &&
			p.expect(token.KwNamespace, diag.SynExpectKeyword, "'namespace'")
	}
	ok = ok && p.expectURILiteral() && p.parseLocationHints()
	p.endDecl(ok, "schema import")
	p.close(m, token.SchemaImport)
}

func (p *Parser) parseLocationHints() bool {
	if !p.eat(token.KwAt) {
		return true
	}
	if !p.expectURILiteral() {
		return false
	}
	for p.eat(token.Comma) {
		if !p.expectURILiteral() {
			return false
		}
	}
	return true
}

// parseNamespaceDecl parses `declare namespace NCName = URILiteral ;`.
func (p *Parser) parseNamespaceDecl() {
	m := p.open()
	p.bump() // declare
	p.bump() // namespace
	ok := p.expectNCName() &&
		p.expect(token.Equal, diag.SynExpectAssign, "'='") &&
		p.expectURILiteral()
	p.endDecl(ok, "namespace declaration")
	p.close(m, token.NamespaceDecl)
}

// parseDefaultNamespaceDecl parses
// `declare default (element | function) namespace URILiteral ;`.
func (p *Parser) parseDefaultNamespaceDecl() {
	m := p.open()
	p.bump() // declare
	p.bump() // default
	p.bump() // element | function
	ok := p.expect(token.KwNamespace, diag.SynExpectKeyword, "'namespace'") && p.expectURILiteral()
	p.endDecl(ok, "default namespace declaration")
	p.close(m, token.DefaultNamespaceDecl)
}

// parseSetter parses the option-like prolog setters.
func (p *Parser) parseSetter() {
	m := p.open()
	p.bump() // declare
	ok := true
	switch p.bump().Kind {
	case token.KwBoundarySpace, token.KwConstruction:
		ok = p.expectOneOf("'preserve' or 'strip'", token.KwPreserve, token.KwStrip)
	case token.KwBaseURI:
		ok = p.expectURILiteral()
	case token.KwOrdering:
		ok = p.expectOneOf("'ordered' or 'unordered'", token.KwOrdered, token.KwUnordered)
	case token.KwCopyNamespaces:
		ok = p.expectOneOf("'preserve' or 'no-preserve'", token.KwPreserve, token.KwNoPreserve) &&
			p.expect(token.Comma, diag.SynUnexpectedToken, "','") &&
			p.expectOneOf("'inherit' or 'no-inherit'", token.KwInherit, token.KwNoInherit)
	case token.KwDefault:
		switch {
		case p.eat(token.KwCollation):
			ok = p.expectURILiteral()
		case p.eat(token.KwOrder):
			ok = p.expect(token.KwEmpty, diag.SynExpectKeyword, "'empty'") &&
				p.expectOneOf("'greatest' or 'least'", token.KwGreatest, token.KwLeast)
		default:
			p.errorf(diag.SynExpectKeyword, "expected 'collation', 'order', 'element' or 'function', got %s", p.peek().Kind.Describe())
			ok = false
		}
	}
	p.endDecl(ok, "setter")
	p.close(m, token.Setter)
}

func (p *Parser) expectOneOf(what string, kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.eat(k) {
			return true
		}
	}
	p.errorf(diag.SynExpectKeyword, "expected %s, got %s", what, p.peek().Kind.Describe())
	return false
}

// parseAnnotatedDecl parses variable and function declarations with their
// leading annotations.
func (p *Parser) parseAnnotatedDecl() {
	m := p.open()
	p.bump() // declare
	for p.at(token.AnnotationIndicator) {
		p.parseAnnotation()
	}
	if p.at(token.NCName) && p.peek().Text == "updating" {
		tok := p.bump()
		p.gate(dialect.FeatureUpdate, tok.Span)
	}
	switch p.peek().Kind {
	case token.KwVariable:
		p.bump()
		p.endDecl(p.parseVarDeclRest(), "variable declaration")
		p.close(m, token.VarDecl)
	case token.KwFunction:
		p.bump()
		p.endDecl(p.parseFunctionDeclRest(), "function declaration")
		p.close(m, token.FunctionDecl)
	default:
		p.errorf(diag.SynExpectKeyword, "expected 'variable' or 'function', got %s", p.peek().Kind.Describe())
		for !p.at(token.EOF) && !p.atSet(declStop) {
			p.bump()
		}
		p.eat(token.Separator)
		p.b.CloseError(m, "malformed declaration")
	}
}

// parseAnnotation parses `% EQName ( "(" Literal ("," Literal)* ")" )?`.
func (p *Parser) parseAnnotation() {
	m := p.open()
	tok := p.bump() // %
	p.gate(dialect.FeatureAnnotations, tok.Span)
	if !p.parseEQName() {
		p.errorf(diag.SynExpectName, "expected annotation name, got %s", p.peek().Kind.Describe())
	} else if p.eat(token.ParenOpen) {
		for {
			if !p.parseLiteral() {
				p.errorf(diag.SynUnexpectedToken, "expected literal, got %s", p.peek().Kind.Describe())
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
	}
	p.close(m, token.Annotation)
}

// parseVarDeclRest parses `$ EQName TypeDeclaration? (:= ExprSingle | external (:= ExprSingle)?)`.
func (p *Parser) parseVarDeclRest() bool {
	if !p.expectVarName() {
		return false
	}
	p.parseTypeDeclaration()
	if p.eat(token.KwExternal) {
		if p.eat(token.AssignEqual) {
			return p.expectExprSingle()
		}
		return true
	}
	return p.expect(token.AssignEqual, diag.SynExpectAssign, "':=' or 'external'") && p.expectExprSingle()
}

// parseFunctionDeclRest parses `EQName ( ParamList? ) TypeDeclaration? (EnclosedExpr | external)`.
func (p *Parser) parseFunctionDeclRest() bool {
	if !p.parseEQName() {
		p.errorf(diag.SynExpectName, "expected function name, got %s", p.peek().Kind.Describe())
		return false
	}
	if !p.expect(token.ParenOpen, diag.SynUnexpectedToken, "'('") {
		return false
	}
	if p.at(token.VariableIndicator) {
		pl := p.open()
		p.parseParam()
		for p.eat(token.Comma) {
			p.parseParam()
		}
		p.close(pl, token.ParamList)
	}
	if !p.expect(token.ParenClose, diag.SynUnclosedParen, "')'") {
		return false
	}
	p.parseTypeDeclaration()
	if p.eat(token.KwExternal) {
		return true
	}
	return p.parseEnclosedExpr()
}

// parseParam parses `$ EQName TypeDeclaration?`.
func (p *Parser) parseParam() {
	m := p.open()
	p.expectVarName()
	p.parseTypeDeclaration()
	p.close(m, token.Param)
}

// parseOptionDecl parses `declare option EQName StringLiteral ;`.
func (p *Parser) parseOptionDecl() {
	m := p.open()
	p.bump() // declare
	p.bump() // option
	ok := p.parseEQName()
	if !ok {
		p.errorf(diag.SynExpectName, "expected option name, got %s", p.peek().Kind.Describe())
	} else if _, ok = p.parseStringLiteral(); !ok {
		p.errorf(diag.SynExpectStringLiteral, "expected option value, got %s", p.peek().Kind.Describe())
	}
	p.endDecl(ok, "option declaration")
	p.close(m, token.OptionDecl)
}
