package token

// Kind identifies a lexical or grammatical category in the syntax tree.
// The set is closed: token kinds (leaves) come first, keyword-or-NCName
// kinds follow, production kinds (composites) come last.
type Kind uint16

const (
	// Invalid marks a character the lexer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input. It is zero width.
	EOF
	// Whitespace is a run of XML whitespace in code or tag context.
	Whitespace
	// UnexpectedEndOfBlock is a zero-width token emitted when input ends
	// inside a delimited construct (comment, string, CDATA, ...).
	UnexpectedEndOfBlock

	// CommentStartTag opens an XQuery comment.
	CommentStartTag // (:
	// CommentContents is the text of a comment, nested comments included.
	CommentContents
	// CommentEndTag closes an XQuery comment.
	CommentEndTag // :)
	// XMLCommentStartTag opens a direct comment constructor.
	XMLCommentStartTag // <!--
	XMLCommentContents
	// XMLCommentEndTag closes a direct comment constructor.
	XMLCommentEndTag // -->
	// CDataSectionStartTag opens a CDATA section.
	CDataSectionStartTag // <![CDATA[
	CDataSectionContents
	// CDataSectionEndTag closes a CDATA section.
	CDataSectionEndTag // ]]>
	// ProcessingInstructionBegin opens a direct processing instruction.
	ProcessingInstructionBegin // <?
	ProcessingInstructionContents
	// ProcessingInstructionEnd closes a direct processing instruction.
	ProcessingInstructionEnd // ?>
	// PragmaBegin opens a pragma of an extension expression.
	PragmaBegin // (#
	PragmaContents
	// PragmaEnd closes a pragma.
	PragmaEnd // #)

	// IntegerLiteral is a run of decimal digits.
	IntegerLiteral
	// DecimalLiteral has a '.' and no exponent.
	DecimalLiteral
	// DoubleLiteral has an exponent with at least one digit.
	DoubleLiteral
	// PartialDoubleLiteralExponent is an exponent marker (and sign) with no digits.
	PartialDoubleLiteralExponent

	// StringLiteralStart is the opening quote of a string literal.
	StringLiteralStart
	// StringLiteralContents is a run of plain characters inside a string literal.
	StringLiteralContents
	// StringLiteralEnd is the closing quote of a string literal.
	StringLiteralEnd
	// EscapedCharacter is a doubled quote or a doubled curly brace.
	EscapedCharacter
	// CharacterReference is &#N; or &#xH;.
	CharacterReference
	// PredefinedEntityReference is &name; (lt, gt, amp, quot, apos).
	PredefinedEntityReference
	// PartialEntityReference is an entity reference missing its ';'.
	PartialEntityReference
	// EmptyEntityReference is "&;".
	EmptyEntityReference
	// EntityReferenceNotInString is an entity reference outside string or XML content.
	EntityReferenceNotInString
	// BracedURILiteralStart opens a braced URI literal.
	BracedURILiteralStart // Q{
	// BracedURILiteralEnd closes a braced URI literal.
	BracedURILiteralEnd // }

	// NCName is a non-colonised name that is not a reserved word.
	NCName
	// QNameSeparator separates prefix and local name.
	QNameSeparator // :

	ParenOpen             // (
	ParenClose            // )
	NotEqual              // !=
	VariableIndicator     // $
	Star                  // *
	Comma                 // ,
	Minus                 // -
	Dot                   // .
	Separator             // ;
	Plus                  // +
	Equal                 // =
	BlockOpen             // {
	BlockClose            // }
	LessThan              // <
	GreaterThan           // >
	LessThanOrEqual       // <=
	GreaterThanOrEqual    // >=
	UnionOperator         // |
	Optional              // ?
	AxisSeparator         // ::
	AssignEqual           // :=
	DirectDescendantsPath // /
	AllDescendantsPath    // //
	AttributeSelector     // @
	PredicateBegin        // [
	PredicateEnd          // ]
	ParentSelector        // ..
	NodeBefore            // <<
	NodeAfter             // >>
	// MapOperator is the XQuery 3.0 simple map operator.
	MapOperator // !
	// FunctionRefOperator is the XQuery 3.0 named function reference marker.
	FunctionRefOperator // #
	// AnnotationIndicator is the XQuery 3.0 annotation prefix.
	AnnotationIndicator // %
	// Concatenation is the XQuery 3.0 string concatenation operator.
	Concatenation // ||
	// ArrowOperator is the XQuery 3.1 arrow operator.
	ArrowOperator // =>

	// OpenXMLTag starts a direct element constructor.
	OpenXMLTag // <
	// EndXMLTag ends a start or end tag.
	EndXMLTag // >
	// CloseXMLTag starts the end tag of a direct element constructor.
	CloseXMLTag // </
	// SelfClosingXMLTag ends an empty direct element constructor.
	SelfClosingXMLTag // />
	// XMLEqual separates an attribute name from its value.
	XMLEqual // =
	XMLAttributeValueStart
	XMLAttributeValueContents
	XMLAttributeValueEnd
	// XMLElementContents is character data inside a direct element constructor.
	XMLElementContents

	// keyword-or-NCName kinds
	KwAfter // after
	KwAncestor // ancestor
	KwAncestorOrSelf // ancestor-or-self
	KwAnd // and
	KwAs // as
	KwAscending // ascending
	KwAt // at
	KwAttribute // attribute
	KwBaseURI // base-uri
	KwBefore // before
	KwBoundarySpace // boundary-space
	KwBy // by
	KwCase // case
	KwCast // cast
	KwCastable // castable
	KwChild // child
	KwCollation // collation
	KwComment // comment
	KwConstruction // construction
	KwCopy // copy
	KwCopyNamespaces // copy-namespaces
	KwDeclare // declare
	KwDefault // default
	KwDelete // delete
	KwDescendant // descendant
	KwDescendantOrSelf // descendant-or-self
	KwDescending // descending
	KwDiv // div
	KwDocument // document
	KwDocumentNode // document-node
	KwElement // element
	KwElse // else
	KwEmpty // empty
	KwEmptySequence // empty-sequence
	KwEncoding // encoding
	KwEq // eq
	KwEvery // every
	KwExcept // except
	KwExternal // external
	KwFirst // first
	KwFollowing // following
	KwFollowingSibling // following-sibling
	KwFor // for
	KwFunction // function
	KwGe // ge
	KwGreatest // greatest
	KwGt // gt
	KwIDiv // idiv
	KwIf // if
	KwImport // import
	KwIn // in
	KwInherit // inherit
	KwInsert // insert
	KwInstance // instance
	KwIntersect // intersect
	KwInto // into
	KwIs // is
	KwItem // item
	KwLast // last
	KwLax // lax
	KwLe // le
	KwLeast // least
	KwLet // let
	KwLt // lt
	KwMod // mod
	KwModify // modify
	KwModule // module
	KwNamespace // namespace
	KwNamespaceNode // namespace-node
	KwNe // ne
	KwNoInherit // no-inherit
	KwNoPreserve // no-preserve
	KwNode // node
	KwNodes // nodes
	KwOf // of
	KwOption // option
	KwOr // or
	KwOrder // order
	KwOrdered // ordered
	KwOrdering // ordering
	KwParent // parent
	KwPreceding // preceding
	KwPrecedingSibling // preceding-sibling
	KwPreserve // preserve
	KwProcessingInstruction // processing-instruction
	KwRename // rename
	KwReplace // replace
	KwReturn // return
	KwSatisfies // satisfies
	KwSchema // schema
	KwSchemaAttribute // schema-attribute
	KwSchemaElement // schema-element
	KwSelf // self
	KwSome // some
	KwStable // stable
	KwStrict // strict
	KwStrip // strip
	KwText // text
	KwThen // then
	KwTo // to
	KwTreat // treat
	KwTypeswitch // typeswitch
	KwUnion // union
	KwUnordered // unordered
	KwValidate // validate
	KwValue // value
	KwVariable // variable
	KwVersion // version
	KwWhere // where
	KwWith // with
	KwXQuery // xquery

	// Module is the root of every tree.
	Module
	MainModule
	LibraryModule
	VersionDecl
	ModuleDecl
	Prolog
	ModuleImport
	SchemaImport
	NamespaceDecl
	DefaultNamespaceDecl
	Setter
	VarDecl
	FunctionDecl
	ParamList
	Param
	TypeDeclaration
	OptionDecl
	Annotation
	EnclosedExpr
	QueryBody

	Expr
	FLWORExpr
	ForClause
	ForBinding
	PositionalVar
	LetClause
	LetBinding
	WhereClause
	OrderByClause
	OrderSpec
	ReturnClause
	QuantifiedExpr
	QuantifiedBinding
	IfExpr

	// Update Facility expressions.
	InsertExpr
	DeleteExpr
	ReplaceExpr
	RenameExpr
	NewNameExpr
	CopyModifyExpr
	CopyBinding

	OrExpr
	AndExpr
	ComparisonExpr
	StringConcatExpr
	RangeExpr
	AdditiveExpr
	MultiplicativeExpr
	UnionExpr
	IntersectExceptExpr
	InstanceofExpr
	TreatExpr
	CastableExpr
	CastExpr
	ArrowExpr
	UnaryExpr
	SimpleMapExpr
	PathExpr
	RelativePathExpr
	AxisStep
	Axis
	AbbrevForwardStep
	AbbrevReverseStep
	NameTest
	Wildcard
	KindTest
	Predicate
	FilterExpr
	ArgumentList

	Literal
	StringLiteral
	VarRef
	ParenthesizedExpr
	ContextItemExpr
	FunctionCall
	NamedFunctionRef
	OrderedExpr
	UnorderedExpr
	ExtensionExpr
	Pragma

	QName
	URIQualifiedName
	BracedURILiteral
	URILiteral

	SequenceType
	AnyItemType
	SingleType

	DirElemConstructor
	DirAttributeList
	DirAttribute
	DirAttributeValue
	DirElemContent
	DirCommentConstructor
	DirPIConstructor
	CDataSection
	// Comment wraps an XQuery comment from its start tag to its end tag.
	Comment

	// Error wraps tokens the parser could not place.
	Error

	// KindCount is the number of kinds. It is not a kind.
	KindCount
)

const (
	keywordFirst    = KwAfter
	keywordLast     = KwXQuery
	productionFirst = Module
)

// IsToken reports whether k labels a leaf.
func (k Kind) IsToken() bool { return k < productionFirst }

// IsProduction reports whether k labels a composite.
func (k Kind) IsProduction() bool { return k >= productionFirst && k < KindCount }

// IsKeyword reports whether k is a keyword-or-NCName kind.
func (k Kind) IsKeyword() bool { return k >= keywordFirst && k <= keywordLast }

// IsNameLike reports whether a leaf of kind k can be read as an NCName.
func (k Kind) IsNameLike() bool { return k == NCName || k.IsKeyword() }
