package token

var keywords = map[string]Kind{
	"after":                  KwAfter,
	"ancestor":               KwAncestor,
	"ancestor-or-self":       KwAncestorOrSelf,
	"and":                    KwAnd,
	"as":                     KwAs,
	"ascending":              KwAscending,
	"at":                     KwAt,
	"attribute":              KwAttribute,
	"base-uri":               KwBaseURI,
	"before":                 KwBefore,
	"boundary-space":         KwBoundarySpace,
	"by":                     KwBy,
	"case":                   KwCase,
	"cast":                   KwCast,
	"castable":               KwCastable,
	"child":                  KwChild,
	"collation":              KwCollation,
	"comment":                KwComment,
	"construction":           KwConstruction,
	"copy":                   KwCopy,
	"copy-namespaces":        KwCopyNamespaces,
	"declare":                KwDeclare,
	"default":                KwDefault,
	"delete":                 KwDelete,
	"descendant":             KwDescendant,
	"descendant-or-self":     KwDescendantOrSelf,
	"descending":             KwDescending,
	"div":                    KwDiv,
	"document":               KwDocument,
	"document-node":          KwDocumentNode,
	"element":                KwElement,
	"else":                   KwElse,
	"empty":                  KwEmpty,
	"empty-sequence":         KwEmptySequence,
	"encoding":               KwEncoding,
	"eq":                     KwEq,
	"every":                  KwEvery,
	"except":                 KwExcept,
	"external":               KwExternal,
	"first":                  KwFirst,
	"following":              KwFollowing,
	"following-sibling":      KwFollowingSibling,
	"for":                    KwFor,
	"function":               KwFunction,
	"ge":                     KwGe,
	"greatest":               KwGreatest,
	"gt":                     KwGt,
	"idiv":                   KwIDiv,
	"if":                     KwIf,
	"import":                 KwImport,
	"in":                     KwIn,
	"inherit":                KwInherit,
	"insert":                 KwInsert,
	"instance":               KwInstance,
	"intersect":              KwIntersect,
	"into":                   KwInto,
	"is":                     KwIs,
	"item":                   KwItem,
	"last":                   KwLast,
	"lax":                    KwLax,
	"le":                     KwLe,
	"least":                  KwLeast,
	"let":                    KwLet,
	"lt":                     KwLt,
	"mod":                    KwMod,
	"modify":                 KwModify,
	"module":                 KwModule,
	"namespace":              KwNamespace,
	"namespace-node":         KwNamespaceNode,
	"ne":                     KwNe,
	"no-inherit":             KwNoInherit,
	"no-preserve":            KwNoPreserve,
	"node":                   KwNode,
	"nodes":                  KwNodes,
	"of":                     KwOf,
	"option":                 KwOption,
	"or":                     KwOr,
	"order":                  KwOrder,
	"ordered":                KwOrdered,
	"ordering":               KwOrdering,
	"parent":                 KwParent,
	"preceding":              KwPreceding,
	"preceding-sibling":      KwPrecedingSibling,
	"preserve":               KwPreserve,
	"processing-instruction": KwProcessingInstruction,
	"rename":                 KwRename,
	"replace":                KwReplace,
	"return":                 KwReturn,
	"satisfies":              KwSatisfies,
	"schema":                 KwSchema,
	"schema-attribute":       KwSchemaAttribute,
	"schema-element":         KwSchemaElement,
	"self":                   KwSelf,
	"some":                   KwSome,
	"stable":                 KwStable,
	"strict":                 KwStrict,
	"strip":                  KwStrip,
	"text":                   KwText,
	"then":                   KwThen,
	"to":                     KwTo,
	"treat":                  KwTreat,
	"typeswitch":             KwTypeswitch,
	"union":                  KwUnion,
	"unordered":              KwUnordered,
	"validate":               KwValidate,
	"value":                  KwValue,
	"variable":               KwVariable,
	"version":                KwVersion,
	"where":                  KwWhere,
	"with":                   KwWith,
	"xquery":                 KwXQuery,
}

var keywordSpelling = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for s, k := range keywords {
		m[k] = s
	}
	return m
}()

// LookupKeyword reports the keyword kind for name.
// Keywords are case-sensitive and are not reserved: the parser may still
// accept the returned kind where an NCName is expected.
func LookupKeyword(name string) (Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}

var punctSpelling = map[Kind]string{
	CommentStartTag:            "(:",
	CommentEndTag:              ":)",
	XMLCommentStartTag:         "<!--",
	XMLCommentEndTag:           "-->",
	CDataSectionStartTag:       "<![CDATA[",
	CDataSectionEndTag:         "]]>",
	ProcessingInstructionBegin: "<?",
	ProcessingInstructionEnd:   "?>",
	PragmaBegin:                "(#",
	PragmaEnd:                  "#)",
	BracedURILiteralStart:      "Q{",
	BracedURILiteralEnd:        "}",
	QNameSeparator:             ":",
	ParenOpen:                  "(",
	ParenClose:                 ")",
	NotEqual:                   "!=",
	VariableIndicator:          "$",
	Star:                       "*",
	Comma:                      ",",
	Minus:                      "-",
	Dot:                        ".",
	Separator:                  ";",
	Plus:                       "+",
	Equal:                      "=",
	BlockOpen:                  "{",
	BlockClose:                 "}",
	LessThan:                   "<",
	GreaterThan:                ">",
	LessThanOrEqual:            "<=",
	GreaterThanOrEqual:         ">=",
	UnionOperator:              "|",
	Optional:                   "?",
	AxisSeparator:              "::",
	AssignEqual:                ":=",
	DirectDescendantsPath:      "/",
	AllDescendantsPath:         "//",
	AttributeSelector:          "@",
	PredicateBegin:             "[",
	PredicateEnd:               "]",
	ParentSelector:             "..",
	NodeBefore:                 "<<",
	NodeAfter:                  ">>",
	MapOperator:                "!",
	FunctionRefOperator:        "#",
	AnnotationIndicator:        "%",
	Concatenation:              "||",
	ArrowOperator:              "=>",
	OpenXMLTag:                 "<",
	EndXMLTag:                  ">",
	CloseXMLTag:                "</",
	SelfClosingXMLTag:          "/>",
	XMLEqual:                   "=",
}

// Spelling returns the fixed source text of k, or "" when k has variable text.
func (k Kind) Spelling() string {
	if s, ok := punctSpelling[k]; ok {
		return s
	}
	return keywordSpelling[k]
}

// Describe returns a short human-readable name for diagnostics.
func (k Kind) Describe() string {
	if s := k.Spelling(); s != "" {
		return "'" + s + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case NCName:
		return "name"
	case IntegerLiteral, DecimalLiteral, DoubleLiteral:
		return "numeric literal"
	case StringLiteralStart:
		return "string literal"
	}
	return k.String()
}
