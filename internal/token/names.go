package token

import "fmt"

var kindNames = [KindCount]string{
	Invalid:                        "Invalid",
	EOF:                            "EOF",
	Whitespace:                     "Whitespace",
	UnexpectedEndOfBlock:           "UnexpectedEndOfBlock",
	CommentStartTag:                "CommentStartTag",
	CommentContents:                "CommentContents",
	CommentEndTag:                  "CommentEndTag",
	XMLCommentStartTag:             "XMLCommentStartTag",
	XMLCommentContents:             "XMLCommentContents",
	XMLCommentEndTag:               "XMLCommentEndTag",
	CDataSectionStartTag:           "CDataSectionStartTag",
	CDataSectionContents:           "CDataSectionContents",
	CDataSectionEndTag:             "CDataSectionEndTag",
	ProcessingInstructionBegin:     "ProcessingInstructionBegin",
	ProcessingInstructionContents:  "ProcessingInstructionContents",
	ProcessingInstructionEnd:       "ProcessingInstructionEnd",
	PragmaBegin:                    "PragmaBegin",
	PragmaContents:                 "PragmaContents",
	PragmaEnd:                      "PragmaEnd",
	IntegerLiteral:                 "IntegerLiteral",
	DecimalLiteral:                 "DecimalLiteral",
	DoubleLiteral:                  "DoubleLiteral",
	PartialDoubleLiteralExponent:   "PartialDoubleLiteralExponent",
	StringLiteralStart:             "StringLiteralStart",
	StringLiteralContents:          "StringLiteralContents",
	StringLiteralEnd:               "StringLiteralEnd",
	EscapedCharacter:               "EscapedCharacter",
	CharacterReference:             "CharacterReference",
	PredefinedEntityReference:      "PredefinedEntityReference",
	PartialEntityReference:         "PartialEntityReference",
	EmptyEntityReference:           "EmptyEntityReference",
	EntityReferenceNotInString:     "EntityReferenceNotInString",
	BracedURILiteralStart:          "BracedURILiteralStart",
	BracedURILiteralEnd:            "BracedURILiteralEnd",
	NCName:                         "NCName",
	QNameSeparator:                 "QNameSeparator",
	ParenOpen:                      "ParenOpen",
	ParenClose:                     "ParenClose",
	NotEqual:                       "NotEqual",
	VariableIndicator:              "VariableIndicator",
	Star:                           "Star",
	Comma:                          "Comma",
	Minus:                          "Minus",
	Dot:                            "Dot",
	Separator:                      "Separator",
	Plus:                           "Plus",
	Equal:                          "Equal",
	BlockOpen:                      "BlockOpen",
	BlockClose:                     "BlockClose",
	LessThan:                       "LessThan",
	GreaterThan:                    "GreaterThan",
	LessThanOrEqual:                "LessThanOrEqual",
	GreaterThanOrEqual:             "GreaterThanOrEqual",
	UnionOperator:                  "UnionOperator",
	Optional:                       "Optional",
	AxisSeparator:                  "AxisSeparator",
	AssignEqual:                    "AssignEqual",
	DirectDescendantsPath:          "DirectDescendantsPath",
	AllDescendantsPath:             "AllDescendantsPath",
	AttributeSelector:              "AttributeSelector",
	PredicateBegin:                 "PredicateBegin",
	PredicateEnd:                   "PredicateEnd",
	ParentSelector:                 "ParentSelector",
	NodeBefore:                     "NodeBefore",
	NodeAfter:                      "NodeAfter",
	MapOperator:                    "MapOperator",
	FunctionRefOperator:            "FunctionRefOperator",
	AnnotationIndicator:            "AnnotationIndicator",
	Concatenation:                  "Concatenation",
	ArrowOperator:                  "ArrowOperator",
	OpenXMLTag:                     "OpenXMLTag",
	EndXMLTag:                      "EndXMLTag",
	CloseXMLTag:                    "CloseXMLTag",
	SelfClosingXMLTag:              "SelfClosingXMLTag",
	XMLEqual:                       "XMLEqual",
	XMLAttributeValueStart:         "XMLAttributeValueStart",
	XMLAttributeValueContents:      "XMLAttributeValueContents",
	XMLAttributeValueEnd:           "XMLAttributeValueEnd",
	XMLElementContents:             "XMLElementContents",
	KwAfter:                        "KwAfter",
	KwAncestor:                     "KwAncestor",
	KwAncestorOrSelf:               "KwAncestorOrSelf",
	KwAnd:                          "KwAnd",
	KwAs:                           "KwAs",
	KwAscending:                    "KwAscending",
	KwAt:                           "KwAt",
	KwAttribute:                    "KwAttribute",
	KwBaseURI:                      "KwBaseURI",
	KwBefore:                       "KwBefore",
	KwBoundarySpace:                "KwBoundarySpace",
	KwBy:                           "KwBy",
	KwCase:                         "KwCase",
	KwCast:                         "KwCast",
	KwCastable:                     "KwCastable",
	KwChild:                        "KwChild",
	KwCollation:                    "KwCollation",
	KwComment:                      "KwComment",
	KwConstruction:                 "KwConstruction",
	KwCopy:                         "KwCopy",
	KwCopyNamespaces:               "KwCopyNamespaces",
	KwDeclare:                      "KwDeclare",
	KwDefault:                      "KwDefault",
	KwDelete:                       "KwDelete",
	KwDescendant:                   "KwDescendant",
	KwDescendantOrSelf:             "KwDescendantOrSelf",
	KwDescending:                   "KwDescending",
	KwDiv:                          "KwDiv",
	KwDocument:                     "KwDocument",
	KwDocumentNode:                 "KwDocumentNode",
	KwElement:                      "KwElement",
	KwElse:                         "KwElse",
	KwEmpty:                        "KwEmpty",
	KwEmptySequence:                "KwEmptySequence",
	KwEncoding:                     "KwEncoding",
	KwEq:                           "KwEq",
	KwEvery:                        "KwEvery",
	KwExcept:                       "KwExcept",
	KwExternal:                     "KwExternal",
	KwFirst:                        "KwFirst",
	KwFollowing:                    "KwFollowing",
	KwFollowingSibling:             "KwFollowingSibling",
	KwFor:                          "KwFor",
	KwFunction:                     "KwFunction",
	KwGe:                           "KwGe",
	KwGreatest:                     "KwGreatest",
	KwGt:                           "KwGt",
	KwIDiv:                         "KwIDiv",
	KwIf:                           "KwIf",
	KwImport:                       "KwImport",
	KwIn:                           "KwIn",
	KwInherit:                      "KwInherit",
	KwInsert:                       "KwInsert",
	KwInstance:                     "KwInstance",
	KwIntersect:                    "KwIntersect",
	KwInto:                         "KwInto",
	KwIs:                           "KwIs",
	KwItem:                         "KwItem",
	KwLast:                         "KwLast",
	KwLax:                          "KwLax",
	KwLe:                           "KwLe",
	KwLeast:                        "KwLeast",
	KwLet:                          "KwLet",
	KwLt:                           "KwLt",
	KwMod:                          "KwMod",
	KwModify:                       "KwModify",
	KwModule:                       "KwModule",
	KwNamespace:                    "KwNamespace",
	KwNamespaceNode:                "KwNamespaceNode",
	KwNe:                           "KwNe",
	KwNoInherit:                    "KwNoInherit",
	KwNoPreserve:                   "KwNoPreserve",
	KwNode:                         "KwNode",
	KwNodes:                        "KwNodes",
	KwOf:                           "KwOf",
	KwOption:                       "KwOption",
	KwOr:                           "KwOr",
	KwOrder:                        "KwOrder",
	KwOrdered:                      "KwOrdered",
	KwOrdering:                     "KwOrdering",
	KwParent:                       "KwParent",
	KwPreceding:                    "KwPreceding",
	KwPrecedingSibling:             "KwPrecedingSibling",
	KwPreserve:                     "KwPreserve",
	KwProcessingInstruction:        "KwProcessingInstruction",
	KwRename:                       "KwRename",
	KwReplace:                      "KwReplace",
	KwReturn:                       "KwReturn",
	KwSatisfies:                    "KwSatisfies",
	KwSchema:                       "KwSchema",
	KwSchemaAttribute:              "KwSchemaAttribute",
	KwSchemaElement:                "KwSchemaElement",
	KwSelf:                         "KwSelf",
	KwSome:                         "KwSome",
	KwStable:                       "KwStable",
	KwStrict:                       "KwStrict",
	KwStrip:                        "KwStrip",
	KwText:                         "KwText",
	KwThen:                         "KwThen",
	KwTo:                           "KwTo",
	KwTreat:                        "KwTreat",
	KwTypeswitch:                   "KwTypeswitch",
	KwUnion:                        "KwUnion",
	KwUnordered:                    "KwUnordered",
	KwValidate:                     "KwValidate",
	KwValue:                        "KwValue",
	KwVariable:                     "KwVariable",
	KwVersion:                      "KwVersion",
	KwWhere:                        "KwWhere",
	KwWith:                         "KwWith",
	KwXQuery:                       "KwXQuery",
	Module:                         "Module",
	MainModule:                     "MainModule",
	LibraryModule:                  "LibraryModule",
	VersionDecl:                    "VersionDecl",
	ModuleDecl:                     "ModuleDecl",
	Prolog:                         "Prolog",
	ModuleImport:                   "ModuleImport",
	SchemaImport:                   "SchemaImport",
	NamespaceDecl:                  "NamespaceDecl",
	DefaultNamespaceDecl:           "DefaultNamespaceDecl",
	Setter:                         "Setter",
	VarDecl:                        "VarDecl",
	FunctionDecl:                   "FunctionDecl",
	ParamList:                      "ParamList",
	Param:                          "Param",
	TypeDeclaration:                "TypeDeclaration",
	OptionDecl:                     "OptionDecl",
	Annotation:                     "Annotation",
	EnclosedExpr:                   "EnclosedExpr",
	QueryBody:                      "QueryBody",
	Expr:                           "Expr",
	FLWORExpr:                      "FLWORExpr",
	ForClause:                      "ForClause",
	ForBinding:                     "ForBinding",
	PositionalVar:                  "PositionalVar",
	LetClause:                      "LetClause",
	LetBinding:                     "LetBinding",
	WhereClause:                    "WhereClause",
	OrderByClause:                  "OrderByClause",
	OrderSpec:                      "OrderSpec",
	ReturnClause:                   "ReturnClause",
	QuantifiedExpr:                 "QuantifiedExpr",
	QuantifiedBinding:              "QuantifiedBinding",
	IfExpr:                         "IfExpr",
	InsertExpr:                     "InsertExpr",
	DeleteExpr:                     "DeleteExpr",
	ReplaceExpr:                    "ReplaceExpr",
	RenameExpr:                     "RenameExpr",
	NewNameExpr:                    "NewNameExpr",
	CopyModifyExpr:                 "CopyModifyExpr",
	CopyBinding:                    "CopyBinding",
	OrExpr:                         "OrExpr",
	AndExpr:                        "AndExpr",
	ComparisonExpr:                 "ComparisonExpr",
	StringConcatExpr:               "StringConcatExpr",
	RangeExpr:                      "RangeExpr",
	AdditiveExpr:                   "AdditiveExpr",
	MultiplicativeExpr:             "MultiplicativeExpr",
	UnionExpr:                      "UnionExpr",
	IntersectExceptExpr:            "IntersectExceptExpr",
	InstanceofExpr:                 "InstanceofExpr",
	TreatExpr:                      "TreatExpr",
	CastableExpr:                   "CastableExpr",
	CastExpr:                       "CastExpr",
	ArrowExpr:                      "ArrowExpr",
	UnaryExpr:                      "UnaryExpr",
	SimpleMapExpr:                  "SimpleMapExpr",
	PathExpr:                       "PathExpr",
	RelativePathExpr:               "RelativePathExpr",
	AxisStep:                       "AxisStep",
	Axis:                           "Axis",
	AbbrevForwardStep:              "AbbrevForwardStep",
	AbbrevReverseStep:              "AbbrevReverseStep",
	NameTest:                       "NameTest",
	Wildcard:                       "Wildcard",
	KindTest:                       "KindTest",
	Predicate:                      "Predicate",
	FilterExpr:                     "FilterExpr",
	ArgumentList:                   "ArgumentList",
	Literal:                        "Literal",
	StringLiteral:                  "StringLiteral",
	VarRef:                         "VarRef",
	ParenthesizedExpr:              "ParenthesizedExpr",
	ContextItemExpr:                "ContextItemExpr",
	FunctionCall:                   "FunctionCall",
	NamedFunctionRef:               "NamedFunctionRef",
	OrderedExpr:                    "OrderedExpr",
	UnorderedExpr:                  "UnorderedExpr",
	ExtensionExpr:                  "ExtensionExpr",
	Pragma:                         "Pragma",
	QName:                          "QName",
	URIQualifiedName:               "URIQualifiedName",
	BracedURILiteral:               "BracedURILiteral",
	URILiteral:                     "URILiteral",
	SequenceType:                   "SequenceType",
	AnyItemType:                    "AnyItemType",
	SingleType:                     "SingleType",
	DirElemConstructor:             "DirElemConstructor",
	DirAttributeList:               "DirAttributeList",
	DirAttribute:                   "DirAttribute",
	DirAttributeValue:              "DirAttributeValue",
	DirElemContent:                 "DirElemContent",
	DirCommentConstructor:          "DirCommentConstructor",
	DirPIConstructor:               "DirPIConstructor",
	CDataSection:                   "CDataSection",
	Comment:                        "Comment",
	Error:                          "Error",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k) // #nosec G115 -- bounded by KindCount
	}
	return m
}()

// String returns the symbolic name of k.
func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Lookup returns the kind with the given symbolic name.
func Lookup(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}
