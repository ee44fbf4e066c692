package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                   Code = 1000
	LexUnknownChar            Code = 1001
	LexUnterminatedString     Code = 1002
	LexUnterminatedComment    Code = 1003
	LexIncompleteExponent     Code = 1004
	LexUnterminatedCData      Code = 1005
	LexUnterminatedXMLComment Code = 1006
	LexUnterminatedPI         Code = 1007
	LexUnterminatedPragma     Code = 1008
	LexUnterminatedURILiteral Code = 1009
	LexUnterminatedAttribute  Code = 1010
	LexPartialEntityRef       Code = 1011
	LexEmptyEntityRef         Code = 1012
	LexEntityRefNotInString   Code = 1013
	LexUnknownEntity          Code = 1014
	LexUnmatchedCommentEnd    Code = 1015
	LexUnescapedBrace         Code = 1016
	LexInvalidCharRef         Code = 1017

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectExpression     Code = 2002
	SynExpectName           Code = 2003
	SynExpectVarName        Code = 2004
	SynUnclosedParen        Code = 2005
	SynUnclosedBrace        Code = 2006
	SynUnclosedBracket      Code = 2007
	SynExpectSemicolon      Code = 2008
	SynExpectKeyword        Code = 2009
	SynExpectType           Code = 2010
	SynExpectStringLiteral  Code = 2011
	SynTagMismatch          Code = 2012
	SynUnterminatedElement  Code = 2013
	SynExpectAssign         Code = 2014
	SynMisplacedDeclaration Code = 2015
	SynExpectStep           Code = 2016
	SynExpectAttributeValue Code = 2017
	SynQNameWhitespace      Code = 2018
	SynExpectNumber         Code = 2019

	// Configuration (dialect/version gating)
	SemInfo                Code = 3000
	SemRequiresVersion     Code = 3001
	SemRequiresExtension   Code = 3002
	SemUnsupportedVersion  Code = 3003
	SemUnsupportedEncoding Code = 3004

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOReadDirError  Code = 4002
	IOCacheError    Code = 4003

	// Project configuration files
	ProjInfo             Code = 5000
	ProjConfigInvalid    Code = 5001
	ProjUnknownPreset    Code = 5002
	ProjUnknownExtension Code = 5003

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Invalid character",
	LexUnterminatedString:     "Unterminated string literal",
	LexUnterminatedComment:    "Unterminated comment",
	LexIncompleteExponent:     "Incomplete double exponent",
	LexUnterminatedCData:      "Unterminated CDATA section",
	LexUnterminatedXMLComment: "Unterminated XML comment",
	LexUnterminatedPI:         "Unterminated processing instruction",
	LexUnterminatedPragma:     "Unterminated pragma",
	LexUnterminatedURILiteral: "Unterminated braced URI literal",
	LexUnterminatedAttribute:  "Unterminated attribute value",
	LexPartialEntityRef:       "Incomplete entity reference",
	LexEmptyEntityRef:         "Empty entity reference",
	LexEntityRefNotInString:   "Entity reference outside string or XML content",
	LexUnknownEntity:          "Unknown predefined entity",
	LexUnmatchedCommentEnd:    "Comment end without start",
	LexUnescapedBrace:         "Unescaped curly brace",
	LexInvalidCharRef:         "Invalid character reference",

	SynInfo:                 "Syntax information",
	SynUnexpectedToken:      "Unexpected token",
	SynExpectExpression:     "Expected expression",
	SynExpectName:           "Expected name",
	SynExpectVarName:        "Expected variable name",
	SynUnclosedParen:        "Unclosed parenthesis",
	SynUnclosedBrace:        "Unclosed brace",
	SynUnclosedBracket:      "Unclosed bracket",
	SynExpectSemicolon:      "Expected ';'",
	SynExpectKeyword:        "Expected keyword",
	SynExpectType:           "Expected type",
	SynExpectStringLiteral:  "Expected string literal",
	SynTagMismatch:          "Mismatched end tag",
	SynUnterminatedElement:  "Unterminated element constructor",
	SynExpectAssign:         "Expected ':='",
	SynMisplacedDeclaration: "Misplaced declaration",
	SynExpectStep:           "Expected path step",
	SynExpectAttributeValue: "Expected attribute value",
	SynQNameWhitespace:      "Whitespace in qualified name",
	SynExpectNumber:         "Expected integer literal",

	SemInfo:                "Configuration information",
	SemRequiresVersion:     "Construct requires a later XQuery version",
	SemRequiresExtension:   "Construct requires a dialect extension",
	SemUnsupportedVersion:  "Unsupported XQuery version",
	SemUnsupportedEncoding: "Unsupported encoding",

	IOInfo:          "I/O information",
	IOLoadFileError: "Cannot load file",
	IOReadDirError:  "Cannot read directory",
	IOCacheError:    "Cache failure",

	ProjInfo:             "Project information",
	ProjConfigInvalid:    "Invalid dialect configuration",
	ProjUnknownPreset:    "Unknown dialect preset",
	ProjUnknownExtension: "Unknown dialect extension",

	ObsInfo:    "Observability information",
	ObsTimings: "Phase timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
