package token

const setWords = (int(KindCount) + 63) / 64

// Set is an immutable-by-convention bitset of kinds.
type Set [setWords]uint64

// NewSet builds a set from kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

// Has reports membership.
func (s Set) Has(k Kind) bool {
	if k >= KindCount {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// With returns s with kinds added.
func (s Set) With(kinds ...Kind) Set {
	return s.Union(NewSet(kinds...))
}

// Kinds lists members in ascending order.
func (s Set) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < KindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func keywordSet() Set {
	var s Set
	for k := keywordFirst; k <= keywordLast; k++ {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

var (
	// StringLiteralTokens are the leaves that make up a string literal.
	StringLiteralTokens = NewSet(
		StringLiteralStart, StringLiteralContents, StringLiteralEnd, EscapedCharacter,
		CharacterReference, PredefinedEntityReference, PartialEntityReference, EmptyEntityReference,
	)
	// CommentTokens are the leaves of XQuery comments.
	CommentTokens = NewSet(CommentStartTag, CommentContents, CommentEndTag)
	// EntityReferenceTokens are all entity and character reference forms.
	EntityReferenceTokens = NewSet(
		CharacterReference, PredefinedEntityReference, PartialEntityReference,
		EmptyEntityReference, EntityReferenceNotInString,
	)
	// ErrorTokens always carry a lexical diagnostic.
	ErrorTokens = NewSet(
		Invalid, UnexpectedEndOfBlock, PartialDoubleLiteralExponent, PartialEntityReference,
		EmptyEntityReference, EntityReferenceNotInString,
	)
	// NumericLiterals are the three numeric literal forms.
	NumericLiterals = NewSet(IntegerLiteral, DecimalLiteral, DoubleLiteral)
	// Keywords are the keyword-or-NCName kinds.
	Keywords = keywordSet()
	// Trivia is skipped by the parser and kept as leaves.
	Trivia = NewSet(Whitespace).Union(CommentTokens)
	// XMLMarkupTokens delimit direct constructors.
	XMLMarkupTokens = NewSet(
		OpenXMLTag, EndXMLTag, CloseXMLTag, SelfClosingXMLTag, XMLEqual,
		XMLAttributeValueStart, XMLAttributeValueEnd,
		XMLCommentStartTag, XMLCommentEndTag, CDataSectionStartTag, CDataSectionEndTag,
		ProcessingInstructionBegin, ProcessingInstructionEnd,
	)
)
