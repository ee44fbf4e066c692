package lexer

import (
	"xqfront/internal/diag"
)

type Options struct {
	// Reporter receives one diagnostic per error-kind token. May be nil.
	Reporter diag.Reporter
	// Initial is the starting mode (ModeCode when zero).
	Initial Mode
}
