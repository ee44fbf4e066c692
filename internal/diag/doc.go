// Package diag defines the diagnostic model shared by the lexer, the parser,
// the dialect loader and the driver.
//
// A Diagnostic carries a Severity, a Code with a stable string form
// (LEX/SYN/SEM/IO/PRJ/OBS ranges), a message, a primary span, optional notes
// and optional fix suggestions made of text edits.
//
// Producers emit through a Reporter so they never depend on storage.
// BagReporter collects into a bounded Bag. DedupReporter drops repeats and
// TeeReporter fans out. ReportBuilder chains notes and fixes before Emit.
//
// The only rendering here is WriteShort, one line per diagnostic.
// Terminal and JSON rendering live in internal/diagfmt.
package diag
