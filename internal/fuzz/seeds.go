package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10
	maxFuzzInput = 1 << 16
)

// languageSeeds touch every lexer mode and the recovery paths.
var languageSeeds = []string{
	"1 + 2 * 3",
	"xquery version \"3.1\" encoding \"UTF-8\"; 1",
	"module namespace m = \"urn:m\"; declare function m:f($a as xs:integer*) { $a ! (. + 1) };",
	"for $x at $i in 1 to 10 let $y := $x * $i where $y gt 3 order by $y descending return $y",
	"some $s in (1, 2) satisfies $s eq 2",
	"<a x=\"{1}\" y='a''b'>text{{ {$x} }}<b/><!-- c --><?pi data?><![CDATA[<raw>]]></a>",
	"<a></b>",
	"<a x=\"unterminated",
	"(: nested (: comment :) :) 1",
	"(: unterminated",
	"\"a &amp; &#65; &#xZZ; &bogus;\"",
	"Q{urn:x}local, fn:concat(?, 'x')",
	"$m?key => f() || \"s\"",
	"(# ext:pragma content #) { 1 }",
	"insert node <a/> into $doc, copy $c := $d modify delete node $c/x return $c",
	"1.5e, .5, 1e400, 12345678901234567890123",
	"let $x := return",
	"declare variable $v := ; 1",
	"import module 'x' at ; declare namespace = 'y'; 1",
	"/a//b[@c = 1]/text()",
	"if (1) then 2 else",
	"{ } ) ] :)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	//nolint:errcheck // seeds are best effort
	filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".xq", ".xqm", ".xql", ".xqy", ".xquery":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
