package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"xqfront/internal/version"
)

type cliResult struct {
	code           int
	stdout, stderr string
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return cliResult{code: code, stdout: out.String(), stderr: errb.String()}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestTokenizeJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "let $x := 1 return $x"})
	res := runCLI(t, "tokenize", "--format", "json", filepath.Join(dir, "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	require.True(t, gjson.Valid(res.stdout))
	assert.Equal(t, "KwLet", gjson.Get(res.stdout, "0.kind").String())
	assert.Equal(t, "EOF", gjson.Get(res.stdout, "@reverse.0.kind").String())
}

func TestTokenizeReportsLexicalErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": `"open`})
	res := runCLI(t, "tokenize", "--color", "off", filepath.Join(dir, "q.xq"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR LEX1002")
	assert.Contains(t, res.stdout, "EOF")
}

func TestParseFileJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "for $x in (1, 2) return $x * 2"})
	res := runCLI(t, "parse", "--format", "json", filepath.Join(dir, "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	require.True(t, gjson.Valid(res.stdout))

	assert.Equal(t, "default", gjson.Get(res.stdout, "dialect_source").String())
	assert.Equal(t, int64(1), gjson.Get(res.stdout, "files.#").Int())
	file := gjson.Get(res.stdout, "files.0")
	assert.Equal(t, "3.1", file.Get("version").String())
	assert.Equal(t, int64(0), file.Get("errors").Int())
	assert.Equal(t, "Module", file.Get("tree.kind").String())
	assert.Equal(t, "MainModule", file.Get("tree.children.0.kind").String())
}

func TestParseFilePrettyWithErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.xq": "(1, 2"})
	res := runCLI(t, "parse", "--color", "off", filepath.Join(dir, "bad.xq"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ERROR SYN2005")
	assert.Contains(t, res.stderr, "fix #1: insert ')'")
	assert.Regexp(t, `bad\.xq: \d+ errors?, 0 warnings \(xquery 3\.1\)`, res.stdout)
	assert.NotContains(t, res.stderr, "xqfront:")
}

func TestParseQuiet(t *testing.T) {
	dir := writeFiles(t, map[string]string{"ok.xq": "1"})
	res := runCLI(t, "--quiet", "--timings", "parse", filepath.Join(dir, "ok.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	assert.NotContains(t, res.stderr, "OBS6001")
}

func TestParseTimingsAsDiagnostic(t *testing.T) {
	dir := writeFiles(t, map[string]string{"ok.xq": "1"})
	res := runCLI(t, "--timings", "parse", "--format", "json", filepath.Join(dir, "ok.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	d := gjson.Get(res.stdout, `files.0.diagnostics.#(code=="OBS6001")`)
	require.True(t, d.Exists())
	assert.Equal(t, "parse", gjson.Get(d.Get("notes.0.message").String(), "kind").String())
}

func TestParseDialectPreset(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "'a' || 'b'"})
	path := filepath.Join(dir, "q.xq")

	res := runCLI(t, "parse", "--format", "json", path)
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "parse", "--format", "json", "--dialect", "w3c/1.0", path)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "preset w3c/1.0", gjson.Get(res.stdout, "dialect_source").String())
	assert.Equal(t, "SEM3001", gjson.Get(res.stdout, "files.0.diagnostics.0.code").String())

	res = runCLI(t, "parse", "--dialect", "nope", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown dialect preset")
}

func TestParseDiscoversConfigFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"xqfront.toml": "[dialect]\npreset = \"w3c/1.0\"\n",
		"sub/q.xq":     "1",
	})
	res := runCLI(t, "parse", "--format", "json", filepath.Join(dir, "sub", "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasSuffix(gjson.Get(res.stdout, "dialect_source").String(), "xqfront.toml"))
	assert.Equal(t, "1.0", gjson.Get(res.stdout, "files.0.version").String())
}

func TestParseDirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.xq":       "1 + 1",
		"lib/m.xqm":  "module namespace m = 'urn:m'; declare variable $m:v := 1;",
		"notes.txt":  "not a query",
		"zz/bad.xql": "let $x := 1",
	})
	res := runCLI(t, "parse", "--format", "json", "--jobs", "2", dir)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, int64(3), gjson.Get(res.stdout, "files.#").Int())
	assert.Equal(t, int64(0), gjson.Get(res.stdout, "files.0.errors").Int())
	assert.Greater(t, gjson.Get(res.stdout, "files.2.errors").Int(), int64(0))
	assert.Greater(t, gjson.Get(res.stdout, "errors").Int(), int64(0))

	res = runCLI(t, "parse", "--ui", "off", "--color", "off", dir)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "3 files, 1 with errors")
}

func TestParseTree(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "let $a := 1 return $a"})
	res := runCLI(t, "parse", "--format", "tree", "--color", "off", filepath.Join(dir, "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "└── MainModule")
	assert.Contains(t, res.stdout, "; $a bound by LetBinding at 4")
}

func TestParseShort(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.xq": "(1, 2"})
	res := runCLI(t, "parse", "--format", "short", filepath.Join(dir, "bad.xq"))
	assert.Equal(t, 1, res.code)
	assert.Regexp(t, `bad\.xq:1:\d+: error SYN2005: `, res.stdout)
	assert.NotContains(t, res.stdout, "files,")
}

func TestParseSeverityFloor(t *testing.T) {
	dir := writeFiles(t, map[string]string{"ok.xq": "1"})
	path := filepath.Join(dir, "ok.xq")

	res := runCLI(t, "--timings", "parse", "--format", "json", "--severity", "warning", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, int64(0), gjson.Get(res.stdout, "files.0.diagnostics.#").Int())

	res = runCLI(t, "parse", "--severity", "fatal", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown severity")
}

func TestParseBadFlags(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "1"})
	path := filepath.Join(dir, "q.xq")

	res := runCLI(t, "parse", "--format", "yaml", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown format: yaml")

	res = runCLI(t, "parse", "--ui", "sometimes", path)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid --ui value")

	res = runCLI(t, "parse", filepath.Join(dir, "missing.xq"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "xqfront:")
}

func TestDialectsJSON(t *testing.T) {
	res := runCLI(t, "dialects", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, int64(6), gjson.Get(res.stdout, "#").Int())
	basex := gjson.Get(res.stdout, `#(name=="basex")`)
	assert.Equal(t, "3.1", basex.Get("version").String())
	assert.True(t, basex.Get(`features.update expressions`).Bool())
	ml := gjson.Get(res.stdout, `#(name=="marklogic")`)
	assert.False(t, ml.Get(`features.arrow operator '=>'`).Bool())
}

func TestDialectsPretty(t *testing.T) {
	res := runCLI(t, "dialects", "--color", "off")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "w3c/3.1")
	assert.Contains(t, res.stdout, "update expressions")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, version.Version, gjson.Get(res.stdout, "version").String())
	assert.Equal(t, "3.1", gjson.Get(res.stdout, "languages.2").String())

	res = runCLI(t, "version", "--color", "off")
	require.Equal(t, 0, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "xqfront "+version.Version))
}

func TestProfilingFlags(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "1"})
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	res := runCLI(t, "--cpuprofile", cpu, "--memprofile", mem, "parse", filepath.Join(dir, "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	for _, p := range []string{cpu, mem} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestTraceToStderr(t *testing.T) {
	dir := writeFiles(t, map[string]string{"q.xq": "1"})
	res := runCLI(t, "--trace", "-", "--trace-level", "phase", "parse", filepath.Join(dir, "q.xq"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "parse")
}
