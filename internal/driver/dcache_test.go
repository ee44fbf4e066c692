package driver

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cache, err := NewDiskCache(fs, "/c")
	require.NoError(t, err)

	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual("a.xq", []byte("(1")))
	key := Key(file, dialect.Default(), 0)

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnclosedParen, source.Span{File: file.ID, Start: 2, End: 2}, "expected ')'").
		WithNote(source.Span{File: file.ID, Start: 0, End: 1}, "opened here").
		WithFix("insert ')'", diag.FixEdit{Span: source.At(file.ID, 2), NewText: ")"}))
	res := &ParseResult{Path: "a.xq", File: file, Bag: bag, Version: dialect.V31}
	require.NoError(t, cache.Put(key, payloadFromResult(res)))

	hit, err = cache.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)
	back := resultFromPayload(&out, fileSet, file, 0)
	assert.True(t, back.Cached)
	assert.Equal(t, dialect.V31, back.Version)
	require.Equal(t, 1, back.Bag.Len())
	d := back.Bag.Items()[0]
	assert.Equal(t, diag.SynUnclosedParen, d.Code)
	assert.Equal(t, diag.SevError, d.Severity)
	assert.Equal(t, "opened here", d.Notes[0].Msg)
	assert.Equal(t, ")", d.Fixes[0].Edits[0].NewText)
	assert.Equal(t, uint32(2), d.Fixes[0].Edits[0].Span.Start)

	// no temp files left behind
	entries, err := afero.ReadDir(fs, "/c/files")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestKeyDependsOnDialectAndContent(t *testing.T) {
	fileSet := source.NewFileSet()
	a := fileSet.Get(fileSet.AddVirtual("a.xq", []byte("1")))
	b := fileSet.Get(fileSet.AddVirtual("b.xq", []byte("2")))
	same := fileSet.Get(fileSet.AddVirtual("c.xq", []byte("1")))

	assert.Equal(t, Key(a, dialect.Default(), 0), Key(same, dialect.Default(), 0))
	assert.NotEqual(t, Key(a, dialect.Default(), 0), Key(b, dialect.Default(), 0))
	assert.NotEqual(t, Key(a, dialect.Default(), 0), Key(a, dialect.Config{Version: dialect.V10}, 0))
	assert.NotEqual(t, Key(a, dialect.Default(), 0), Key(a, dialect.Default(), 5))
}

func TestDiskCacheDropAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	cache, err := NewDiskCache(fs, "/c")
	require.NoError(t, err)
	var key Digest
	key[0] = 1
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}))
	require.NoError(t, cache.DropAll())

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := NewDiskCache(afero.NewMemMapFs(), "/c")
	require.NoError(t, err)
	var key Digest
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}))
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	assert.NoError(t, cache.Put(Digest{}, &DiskPayload{}))
	hit, err := cache.Get(Digest{}, &DiskPayload{})
	assert.NoError(t, err)
	assert.False(t, hit)
}
