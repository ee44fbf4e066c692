package dialect_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/dialect"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		cfg  dialect.Config
		f    dialect.Feature
		want bool
	}{
		{dialect.Config{Version: dialect.V10}, dialect.FeatureAnnotations, false},
		{dialect.Config{Version: dialect.V30}, dialect.FeatureAnnotations, true},
		{dialect.Config{Version: dialect.V30}, dialect.FeatureArrow, false},
		{dialect.Config{Version: dialect.V31}, dialect.FeatureArrow, true},
		{dialect.Config{Version: dialect.V31}, dialect.FeatureUpdate, false},
		{dialect.Config{Version: dialect.V10, Extensions: dialect.UpdateFacility}, dialect.FeatureUpdate, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cfg.Allows(tt.f), "%s / %s", tt.cfg, tt.f)
	}
}

func TestParseVersion(t *testing.T) {
	v, req, ok := dialect.ParseVersion("3.1")
	assert.True(t, ok)
	assert.Equal(t, dialect.V31, v)
	assert.Zero(t, req)

	v, req, ok = dialect.ParseVersion("1.0-ml")
	assert.True(t, ok)
	assert.Equal(t, dialect.V10, v)
	assert.Equal(t, dialect.MarkLogic, req)

	_, _, ok = dialect.ParseVersion("4.0")
	assert.False(t, ok)
}

func TestPresets(t *testing.T) {
	for _, name := range dialect.PresetNames() {
		_, err := dialect.Preset(name)
		require.NoError(t, err, name)
	}
	_, err := dialect.Preset("exist")
	assert.ErrorIs(t, err, dialect.ErrUnknownPreset)
}

func TestLoadFileTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/xqfront.toml", []byte(`
[dialect]
preset = "w3c/3.0"
extensions = ["update"]
`), 0o644))

	cfg, err := dialect.LoadFile(fs, "/p/xqfront.toml")
	require.NoError(t, err)
	assert.Equal(t, dialect.V30, cfg.Version)
	assert.True(t, cfg.Extensions.Has(dialect.UpdateFacility))
}

func TestLoadFileYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/.xqfront.yaml", []byte("dialect:\n  version: \"1.0\"\n"), 0o644))

	cfg, err := dialect.LoadFile(fs, "/p/.xqfront.yaml")
	require.NoError(t, err)
	assert.Equal(t, dialect.Config{Version: dialect.V10}, cfg)
}

func TestLoadFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.toml", []byte("[other]\nx = 1\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/b.toml", []byte("[dialect]\nextensions = [\"exist\"]\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/c.json", []byte("{}"), 0o644))

	_, err := dialect.LoadFile(fs, "/a.toml")
	assert.ErrorIs(t, err, dialect.ErrSectionMissing)
	_, err = dialect.LoadFile(fs, "/b.toml")
	assert.ErrorIs(t, err, dialect.ErrUnknownExtension)
	_, err = dialect.LoadFile(fs, "/c.json")
	assert.ErrorIs(t, err, dialect.ErrUnsupportedFile)
	_, err = dialect.LoadFile(fs, "/missing.toml")
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	fs := afero.NewMemMapFs()
	root, err := filepath.Abs("/proj")
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "src", "lib"), 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, ".xqfront.yml"), []byte("dialect: {}\n"), 0o644))

	path, ok, err := dialect.Discover(fs, filepath.Join(root, "src", "lib"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".xqfront.yml"), path)
}
