package dialect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownPreset    = errors.New("unknown dialect preset")
	ErrUnknownExtension = errors.New("unknown extension")
	ErrUnknownVersion   = errors.New("unknown xquery version")
	ErrSectionMissing   = errors.New("missing [dialect] section")
	ErrUnsupportedFile  = errors.New("unsupported config file type")
)

// ConfigFileNames are looked up, in order, by Discover.
var ConfigFileNames = []string{"xqfront.toml", ".xqfront.yaml", ".xqfront.yml"}

// fileConfig is the [dialect] section of a config file.
type fileConfig struct {
	Dialect struct {
		Preset     string   `toml:"preset" yaml:"preset"`
		Version    string   `toml:"version" yaml:"version"`
		Extensions []string `toml:"extensions" yaml:"extensions"`
	} `toml:"dialect" yaml:"dialect"`
}

// LoadFile reads a TOML or YAML dialect file. Fields override the preset
// named in the same file; without a preset they start from Default.
func LoadFile(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	var cfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if !meta.IsDefined("dialect") {
			return Config{}, fmt.Errorf("%s: %w", path, ErrSectionMissing)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		var probe map[string]any
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
		if _, ok := probe["dialect"]; !ok {
			return Config{}, fmt.Errorf("%s: %w", path, ErrSectionMissing)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}
	c, err := cfg.resolve()
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (fc fileConfig) resolve() (Config, error) {
	d := fc.Dialect
	c := Default()
	if d.Preset != "" {
		p, err := Preset(d.Preset)
		if err != nil {
			return Config{}, err
		}
		c = p
	}
	if d.Version != "" {
		v, req, ok := ParseVersion(d.Version)
		if !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownVersion, d.Version)
		}
		c.Version = v
		c.Extensions |= req
	}
	if d.Extensions != nil {
		c.Extensions = 0
		for _, name := range d.Extensions {
			e, err := ParseExtension(name)
			if err != nil {
				return Config{}, err
			}
			c.Extensions |= e
		}
	}
	return c, nil
}

// Discover walks up from startDir looking for a dialect file.
func Discover(fs afero.Fs, startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := fs.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
