package dialect

import "fmt"

// Feature is a construct that only some configurations accept.
type Feature uint8

const (
	FeatureAnnotations Feature = iota
	FeatureMapOperator
	FeatureFunctionRef
	FeatureStringConcat
	FeatureBracedURI
	FeatureArrow
	FeatureUpdate

	featureCount
)

type featureInfo struct {
	name string
	min  Version
	ext  Extension
}

var features = [featureCount]featureInfo{
	FeatureAnnotations:  {"annotations", V30, 0},
	FeatureMapOperator:  {"simple map operator '!'", V30, 0},
	FeatureFunctionRef:  {"named function reference '#'", V30, 0},
	FeatureStringConcat: {"string concatenation '||'", V30, 0},
	FeatureBracedURI:    {"braced URI literal 'Q{...}'", V30, 0},
	FeatureArrow:        {"arrow operator '=>'", V31, 0},
	FeatureUpdate:       {"update expressions", V10, UpdateFacility},
}

func (f Feature) String() string {
	if f < featureCount {
		return features[f].name
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// MinVersion is the first language version that has f.
func (f Feature) MinVersion() Version { return features[f].min }

// Extension is the extension f needs, or 0.
func (f Feature) Extension() Extension { return features[f].ext }

// Features lists every feature in declaration order.
func Features() []Feature {
	out := make([]Feature, featureCount)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Config selects the language version and extensions of one parse.
// It is a plain value; the parser never modifies the caller's copy.
type Config struct {
	Version    Version
	Extensions Extension
}

// Default is the configuration used when nothing else is given.
func Default() Config { return Config{Version: V31} }

// Allows reports whether c accepts f.
func (c Config) Allows(f Feature) bool {
	info := features[f]
	return c.Version >= info.min && c.Extensions.Has(info.ext)
}

// WithVersion returns c with the version replaced.
func (c Config) WithVersion(v Version) Config {
	c.Version = v
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("xquery %s (%s)", c.Version, c.Extensions)
}
