// Package dialect describes which XQuery version and vendor extensions a
// parse accepts, and loads that choice from xqfront.toml or .xqfront.yaml.
package dialect
