package dialect

import (
	"fmt"
	"strings"
)

// Version is an XQuery language version.
type Version uint8

const (
	V10 Version = iota
	V30
	V31

	versionCount
)

func (v Version) String() string {
	switch v {
	case V10:
		return "1.0"
	case V30:
		return "3.0"
	case V31:
		return "3.1"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

func (v Version) GoString() string {
	return fmt.Sprintf("Version(%s)", v.String())
}

// ParseVersion recognises the version string of a version declaration.
// MarkLogic versions map to 1.0 and report the extension they need in req.
func ParseVersion(s string) (v Version, req Extension, ok bool) {
	switch strings.TrimSpace(s) {
	case "1.0":
		return V10, 0, true
	case "3.0":
		return V30, 0, true
	case "3.1":
		return V31, 0, true
	case "1.0-ml", "0.9-ml":
		return V10, MarkLogic, true
	}
	return V10, 0, false
}

// Extension is a set of vendor extensions.
type Extension uint8

const (
	// UpdateFacility enables the XQuery Update Facility expressions.
	UpdateFacility Extension = 1 << iota
	// MarkLogic enables the MarkLogic version strings.
	MarkLogic
)

var extensionNames = []struct {
	ext  Extension
	name string
}{
	{UpdateFacility, "update"},
	{MarkLogic, "marklogic"},
}

// ParseExtension maps a configuration name to an extension.
func ParseExtension(name string) (Extension, error) {
	for _, e := range extensionNames {
		if e.name == strings.ToLower(strings.TrimSpace(name)) {
			return e.ext, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
}

// Has reports whether every extension in o is in e.
func (e Extension) Has(o Extension) bool { return e&o == o }

// Names lists the extension names in e.
func (e Extension) Names() []string {
	var out []string
	for _, x := range extensionNames {
		if e.Has(x.ext) {
			out = append(out, x.name)
		}
	}
	return out
}

func (e Extension) String() string {
	if e == 0 {
		return "none"
	}
	return strings.Join(e.Names(), "+")
}
