package dialect

import (
	"fmt"
	"sort"
)

var presets = map[string]Config{
	"w3c/1.0":   {Version: V10},
	"w3c/3.0":   {Version: V30},
	"w3c/3.1":   {Version: V31},
	"basex":     {Version: V31, Extensions: UpdateFacility},
	"saxon":     {Version: V31, Extensions: UpdateFacility},
	"marklogic": {Version: V10, Extensions: MarkLogic},
}

// Preset returns a named configuration.
func Preset(name string) (Config, error) {
	c, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return c, nil
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
