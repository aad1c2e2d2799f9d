package parameters

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// Presets maps names to player configuration strings, as loaded from a YAML file
// like:
//
//	players:
//	  strong: "ab,max_depth=4"
//	  fast: "random"
type Presets map[string]string

type presetsFile struct {
	Players Presets `yaml:"players"`
}

// ParsePresets parses the YAML content of a presets file.
func ParsePresets(content []byte) (Presets, error) {
	var file presetsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse players presets")
	}
	if file.Players == nil {
		file.Players = make(Presets)
	}
	for name, config := range file.Players {
		if strings.HasPrefix(config, "@") {
			return nil, errors.Errorf("preset %q refers to another preset (%q), which is not supported", name, config)
		}
	}
	return file.Players, nil
}

// LoadPresets reads the presets from the YAML file at path.
func LoadPresets(path string) (Presets, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read players presets from %q", path)
	}
	presets, err := ParsePresets(content)
	if err != nil {
		return nil, errors.WithMessagef(err, "in file %q", path)
	}
	return presets, nil
}

// Resolve returns the configuration string for config: "@name" is replaced by the
// preset with that name, anything else is returned as is.
func (presets Presets) Resolve(config string) (string, error) {
	name, isPreset := strings.CutPrefix(config, "@")
	if !isPreset {
		return config, nil
	}
	resolved, found := presets[name]
	if !found {
		return "", errors.Errorf("unknown players preset %q", name)
	}
	return resolved, nil
}
