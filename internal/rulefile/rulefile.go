// Package rulefile loads YAML files holding exclude/include path rules.
package rulefile

import (
	"fmt"
	"os"

	"github.com/taigrr/subpaths/pathmatch"
	"gopkg.in/yaml.v3"
)

// RuleFile is the on-disk rule format. Each rule is a regular expression
// tested against candidate paths.
type RuleFile struct {
	Exclude []string `yaml:"exclude"`
	Include []string `yaml:"include"`
}

// Rules are the compiled patterns of one rule file.
type Rules struct {
	Exclude []pathmatch.Pattern
	Include []pathmatch.Pattern
}

// Load reads and compiles a rule file.
func Load(path string) (Rules, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rule file: %w", err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(content, &rf); err != nil {
		return Rules{}, fmt.Errorf("parse rule file %s: %w", path, err)
	}

	exclude, err := pathmatch.Compile(rf.Exclude)
	if err != nil {
		return Rules{}, fmt.Errorf("rule file %s: %w", path, err)
	}
	include, err := pathmatch.Compile(rf.Include)
	if err != nil {
		return Rules{}, fmt.Errorf("rule file %s: %w", path, err)
	}

	return Rules{Exclude: exclude, Include: include}, nil
}
