package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of a rule override file:
//
//	rules:
//	  - category: Food
//	    keywords: [swiggy, zomato]
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a category keyword table from a YAML file. An empty or
// rule-less file is an error; a broken taxonomy should fail loudly at
// startup rather than silently categorize everything as Other.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file %q: %w", path, err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("rules file %q contains no rules", path)
	}
	for i, r := range f.Rules {
		if r.Category == "" {
			return nil, fmt.Errorf("rules file %q: rule %d has no category", path, i)
		}
	}
	return f.Rules, nil
}
