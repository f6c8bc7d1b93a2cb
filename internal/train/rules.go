package train

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryRule labels a posting with a category when any needle occurs in
// its title.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Any      []string `yaml:"any"`
}

// OtherCategory marks titles no rule claims; those rows are excluded from
// classifier training.
const OtherCategory = "Other"

// DefaultRules covers the data roles the classifier ships with.
var DefaultRules = []CategoryRule{
	{Category: "ML Engineer", Any: []string{"machine learning", "ml engineer"}},
	{Category: "Data Scientist", Any: []string{"data scientist"}},
	{Category: "Data Analyst", Any: []string{"data analyst", "business analyst"}},
	{Category: "Data Engineer", Any: []string{"data engineer"}},
}

// LoadRules reads category rules from a YAML file, falling back to the
// defaults when no path is configured.
func LoadRules(path string) ([]CategoryRule, error) {
	if path == "" {
		return DefaultRules, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rules []CategoryRule
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s: no rules", path)
	}
	return rules, nil
}

// Categorize returns the first rule category whose needle occurs in the
// title, or OtherCategory.
func Categorize(rules []CategoryRule, title string) string {
	t := strings.ToLower(title)
	for _, r := range rules {
		for _, needle := range r.Any {
			if strings.Contains(t, strings.ToLower(needle)) {
				return r.Category
			}
		}
	}
	return OtherCategory
}
