package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Uncategorized is the category assigned when no keyword matches.
const Uncategorized = "uncategorized"

// Rule maps one category label to its ordered keyword list.
type Rule struct {
	Category string
	Keywords []string
}

// RuleSet is an ordered list of category rules. Order is significant:
// categories are scanned in declaration order and the first keyword found
// in a description wins.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet from rules in the given order.
func NewRuleSet(rules []Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// Rules returns the rules in declaration order.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// UnmarshalYAML decodes a YAML mapping of category -> keyword list,
// preserving the mapping's declaration order. Keywords are lowercased and
// trimmed on load so matching is case-insensitive.
func (rs *RuleSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("category rules: expected a mapping of category to keyword list")
	}

	rs.rules = nil
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		var keywords []string
		if err := val.Decode(&keywords); err != nil {
			return fmt.Errorf("category %q: %w", key.Value, err)
		}
		for j, kw := range keywords {
			keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
		rs.rules = append(rs.rules, Rule{Category: key.Value, Keywords: keywords})
	}
	return nil
}

// Categorize returns the category of the first rule whose keyword appears
// as a substring of the lowercased description. Rules are scanned in
// declaration order, keywords in list order; no scoring or longest-match
// preference. Unmatched descriptions map to Uncategorized.
func (rs *RuleSet) Categorize(description string) string {
	d := strings.ToLower(description)
	for _, rule := range rs.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(d, kw) {
				return rule.Category
			}
		}
	}
	return Uncategorized
}

// Load reads category rules from path. A missing file falls back to the
// embedded defaults; a present file fully overrides them (no merging).
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte(DefaultRules)
	} else if err != nil {
		return nil, fmt.Errorf("reading category rules: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing category rules: %w", err)
	}
	return &rs, nil
}
