package policy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/polite/internal/config"
)

// Strategy decides settings for a program when no recorded
// configuration applies. Implementations never fail; every program gets
// a valid answer.
type Strategy interface {
	Decide(program string) config.Polite
}

// Rule matches programs whose path contains Substring. An empty
// substring matches everything and acts as a catch-all.
type Rule struct {
	Substring   string `yaml:"substring"`
	Niceness    int    `yaml:"niceness"`
	OOMScoreAdj int    `yaml:"oomScoreAdj"`
}

// RuleOracle is the default Strategy: an ordered rule table evaluated
// first match wins. A stand-in for a learned or operator-tuned policy
// engine, which would implement Strategy in its place.
type RuleOracle struct {
	rules []Rule
}

// DefaultRules favors background compute workloads with a mild niceness
// and makes every dynamically launched program a slightly preferred OOM
// target over recorded ones.
func DefaultRules() []Rule {
	return []Rule{
		{Substring: "boinc", Niceness: 5, OOMScoreAdj: 100},
		{Substring: "", Niceness: 0, OOMScoreAdj: 100},
	}
}

// NewRuleOracle builds an oracle over the given rules, falling back to
// DefaultRules when none are supplied. The table is terminated with a
// catch-all so Decide always answers.
func NewRuleOracle(rules []Rule) (*RuleOracle, error) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	for i, r := range rules {
		if r.Niceness < config.MinNiceness || r.Niceness > config.MaxNiceness {
			return nil, fmt.Errorf("rule %d: niceness %d out of range", i, r.Niceness)
		}
		if r.OOMScoreAdj < config.MinOOMScoreAdj || r.OOMScoreAdj > config.MaxOOMScoreAdj {
			return nil, fmt.Errorf("rule %d: oom score adjustment %d out of range", i, r.OOMScoreAdj)
		}
	}
	rules = append([]Rule(nil), rules...)
	if last := rules[len(rules)-1]; last.Substring != "" {
		rules = append(rules, Rule{Niceness: 0, OOMScoreAdj: 100})
	}
	return &RuleOracle{rules: rules}, nil
}

// LoadRules reads a rule table from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}
	return doc.Rules, nil
}

func (o *RuleOracle) Decide(program string) config.Polite {
	for _, r := range o.rules {
		if strings.Contains(program, r.Substring) {
			return config.Polite{Niceness: r.Niceness, OOMScoreAdj: r.OOMScoreAdj}
		}
	}
	// Unreachable: the table always ends with a catch-all.
	return config.Polite{}
}
