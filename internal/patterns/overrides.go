package patterns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides holds operator-supplied keyword additions loaded from YAML.
// All fields are additive on top of the built-in tables; there is no way to
// remove a default keyword.
type Overrides struct {
	Actions          map[string][]string `yaml:"actions"`
	Severity         map[string][]string `yaml:"severity"`
	ReservedPrefixes []string            `yaml:"reserved_prefixes"`
}

// LoadOverrides reads an override file. Unknown category or tier names are
// rejected at Build time, not here, so a bad file fails before serving.
func LoadOverrides(path string) (*Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer f.Close()

	var ov Overrides
	if err := yaml.NewDecoder(f).Decode(&ov); err != nil {
		return nil, fmt.Errorf("decode patterns file: %w", err)
	}
	return &ov, nil
}

func (o *Overrides) actionKeywords(category string) []string {
	return o.Actions[category]
}

func (o *Overrides) severityKeywords(tier string) []string {
	return o.Severity[tier]
}

// Validate rejects override keys that name no built-in category or tier.
func (o *Overrides) Validate() error {
	known := make(map[string]bool)
	for _, set := range defaultActionKeywords {
		known[set.category] = true
	}
	for category := range o.Actions {
		if !known[category] {
			return fmt.Errorf("unknown action category %q in patterns file", category)
		}
	}
	tiers := make(map[string]bool)
	for _, set := range defaultSeverityKeywords {
		tiers[set.tier] = true
	}
	for tier := range o.Severity {
		if !tiers[tier] {
			return fmt.Errorf("unknown severity tier %q in patterns file", tier)
		}
	}
	return nil
}
