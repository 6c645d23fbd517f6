package config

import (
	"fmt"
)

// Config is the complete topicroute configuration.
type Config struct {
	// Routing is the static routing table.
	Routing RoutingConfig `yaml:"routing"`
	// Log configures the zap logger.
	Log LogConfig `yaml:"log"`
}

// RoutingConfig is the static routing table: model profiles, aliases,
// and the keyword rule lists.
type RoutingConfig struct {
	// DefaultModel is the model used when no rule matches. It also
	// serves as the primary model that technical keywords route to.
	DefaultModel string `yaml:"default_model"`
	// Models lists the configured endpoint profiles.
	Models []ModelConfig `yaml:"models"`
	// Aliases maps alternate names (e.g. "western model") to model IDs.
	Aliases map[string]string `yaml:"aliases"`
	// SensitiveRules is the ordered sensitive-topic keyword list.
	// Earlier entries win over later ones.
	SensitiveRules []SensitiveRule `yaml:"sensitive_rules"`
	// TechnicalKeywords is the ordered technical keyword list; matches
	// route to DefaultModel.
	TechnicalKeywords []string `yaml:"technical_keywords"`
}

// ModelConfig describes one hosted endpoint.
type ModelConfig struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	BestFor         []string `yaml:"best_for"`
	AvoidFor        []string `yaml:"avoid_for"`
	ComplianceNotes string   `yaml:"compliance_notes"`
}

// SensitiveRule maps one sensitive-topic keyword to a target model.
type SensitiveRule struct {
	Keyword string `yaml:"keyword"`
	Model   string `yaml:"model"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level: debug, info, warn, error.
	Level string `yaml:"level"`
	// Format: json, console.
	Format string `yaml:"format"`
}

// Validate checks internal consistency of the routing table: at least
// one model, a default that is configured, and rule targets and alias
// targets that resolve to configured models.
func (c *Config) Validate() error {
	rt := c.Routing
	if len(rt.Models) == 0 {
		return fmt.Errorf("routing: no models configured")
	}

	ids := make(map[string]bool, len(rt.Models))
	for i, m := range rt.Models {
		if m.ID == "" {
			return fmt.Errorf("routing: model %d has empty id", i)
		}
		if ids[m.ID] {
			return fmt.Errorf("routing: duplicate model id %q", m.ID)
		}
		ids[m.ID] = true
	}

	if rt.DefaultModel == "" {
		return fmt.Errorf("routing: default_model is required")
	}
	if !ids[rt.DefaultModel] {
		return fmt.Errorf("routing: default_model %q is not a configured model", rt.DefaultModel)
	}

	for alias, target := range rt.Aliases {
		if !ids[target] {
			return fmt.Errorf("routing: alias %q targets unknown model %q", alias, target)
		}
	}
	for i, r := range rt.SensitiveRules {
		if r.Keyword == "" {
			return fmt.Errorf("routing: sensitive rule %d has empty keyword", i)
		}
		if !ids[r.Model] {
			return fmt.Errorf("routing: sensitive keyword %q targets unknown model %q", r.Keyword, r.Model)
		}
	}
	for i, kw := range rt.TechnicalKeywords {
		if kw == "" {
			return fmt.Errorf("routing: technical keyword %d is empty", i)
		}
	}
	return nil
}
