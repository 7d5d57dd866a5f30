package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList accepts either a single string or a sequence of strings on the
// wire and always holds a slice in memory.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	var one string
	if err := node.Decode(&one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := node.Decode(&many); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = many
	return nil
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = many
	return nil
}

// ConfigData is the root cascading configuration record for an analysis run.
// It is immutable once handed to the engine; this layer only validates and
// defaults it.
type ConfigData struct {
	Env                           map[string]bool       `yaml:"env,omitempty" json:"env,omitempty"`
	Extends                       StringList            `yaml:"extends,omitempty" json:"extends,omitempty"`
	Globals                       map[string]GlobalConf `yaml:"globals,omitempty" json:"globals,omitempty"`
	IgnorePatterns                StringList            `yaml:"ignorePatterns,omitempty" json:"ignorePatterns,omitempty"`
	NoInlineConfig                bool                  `yaml:"noInlineConfig,omitempty" json:"noInlineConfig,omitempty"`
	Overrides                     []OverrideConfig      `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Parser                        string                `yaml:"parser,omitempty" json:"parser,omitempty"`
	ParserOptions                 *ParserOptions        `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Plugins                       []string              `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Processor                     string                `yaml:"processor,omitempty" json:"processor,omitempty"`
	ReportUnusedDisableDirectives *bool                 `yaml:"reportUnusedDisableDirectives,omitempty" json:"reportUnusedDisableDirectives,omitempty"`
	Root                          bool                  `yaml:"root,omitempty" json:"root,omitempty"`
	Rules                         map[string]RuleConf   `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings                      map[string]any        `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// OverrideConfig is a ConfigData scoped to a glob-matched subset of files.
// Files is required; ExcludedFiles vetoes matches within Files. Overrides
// nest recursively.
type OverrideConfig struct {
	Files         StringList `yaml:"files" json:"files"`
	ExcludedFiles StringList `yaml:"excludedFiles,omitempty" json:"excludedFiles,omitempty"`

	Env                           map[string]bool       `yaml:"env,omitempty" json:"env,omitempty"`
	Extends                       StringList            `yaml:"extends,omitempty" json:"extends,omitempty"`
	Globals                       map[string]GlobalConf `yaml:"globals,omitempty" json:"globals,omitempty"`
	IgnorePatterns                StringList            `yaml:"ignorePatterns,omitempty" json:"ignorePatterns,omitempty"`
	NoInlineConfig                bool                  `yaml:"noInlineConfig,omitempty" json:"noInlineConfig,omitempty"`
	Overrides                     []OverrideConfig      `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Parser                        string                `yaml:"parser,omitempty" json:"parser,omitempty"`
	ParserOptions                 *ParserOptions        `yaml:"parserOptions,omitempty" json:"parserOptions,omitempty"`
	Plugins                       []string              `yaml:"plugins,omitempty" json:"plugins,omitempty"`
	Processor                     string                `yaml:"processor,omitempty" json:"processor,omitempty"`
	ReportUnusedDisableDirectives *bool                 `yaml:"reportUnusedDisableDirectives,omitempty" json:"reportUnusedDisableDirectives,omitempty"`
	Rules                         map[string]RuleConf   `yaml:"rules,omitempty" json:"rules,omitempty"`
	Settings                      map[string]any        `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Normalize fills required root-level fields. After normalization,
// ReportUnusedDisableDirectives always resolves to a concrete boolean.
func (c *ConfigData) Normalize() {
	if c.ReportUnusedDisableDirectives == nil {
		off := false
		c.ReportUnusedDisableDirectives = &off
	}
}

// FromMap converts a loosely-typed record (as produced by a caller-supplied
// baseConfig) into a typed ConfigData. The record round-trips through YAML
// so the custom wire forms (severity synonyms, string-or-list fields,
// boolean global shorthands) are honored.
func FromMap(m map[string]any) (*ConfigData, error) {
	if m == nil {
		return nil, nil
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, err
	}
	var cfg ConfigData
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
