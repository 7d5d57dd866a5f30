package config

import "fmt"

// SourceType selects how a source unit is parsed. Exactly one of the two
// kinds applies to a file.
type SourceType string

const (
	SourceTypeScript SourceType = "script"
	SourceTypeModule SourceType = "module"
)

// EcmaFeatures toggles optional language features. A nil field means "use
// the language-level default", which is not the same as false.
type EcmaFeatures struct {
	GlobalReturn  *bool `yaml:"globalReturn,omitempty" json:"globalReturn,omitempty"`
	JSX           *bool `yaml:"jsx,omitempty" json:"jsx,omitempty"`
	ImpliedStrict *bool `yaml:"impliedStrict,omitempty" json:"impliedStrict,omitempty"`
}

// ParserOptions is handed opaquely to the configured parser. Only the
// discrete selectors are validated here; everything else is the parser's
// business.
type ParserOptions struct {
	EcmaVersion  int           `yaml:"ecmaVersion,omitempty" json:"ecmaVersion,omitempty"`
	SourceType   SourceType    `yaml:"sourceType,omitempty" json:"sourceType,omitempty"`
	EcmaFeatures *EcmaFeatures `yaml:"ecmaFeatures,omitempty" json:"ecmaFeatures,omitempty"`
}

// Known ecmaVersion values: edition numbers and their year aliases.
func validEcmaVersion(v int) bool {
	if v == 3 || (v >= 5 && v <= 16) {
		return true
	}
	return v >= 2015 && v <= 2025
}

func validateParserOptions(po *ParserOptions, path string) []string {
	var errs []string
	if po == nil {
		return errs
	}
	if po.EcmaVersion != 0 && !validEcmaVersion(po.EcmaVersion) {
		errs = append(errs, fmt.Sprintf("%s.ecmaVersion: unknown version %d", path, po.EcmaVersion))
	}
	if po.SourceType != "" && po.SourceType != SourceTypeScript && po.SourceType != SourceTypeModule {
		errs = append(errs, fmt.Sprintf("%s.sourceType: must be %q or %q, got %q", path, SourceTypeScript, SourceTypeModule, po.SourceType))
	}
	return errs
}
