package config

import (
	"fmt"
	"strings"
)

// Validate checks structural invariants of a loaded ConfigData.
// Returns warnings (soft issues) and a hard error if the config is invalid.
// Wire-form errors (bad severities, bad global confs) are caught earlier,
// at unmarshal time.
func Validate(cfg *ConfigData) (warnings []string, err error) {
	var errs []string

	// ── Root fields ───────────────────────────────────────────────────────

	errs = append(errs, validateParserOptions(cfg.ParserOptions, "parserOptions")...)
	errs = append(errs, validateCommon(cfg.Plugins, cfg.Processor, cfg.Rules, cfg.Extends, "")...)

	// ── Overrides ─────────────────────────────────────────────────────────

	for i, ov := range cfg.Overrides {
		w, e := validateOverride(ov, fmt.Sprintf("overrides[%d]", i))
		warnings = append(warnings, w...)
		errs = append(errs, e...)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// validateOverride checks one override entry and recurses into nested ones.
func validateOverride(ov OverrideConfig, path string) (warnings []string, errs []string) {
	if len(ov.Files) == 0 {
		errs = append(errs, fmt.Sprintf("%s: files is required and must name at least one glob", path))
	}
	for _, f := range ov.Files {
		if f == "" {
			errs = append(errs, fmt.Sprintf("%s.files: empty glob pattern", path))
		}
	}
	for _, f := range ov.ExcludedFiles {
		if f == "" {
			errs = append(errs, fmt.Sprintf("%s.excludedFiles: empty glob pattern", path))
		}
	}

	errs = append(errs, validateParserOptions(ov.ParserOptions, path+".parserOptions")...)
	errs = append(errs, validateCommon(ov.Plugins, ov.Processor, ov.Rules, ov.Extends, path+".")...)

	if isEmptyOverride(ov) {
		warnings = append(warnings, fmt.Sprintf("%s: matches files but configures nothing", path))
	}

	for i, nested := range ov.Overrides {
		w, e := validateOverride(nested, fmt.Sprintf("%s.overrides[%d]", path, i))
		warnings = append(warnings, w...)
		errs = append(errs, e...)
	}
	return warnings, errs
}

// validateCommon checks the fields shared by ConfigData and OverrideConfig.
func validateCommon(plugins []string, processor string, rules map[string]RuleConf, extends StringList, prefix string) []string {
	var errs []string

	for i, p := range plugins {
		if p == "" {
			errs = append(errs, fmt.Sprintf("%splugins[%d]: empty plugin identifier", prefix, i))
		}
	}
	if processor != "" && !strings.Contains(processor, "/") {
		errs = append(errs, fmt.Sprintf("%sprocessor: %q is not of the form \"plugin/name\"", prefix, processor))
	}
	for name := range rules {
		if name == "" {
			errs = append(errs, fmt.Sprintf("%srules: empty rule identifier", prefix))
		}
	}
	for i, e := range extends {
		if e == "" {
			errs = append(errs, fmt.Sprintf("%sextends[%d]: empty config reference", prefix, i))
		}
	}
	return errs
}

func isEmptyOverride(ov OverrideConfig) bool {
	return len(ov.Env) == 0 && len(ov.Extends) == 0 && len(ov.Globals) == 0 &&
		len(ov.IgnorePatterns) == 0 && !ov.NoInlineConfig && len(ov.Overrides) == 0 &&
		ov.Parser == "" && ov.ParserOptions == nil && len(ov.Plugins) == 0 &&
		ov.Processor == "" && ov.ReportUnusedDisableDirectives == nil && len(ov.Rules) == 0 &&
		len(ov.Settings) == 0
}
