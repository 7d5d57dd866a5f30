package config

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesFile reports whether this override applies to the given file path.
// Patterns in ExcludedFiles veto matches from Files. Paths are compared in
// forward-slash form relative to the config root.
func (o *OverrideConfig) MatchesFile(path string) bool {
	norm := normalizeSlashPath(path)
	base := filepath.Base(norm)

	for _, pattern := range o.ExcludedFiles {
		if matchOverridePattern(pattern, norm, base) {
			return false
		}
	}
	for _, pattern := range o.Files {
		if matchOverridePattern(pattern, norm, base) {
			return true
		}
	}
	return false
}

// ResolveForFile flattens cfg for one analyzed file: overrides are applied
// in array order, later entries taking precedence on conflicting keys, with
// nested overrides applied right after their parent. The result carries no
// overrides of its own and has required root fields normalized.
// Extends resolution happens upstream, before this is called.
func ResolveForFile(cfg *ConfigData, path string) *ConfigData {
	out := *cfg
	resolved := &out
	resolved.Overrides = nil

	resolved = applyOverrides(resolved, cfg.Overrides, path)
	resolved.Normalize()
	return resolved
}

func applyOverrides(acc *ConfigData, overrides []OverrideConfig, path string) *ConfigData {
	for i := range overrides {
		ov := &overrides[i]
		if !ov.MatchesFile(path) {
			continue
		}
		acc = Merge(acc, ov.asConfigData())
		acc.Overrides = nil
		acc = applyOverrides(acc, ov.Overrides, path)
	}
	return acc
}

// asConfigData views an override's shared fields as a ConfigData so the
// merge logic applies uniformly. Files/ExcludedFiles are scoping, not
// configuration, and are not carried over.
func (o *OverrideConfig) asConfigData() *ConfigData {
	return &ConfigData{
		Env:                           o.Env,
		Extends:                       o.Extends,
		Globals:                       o.Globals,
		IgnorePatterns:                o.IgnorePatterns,
		NoInlineConfig:                o.NoInlineConfig,
		Parser:                        o.Parser,
		ParserOptions:                 o.ParserOptions,
		Plugins:                       o.Plugins,
		Processor:                     o.Processor,
		ReportUnusedDisableDirectives: o.ReportUnusedDisableDirectives,
		Rules:                         o.Rules,
		Settings:                      o.Settings,
	}
}

// matchOverridePattern matches one glob against a normalized path.
// Patterns containing "/" or "**" match against the full path; bare
// patterns match the base name only.
func matchOverridePattern(pattern, normPath, baseName string) bool {
	pattern = filepath.ToSlash(pattern)
	target := baseName
	if strings.Contains(pattern, "/") || strings.Contains(pattern, "**") {
		target = normPath
	}
	ok, err := doublestar.Match(pattern, target)
	return err == nil && ok
}

func normalizeSlashPath(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}
