package options

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sofmeright/lintgate/src/plugin"
)

// recognizedOptions is the fixed key set of the raw record, in validation
// order. Type checks run in this order and fail on the first violation.
var recognizedOptions = []string{
	"allowInlineConfig",
	"baseConfig",
	"cache",
	"cacheLocation",
	"configFile",
	"cwd",
	"envs",
	"extensions",
	"fix",
	"fixTypes",
	"globals",
	"globInputPaths",
	"ignore",
	"ignorePath",
	"ignorePattern",
	"parser",
	"parserOptions",
	"plugins",
	"reportUnusedDisableDirectives",
	"resolvePluginsRelativeTo",
	"rulePaths",
	"rules",
	"useEslintrc",
}

// legacyCacheFileOption was replaced by cacheLocation; passing it gets a
// dedicated hint in the unknown-option message.
const legacyCacheFileOption = "cacheFile"

var recognizedSet = func() map[string]bool {
	set := make(map[string]bool, len(recognizedOptions))
	for _, name := range recognizedOptions {
		set[name] = true
	}
	return set
}()

// Validator normalizes raw option records. The zero value reads the working
// directory from the OS once per call; setting Cwd makes validation a pure
// function of its inputs.
type Validator struct {
	// Cwd is used for the cwd and resolvePluginsRelativeTo defaults when
	// the raw record does not carry a cwd of its own.
	Cwd string
}

// Validate is the package-level shorthand using ambient working-directory
// resolution.
func Validate(raw map[string]any) (*Options, error) {
	var v Validator
	return v.Validate(raw)
}

// Validate checks every recognized field's type, applies documented
// defaults, and reshapes plugin references to bare identifiers. Unknown
// fields fail before any per-field check. The first violated type rule, in
// recognizedOptions order, aborts validation.
func (v *Validator) Validate(raw map[string]any) (*Options, error) {
	if unknown := unknownOptions(raw); len(unknown) > 0 {
		return nil, unknownOptionsError(unknown)
	}

	o := &Options{}
	var err error

	if o.AllowInlineConfig, err = boolOption(raw, "allowInlineConfig", true); err != nil {
		return nil, err
	}
	if o.BaseConfig, err = objectOption(raw, "baseConfig"); err != nil {
		return nil, err
	}
	if o.Cache, err = boolOption(raw, "cache", false); err != nil {
		return nil, err
	}
	if o.CacheLocation, err = stringOption(raw, "cacheLocation", DefaultCacheLocation); err != nil {
		return nil, err
	}
	// configFile is checked on its own nullability only. The upstream
	// implementation gated this on cacheLocation being non-null, which was
	// a defect, not a contract.
	if o.ConfigFile, err = nullableStringOption(raw, "configFile"); err != nil {
		return nil, err
	}
	if o.Cwd, err = stringOption(raw, "cwd", ""); err != nil {
		return nil, err
	}
	if o.Cwd == "" {
		if o.Cwd, err = v.workingDir(); err != nil {
			return nil, err
		}
	}
	if o.Envs, err = stringSliceOption(raw, "envs", []string{}); err != nil {
		return nil, err
	}
	if o.Extensions, err = nullableStringSliceOption(raw, "extensions"); err != nil {
		return nil, err
	}
	if o.Fix, err = boolOption(raw, "fix", false); err != nil {
		return nil, err
	}
	if o.FixTypes, err = stringSliceOption(raw, "fixTypes", DefaultFixTypes()); err != nil {
		return nil, err
	}
	if o.Globals, err = stringSliceOption(raw, "globals", []string{}); err != nil {
		return nil, err
	}
	if o.GlobInputPaths, err = boolOption(raw, "globInputPaths", true); err != nil {
		return nil, err
	}
	if o.Ignore, err = boolOption(raw, "ignore", true); err != nil {
		return nil, err
	}
	if o.IgnorePath, err = nullableStringOption(raw, "ignorePath"); err != nil {
		return nil, err
	}
	if o.IgnorePattern, err = stringOrSliceOption(raw, "ignorePattern"); err != nil {
		return nil, err
	}
	if o.Parser, err = stringOption(raw, "parser", DefaultParser); err != nil {
		return nil, err
	}
	if o.ParserOptions, err = objectOption(raw, "parserOptions"); err != nil {
		return nil, err
	}
	if o.Plugins, err = pluginsOption(raw); err != nil {
		return nil, err
	}
	if o.ReportUnusedDisableDirectives, err = boolOption(raw, "reportUnusedDisableDirectives", false); err != nil {
		return nil, err
	}
	if o.ResolvePluginsRelativeTo, err = stringOption(raw, "resolvePluginsRelativeTo", o.Cwd); err != nil {
		return nil, err
	}
	if o.RulePaths, err = stringSliceOption(raw, "rulePaths", []string{}); err != nil {
		return nil, err
	}
	if o.Rules, err = objectOption(raw, "rules"); err != nil {
		return nil, err
	}
	if o.UseEslintrc, err = boolOption(raw, "useEslintrc", true); err != nil {
		return nil, err
	}

	return o, nil
}

// workingDir resolves the injected or ambient working directory. The
// ambient read happens at most once per Validate call; the result is frozen
// into the record.
func (v *Validator) workingDir() (string, error) {
	if v.Cwd != "" {
		return v.Cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return cwd, nil
}

// unknownOptions returns the set-difference between the raw record's keys
// and the recognized set. Go maps are unordered, so the result is sorted
// for deterministic messages.
func unknownOptions(raw map[string]any) []string {
	var unknown []string
	for name := range raw {
		if !recognizedSet[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func unknownOptionsError(unknown []string) error {
	var b strings.Builder
	for _, name := range unknown {
		if name == legacyCacheFileOption {
			b.WriteString("cacheFile has been removed, use cacheLocation instead; ")
			break
		}
	}
	b.WriteString("unknown options: ")
	b.WriteString(strings.Join(unknown, ", "))
	return fmt.Errorf("%s", b.String())
}

func typeError(name, want string, got any) error {
	return fmt.Errorf("option %s: must be %s, got %T", name, want, got)
}

func boolOption(raw map[string]any, name string, def bool) (bool, error) {
	v, ok := raw[name]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeError(name, "a boolean", v)
	}
	return b, nil
}

func stringOption(raw map[string]any, name, def string) (string, error) {
	v, ok := raw[name]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(name, "a string", v)
	}
	return s, nil
}

// nullableStringOption accepts a string or an explicit null; both absence
// and null normalize to "".
func nullableStringOption(raw map[string]any, name string) (string, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(name, "a string or null", v)
	}
	return s, nil
}

func stringSliceOption(raw map[string]any, name string, def []string) ([]string, error) {
	v, ok := raw[name]
	if !ok {
		return def, nil
	}
	out, ok := toStringSlice(v)
	if !ok {
		return nil, typeError(name, "an array of strings", v)
	}
	return out, nil
}

// nullableStringSliceOption accepts an array or an explicit null; both
// absence and null normalize to nil.
func nullableStringSliceOption(raw map[string]any, name string) ([]string, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil, nil
	}
	if s, isSlice := v.([]string); isSlice && s == nil {
		return nil, nil
	}
	out, ok := toStringSlice(v)
	if !ok {
		return nil, typeError(name, "an array of strings or null", v)
	}
	return out, nil
}

// stringOrSliceOption accepts a single pattern string or an array of them.
func stringOrSliceOption(raw map[string]any, name string) ([]string, error) {
	v, ok := raw[name]
	if !ok {
		return []string{}, nil
	}
	if s, isString := v.(string); isString {
		return []string{s}, nil
	}
	out, ok := toStringSlice(v)
	if !ok {
		return nil, typeError(name, "a string or an array of strings", v)
	}
	return out, nil
}

func objectOption(raw map[string]any, name string) (map[string]any, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeError(name, "an object or null", v)
	}
	return m, nil
}

// pluginsOption validates the plugins array and reduces references to bare
// identifiers. This is the only option whose shape changes between the raw
// and normalized forms; inline definitions are registered separately, by
// the construction facade.
func pluginsOption(raw map[string]any) ([]string, error) {
	v, ok := raw["plugins"]
	if !ok {
		return []string{}, nil
	}
	switch v.(type) {
	case []string, []any, []plugin.Ref:
	default:
		return nil, typeError("plugins", "an array", v)
	}
	refs, err := plugin.ParseRefs(v)
	if err != nil {
		return nil, fmt.Errorf("option plugins: %w", err)
	}
	if refs == nil {
		return []string{}, nil
	}
	return plugin.IDs(refs), nil
}

func toStringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return []string{}, true
		}
		return t, true
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
