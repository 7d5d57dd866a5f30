// Package options validates and defaults the loosely-typed option records
// callers hand to the construction entry point. Every public entry point is
// gated by this normalization: a raw record either becomes a fully-typed
// Options value or construction fails before the engine is touched.
package options

// Defaults that do not depend on the working directory.
const (
	DefaultCacheLocation = ".lintgatecache"
	DefaultParser        = "espree"
)

// DefaultFixTypes returns the fix categories applied when the caller does
// not narrow them. Order is part of the contract.
func DefaultFixTypes() []string {
	return []string{"problem", "suggestion", "layout"}
}

// Options is the normalized record consumed by the engine constructor. All
// defaults are applied and all types verified; the plugins field is reduced
// to bare identifiers.
type Options struct {
	AllowInlineConfig             bool           `yaml:"allowInlineConfig"`
	BaseConfig                    map[string]any `yaml:"baseConfig,omitempty"`
	Cache                         bool           `yaml:"cache"`
	CacheLocation                 string         `yaml:"cacheLocation"`
	ConfigFile                    string         `yaml:"configFile,omitempty"`
	Cwd                           string         `yaml:"cwd"`
	Envs                          []string       `yaml:"envs"`
	Extensions                    []string       `yaml:"extensions,omitempty"`
	Fix                           bool           `yaml:"fix"`
	FixTypes                      []string       `yaml:"fixTypes"`
	Globals                       []string       `yaml:"globals"`
	GlobInputPaths                bool           `yaml:"globInputPaths"`
	Ignore                        bool           `yaml:"ignore"`
	IgnorePath                    string         `yaml:"ignorePath,omitempty"`
	IgnorePattern                 []string       `yaml:"ignorePattern"`
	Parser                        string         `yaml:"parser"`
	ParserOptions                 map[string]any `yaml:"parserOptions,omitempty"`
	Plugins                       []string       `yaml:"plugins"`
	ReportUnusedDisableDirectives bool           `yaml:"reportUnusedDisableDirectives"`
	ResolvePluginsRelativeTo      string         `yaml:"resolvePluginsRelativeTo"`
	RulePaths                     []string       `yaml:"rulePaths"`
	Rules                         map[string]any `yaml:"rules,omitempty"`
	UseEslintrc                   bool           `yaml:"useEslintrc"`
}

// AsRaw converts a normalized record back into the loose wire form. A
// normalized record is a fixed point: validating AsRaw output reproduces
// the record exactly.
func (o *Options) AsRaw() map[string]any {
	return map[string]any{
		"allowInlineConfig":             o.AllowInlineConfig,
		"baseConfig":                    o.BaseConfig,
		"cache":                         o.Cache,
		"cacheLocation":                 o.CacheLocation,
		"configFile":                    o.ConfigFile,
		"cwd":                           o.Cwd,
		"envs":                          o.Envs,
		"extensions":                    o.Extensions,
		"fix":                           o.Fix,
		"fixTypes":                      o.FixTypes,
		"globals":                       o.Globals,
		"globInputPaths":                o.GlobInputPaths,
		"ignore":                        o.Ignore,
		"ignorePath":                    o.IgnorePath,
		"ignorePattern":                 o.IgnorePattern,
		"parser":                        o.Parser,
		"parserOptions":                 o.ParserOptions,
		"plugins":                       o.Plugins,
		"reportUnusedDisableDirectives": o.ReportUnusedDisableDirectives,
		"resolvePluginsRelativeTo":      o.ResolvePluginsRelativeTo,
		"rulePaths":                     o.RulePaths,
		"rules":                         o.Rules,
		"useEslintrc":                   o.UseEslintrc,
	}
}
