package options

import (
	"reflect"
	"strings"
	"testing"
)

func mustValidate(t *testing.T, raw map[string]any) *Options {
	t.Helper()

	v := Validator{Cwd: "/work"}
	o, err := v.Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return o
}

func TestValidate_EmptyRecordDefaults(t *testing.T) {
	o := mustValidate(t, map[string]any{})

	if !reflect.DeepEqual(o.FixTypes, []string{"problem", "suggestion", "layout"}) {
		t.Fatalf("fixTypes = %v", o.FixTypes)
	}
	if o.Parser != "espree" {
		t.Fatalf("parser = %q", o.Parser)
	}
	if o.Cwd != "/work" {
		t.Fatalf("cwd = %q", o.Cwd)
	}
	if o.ResolvePluginsRelativeTo != "/work" {
		t.Fatalf("resolvePluginsRelativeTo = %q", o.ResolvePluginsRelativeTo)
	}
	if o.CacheLocation != DefaultCacheLocation {
		t.Fatalf("cacheLocation = %q", o.CacheLocation)
	}

	// Boolean defaults per the documented table.
	if !o.AllowInlineConfig || o.Cache || o.Fix || !o.GlobInputPaths ||
		!o.Ignore || o.ReportUnusedDisableDirectives || !o.UseEslintrc {
		t.Fatalf("boolean defaults wrong: %+v", o)
	}

	if o.Envs == nil || len(o.Envs) != 0 {
		t.Fatalf("envs = %v", o.Envs)
	}
	if o.Extensions != nil {
		t.Fatalf("extensions = %v", o.Extensions)
	}
	if o.BaseConfig != nil || o.Rules != nil || o.ParserOptions != nil {
		t.Fatalf("nullable objects not nil: %+v", o)
	}
	if o.ConfigFile != "" || o.IgnorePath != "" {
		t.Fatalf("nullable strings not empty: %+v", o)
	}
}

func TestValidate_UnknownOptions(t *testing.T) {
	v := Validator{Cwd: "/work"}

	_, err := v.Validate(map[string]any{
		"cache":    true,
		"zebra":    1,
		"aardvark": 2,
	})
	if err == nil {
		t.Fatalf("expected unknown-option error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown options: aardvark, zebra") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestValidate_LegacyCacheFileHint(t *testing.T) {
	v := Validator{Cwd: "/work"}

	_, err := v.Validate(map[string]any{"cacheFile": ".cache"})
	if err == nil {
		t.Fatalf("expected unknown-option error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "cacheFile has been removed, use cacheLocation instead") {
		t.Fatalf("missing rename hint: %q", msg)
	}
	if !strings.Contains(msg, "unknown options: cacheFile") {
		t.Fatalf("missing unknown list: %q", msg)
	}
	// Hint comes before the list.
	if strings.Index(msg, "cacheLocation") > strings.Index(msg, "unknown options") {
		t.Fatalf("hint not prepended: %q", msg)
	}
}

func TestValidate_TypeMismatchPerField(t *testing.T) {
	cases := map[string]any{
		"allowInlineConfig":             "yes",
		"baseConfig":                    5,
		"cache":                         "yes",
		"cacheLocation":                 7,
		"configFile":                    5,
		"cwd":                           1,
		"envs":                          "x",
		"extensions":                    "js",
		"fix":                           "true",
		"fixTypes":                      "problem",
		"globals":                       "foo",
		"globInputPaths":                0,
		"ignore":                        "no",
		"ignorePath":                    3,
		"ignorePattern":                 9,
		"parser":                        2,
		"parserOptions":                 "opts",
		"plugins":                       "p",
		"reportUnusedDisableDirectives": "off",
		"resolvePluginsRelativeTo":      4,
		"rulePaths":                     "lib",
		"rules":                         5,
		"useEslintrc":                   "maybe",
	}

	v := Validator{Cwd: "/work"}
	for name, bad := range cases {
		_, err := v.Validate(map[string]any{name: bad})
		if err == nil {
			t.Fatalf("%s: expected type-mismatch error for %v", name, bad)
		}
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("%s: error does not name the field: %q", name, err)
		}
	}
}

func TestValidate_PluginsReducedToIdentifiers(t *testing.T) {
	o := mustValidate(t, map[string]any{
		"plugins": []any{
			"foo",
			map[string]any{"id": "bar", "definition": map[string]any{}},
		},
	})
	if !reflect.DeepEqual(o.Plugins, []string{"foo", "bar"}) {
		t.Fatalf("plugins = %v", o.Plugins)
	}
}

func TestValidate_IgnorePatternStringOrArray(t *testing.T) {
	o := mustValidate(t, map[string]any{"ignorePattern": "dist/**"})
	if !reflect.DeepEqual(o.IgnorePattern, []string{"dist/**"}) {
		t.Fatalf("ignorePattern = %v", o.IgnorePattern)
	}

	o = mustValidate(t, map[string]any{"ignorePattern": []string{"dist/**", "vendor/**"}})
	if !reflect.DeepEqual(o.IgnorePattern, []string{"dist/**", "vendor/**"}) {
		t.Fatalf("ignorePattern = %v", o.IgnorePattern)
	}
}

func TestValidate_NullableFields(t *testing.T) {
	o := mustValidate(t, map[string]any{
		"configFile": nil,
		"ignorePath": nil,
		"extensions": nil,
		"baseConfig": nil,
		"rules":      nil,
	})
	if o.ConfigFile != "" || o.IgnorePath != "" || o.Extensions != nil ||
		o.BaseConfig != nil || o.Rules != nil {
		t.Fatalf("explicit nulls not normalized: %+v", o)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	raw := map[string]any{
		"allowInlineConfig": false,
		"baseConfig":        map[string]any{"rules": map[string]any{"semi": "error"}},
		"cache":             true,
		"cacheLocation":     ".cache/lint",
		"configFile":        "lint.config.yml",
		"cwd":               "/project",
		"envs":              []string{"browser", "node"},
		"extensions":        []string{".js", ".jsx"},
		"fix":               true,
		"fixTypes":          []string{"problem"},
		"globals":           []string{"describe", "it"},
		"globInputPaths":    false,
		"ignore":            false,
		"ignorePath":        ".lintignore",
		"ignorePattern":     []string{"dist/**"},
		"parser":            "custom-parser",
		"parserOptions":     map[string]any{"ecmaVersion": 2022},
		"plugins":           []any{"react", map[string]any{"id": "local", "definition": map[string]any{}}},
		"reportUnusedDisableDirectives": true,
		"resolvePluginsRelativeTo":      "/project/tools",
		"rulePaths":                     []string{"./rules"},
		"rules":                         map[string]any{"semi": "off"},
		"useEslintrc":                   false,
	}

	v := Validator{Cwd: "/work"}
	first, err := v.Validate(raw)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := v.Validate(first.AsRaw())
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	// cache precedes rules in enumeration order.
	v := Validator{Cwd: "/work"}
	_, err := v.Validate(map[string]any{
		"cache": "yes",
		"rules": 5,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "cache") || strings.Contains(err.Error(), "rules") {
		t.Fatalf("expected the cache violation first: %q", err)
	}
}
