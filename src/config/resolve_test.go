package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func resolveFixture(t *testing.T, src, path string) *ConfigData {
	t.Helper()

	var cfg ConfigData
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return ResolveForFile(&cfg, path)
}

func TestResolveForFile_LaterOverrideWins(t *testing.T) {
	src := `
rules:
  no-console: warn
overrides:
  - files: ["**/*.ts"]
    rules:
      no-console: off
  - files: ["**/*.ts"]
    rules:
      no-console: error
`
	resolved := resolveFixture(t, src, "src/app.ts")
	if got := resolved.Rules["no-console"].Severity; got != SeverityError {
		t.Fatalf("no-console = %v, want error (later override wins)", got)
	}
}

func TestResolveForFile_NonMatchingOverrideIgnored(t *testing.T) {
	src := `
rules:
  semi: error
overrides:
  - files: ["**/*.ts"]
    rules:
      semi: off
`
	resolved := resolveFixture(t, src, "src/app.js")
	if got := resolved.Rules["semi"].Severity; got != SeverityError {
		t.Fatalf("semi = %v, want error", got)
	}
}

func TestResolveForFile_ExcludedFilesVeto(t *testing.T) {
	src := `
rules:
  semi: error
overrides:
  - files: ["**/*.js"]
    excludedFiles: ["vendor/**"]
    rules:
      semi: off
`
	resolved := resolveFixture(t, src, "vendor/lib.js")
	if got := resolved.Rules["semi"].Severity; got != SeverityError {
		t.Fatalf("excluded file still overridden: semi = %v", got)
	}

	resolved = resolveFixture(t, src, "src/lib.js")
	if got := resolved.Rules["semi"].Severity; got != SeverityOff {
		t.Fatalf("non-excluded file not overridden: semi = %v", got)
	}
}

func TestResolveForFile_BarePatternMatchesBaseName(t *testing.T) {
	src := `
overrides:
  - files: "*.test.js"
    rules:
      no-console: off
`
	resolved := resolveFixture(t, src, "deep/nested/app.test.js")
	if got, ok := resolved.Rules["no-console"]; !ok || got.Severity != SeverityOff {
		t.Fatalf("bare pattern should match base name: %+v", resolved.Rules)
	}
}

func TestResolveForFile_NestedOverrides(t *testing.T) {
	src := `
rules:
  max-len: error
overrides:
  - files: ["src/**"]
    rules:
      max-len: warn
    overrides:
      - files: "*.spec.ts"
        rules:
          max-len: off
`
	resolved := resolveFixture(t, src, "src/app.spec.ts")
	if got := resolved.Rules["max-len"].Severity; got != SeverityOff {
		t.Fatalf("nested override not applied: max-len = %v", got)
	}

	resolved = resolveFixture(t, src, "src/app.ts")
	if got := resolved.Rules["max-len"].Severity; got != SeverityWarn {
		t.Fatalf("parent override not applied: max-len = %v", got)
	}
}

func TestResolveForFile_MapsMergeKeyWise(t *testing.T) {
	src := `
env:
  browser: true
globals:
  window: readonly
rules:
  semi: error
  no-console: warn
overrides:
  - files: ["**/*.ts"]
    env:
      node: true
    globals:
      process: writable
    rules:
      semi: off
`
	resolved := resolveFixture(t, src, "src/app.ts")

	if !resolved.Env["browser"] || !resolved.Env["node"] {
		t.Fatalf("env not merged key-wise: %v", resolved.Env)
	}
	if resolved.Globals["window"] != GlobalReadonly || resolved.Globals["process"] != GlobalWritable {
		t.Fatalf("globals not merged key-wise: %v", resolved.Globals)
	}
	if resolved.Rules["semi"].Severity != SeverityOff {
		t.Fatalf("semi not overridden")
	}
	if resolved.Rules["no-console"].Severity != SeverityWarn {
		t.Fatalf("untouched rule lost: %v", resolved.Rules)
	}
}

func TestResolveForFile_NormalizesRequiredFields(t *testing.T) {
	resolved := resolveFixture(t, "rules: {semi: error}", "a.js")
	if resolved.ReportUnusedDisableDirectives == nil {
		t.Fatalf("reportUnusedDisableDirectives not normalized")
	}
	if resolved.Overrides != nil {
		t.Fatalf("resolved config should carry no overrides")
	}
}

func TestMatchesFile_SlashPatterns(t *testing.T) {
	ov := OverrideConfig{Files: StringList{"src/**/*.ts"}}
	if !ov.MatchesFile("src/a/b/c.ts") {
		t.Fatalf("doublestar pattern should match nested path")
	}
	if ov.MatchesFile("lib/a.ts") {
		t.Fatalf("pattern should not match outside src")
	}
	if !ov.MatchesFile("./src/a.ts") {
		t.Fatalf("leading ./ should be normalized away")
	}
}
