// Package plugin normalizes caller-supplied plugin references. A reference
// is either a bare identifier resolved by the engine, or an identifier
// paired with an inline definition that must be registered with the engine
// before any analysis occurs.
package plugin

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Definition is an inline plugin bundle: rules, environments, processors,
// and shareable configs made available under the plugin's identifier. The
// bundle contents are opaque to this layer.
type Definition struct {
	Name         string         `yaml:"name,omitempty" json:"name,omitempty"`
	Version      string         `yaml:"version,omitempty" json:"version,omitempty"`
	Rules        map[string]any `yaml:"rules,omitempty" json:"rules,omitempty"`
	Environments map[string]any `yaml:"environments,omitempty" json:"environments,omitempty"`
	Processors   map[string]any `yaml:"processors,omitempty" json:"processors,omitempty"`
	Configs      map[string]any `yaml:"configs,omitempty" json:"configs,omitempty"`
}

// Validate checks the declared version, when present, is valid semver.
func (d *Definition) Validate() error {
	if d == nil || d.Version == "" {
		return nil
	}
	if _, err := semver.NewVersion(d.Version); err != nil {
		return fmt.Errorf("plugin %s: invalid version %q: %w", d.Name, d.Version, err)
	}
	return nil
}

// Registrar is the engine-side registration surface. AddPlugin binds a
// definition to an identifier for subsequent analysis runs.
type Registrar interface {
	AddPlugin(id string, def *Definition) error
}

// Ref is a tagged plugin reference with two shapes: a bare identifier, or
// an identifier carrying an inline definition.
type Ref struct {
	id  string
	def *Definition
}

// ByID builds a reference the engine resolves by identifier alone.
func ByID(id string) Ref {
	return Ref{id: id}
}

// WithDefinition builds a reference carrying an inline definition.
func WithDefinition(id string, def *Definition) Ref {
	return Ref{id: id, def: def}
}

func (r Ref) ID() string { return r.id }

// Definition returns the inline definition, or nil for a bare reference.
func (r Ref) Definition() *Definition { return r.def }

// ParseRefs normalizes a loosely-typed plugin list into tagged references.
// Accepted entry forms: a string identifier, a Ref, or a record with an
// "id" and an optional "definition".
func ParseRefs(v any) ([]Ref, error) {
	if v == nil {
		return nil, nil
	}

	var entries []any
	switch t := v.(type) {
	case []Ref:
		return t, nil
	case []string:
		refs := make([]Ref, len(t))
		for i, id := range t {
			refs[i] = ByID(id)
		}
		return refs, nil
	case []any:
		entries = t
	default:
		return nil, fmt.Errorf("expected a plugin list, got %T", v)
	}

	refs := make([]Ref, 0, len(entries))
	for i, entry := range entries {
		ref, err := parseRef(entry)
		if err != nil {
			return nil, fmt.Errorf("plugins[%d]: %w", i, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseRef(entry any) (Ref, error) {
	switch t := entry.(type) {
	case string:
		return ByID(t), nil
	case Ref:
		return t, nil
	case map[string]any:
		id, ok := t["id"].(string)
		if !ok || id == "" {
			return Ref{}, fmt.Errorf("reference record needs a string id")
		}
		raw, exists := t["definition"]
		if !exists || raw == nil {
			return ByID(id), nil
		}
		def, err := parseDefinition(raw)
		if err != nil {
			return Ref{}, err
		}
		return WithDefinition(id, def), nil
	default:
		return Ref{}, fmt.Errorf("expected a string identifier or a reference record, got %T", entry)
	}
}

func parseDefinition(raw any) (*Definition, error) {
	switch t := raw.(type) {
	case *Definition:
		return t, nil
	case Definition:
		return &t, nil
	case map[string]any:
		def := &Definition{}
		if s, ok := t["name"].(string); ok {
			def.Name = s
		}
		if s, ok := t["version"].(string); ok {
			def.Version = s
		}
		if m, ok := t["rules"].(map[string]any); ok {
			def.Rules = m
		}
		if m, ok := t["environments"].(map[string]any); ok {
			def.Environments = m
		}
		if m, ok := t["processors"].(map[string]any); ok {
			def.Processors = m
		}
		if m, ok := t["configs"].(map[string]any); ok {
			def.Configs = m
		}
		return def, nil
	default:
		return nil, fmt.Errorf("definition must be a record, got %T", raw)
	}
}

// IDs reduces references to the bare identifier list carried by the
// engine-options record. Duplicates are kept; the engine's own precedence
// applies (last registration wins).
func IDs(refs []Ref) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.id
	}
	return ids
}

// Register issues a registration call, in input order, for every reference
// carrying an inline definition. When the same identifier is registered
// twice, the later call wins.
func Register(refs []Ref, reg Registrar) error {
	for _, r := range refs {
		if r.def == nil {
			continue
		}
		if err := r.def.Validate(); err != nil {
			return err
		}
		if err := reg.AddPlugin(r.id, r.def); err != nil {
			return err
		}
	}
	return nil
}
