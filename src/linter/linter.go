// Package linter is the public construction entry point: it validates raw
// caller options, initializes the analysis engine with the normalized
// record, and registers inline plugin definitions.
package linter

import (
	"io"

	"github.com/sofmeright/lintgate/src/engine"
	"github.com/sofmeright/lintgate/src/options"
	"github.com/sofmeright/lintgate/src/plugin"
)

// Linter owns a fully-constructed engine handle. It is only ever returned
// whole: a failure at any construction step, including plugin registration
// after the engine exists, discards the partially-built engine instead of
// exposing it.
type Linter struct {
	opts *options.Options
	eng  engine.Engine
}

// New validates raw options and constructs the engine. The working
// directory defaults are resolved from ambient process state once, at call
// time; use NewIn to make them explicit.
func New(raw map[string]any, newEngine engine.Factory) (*Linter, error) {
	return NewIn("", raw, newEngine)
}

// NewIn is New with an injected working directory, keeping construction a
// pure function of its inputs.
//
// Construction is three sequential steps with no rollback between them:
// validate, initialize the engine, register inline plugins. Errors from the
// engine propagate unmodified.
func NewIn(cwd string, raw map[string]any, newEngine engine.Factory) (*Linter, error) {
	v := options.Validator{Cwd: cwd}
	o, err := v.Validate(raw)
	if err != nil {
		return nil, err
	}

	eng, err := newEngine(o)
	if err != nil {
		return nil, err
	}

	// Registration walks the raw, pre-normalization entries: the normalized
	// record only carries bare identifiers.
	refs, err := plugin.ParseRefs(raw["plugins"])
	if err != nil {
		discard(eng)
		return nil, err
	}
	if len(refs) > 0 {
		if err := plugin.Register(refs, eng); err != nil {
			discard(eng)
			return nil, err
		}
	}

	return &Linter{opts: o, eng: eng}, nil
}

// Options returns the normalized record the engine was constructed with.
func (l *Linter) Options() *options.Options { return l.opts }

// Engine returns the engine handle. Ownership stays with the caller; this
// package performs no further calls on it.
func (l *Linter) Engine() engine.Engine { return l.eng }

func discard(eng engine.Engine) {
	if c, ok := eng.(io.Closer); ok {
		_ = c.Close()
	}
}
