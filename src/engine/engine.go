// Package engine declares the surface lintgate expects from the analysis
// engine. Parsing, rule evaluation, and reporting live outside this module;
// only construction and plugin registration are visible here.
package engine

import (
	"github.com/sofmeright/lintgate/src/options"
	"github.com/sofmeright/lintgate/src/plugin"
)

// Engine is the external analysis collaborator. Inline plugin definitions
// are registered through the embedded Registrar before any analysis runs.
type Engine interface {
	plugin.Registrar
}

// Factory constructs an engine from a normalized options record. The
// record's plugins field is already reduced to bare identifiers.
type Factory func(o *options.Options) (Engine, error)
