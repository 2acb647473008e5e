// Package report turns a loaded codecheck.yml configuration into the
// formatted fragments that compose a CODECHECK certificate. Rendering is the
// whole job: execution of the final document and its typesetting belong to
// the surrounding notebook/pandoc pipeline.
package report

import "codecheck/internal/spec"

// Builder renders certificate fragments from a fixed configuration. All
// operations are stateless transforms of the configuration, so repeated calls
// yield byte-identical output.
type Builder struct {
	cfg        spec.Config
	outputRoot string
}

// New creates a Builder. outputRoot is the directory manifest paths resolve
// against; it is resolved once by the caller and never re-derived.
func New(cfg spec.Config, outputRoot string) *Builder {
	return &Builder{cfg: cfg, outputRoot: outputRoot}
}
