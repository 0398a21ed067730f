// Package dxf extracts positioned text labels from ASCII DXF drawings.
//
// It is deliberately not a general DXF reader: only TEXT and MTEXT entities in
// the ENTITIES section are decoded, and only the group codes the tabulation
// pipeline consumes (insertion point, text value, layer, color index).
package dxf

import "fmt"

// Label is one positioned text entity extracted from a drawing.
type Label struct {
	File  string
	X     float64
	Y     float64
	Value string
	Color *int16 // ACI color index; nil when the entity carries no 62 group
	Layer string
}

// LoadError indicates a drawing file could not be decoded. It aborts the whole
// run; partial output with a file's labels silently missing is worse than an
// explicit failure.
type LoadError struct {
	Path string
	Line int // 1-based line in the file, 0 when not line-specific
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
