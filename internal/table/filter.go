package table

import "github.com/dxftools/dxftab/internal/dxf"

// Match reports whether a quantized label satisfies every present constraint.
// Absent fields pass unconditionally; layer comparison is exact and
// case-sensitive; a color constraint rejects labels without a color index.
func (f Filters) Match(l dxf.Label) bool {
	if f.XMin != nil && l.X < *f.XMin {
		return false
	}
	if f.XMax != nil && l.X > *f.XMax {
		return false
	}
	if f.YMin != nil && l.Y < *f.YMin {
		return false
	}
	if f.YMax != nil && l.Y > *f.YMax {
		return false
	}
	if f.Color != nil && (l.Color == nil || *l.Color != *f.Color) {
		return false
	}
	if f.Layer != nil && l.Layer != *f.Layer {
		return false
	}
	return true
}
