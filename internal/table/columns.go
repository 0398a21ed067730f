package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dxftools/dxftab/internal/dxf"
)

// ParseColumnSpec parses an explicit column spec of the form
// "name,boundary[,boundary]". A single boundary defines a single-point column
// (xMin == xMax). Boundaries must be numeric; name may be any non-empty text.
func ParseColumnSpec(spec string) (Column, error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Column{}, fmt.Errorf("column spec %q: want name,boundary[,boundary]", spec)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Column{}, fmt.Errorf("column spec %q: empty name", spec)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Column{}, fmt.Errorf("column spec %q: boundary %q is not numeric", spec, strings.TrimSpace(parts[1]))
	}
	hi := lo
	if len(parts) == 3 {
		hi, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return Column{}, fmt.Errorf("column spec %q: boundary %q is not numeric", spec, strings.TrimSpace(parts[2]))
		}
	}
	return Column{Name: name, XMin: lo, XMax: hi}, nil
}

// ParseColumnSpecs parses a list of specs, preserving order. Duplicates are
// allowed; later columns simply never win against an earlier overlapping one.
func ParseColumnSpecs(specs []string) ([]Column, error) {
	cols := make([]Column, 0, len(specs))
	for _, s := range specs {
		c, err := ParseColumnSpec(s)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// AutoColumns derives one single-point column per distinct x observed among
// the given labels, named "x=<value>", sorted ascending. The scan runs over
// the full filtered point set so columns are stable across all input files.
func AutoColumns(labels []dxf.Label) []Column {
	seen := make(map[float64]struct{}, len(labels))
	xs := make([]float64, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l.X]; ok {
			continue
		}
		seen[l.X] = struct{}{}
		xs = append(xs, l.X)
	}
	sort.Float64s(xs)

	cols := make([]Column, 0, len(xs))
	for _, x := range xs {
		cols = append(cols, Column{Name: "x=" + formatCoord(x), XMin: x, XMax: x})
	}
	return cols
}
