package table

import (
	"sort"

	"github.com/dxftools/dxftab/internal/dxf"
)

type rowKey struct {
	file string
	y    float64
}

// Build runs the full transform: quantize, filter, resolve columns, group by
// (file, y), and project each group onto the columns. The result is fully
// deterministic for a given input and option set.
func Build(labels []dxf.Label, opts Options) Table {
	kept := make([]dxf.Label, 0, len(labels))
	for _, l := range labels {
		l.X, l.Y = opts.normalize(l.X, l.Y)
		if opts.Filters.Match(l) {
			kept = append(kept, l)
		}
	}

	cols := opts.Columns
	if len(cols) == 0 {
		cols = AutoColumns(kept)
	}

	header := make([]string, 0, 2+len(cols))
	header = append(header, "filename", "y")
	for _, c := range cols {
		header = append(header, c.Name)
	}

	buckets := make(map[rowKey]map[float64]string)
	for _, l := range kept {
		k := rowKey{file: l.File, y: l.Y}
		b := buckets[k]
		if b == nil {
			b = make(map[float64]string)
			buckets[k] = b
		}
		// Equal x within one row overwrites: last label wins.
		b[l.X] = l.Value
	}

	keys := make([]rowKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Files ascending; within a file the topmost row (largest y) comes first.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].file != keys[j].file {
			return keys[i].file < keys[j].file
		}
		return keys[i].y > keys[j].y
	})

	var rows [][]string
	for _, k := range keys {
		if row, ok := projectRow(k, buckets[k], cols); ok {
			rows = append(rows, row)
		}
	}
	return Table{Header: header, Rows: rows}
}

// projectRow maps one row bucket onto the column list. Bucket keys are sorted
// so the leftmost matching x wins when a column range holds several values;
// map iteration order would not be deterministic. Rows with no non-empty cell
// are suppressed.
func projectRow(k rowKey, bucket map[float64]string, cols []Column) ([]string, bool) {
	xs := make([]float64, 0, len(bucket))
	for x := range bucket {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	row := make([]string, 0, 2+len(cols))
	row = append(row, k.file, formatCoord(k.y))
	any := false
	for _, c := range cols {
		cell := ""
		for _, x := range xs {
			if c.Contains(x) {
				cell = bucket[x]
				break
			}
		}
		if cell != "" {
			any = true
		}
		row = append(row, cell)
	}
	return row, any
}
