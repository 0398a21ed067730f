// Package table implements the label tabulation core: coordinate quantization,
// filtering, column resolution, and projection of labels into CSV-ready rows.
package table

// Column is a named inclusive X range. Columns may overlap or repeat; a label
// is assigned to the first column in list order whose range contains its x.
// A column with XMin > XMax is legal and never matches anything.
type Column struct {
	Name string
	XMin float64
	XMax float64
}

// Contains reports whether x lies within the column's inclusive range.
func (c Column) Contains(x float64) bool {
	return x >= c.XMin && x <= c.XMax
}

// Filters holds the optional predicates applied to each label after
// quantization. A nil field means no constraint on that attribute.
type Filters struct {
	XMin  *float64
	XMax  *float64
	YMin  *float64
	YMax  *float64
	Color *int16
	Layer *string
}

// Options configures one tabulation run.
type Options struct {
	// Columns, when non-empty, is used verbatim in the order supplied.
	// Otherwise one single-point column is derived per distinct observed x.
	Columns []Column
	// Step quantizes coordinates before grouping; nil disables quantization.
	// Callers validate Step > 0 at the boundary.
	Step    *float64
	Filters Filters
}

// Table is the projected output: a header row followed by data rows whose
// cells align positionally with the header.
type Table struct {
	Header []string
	Rows   [][]string
}
