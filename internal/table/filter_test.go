package table_test

import (
	"testing"

	"github.com/dxftools/dxftab/internal/dxf"
	"github.com/dxftools/dxftab/internal/table"
)

func fp(v float64) *float64 { return &v }
func cp(v int16) *int16     { return &v }
func sp(v string) *string   { return &v }

func TestFilters_AllPresentAndSatisfied(t *testing.T) {
	color := int16(3)
	l := dxf.Label{X: 50, Y: 20, Color: &color, Layer: "PARTS"}
	f := table.Filters{
		XMin:  fp(0),
		XMax:  fp(100),
		YMin:  fp(0),
		YMax:  fp(40),
		Color: cp(3),
		Layer: sp("PARTS"),
	}
	if !f.Match(l) {
		t.Fatalf("label satisfying every constraint was rejected")
	}
}

func TestFilters_AbsentMeansNoConstraint(t *testing.T) {
	l := dxf.Label{X: -1000, Y: 1e9, Layer: ""}
	if !(table.Filters{}).Match(l) {
		t.Fatalf("empty filter rejected a label")
	}
}

func TestFilters_EachClauseRejects(t *testing.T) {
	l := dxf.Label{X: 50, Y: 20, Layer: "PARTS"}
	cases := map[string]table.Filters{
		"xmin":  {XMin: fp(51)},
		"xmax":  {XMax: fp(49)},
		"ymin":  {YMin: fp(21)},
		"ymax":  {YMax: fp(19)},
		"layer": {Layer: sp("parts")}, // case-sensitive
		"color": {Color: cp(1)},       // label has no color index
	}
	for name, f := range cases {
		if f.Match(l) {
			t.Fatalf("%s constraint did not reject", name)
		}
	}
}

func TestFilters_AddingConstraintsNeverAdmitsMore(t *testing.T) {
	l := dxf.Label{X: 50, Y: 20, Layer: "PARTS"}
	base := table.Filters{XMin: fp(0)}
	if !base.Match(l) {
		t.Fatalf("base filter rejected the label")
	}
	narrowed := base
	narrowed.YMax = fp(10)
	if narrowed.Match(l) {
		t.Fatalf("narrowed filter admitted a label the extra clause excludes")
	}
}
