package csvout_test

import (
	"testing"

	"github.com/dxftools/dxftab/internal/csvout"
	"github.com/dxftools/dxftab/internal/table"
)

func TestRender_QuotesFieldsThatNeedIt(t *testing.T) {
	tbl := table.Table{
		Header: []string{"filename", "y", "Desc"},
		Rows: [][]string{
			{"f.dxf", "5", `bolt, M8 "long"`},
			{"f.dxf", "2", ""},
		},
	}
	out, err := csvout.Render(tbl)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "filename,y,Desc\n" +
		"f.dxf,5,\"bolt, M8 \"\"long\"\"\"\n" +
		"f.dxf,2,\n"
	if string(out) != want {
		t.Fatalf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRender_HeaderOnly(t *testing.T) {
	out, err := csvout.Render(table.Table{Header: []string{"filename", "y"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "filename,y\n" {
		t.Fatalf("got %q", out)
	}
}
