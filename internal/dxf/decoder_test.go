package dxf_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dxftools/dxftab/internal/dxf"
)

const fixture = `0
SECTION
2
HEADER
0
ENDSEC
0
SECTION
2
ENTITIES
0
TEXT
8
PARTS
62
3
10
12.5
20
40
1
Widget
0
LINE
10
0
20
0
0
MTEXT
10
50
20
40
3
Hello
1
World
0
ENDSEC
0
EOF
`

func TestDecode_TextAndMText(t *testing.T) {
	labels, err := dxf.Decode(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d: %+v", len(labels), labels)
	}

	text := labels[0]
	if text.X != 12.5 || text.Y != 40 || text.Value != "Widget" || text.Layer != "PARTS" {
		t.Fatalf("TEXT label = %+v", text)
	}
	if text.Color == nil || *text.Color != 3 {
		t.Fatalf("TEXT color = %v, want 3", text.Color)
	}

	mtext := labels[1]
	if mtext.Value != "HelloWorld" {
		t.Fatalf("MTEXT value = %q, want continuation chunks joined in stream order", mtext.Value)
	}
	if mtext.Color != nil {
		t.Fatalf("MTEXT without a 62 group should have nil color, got %v", *mtext.Color)
	}
}

func TestDecode_IgnoresTextOutsideEntities(t *testing.T) {
	in := "0\nSECTION\n2\nBLOCKS\n0\nTEXT\n10\n1\n20\n2\n1\nnope\n0\nENDSEC\n0\nEOF\n"
	labels, err := dxf.Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(labels) != 0 {
		t.Fatalf("expected no labels from BLOCKS section, got %+v", labels)
	}
}

func TestDecode_MalformedGroupCode(t *testing.T) {
	_, err := dxf.Decode(strings.NewReader("0\nSECTION\n2\nENTITIES\nnot-a-code\nvalue\n"))
	var le *dxf.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if le.Line == 0 {
		t.Fatalf("expected a line number in %v", le)
	}
}

func TestDecode_MalformedCoordinate(t *testing.T) {
	in := "0\nSECTION\n2\nENTITIES\n0\nTEXT\n10\nnot-a-number\n"
	if _, err := dxf.Decode(strings.NewReader(in)); err == nil {
		t.Fatalf("expected error for malformed coordinate")
	}
}

func TestDecode_DanglingGroupCode(t *testing.T) {
	if _, err := dxf.Decode(strings.NewReader("0\nSECTION\n2\nENTITIES\n10\n")); err == nil {
		t.Fatalf("expected error for group code without value line")
	}
}

func TestLoad_SetsFileAndWrapsErrors(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "plan.dxf")
	if err := os.WriteFile(p, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	labels, err := dxf.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, l := range labels {
		if l.File != p {
			t.Fatalf("label file = %q, want %q", l.File, p)
		}
	}

	_, err = dxf.Load(filepath.Join(dir, "missing.dxf"))
	var le *dxf.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for missing file, got %v", err)
	}
	if le.Path == "" {
		t.Fatalf("LoadError should carry the path: %v", le)
	}
}
