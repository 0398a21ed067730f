package utils_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dxftools/dxftab/internal/utils"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.dxf", "b.dxf", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	got := utils.ExpandGlobs([]string{
		filepath.Join(dir, "*.dxf"),
		filepath.Join(dir, "a.dxf"), // duplicate of the glob match
		filepath.Join(dir, "c.txt"), // literal path, no glob match needed
		filepath.Join(dir, "missing-*.dxf"),
	})
	want := []string{
		filepath.Join(dir, "a.dxf"),
		filepath.Join(dir, "b.dxf"),
		filepath.Join(dir, "c.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.csv")
	if err := utils.SafeWriteFile(p, []byte("data")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "data" {
		t.Fatalf("read back: %q, %v", b, err)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}
