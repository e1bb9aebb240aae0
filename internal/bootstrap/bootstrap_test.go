package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

var testAssets = fstest.MapFS{
	"example.yaml":        {Data: []byte("output_dir: out\n")},
	"templates/a.md.tmpl": {Data: []byte("A")},
	"templates/b.md.tmpl": {Data: []byte("B")},
}

func TestEnsureConfigPresent(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "conf", "subshare.yaml")

	created, err := EnsureConfigPresent(dst, testAssets, "example.yaml")
	if err != nil || !created {
		t.Fatalf("first call: created=%v err=%v", created, err)
	}
	if err := os.WriteFile(dst, []byte("edited"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err = EnsureConfigPresent(dst, testAssets, "example.yaml")
	if err != nil || created {
		t.Fatalf("second call: created=%v err=%v", created, err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "edited" {
		t.Errorf("existing config was overwritten: %q", data)
	}

	if _, err := EnsureConfigPresent(filepath.Join(t.TempDir(), "x.yaml"), testAssets, "missing.yaml"); err == nil {
		t.Error("missing asset should fail")
	}
}

func TestEnsureTemplatesPresent(t *testing.T) {
	tplDir := filepath.Join(t.TempDir(), "templates")
	src := []string{"templates/a.md.tmpl", "templates/b.md.tmpl"}

	written, err := EnsureTemplatesPresent(tplDir, testAssets, src)
	if err != nil || len(written) != 2 {
		t.Fatalf("fresh dir: written=%v err=%v", written, err)
	}

	// un template modifié est conservé, un template supprimé est restauré
	if err := os.WriteFile(filepath.Join(tplDir, "a.md.tmpl"), []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(tplDir, "b.md.tmpl")); err != nil {
		t.Fatal(err)
	}
	written, err = EnsureTemplatesPresent(tplDir, testAssets, src)
	if err != nil || len(written) != 1 || filepath.Base(written[0]) != "b.md.tmpl" {
		t.Fatalf("second pass: written=%v err=%v", written, err)
	}
	if data, _ := os.ReadFile(filepath.Join(tplDir, "a.md.tmpl")); string(data) != "custom" {
		t.Errorf("custom template overwritten: %q", data)
	}

	if _, err := EnsureTemplatesPresent(filepath.Join(t.TempDir(), "no", "such", "templates"), testAssets, src); err == nil {
		t.Error("missing parent should fail")
	}
}
