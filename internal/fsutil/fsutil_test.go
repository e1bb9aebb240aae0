package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"abc-_XYZ", "abc-_XYZ"},
		{"a:b", "a_b"},
		{"a/b\\c", "a_b_c"},
		{"  spaced   out  ", "spaced_out"},
		{"dots...", "dots"},
		{"ビデオ#1", "ビデオ_1"},
		{"", "untitled"},
		{"???", "untitled"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveAtomicCollision(t *testing.T) {
	dir := t.TempDir()

	p1, err := SaveAtomic(dir, "CAPTION_x", ".srt", []byte("one"), false)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p1) != "CAPTION_x.srt" {
		t.Errorf("first path = %s", p1)
	}

	p2, err := SaveAtomic(dir, "CAPTION_x", ".srt", []byte("two"), false)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p2) != "CAPTION_x_1.srt" {
		t.Errorf("second path = %s, want suffix _1", p2)
	}

	p3, err := SaveAtomic(dir, "CAPTION_x", ".srt", []byte("three"), true)
	if err != nil {
		t.Fatal(err)
	}
	if p3 != p1 {
		t.Errorf("overwrite should reuse %s, got %s", p1, p3)
	}
	data, _ := os.ReadFile(p1)
	if string(data) != "three" {
		t.Errorf("content = %q", data)
	}

	if _, err := SaveAtomic(dir, "", ".srt", nil, true); err == nil {
		t.Error("empty baseName should fail")
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "file.txt")
	if err := WriteFileAtomic(dest, []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "ok" {
		t.Fatalf("read back: %q, %v", data, err)
	}
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %d entries", len(entries))
	}
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()
	empty, err := IsDirEmpty(dir)
	if err != nil || !empty {
		t.Fatalf("new temp dir: empty=%v err=%v", empty, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if empty, _ := IsDirEmpty(dir); empty {
		t.Error("dir with a file reported empty")
	}
}
