package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/patrickprogramme/subshare/internal/assets"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

func strPtr(s string) *string { return &s }

func sampleTrack() timeline.Track {
	return timeline.NewTrack("vid42", []timeline.Segment{
		{ID: "0", StartTime: 0, EndTime: 2, JaRuns: []timeline.Run{{Text: "漢", Ruby: strPtr("かん")}, {Text: "字", Offset: 1}}, KoText: "한자"},
		{ID: "1", StartTime: 2, EndTime: 4, JaRuns: []timeline.Run{{Text: "い"}}},
		{ID: "2", StartTime: 4, EndTime: 5, JaRuns: timeline.EmptyRuns()},
	})
}

func TestEmbeddedTranscript(t *testing.T) {
	out, err := EmbeddedRenderer().Transcript(sampleTrack(), model.LangJA)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		`video: "https://www.youtube.com/watch?v=vid42"`,
		`captions: 2`,
		`duration: "0:05"`,
		"tags:\n  - \"subshare\"\n  - \"captions\"\n  - \"ja\"\n",
		"# Sous-titres vid42\n",
		"- [0:00](https://www.youtube.com/watch?v=vid42&t=0s) 漢(かん)字\n  > 한자\n",
		"- [0:02](https://www.youtube.com/watch?v=vid42&t=2s) い\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n---\n%s", want, got)
		}
	}
	if strings.Contains(got, "t=4s") {
		t.Error("segment without text must be skipped")
	}
}

func TestTranscriptDataKorean(t *testing.T) {
	d := NewTranscriptData(sampleTrack(), model.LangKO)
	if len(d.Cues) != 2 {
		t.Fatalf("cues = %d, want 2", len(d.Cues))
	}
	if d.Cues[0].Primary != "한자" || d.Cues[0].Secondary != "漢(かん)字" {
		t.Errorf("ko cue 0 = %+v", d.Cues[0])
	}
	if d.Cues[1].Primary != "" || d.Cues[1].Secondary != "い" {
		t.Errorf("ko cue 1 = %+v", d.Cues[1])
	}
	if d.Tags[len(d.Tags)-1] != "ko" || len(baseTags) != 2 {
		t.Errorf("tags = %v (base %v)", d.Tags, baseTags)
	}
}

func TestRendererFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.md.tmpl": {Data: []byte(`{{ .VideoID }}:{{ len .Cues }}`)},
	}
	r, err := NewRendererFromFS(fsys, []string{"*.tmpl"})
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render("custom.md.tmpl", NewTranscriptData(sampleTrack(), model.LangJA))
	if err != nil || string(out) != "vid42:2" {
		t.Errorf("Render = %q, %v", out, err)
	}
	if _, err := r.Render("missing.tmpl", nil); err == nil {
		t.Error("unknown template should fail")
	}

	if _, err := NewRendererFromFS(nil, []string{"x"}); err == nil {
		t.Error("nil fsys should fail")
	}
	if _, err := NewRendererFromFS(fsys, nil); err == nil {
		t.Error("no pattern should fail")
	}

	bad, _ := NewRendererFromFS(fstest.MapFS{"bad.tmpl": {Data: []byte("{{ .X ")}}, []string{"*.tmpl"})
	if err := bad.ParseNow(); err == nil {
		t.Error("invalid template should fail to parse")
	}
}

func TestDefaultRendererReadsTemplatesNextToBinary(t *testing.T) {
	dir := t.TempDir()
	tplDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := []byte("perso {{ .VideoID }}")
	if err := os.WriteFile(filepath.Join(tplDir, assets.TranscriptTemplate), body, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := DefaultRenderer(filepath.Join(dir, "subshare"))
	if err != nil {
		t.Fatalf("DefaultRenderer: %v", err)
	}
	out, err := r.Transcript(sampleTrack(), model.LangJA)
	if err != nil || string(out) != "perso vid42" {
		t.Errorf("Transcript = %q, %v", out, err)
	}
}

func TestHelpers(t *testing.T) {
	if got := yamlListBlock(nil); got != " []" {
		t.Errorf("yamlListBlock(nil) = %q", got)
	}
	if got := quoteBlockPure("a\nb\n"); got != "> a\n> b" {
		t.Errorf("quoteBlockPure = %q", got)
	}
	if got := indentPure(2, "a\nb"); got != "  a\n  b" {
		t.Errorf("indentPure = %q", got)
	}
	if got := cueLinkPure(75.9, ""); got != "1:15" {
		t.Errorf("cueLinkPure without url = %q", got)
	}
	if got := cueLinkPure(75.9, "https://x.test/v"); got != "[1:15](https://x.test/v?t=75s)" {
		t.Errorf("cueLinkPure = %q", got)
	}
}
