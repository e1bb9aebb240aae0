package view

import (
	"testing"

	"github.com/patrickprogramme/subshare/internal/playback"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

func strPtr(s string) *string { return &s }

func sampleTrack() timeline.Track {
	return timeline.NewTrack("vid", []timeline.Segment{
		{ID: "0", StartTime: 0, EndTime: 5, JaRuns: []timeline.Run{{Text: "あ"}}, KoText: "가"},
		{ID: "1", StartTime: 5, EndTime: 10, JaRuns: []timeline.Run{{Text: "漢", Ruby: strPtr("かん")}, {Text: "字", Offset: 1}}},
		{ID: "2", StartTime: 12, EndTime: 15, JaRuns: timeline.EmptyRuns(), KoText: "다"},
	})
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		in      string
		want    Display
		wantErr bool
	}{
		{"", DisplayBoth, false},
		{"Both", DisplayBoth, false},
		{" ja ", DisplayJA, false},
		{"kr", DisplayKO, false},
		{"fr", DisplayBoth, true},
	}
	for _, tt := range tests {
		got, err := ParseDisplay(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDisplay(%q) = %v, %v", tt.in, got, err)
		}
	}
	if DisplayKO.Next() != DisplayBoth || DisplayBoth.Next() != DisplayJA {
		t.Error("Next must cycle both -> ja -> ko -> both")
	}
}

func TestOverlayStaleUntilNextHit(t *testing.T) {
	tr := sampleTrack()
	s := playback.NewSync(tr, &nopPlayer{})
	o := NewOverlay(tr, OverlayOptions{})
	s.Subscribe(func(snap playback.Snapshot) { o.Apply(snap) })

	if i, ok := o.Index(); !ok || i != 0 {
		t.Fatalf("initial overlay index = %d, %v", i, ok)
	}

	s.Sample(6)
	if i, _ := o.Index(); i != 1 {
		t.Errorf("after 6s index = %d, want 1", i)
	}
	s.Sample(11) // trou : on garde le segment 1
	if seg, ok := o.Segment(); !ok || seg.ID != "1" {
		t.Errorf("overlay must keep the last segment on a miss, got %+v %v", seg, ok)
	}
	s.Sample(12)
	if i, _ := o.Index(); i != 2 {
		t.Errorf("after 12s index = %d, want 2", i)
	}
}

func TestOverlayLines(t *testing.T) {
	tr := sampleTrack()

	o := NewOverlay(tr, OverlayOptions{Display: DisplayBoth})
	lines := o.Lines()
	if len(lines) != 2 || lines[0] != (Line{model.LangJA, "あ"}) || lines[1] != (Line{model.LangKO, "가"}) {
		t.Errorf("both lines = %+v", lines)
	}

	o = NewOverlay(tr, OverlayOptions{Display: DisplayBoth, KoFirst: true})
	if lines := o.Lines(); lines[0].Lang != model.LangKO {
		t.Errorf("KoFirst not honored: %+v", lines)
	}
	if got := o.Text(); got != "가\nあ" {
		t.Errorf("Text() = %q", got)
	}

	o = NewOverlay(tr, OverlayOptions{Display: DisplayJA, Ruby: true})
	o.Apply(playback.Snapshot{Active: 1})
	if lines := o.Lines(); len(lines) != 1 || lines[0].Text != "漢(かん)字" {
		t.Errorf("ruby lines = %+v", lines)
	}
	// segment 1 n'a pas de coréen
	o.SetDisplay(DisplayKO)
	if lines := o.Lines(); len(lines) != 0 {
		t.Errorf("ko-only on a segment without ko = %+v", lines)
	}
	if o.CycleDisplay() != DisplayBoth {
		t.Error("CycleDisplay from ko should give both")
	}

	empty := NewOverlay(timeline.Track{}, OverlayOptions{})
	if _, ok := empty.Segment(); ok || empty.Lines() != nil {
		t.Error("empty overlay should render nothing")
	}
}

func TestListHighlightAndOffset(t *testing.T) {
	l := NewList(20, 0.5)
	l.Resize(10)

	if l.Apply(playback.Snapshot{List: 12, ListOK: true}) != true {
		t.Fatal("new highlight should scroll")
	}
	// haut de l'élément 12 = 12, moins 0.5*10
	if got := l.Offset(); got != 7 {
		t.Errorf("Offset = %d, want 7", got)
	}
	if l.Apply(playback.Snapshot{List: 12, ListOK: true}) {
		t.Error("same index must not scroll again")
	}

	l.Apply(playback.Snapshot{ListOK: false, List: -1})
	if _, ok := l.Highlight(); ok {
		t.Error("a miss clears the highlight")
	}
	if l.Offset() != 7 {
		t.Errorf("a miss must not move the list, offset = %d", l.Offset())
	}

	l.Apply(playback.Snapshot{List: 1, ListOK: true})
	if l.Offset() != 0 {
		t.Errorf("offset must clamp at 0, got %d", l.Offset())
	}
	l.Apply(playback.Snapshot{List: 19, ListOK: true})
	if l.Offset() != 10 {
		t.Errorf("offset must clamp at total-viewport, got %d", l.Offset())
	}
}

func TestListResizeRecomputesOffset(t *testing.T) {
	l := NewList(20, 0.5)
	l.Resize(10)
	l.Apply(playback.Snapshot{List: 12, ListOK: true})

	l.Resize(4)
	if got := l.Offset(); got != 10 {
		t.Errorf("Offset after resize = %d, want 10", got)
	}
	l.SetItemHeights(func() []int {
		h := make([]int, 20)
		for i := range h {
			h[i] = 2
		}
		return h
	}())
	if got := l.Offset(); got != 22 {
		t.Errorf("Offset with 2-line items = %d, want 22", got)
	}
	if l.ItemTop(3) != 6 {
		t.Errorf("ItemTop(3) = %d", l.ItemTop(3))
	}
}

func TestListIgnoresBadRatio(t *testing.T) {
	l := NewList(10, 3)
	l.Resize(4)
	l.Apply(playback.Snapshot{List: 5, ListOK: true})
	if l.Offset() != 3 {
		t.Errorf("Offset = %d, want 3 (default ratio)", l.Offset())
	}
}

type nopPlayer struct{}

func (nopPlayer) CurrentTime() float64    { return 0 }
func (nopPlayer) Playing() bool           { return false }
func (nopPlayer) Seek(float64, bool)      {}
func (nopPlayer) PlayWindow(_, _ float64) {}
