package view

import (
	"strings"

	"github.com/patrickprogramme/subshare/internal/playback"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// Line est une ligne de l'incrustation.
type Line struct {
	Lang model.Lang
	Text string
}

// Overlay affiche le segment actif. Sur un échantillon sans correspondance
// il garde le dernier segment affiché (jamais d'état vide après le premier).
type Overlay struct {
	track   timeline.Track
	index   int
	display Display
	koFirst bool
	ruby    bool
}

// OverlayOptions reprend la partie "style" de la config utile au contenu.
type OverlayOptions struct {
	Display Display
	KoFirst bool // coréen au-dessus du japonais
	Ruby    bool // annotations rendues "漢字(かんじ)"
}

// NewOverlay part du premier segment, ou de rien pour une piste vide.
func NewOverlay(track timeline.Track, opts OverlayOptions) *Overlay {
	o := &Overlay{
		track:   track,
		index:   -1,
		display: opts.Display,
		koFirst: opts.KoFirst,
		ruby:    opts.Ruby,
	}
	if !track.IsEmpty() {
		o.index = 0
	}
	return o
}

// Apply met à jour le segment affiché ; retourne true s'il a changé.
func (o *Overlay) Apply(s playback.Snapshot) bool {
	if s.Active < 0 || s.Active >= o.track.Len() || s.Active == o.index {
		return false
	}
	o.index = s.Active
	return true
}

// Index retourne l'index affiché.
func (o *Overlay) Index() (int, bool) {
	return o.index, o.index >= 0
}

// Segment retourne le segment affiché.
func (o *Overlay) Segment() (timeline.Segment, bool) {
	seg, err := o.track.SegmentAt(o.index)
	if err != nil {
		return timeline.Segment{}, false
	}
	return seg, true
}

func (o *Overlay) Display() Display {
	return o.display
}

func (o *Overlay) SetDisplay(d Display) {
	o.display = d
}

// CycleDisplay passe au mode d'affichage suivant et le retourne.
func (o *Overlay) CycleDisplay() Display {
	o.display = o.display.Next()
	return o.display
}

// Lines retourne les lignes à afficher selon le mode ; une langue sans
// texte ne produit pas de ligne.
func (o *Overlay) Lines() []Line {
	seg, ok := o.Segment()
	if !ok {
		return nil
	}

	var ja, ko []Line
	if o.display.ShowJA() {
		text := seg.JaText()
		if o.ruby {
			text = seg.JaTextWithRuby()
		}
		if text != "" {
			ja = []Line{{Lang: model.LangJA, Text: text}}
		}
	}
	if o.display.ShowKO() && seg.KoText != "" {
		ko = []Line{{Lang: model.LangKO, Text: seg.KoText}}
	}

	if o.koFirst {
		return append(ko, ja...)
	}
	return append(ja, ko...)
}

// Text retourne les lignes jointes par un saut de ligne (copie presse-papier).
func (o *Overlay) Text() string {
	lines := o.Lines()
	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, "\n")
}
