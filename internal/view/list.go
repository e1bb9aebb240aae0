package view

import (
	"github.com/patrickprogramme/subshare/internal/playback"
)

// DefaultScrollRatio place l'élément surligné au milieu de la zone visible.
const DefaultScrollRatio = 0.5

// List suit l'élément surligné (recherche en intervalle ouvert) et calcule
// le décalage de défilement à partir de la hauteur mesurée de la zone visible.
//
// Le décalage n'est recalculé que lorsque l'index surligné change ou que la
// hauteur de la zone change ; il ne bouge pas quand le surlignage disparaît.
type List struct {
	heights   []int // hauteur de chaque élément, en lignes
	viewport  int
	ratio     float64
	highlight int
	offset    int
}

// NewList crée une liste de n éléments d'une ligne chacun.
func NewList(n int, ratio float64) *List {
	if ratio < 0 || ratio > 1 {
		ratio = DefaultScrollRatio
	}
	h := make([]int, n)
	for i := range h {
		h[i] = 1
	}
	return &List{heights: h, ratio: ratio, highlight: -1}
}

func (l *List) Len() int {
	return len(l.heights)
}

// SetItemHeights remplace les hauteurs (après un changement de largeur qui
// modifie les retours à la ligne). Les valeurs < 1 comptent pour 1.
// Sans changement effectif, le décalage courant est conservé.
func (l *List) SetItemHeights(h []int) {
	if len(h) != len(l.heights) {
		return
	}
	changed := false
	for i, v := range h {
		if v < 1 {
			v = 1
		}
		if l.heights[i] != v {
			l.heights[i] = v
			changed = true
		}
	}
	if changed {
		l.scrollToHighlight()
	}
}

// Resize reçoit la nouvelle hauteur de la zone visible.
func (l *List) Resize(height int) {
	if height < 0 {
		height = 0
	}
	if height == l.viewport {
		return
	}
	l.viewport = height
	l.scrollToHighlight()
}

// Apply met à jour le surlignage ; retourne true si le décalage a été recalculé.
func (l *List) Apply(s playback.Snapshot) bool {
	if !s.ListOK || s.List < 0 || s.List >= len(l.heights) {
		l.highlight = -1
		return false
	}
	if s.List == l.highlight {
		return false
	}
	l.highlight = s.List
	l.scrollToHighlight()
	return true
}

// Highlight retourne l'index surligné.
func (l *List) Highlight() (int, bool) {
	return l.highlight, l.highlight >= 0
}

// Offset retourne la première ligne visible.
func (l *List) Offset() int {
	return l.offset
}

// ItemTop retourne la ligne où commence l'élément i.
func (l *List) ItemTop(i int) int {
	top := 0
	for j := 0; j < i && j < len(l.heights); j++ {
		top += l.heights[j]
	}
	return top
}

func (l *List) totalHeight() int {
	return l.ItemTop(len(l.heights))
}

// ScrollTo place l'élément i à la position configurée, sans le surligner
// (curseur clavier).
func (l *List) ScrollTo(i int) {
	if i < 0 || i >= len(l.heights) {
		return
	}
	l.offset = l.offsetFor(i)
}

func (l *List) scrollToHighlight() {
	if l.highlight < 0 {
		return
	}
	l.offset = l.offsetFor(l.highlight)
}

// offsetFor : haut de l'élément moins ratio * hauteur visible, borné à
// [0, hauteur totale - hauteur visible].
func (l *List) offsetFor(i int) int {
	off := l.ItemTop(i) - int(l.ratio*float64(l.viewport))
	maxOff := l.totalHeight() - l.viewport
	if off > maxOff {
		off = maxOff
	}
	if off < 0 {
		off = 0
	}
	return off
}
