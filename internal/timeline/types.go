package timeline

import (
	"strings"

	"github.com/patrickprogramme/subshare/pkg/model"
)

// Run est un fragment de texte japonais, éventuellement annoté (furigana).
// Offset est une clé d'identité stable pour le rendu, pas un temps.
type Run struct {
	Text   string  `json:"text"`
	Ruby   *string `json:"ruby"`
	Offset float64 `json:"offset"`
}

// HasRuby indique si le fragment porte une annotation non vide.
func (r Run) HasRuby() bool {
	return r.Ruby != nil && *r.Ruby != ""
}

// Segment représente une ligne de sous-titre bilingue normalisée.
type Segment struct {
	ID        string  `json:"id"`    // position dans la piste, en chaîne
	StartTime float64 `json:"start"` // secondes
	EndTime   float64 `json:"end"`   // secondes
	JaRuns    []Run   `json:"ja"`    // jamais vide
	KoText    string  `json:"ko"`    // "" si absent
}

// JaText concatène le texte des fragments, sans les annotations.
func (s Segment) JaText() string {
	var b strings.Builder
	for _, r := range s.JaRuns {
		b.WriteString(r.Text)
	}
	return b.String()
}

// JaTextWithRuby rend les annotations entre parenthèses : 漢字(かんじ).
func (s Segment) JaTextWithRuby() string {
	var b strings.Builder
	for _, r := range s.JaRuns {
		b.WriteString(r.Text)
		if r.HasRuby() {
			b.WriteByte('(')
			b.WriteString(*r.Ruby)
			b.WriteByte(')')
		}
	}
	return b.String()
}

// Text retourne la ligne dans la langue demandée.
func (s Segment) Text(lang model.Lang) string {
	if lang == model.LangKO {
		return s.KoText
	}
	return s.JaText()
}

// Duration retourne EndTime - StartTime (0 si négatif).
func (s Segment) Duration() float64 {
	if d := s.EndTime - s.StartTime; d > 0 {
		return d
	}
	return 0
}

// EmptyRuns est la valeur par défaut quand la source n'a pas de texte japonais.
func EmptyRuns() []Run {
	return []Run{{Text: "", Ruby: nil, Offset: 0}}
}
