package render

import (
	"strings"

	"github.com/patrickprogramme/subshare/internal/export"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

const baseYtURL = "https://www.youtube.com/watch?v="

var baseTags = []string{"subshare", "captions"}

// Cue est une ligne de la note : texte principal et traduction en citation.
type Cue struct {
	Start     float64
	Primary   string
	Secondary string
}

// TranscriptData contient les données passées au template.
type TranscriptData struct {
	VideoID  string
	URL      string
	Title    string
	Lang     model.Lang
	Duration string
	Tags     []string
	Cues     []Cue
}

// NewTranscriptData construit les données de la note. Le japonais garde ses
// annotations entre parenthèses ; les segments sans texte sont ignorés.
func NewTranscriptData(track timeline.Track, lang model.Lang) TranscriptData {
	_, end := track.Span()
	d := TranscriptData{
		VideoID:  track.VideoID,
		Title:    "Sous-titres " + track.VideoID,
		Lang:     lang,
		Duration: export.ShortTimestamp(end),
		Tags:     append(append([]string(nil), baseTags...), lang.String()),
		Cues:     make([]Cue, 0, track.Len()),
	}
	if track.VideoID != "" {
		d.URL = baseYtURL + track.VideoID
	}

	for _, seg := range track.Segments {
		ja := strings.TrimSpace(seg.JaTextWithRuby())
		ko := strings.TrimSpace(seg.KoText)
		c := Cue{Start: seg.StartTime, Primary: ja, Secondary: ko}
		if lang == model.LangKO {
			c.Primary, c.Secondary = ko, ja
		}
		if c.Primary == "" && c.Secondary == "" {
			continue
		}
		d.Cues = append(d.Cues, c)
	}
	return d
}
