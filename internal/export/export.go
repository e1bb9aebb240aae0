// Package export convertit une piste complète en fichier de sous-titres,
// indépendamment de l'état de lecture.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/subshare/internal/fsutil"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// FilenamePrefix précède l'identifiant vidéo dans les noms de fichiers.
const FilenamePrefix = "CAPTION_"

var ErrNoMarkdown = errors.New("aucun moteur de rendu markdown configuré")

// cueText retourne le texte d'un segment pour l'export : fragments japonais
// joints sans annotation, ou le coréen.
func cueText(seg timeline.Segment, lang model.Lang) string {
	return seg.Text(lang)
}

// SRT produit un fichier SubRip : numéro de cue à partir de 0, ligne
// "début --> fin", texte, cues séparées par une ligne vide.
func SRT(track timeline.Track, lang model.Lang) string {
	cues := make([]string, 0, track.Len())
	for i, seg := range track.Segments {
		cues = append(cues, fmt.Sprintf("%d\n%s --> %s\n%s\n",
			i, SRTTimestamp(seg.StartTime), SRTTimestamp(seg.EndTime), cueText(seg, lang)))
	}
	return strings.Join(cues, "\n")
}

// VTT produit un fichier WebVTT, même numérotation que SRT.
func VTT(track timeline.Track, lang model.Lang) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for i, seg := range track.Segments {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("\n")
		b.WriteString(VTTTimestamp(seg.StartTime))
		b.WriteString(" --> ")
		b.WriteString(VTTTimestamp(seg.EndTime))
		b.WriteString("\n")
		b.WriteString(cueText(seg, lang))
		b.WriteString("\n")
	}
	return b.String()
}

// Text produit une ligne par segment non vide : "[M:SS] texte".
func Text(track timeline.Track, lang model.Lang) string {
	var b strings.Builder
	for _, seg := range track.Segments {
		text := strings.TrimSpace(cueText(seg, lang))
		if text == "" {
			continue
		}
		b.WriteString("[")
		b.WriteString(ShortTimestamp(seg.StartTime))
		b.WriteString("] ")
		b.WriteString(strings.ReplaceAll(text, "\n", " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Filename retourne "CAPTION_<videoId>.<ext>".
func Filename(videoID string, format model.Format) string {
	return BaseName(videoID) + format.Extension()
}

// BaseName retourne "CAPTION_<videoId>" sans extension, videoId nettoyé.
func BaseName(videoID string) string {
	return FilenamePrefix + fsutil.SanitizeFilename(videoID)
}

// MarkdownRenderer rend la note Markdown de la piste (voir internal/render).
type MarkdownRenderer interface {
	Transcript(track timeline.Track, lang model.Lang) ([]byte, error)
}

// Exporter regroupe les formats ; Markdown peut être nil si le format md
// n'est pas utilisé.
type Exporter struct {
	Markdown MarkdownRenderer
}

// Render produit le contenu du fichier dans le format demandé.
func (e Exporter) Render(track timeline.Track, lang model.Lang, format model.Format) ([]byte, error) {
	switch format {
	case model.FormatSRT:
		return []byte(SRT(track, lang)), nil
	case model.FormatVTT:
		return []byte(VTT(track, lang)), nil
	case model.FormatTXT:
		return []byte(Text(track, lang)), nil
	case model.FormatMARKDOWN:
		if e.Markdown == nil {
			return nil, ErrNoMarkdown
		}
		return e.Markdown.Transcript(track, lang)
	default:
		return nil, fmt.Errorf("format non supporté: %q", format)
	}
}

// Save écrit le fichier dans outDir ; retourne le chemin final.
// overwrite=false ajoute un suffixe _1, _2... si le fichier existe.
func (e Exporter) Save(outDir string, track timeline.Track, lang model.Lang, format model.Format, overwrite bool) (string, error) {
	content, err := e.Render(track, lang, format)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format, err)
	}
	path, err := fsutil.SaveAtomic(outDir, BaseName(track.VideoID), format.Extension(), content, overwrite)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format, err)
	}
	return path, nil
}
