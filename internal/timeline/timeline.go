// Package timeline contient la piste de sous-titres décodée et les recherches
// par temps de lecture partagées par toutes les vues.
//
// Une Track est construite une fois par lien décodé puis remplacée en bloc :
// aucune méthode ne la modifie.
package timeline

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index de segment hors limites")

// Track associe l'identifiant de la vidéo à la suite ordonnée des segments,
// dans l'ordre reçu. Les segments ne sont ni triés ni vérifiés.
type Track struct {
	VideoID  string    `json:"videoId"`
	Segments []Segment `json:"timeline"`
}

// NewTrack copie segs pour que l'appelant ne puisse plus modifier la piste.
func NewTrack(videoID string, segs []Segment) Track {
	cp := make([]Segment, len(segs))
	copy(cp, segs)
	return Track{VideoID: videoID, Segments: cp}
}

func (t Track) Len() int {
	return len(t.Segments)
}

func (t Track) IsEmpty() bool {
	return len(t.Segments) == 0
}

// SegmentAt retourne le segment i, ou ErrIndexOutOfRange.
func (t Track) SegmentAt(i int) (Segment, error) {
	if i < 0 || i >= len(t.Segments) {
		return Segment{}, fmt.Errorf("%w: %d (taille %d)", ErrIndexOutOfRange, i, len(t.Segments))
	}
	return t.Segments[i], nil
}

// FindActiveIndex retourne le segment actif à l'instant sec.
//
// Un segment dont le début vaut exactement sec gagne toujours, sinon le
// premier segment tel que start <= sec < end. ok == false si aucun segment
// ne correspond : l'appelant garde alors l'affichage précédent.
func (t Track) FindActiveIndex(sec float64) (int, bool) {
	rangeMatch := -1
	for i, s := range t.Segments {
		if s.StartTime == sec {
			return i, true
		}
		if rangeMatch < 0 && s.StartTime <= sec && sec < s.EndTime {
			rangeMatch = i
		}
	}
	if rangeMatch >= 0 {
		return rangeMatch, true
	}
	return -1, false
}

// ActiveForOverlay est la recherche utilisée par l'incrustation (sous-titre
// courant) : intervalle semi-ouvert avec priorité au début exact.
func (t Track) ActiveForOverlay(sec float64) (int, bool) {
	return t.FindActiveIndex(sec)
}

// ActiveForListScroll est la recherche utilisée par la liste défilante :
// intervalle strictement ouvert start < sec < end, sans règle de bord.
// Aux bornes exactes elle ne retourne rien, contrairement à ActiveForOverlay.
func (t Track) ActiveForListScroll(sec float64) (int, bool) {
	for i, s := range t.Segments {
		if s.StartTime < sec && sec < s.EndTime {
			return i, true
		}
	}
	return -1, false
}

// Span retourne le premier début et la dernière fin de la piste.
func (t Track) Span() (start, end float64) {
	if len(t.Segments) == 0 {
		return 0, 0
	}
	start = t.Segments[0].StartTime
	for _, s := range t.Segments {
		if s.StartTime < start {
			start = s.StartTime
		}
		if s.EndTime > end {
			end = s.EndTime
		}
	}
	return start, end
}
