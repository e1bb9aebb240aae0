package export

import (
	"fmt"
	"math"
)

// splitMillis découpe sec (arrondi à la milliseconde, négatif -> 0).
func splitMillis(sec float64) (h, m, s, ms int64) {
	if sec < 0 || math.IsNaN(sec) {
		sec = 0
	}
	total := int64(math.Round(sec * 1000))
	ms = total % 1000
	total /= 1000
	s = total % 60
	total /= 60
	m = total % 60
	h = total / 60
	return
}

// SRTTimestamp formate sec en "HH:MM:SS,mmm".
func SRTTimestamp(sec float64) string {
	h, m, s, ms := splitMillis(sec)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// VTTTimestamp formate sec en "HH:MM:SS.mmm".
func VTTTimestamp(sec float64) string {
	h, m, s, ms := splitMillis(sec)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// ShortTimestamp formate sec en "M:SS", ou "H:MM:SS" au-delà d'une heure
// (affichage, lignes de transcript).
func ShortTimestamp(sec float64) string {
	h, m, s, _ := splitMillis(math.Floor(math.Max(sec, 0)))
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
