package fsutil

import (
	"strings"
	"unicode"
)

const maxNameRunes = 120

// SanitizeFilename réduit un identifiant (id vidéo) à un nom de fichier sûr :
// lettres, chiffres, '-' et '_' sont gardés, le reste devient '_'.
// La casse est conservée : les identifiants vidéo y sont sensibles.
func SanitizeFilename(name string) string {
	var b strings.Builder
	lastUnderscore := false
	n := 0
	for _, r := range name {
		if n == maxNameRunes {
			break
		}
		keep := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
		if !keep {
			if lastUnderscore {
				continue
			}
			r = '_'
		}
		lastUnderscore = r == '_'
		b.WriteRune(r)
		n++
	}

	clean := strings.Trim(b.String(), "_")
	if clean == "" {
		return "untitled"
	}
	return clean
}
