// Package view contient les deux consommateurs de playback.Sync :
// l'incrustation (sous-titre courant) et la liste défilante.
// Aucun rendu ici, seulement l'état que le terminal ou le serveur affichent.
package view

import (
	"fmt"
	"strings"
)

// Display choisit les langues affichées par l'incrustation.
type Display int

const (
	DisplayBoth Display = iota
	DisplayJA
	DisplayKO
)

func (d Display) String() string {
	switch d {
	case DisplayJA:
		return "ja"
	case DisplayKO:
		return "ko"
	default:
		return "both"
	}
}

// Next passe au mode suivant : both -> ja -> ko -> both.
func (d Display) Next() Display {
	return (d + 1) % 3
}

func (d Display) ShowJA() bool { return d != DisplayKO }
func (d Display) ShowKO() bool { return d != DisplayJA }

// ParseDisplay accepte "both", "ja", "ko" ("" vaut both).
func ParseDisplay(s string) (Display, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return DisplayBoth, nil
	case "ja", "jp":
		return DisplayJA, nil
	case "ko", "kr":
		return DisplayKO, nil
	default:
		return DisplayBoth, fmt.Errorf("display inconnu: %q", s)
	}
}
