package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported : aucun presse-papier utilisable (pas de xclip/xsel, session SSH...).
var ErrUnsupported = errors.New("presse-papier non disponible sur ce système")

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
