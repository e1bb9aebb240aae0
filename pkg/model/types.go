package model

import (
	"fmt"
	"strings"
)

// Format désigne un format de fichier produit par l'export.
type Format string

const (
	FormatSRT      Format = "srt"
	FormatVTT      Format = "vtt"
	FormatTXT      Format = "txt"
	FormatMARKDOWN Format = "md"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "txt":
		return FormatTXT, nil
	case "md":
		return FormatMARKDOWN, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) IsSubtitle() bool {
	return f == FormatSRT || f == FormatVTT
}

func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType retourne le type MIME servi par l'API HTTP.
func (f Format) ContentType() string {
	switch f {
	case FormatVTT:
		return "text/vtt; charset=utf-8"
	case FormatMARKDOWN:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (f Format) String() string {
	return string(f)
}

// Lang est la langue d'une ligne de sous-titre : japonais (texte source,
// éventuellement annoté en furigana) ou coréen (traduction).
type Lang string

const (
	LangJA Lang = "ja"
	LangKO Lang = "ko"
)

// ParseLang accepte "ja"/"jp" et "ko"/"kr". Vide -> japonais.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ja", "jp":
		return LangJA, nil
	case "ko", "kr":
		return LangKO, nil
	default:
		return "", fmt.Errorf("langue inconnue: %s", s)
	}
}

func (l Lang) String() string {
	return string(l)
}
