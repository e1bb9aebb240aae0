// Package sharelink décode les liens de partage de sous-titres : la chaîne
// compressée (lz-string, variante URI) contient un JSON compact qui est
// normalisé en timeline.Track.
package sharelink

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/patrickprogramme/subshare/internal/timeline"
)

// QueryParam est le paramètre de requête qui porte le payload.
const QueryParam = "a"

// ErrNoPayload : pas de payload (paramètre absent, chaîne vide ou
// décompression vide). C'est un état normal, pas une erreur d'affichage.
var ErrNoPayload = errors.New("aucun payload de sous-titres")

// Étapes du décodage, reprises dans DecodeError.Stage.
const (
	StageDecompress = "decompress"
	StageParse      = "parse"
	StageSchema     = "schema"
)

// DecodeError signale un payload présent mais inexploitable.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("payload invalide (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode transforme la chaîne encodée en Track.
// Fonction pure : la même entrée donne toujours une Track identique.
func Decode(encoded string) (timeline.Track, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return timeline.Track{}, ErrNoPayload
	}

	js, err := DecompressFromEncodedURIComponent(encoded)
	if err != nil {
		return timeline.Track{}, &DecodeError{Stage: StageDecompress, Err: err}
	}
	if js == "" {
		return timeline.Track{}, ErrNoPayload
	}

	raw, err := parsePayloadBytes([]byte(js))
	if err != nil {
		return timeline.Track{}, &DecodeError{Stage: StageParse, Err: err}
	}
	if err := raw.validate(); err != nil {
		return timeline.Track{}, &DecodeError{Stage: StageSchema, Err: err}
	}
	return normalize(raw), nil
}

// DecodeLink accepte un lien complet ou le payload seul.
func DecodeLink(link string) (timeline.Track, error) {
	payload, err := PayloadFromLink(link)
	if err != nil {
		return timeline.Track{}, err
	}
	return Decode(payload)
}

// PayloadFromLink extrait le paramètre "a" d'un lien ; une chaîne sans
// séparateur d'URL est considérée comme le payload lui-même (l'alphabet
// lz-string ne contient ni '?', ni ':', ni '/').
func PayloadFromLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ErrNoPayload
	}
	if !strings.ContainsAny(link, "?:/=&") {
		return link, nil
	}

	var rawQuery string
	if u, err := url.Parse(link); err == nil && u.RawQuery != "" {
		rawQuery = u.RawQuery
	} else if i := strings.IndexByte(link, '?'); i >= 0 {
		rawQuery = link[i+1:]
	} else {
		rawQuery = link
	}

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", &DecodeError{Stage: StageDecompress, Err: fmt.Errorf("query string: %w", err)}
	}
	payload := strings.TrimSpace(q.Get(QueryParam))
	if payload == "" {
		return "", ErrNoPayload
	}
	return payload, nil
}

// LooksLikeLink est un filtre rapide pour le presse-papier : soit une URL
// avec le paramètre "a", soit une chaîne entièrement dans l'alphabet.
func LooksLikeLink(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.Contains(s, "?"+QueryParam+"=") || strings.Contains(s, "&"+QueryParam+"=") {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 || uriSafeValue[s[i]] < 0 {
			return false
		}
	}
	return len(s) >= 4
}

// normalize applique les valeurs par défaut : j absent -> un fragment vide,
// j chaîne -> un fragment sans ruby, k absent -> "".
func normalize(raw rawPayload) timeline.Track {
	points := *raw.T
	segs := make([]timeline.Segment, 0, len(points))
	for i, pt := range points {
		seg := timeline.Segment{
			ID:        strconv.Itoa(i),
			StartTime: *pt.S,
			EndTime:   *pt.E,
			JaRuns:    normalizeJa(pt.J),
		}
		if pt.K != nil {
			seg.KoText = *pt.K
		}
		segs = append(segs, seg)
	}
	return timeline.NewTrack(*raw.V, segs)
}

func normalizeJa(j rawJa) []timeline.Run {
	switch j.kind {
	case jaPlain:
		return []timeline.Run{{Text: j.plain, Ruby: nil, Offset: 0}}
	case jaRuns:
		if len(j.runs) == 0 {
			return timeline.EmptyRuns()
		}
		runs := make([]timeline.Run, 0, len(j.runs))
		for _, r := range j.runs {
			runs = append(runs, timeline.Run{Text: r.D, Ruby: r.R, Offset: r.O})
		}
		return runs
	default:
		return timeline.EmptyRuns()
	}
}
