package sharelink

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// rawPayload représente le JSON "brut" transporté dans le lien partagé :
// { v: string, t: [{ s, e, j?, k? }] }
type rawPayload struct {
	V *string     `json:"v"`
	T *[]rawPoint `json:"t"`
}

type rawPoint struct {
	S *float64 `json:"s"`
	E *float64 `json:"e"`
	J rawJa    `json:"j"`
	K *string  `json:"k,omitempty"`
}

type rawRun struct {
	D string  `json:"d"`
	R *string `json:"r"`
	O float64 `json:"o"`
}

// jaKind est l'étiquette de l'union portée par le champ "j".
type jaKind int

const (
	jaAbsent jaKind = iota // champ absent ou null
	jaPlain                // chaîne simple
	jaRuns                 // liste de fragments {d, r, o}
)

// rawJa est décodé une seule fois ici ; la suite du pipeline ne regarde
// plus que kind.
type rawJa struct {
	kind  jaKind
	plain string
	runs  []rawRun
}

func (j *rawJa) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*j = rawJa{kind: jaAbsent}
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*j = rawJa{kind: jaPlain, plain: s}
		return nil
	case '[':
		var runs []rawRun
		if err := json.Unmarshal(b, &runs); err != nil {
			return err
		}
		*j = rawJa{kind: jaRuns, runs: runs}
		return nil
	default:
		return fmt.Errorf("champ j : attendu chaîne ou liste, reçu %q", firstBytes(b, 16))
	}
}

func firstBytes(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
