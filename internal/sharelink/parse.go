package sharelink

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errMissingVideoID  = errors.New("champ v manquant")
	errMissingTimeline = errors.New("champ t manquant")
)

// parsePayloadBytes décode le JSON et vérifie les champs obligatoires.
// Les champs inconnus sont ignorés.
func parsePayloadBytes(b []byte) (rawPayload, error) {
	var raw rawPayload
	if len(bytes.TrimSpace(b)) == 0 {
		return raw, fmt.Errorf("parsePayloadBytes: entrée vide")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("parsePayloadBytes: decode error: %w", err)
	}
	return raw, nil
}

// validate contrôle la structure minimale : v, t, et s/e sur chaque point.
func (p rawPayload) validate() error {
	if p.V == nil {
		return errMissingVideoID
	}
	if p.T == nil {
		return errMissingTimeline
	}
	for i, pt := range *p.T {
		if pt.S == nil || pt.E == nil {
			return fmt.Errorf("point %d : champ s ou e manquant", i)
		}
	}
	return nil
}
