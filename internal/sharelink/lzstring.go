package sharelink

import (
	"errors"
	"strings"
	"unicode/utf16"
)

// Décodage du format lz-string "EncodedURIComponent" : alphabet base64
// URL-safe de 64 symboles, 6 bits utiles par caractère, texte restitué
// en unités UTF-16.

const keyStrURISafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

var (
	ErrInvalidChar = errors.New("caractère hors de l'alphabet lz-string")
	ErrTruncated   = errors.New("flux lz-string tronqué")
	ErrCorrupt     = errors.New("flux lz-string corrompu")
	ErrTooLarge    = errors.New("flux lz-string trop volumineux une fois décompressé")
)

// maxDecompressedUnits borne la sortie en unités UTF-16 (8 Mo).
const maxDecompressedUnits = 4 << 20

// uriSafeValue : table caractère -> valeur (-1 si invalide)
var uriSafeValue = func() [128]int8 {
	var t [128]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(keyStrURISafe); i++ {
		t[keyStrURISafe[i]] = int8(i)
	}
	return t
}()

// bitReader lit le flux bit par bit, poids fort en premier dans chaque caractère.
type bitReader struct {
	input    string
	reset    int
	val      int
	position int
	index    int
}

func newBitReader(input string, reset int) *bitReader {
	r := &bitReader{input: input, reset: reset, position: reset, index: 1}
	r.val = r.valueAt(0)
	return r
}

// valueAt retourne la valeur du caractère i ; au-delà de la fin, 0.
// L'entrée a déjà été validée par checkAlphabet.
func (r *bitReader) valueAt(i int) int {
	if i >= len(r.input) {
		return 0
	}
	return int(uriSafeValue[r.input[i]])
}

func checkAlphabet(input string) error {
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch >= 128 || uriSafeValue[ch] < 0 {
			return ErrInvalidChar
		}
	}
	return nil
}

// readBits lit n bits, bit de poids faible en premier.
func (r *bitReader) readBits(n int) int {
	bits := 0
	maxpower := 1 << n
	for power := 1; power != maxpower; power <<= 1 {
		resb := r.val & r.position
		r.position >>= 1
		if r.position == 0 {
			r.position = r.reset
			r.val = r.valueAt(r.index)
			r.index++
		}
		if resb > 0 {
			bits |= power
		}
	}
	return bits
}

// DecompressFromEncodedURIComponent inverse LZString.compressToEncodedURIComponent.
// Une entrée vide donne "" sans erreur.
func DecompressFromEncodedURIComponent(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	// les "+" deviennent des espaces une fois passés par une query string
	input = strings.ReplaceAll(input, " ", "+")
	if err := checkAlphabet(input); err != nil {
		return "", err
	}

	units, err := decompress(input, 32)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

func decompress(input string, resetValue int) ([]uint16, error) {
	r := newBitReader(input, resetValue)

	// 0, 1 et 2 sont des codes réservés (littéral 8 bits, littéral 16 bits, fin)
	dictionary := make([][]uint16, 3, 256)
	enlargeIn := 4
	numBits := 3

	var c []uint16
	switch r.readBits(2) {
	case 0:
		c = []uint16{uint16(r.readBits(8))}
	case 1:
		c = []uint16{uint16(r.readBits(16))}
	case 2:
		return nil, nil
	default:
		return nil, ErrCorrupt
	}
	dictionary = append(dictionary, c)
	w := c
	result := append([]uint16(nil), c...)

	for {
		if r.index > len(input) {
			return nil, ErrTruncated
		}

		code := r.readBits(numBits)
		switch code {
		case 0:
			dictionary = append(dictionary, []uint16{uint16(r.readBits(8))})
			code = len(dictionary) - 1
			enlargeIn--
		case 1:
			dictionary = append(dictionary, []uint16{uint16(r.readBits(16))})
			code = len(dictionary) - 1
			enlargeIn--
		case 2:
			return result, nil
		}

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		var entry []uint16
		switch {
		case code >= 3 && code < len(dictionary):
			entry = dictionary[code]
		case code == len(dictionary):
			entry = appendUnit(w, w[0])
		default:
			return nil, ErrCorrupt
		}
		if len(result)+len(entry) > maxDecompressedUnits {
			return nil, ErrTooLarge
		}
		result = append(result, entry...)

		dictionary = append(dictionary, appendUnit(w, entry[0]))
		enlargeIn--
		w = entry

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
}

// appendUnit retourne une copie de w suivie de u (w n'est jamais modifié).
func appendUnit(w []uint16, u uint16) []uint16 {
	out := make([]uint16, len(w), len(w)+1)
	copy(out, w)
	return append(out, u)
}
