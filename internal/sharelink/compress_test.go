package sharelink

import "unicode/utf16"

// compressToEncodedURIComponent reproduit LZString.compressToEncodedURIComponent
// pour fabriquer des payloads réalistes dans les tests.
func compressToEncodedURIComponent(s string) string {
	units := utf16.Encode([]rune(s))

	dict := make(map[string]int)
	toCreate := make(map[string]bool)
	enlargeIn, dictSize, numBits := 2, 3, 2
	bw := &bitWriter{bitsPerChar: 6}

	emit := func(w []uint16) {
		k := unitsKey(w)
		if toCreate[k] {
			if w[0] < 256 {
				bw.writeValue(0, numBits)
				bw.writeValue(int(w[0]), 8)
			} else {
				bw.writeValue(1, numBits)
				bw.writeValue(int(w[0]), 16)
			}
			enlargeIn--
			if enlargeIn == 0 {
				enlargeIn = 1 << numBits
				numBits++
			}
			delete(toCreate, k)
		} else {
			bw.writeValue(dict[k], numBits)
		}
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}

	var w []uint16
	for _, u := range units {
		c := []uint16{u}
		ck := unitsKey(c)
		if _, ok := dict[ck]; !ok {
			dict[ck] = dictSize
			dictSize++
			toCreate[ck] = true
		}
		wc := append(append([]uint16(nil), w...), u)
		if _, ok := dict[unitsKey(wc)]; ok {
			w = wc
			continue
		}
		emit(w)
		dict[unitsKey(wc)] = dictSize
		dictSize++
		w = c
	}
	if len(w) > 0 {
		emit(w)
	}

	bw.writeValue(2, numBits)
	bw.flush()
	return string(bw.out)
}

type bitWriter struct {
	out         []byte
	val         int
	pos         int
	bitsPerChar int
}

func (b *bitWriter) writeBit(bit int) {
	b.val = (b.val << 1) | bit
	if b.pos == b.bitsPerChar-1 {
		b.pos = 0
		b.out = append(b.out, keyStrURISafe[b.val])
		b.val = 0
		return
	}
	b.pos++
}

// writeValue écrit n bits de value, poids faible en premier.
func (b *bitWriter) writeValue(value, n int) {
	for i := 0; i < n; i++ {
		b.writeBit(value & 1)
		value >>= 1
	}
}

func (b *bitWriter) flush() {
	for {
		b.val <<= 1
		if b.pos == b.bitsPerChar-1 {
			b.out = append(b.out, keyStrURISafe[b.val])
			return
		}
		b.pos++
	}
}

func unitsKey(units []uint16) string {
	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, byte(u>>8), byte(u))
	}
	return string(buf)
}

// selfReferencingStream écrit un littéral 'a' suivi de n codes égaux à la
// taille du dictionnaire : chaque entrée vaut w + w[0], la sortie fait
// 1 + 2 + ... + (n+1) unités.
func selfReferencingStream(n int) string {
	bw := &bitWriter{bitsPerChar: 6}
	bw.writeValue(0, 2)
	bw.writeValue('a', 8)

	dictLen, enlargeIn, numBits := 4, 4, 3
	for i := 0; i < n; i++ {
		bw.writeValue(dictLen, numBits)
		dictLen++
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
	bw.writeValue(2, numBits)
	bw.flush()
	return string(bw.out)
}
