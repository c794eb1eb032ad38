package jamo

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewDecomposer returns a Transformer that behaves like H2J on a byte stream.
func NewDecomposer() transform.Transformer {
	return runeMapper{expand: func(r rune, dst []rune) []rune {
		if s, ok := Decompose(r); ok {
			return append(dst, s.Runes()...)
		}
		return append(dst, r)
	}}
}

// NewHCJFolder returns a Transformer that behaves like J2HCJ on a byte stream.
func NewHCJFolder() transform.Transformer {
	return runeMapper{expand: func(r rune, dst []rune) []rune {
		parts := []rune{r}
		if s, ok := Decompose(r); ok {
			parts = s.Runes()
		}
		for _, j := range parts {
			if hcj, ok := toHCJ(j); ok {
				j = hcj
			}
			dst = append(dst, j)
		}
		return dst
	}}
}

// NewComposer returns a Transformer that behaves like Hangulify on a byte
// stream. Undecided jamo at the end of a chunk are held back until more
// input or EOF arrives.
func NewComposer() transform.Transformer {
	return composer{}
}

// decodeRune reports short=true for a rune split across chunk boundaries.
func decodeRune(src []byte, atEOF bool) (r rune, size int, short bool) {
	r, size = utf8.DecodeRune(src)
	if r == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src) {
		return 0, 0, true
	}
	return r, size, false
}

type runeMapper struct {
	transform.NopResetter
	expand func(r rune, dst []rune) []rune
}

func (m runeMapper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [3]rune
	for nSrc < len(src) {
		r, size, short := decodeRune(src[nSrc:], atEOF)
		if short {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out := m.expand(r, buf[:0])
		need := 0
		for _, o := range out {
			need += utf8.RuneLen(o)
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		for _, o := range out {
			nDst += utf8.EncodeRune(dst[nDst:], o)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}

type composer struct {
	transform.NopResetter
}

func (composer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		var (
			w      [window]rune
			widths [window]int
			n      int
			short  bool
		)
		i := nSrc
		for n < window && i < len(src) {
			r, size, s := decodeRune(src[i:], atEOF)
			if s {
				short = true
				break
			}
			w[n], widths[n] = r, size
			n++
			i += size
		}
		eof := atEOF && !short && i == len(src)
		out, k, more := scan(w[:n], eof)
		if more || k == 0 {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+utf8.RuneLen(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		for _, size := range widths[:k] {
			nSrc += size
		}
	}
	return nDst, nSrc, nil
}
