package jamo

import (
	"iter"
	"unicode/utf8"
)

// window is the most runes a single hangulify decision looks at: lead,
// vowel, tail candidate and the rune after it.
const window = 4

func slotIndex(r rune, role Class) (int, bool) {
	if class, idx, ok := modernIndex(r); ok {
		return idx, class == role
	}
	if IsHCJModern(r) {
		return hcjIndex(r, role)
	}
	return 0, false
}

// scan decides what to emit for the front of w. eof tells whether w holds
// every remaining rune; when it does not and the decision depends on runes
// beyond w, more is true and nothing is consumed.
func scan(w []rune, eof bool) (out rune, n int, more bool) {
	if len(w) == 0 {
		return 0, 0, !eof
	}
	li, ok := slotIndex(w[0], ClassLead)
	if !ok {
		return w[0], 1, false
	}
	if len(w) < 2 {
		if eof {
			return w[0], 1, false
		}
		return 0, 0, true
	}
	vi, ok := slotIndex(w[1], ClassVowel)
	if !ok {
		return w[0], 1, false
	}
	if len(w) < 3 {
		if eof {
			return compose(li, vi, 0), 2, false
		}
		return 0, 0, true
	}
	ti, ok := slotIndex(w[2], ClassTail)
	if !ok {
		return compose(li, vi, 0), 2, false
	}
	// A positional tail, or an HCJ cluster such as ㄳ, cannot open the
	// next syllable, so it always closes this one.
	if _, canLead := slotIndex(w[2], ClassLead); !canLead {
		return compose(li, vi, ti), 3, false
	}
	if len(w) < 4 {
		if eof {
			return compose(li, vi, ti), 3, false
		}
		return 0, 0, true
	}
	if _, nextVowel := slotIndex(w[3], ClassVowel); nextVowel {
		return compose(li, vi, 0), 2, false
	}
	return compose(li, vi, ti), 3, false
}

// HangulTransform yields text with runs of lead, vowel and optional tail
// (positional jamo or HCJ) collapsed into syllables. The scan is greedy
// and never backtracks; an HCJ consonant that could also open the next
// syllable is kept for it when a vowel follows. Nothing else changes.
func HangulTransform(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		var buf [window]rune
		pos := 0
		for pos < len(text) {
			w, widths := fill(buf[:0], text[pos:])
			out, n, _ := scan(w, true)
			for _, size := range widths[:n] {
				pos += size
			}
			if !yield(out) {
				return
			}
		}
	}
}

// fill decodes up to window runes from the front of s.
func fill(dst []rune, s string) ([]rune, [window]int) {
	var widths [window]int
	for i := 0; len(dst) < window && i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		widths[len(dst)] = size
		dst = append(dst, r)
		i += size
	}
	return dst, widths
}

// Hangulify is the string form of HangulTransform.
func Hangulify(text string) string {
	return collect(HangulTransform(text), len(text))
}
