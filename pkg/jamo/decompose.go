package jamo

import (
	"iter"
	"strings"
)

// Syllable is a precomposed syllable split into positional jamo. Tail is
// zero when the syllable has no final consonant.
type Syllable struct {
	Lead  rune
	Vowel rune
	Tail  rune
}

func (s Syllable) HasTail() bool { return s.Tail != 0 }

// Runes returns the two or three jamo of the syllable.
func (s Syllable) Runes() []rune {
	if s.HasTail() {
		return []rune{s.Lead, s.Vowel, s.Tail}
	}
	return []rune{s.Lead, s.Vowel}
}

func (s Syllable) String() string { return string(s.Runes()) }

// Decompose splits a precomposed syllable. ok is false for any other rune.
func Decompose(r rune) (s Syllable, ok bool) {
	if !IsHangulChar(r) {
		return Syllable{}, false
	}
	offset := int(r - SyllableBase)
	tail := offset % tailSlots
	vowel := (offset / tailSlots) % VowelCount
	lead := offset / (VowelCount * tailSlots)

	s = Syllable{
		Lead:  positionalFor(ClassLead, lead),
		Vowel: positionalFor(ClassVowel, vowel),
	}
	if tail != 0 {
		s.Tail = positionalFor(ClassTail, tail)
	}
	return s, true
}

// HangulToJamo yields text with every syllable expanded into its jamo.
// Other characters are yielded unchanged.
func HangulToJamo(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range text {
			s, ok := Decompose(r)
			if !ok {
				if !yield(r) {
					return
				}
				continue
			}
			if !yield(s.Lead) || !yield(s.Vowel) {
				return
			}
			if s.HasTail() && !yield(s.Tail) {
				return
			}
		}
	}
}

// HangulToJamoGroups yields one group per input character: the jamo of a
// syllable, or the character itself.
func HangulToJamoGroups(text string) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		for _, r := range text {
			group := []rune{r}
			if s, ok := Decompose(r); ok {
				group = s.Runes()
			}
			if !yield(group) {
				return
			}
		}
	}
}

// H2J is the string form of HangulToJamo.
func H2J(text string) string {
	return collect(HangulToJamo(text), len(text))
}

func collect(seq iter.Seq[rune], hint int) string {
	var b strings.Builder
	b.Grow(hint)
	for r := range seq {
		b.WriteRune(r)
	}
	return b.String()
}
