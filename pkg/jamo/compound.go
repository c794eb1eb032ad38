package jamo

import "github.com/samber/lo"

// Compound letters of modern Hangul, keyed by their HCJ components.
var (
	doubleInitial = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	doubleFinal = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
)

var (
	initialDecompose = lo.Invert(doubleInitial)
	medialDecompose  = lo.Invert(doubleMedial)
	finalDecompose   = lo.Invert(doubleFinal)
)

func compoundTable(role Class) map[[2]rune]rune {
	switch role {
	case ClassLead:
		return doubleInitial
	case ClassVowel:
		return doubleMedial
	case ClassTail:
		return doubleFinal
	}
	return nil
}

// Combine joins two HCJ letters into the compound letter for role, such as
// ㄹ+ㄱ → ㄺ as a tail or ㅗ+ㅏ → ㅘ as a vowel.
func Combine(role Class, a, b rune) (rune, bool) {
	combined, ok := compoundTable(role)[[2]rune{a, b}]
	return combined, ok
}

// Split is the inverse of Combine.
func Split(role Class, r rune) (a, b rune, ok bool) {
	var pair [2]rune
	switch role {
	case ClassLead:
		pair, ok = initialDecompose[r]
	case ClassVowel:
		pair, ok = medialDecompose[r]
	case ClassTail:
		pair, ok = finalDecompose[r]
	}
	return pair[0], pair[1], ok
}

// ComposeJamo joins two letters into one compound letter. Positional parts
// must share a role and yield positional jamo; HCJ parts yield HCJ.
func ComposeJamo(a, b rune) (rune, error) {
	if IsHCJModern(a) && IsHCJModern(b) {
		for _, role := range []Class{ClassLead, ClassTail, ClassVowel} {
			if combined, ok := Combine(role, a, b); ok {
				return combined, nil
			}
		}
		return 0, invalid(b, "does not combine with %q", a)
	}

	ca, ia, okA := modernIndex(a)
	if !okA {
		return 0, invalid(a, "not a modern jamo")
	}
	cb, ib, okB := modernIndex(b)
	if !okB {
		return 0, invalid(b, "not a modern jamo")
	}
	if ca != cb {
		return 0, invalid(b, "cannot combine %s with %s", ca, cb)
	}
	combined, ok := Combine(ca, hcjFor(ca, ia), hcjFor(cb, ib))
	if !ok {
		return 0, invalid(b, "does not combine with %q", a)
	}
	idx, _ := hcjIndex(combined, ca)
	return positionalFor(ca, idx), nil
}

// DecomposeJamo returns the components of a compound letter, HCJ or
// positional. Any other rune comes back alone.
func DecomposeJamo(r rune) []rune {
	if IsHCJModern(r) {
		for _, role := range []Class{ClassTail, ClassLead, ClassVowel} {
			if a, b, ok := Split(role, r); ok {
				return []rune{a, b}
			}
		}
		return []rune{r}
	}
	class, idx, ok := modernIndex(r)
	if !ok {
		return []rune{r}
	}
	a, b, ok := Split(class, hcjFor(class, idx))
	if !ok {
		return []rune{r}
	}
	ia, _ := hcjIndex(a, class)
	ib, _ := hcjIndex(b, class)
	return []rune{positionalFor(class, ia), positionalFor(class, ib)}
}
