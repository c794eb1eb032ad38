package jamo

import "iter"

// toHCJ maps a modern positional jamo to its compatibility letter.
func toHCJ(r rune) (rune, bool) {
	class, idx, ok := modernIndex(r)
	if !ok {
		return 0, false
	}
	return hcjFor(class, idx), true
}

// JamoToHCJ yields text with modern positional jamo replaced by HCJ. Lead
// and tail forms of a consonant fold to the same letter. Syllables are
// decomposed first; any other character passes through.
func JamoToHCJ(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for r := range HangulToJamo(text) {
			if hcj, ok := toHCJ(r); ok {
				r = hcj
			}
			if !yield(r) {
				return
			}
		}
	}
}

// J2HCJ is the string form of JamoToHCJ.
func J2HCJ(text string) string {
	return collect(JamoToHCJ(text), len(text))
}

// HCJ2J resolves an HCJ letter to the positional jamo for role. Pass
// ClassNone when the role is unknown; that only succeeds for vowels.
func HCJ2J(r rune, role Class) (rune, error) {
	if !IsHCJModern(r) {
		return 0, invalid(r, "not a modern Hangul compatibility jamo")
	}
	if role == ClassNone {
		if ClassOf(r) != ClassHCJVowel {
			return 0, invalid(r, "HCJ consonant needs an explicit lead or tail role")
		}
		role = ClassVowel
	}
	if !role.Positional() {
		return 0, invalid(r, "role %s is not lead, vowel or tail", role)
	}
	idx, ok := hcjIndex(r, role)
	if !ok {
		return 0, invalid(r, "no %s form", role)
	}
	return positionalFor(role, idx), nil
}

// HCJToJamo yields text with every HCJ letter resolved through HCJ2J.
// Vowels always resolve as vowels; role applies to consonants only. Other
// characters pass through. The first failure is yielded with its error and
// ends the sequence.
func HCJToJamo(text string, role Class) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for _, r := range text {
			if !IsHCJ(r) {
				if !yield(r, nil) {
					return
				}
				continue
			}
			as := role
			if ClassOf(r) == ClassHCJVowel {
				as = ClassVowel
			}
			j, err := HCJ2J(r, as)
			if err != nil {
				yield(r, err)
				return
			}
			if !yield(j, nil) {
				return
			}
		}
	}
}
