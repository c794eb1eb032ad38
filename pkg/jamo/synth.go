package jamo

import "unicode/utf8"

type partKind uint8

const (
	partAbsent partKind = iota
	partChar
	partCodepoint
)

// Part is one synthesis argument: a character (positional jamo or HCJ) or
// an integer codepoint naming one. The zero Part is an absent tail.
type Part struct {
	kind partKind
	r    rune
	cp   int
}

// NoTail is the absent tail.
var NoTail = Part{}

func Char(r rune) Part { return Part{kind: partChar, r: r} }

func Codepoint(cp int) Part { return Part{kind: partCodepoint, cp: cp} }

// Absent reports whether p carries no jamo. A character or codepoint of
// zero counts as absent, matching the "tail 0" convention.
func (p Part) Absent() bool {
	switch p.kind {
	case partChar:
		return p.r == 0
	case partCodepoint:
		return p.cp == 0
	}
	return true
}

func (p Part) resolve() (rune, error) {
	switch p.kind {
	case partChar:
		return p.r, nil
	case partCodepoint:
		if p.cp < 0 || p.cp > utf8.MaxRune || !utf8.ValidRune(rune(p.cp)) {
			return 0, &InvalidJamoError{Codepoint: p.cp, Reason: "not a valid Unicode codepoint"}
		}
		return rune(p.cp), nil
	}
	return 0, nil
}

// normalize resolves p to the slot index it fills in role.
func (p Part) normalize(role Class) (int, error) {
	r, err := p.resolve()
	if err != nil {
		return 0, err
	}
	if p.Absent() {
		return 0, invalid(r, "missing %s", role)
	}

	class := ClassOf(r)
	switch {
	case class == role:
		got, idx, ok := modernIndex(r)
		if r == leadFiller || r == vowelFiller {
			return 0, invalid(r, "%s filler has no syllable", role)
		}
		if !ok || got != role {
			return 0, invalid(r, "archaic %s has no modern syllable", role)
		}
		return idx, nil
	case IsHCJ(r):
		j, err := HCJ2J(r, role)
		if err != nil {
			return 0, err
		}
		_, idx, _ := modernIndex(j)
		return idx, nil
	case class.Positional():
		return 0, invalid(r, "expected %s, got %s", role, class)
	default:
		return 0, invalid(r, "not a %s jamo", role)
	}
}

// J2H synthesizes the syllable for lead, vowel and an optional tail. Each
// part may be positional jamo, HCJ or a codepoint of either.
func J2H(lead, vowel, tail Part) (rune, error) {
	li, err := lead.normalize(ClassLead)
	if err != nil {
		return 0, err
	}
	vi, err := vowel.normalize(ClassVowel)
	if err != nil {
		return 0, err
	}
	ti := 0
	if !tail.Absent() {
		if ti, err = tail.normalize(ClassTail); err != nil {
			return 0, err
		}
	}
	return compose(li, vi, ti), nil
}

// JamoToHangul is J2H under its long name.
func JamoToHangul(lead, vowel, tail Part) (rune, error) {
	return J2H(lead, vowel, tail)
}

// ComposeRunes is J2H for plain characters; a zero tail means none.
func ComposeRunes(lead, vowel, tail rune) (rune, error) {
	return J2H(Char(lead), Char(vowel), Char(tail))
}

func compose(lead, vowel, tail int) rune {
	return SyllableBase + rune((lead*VowelCount+vowel)*tailSlots+tail)
}
