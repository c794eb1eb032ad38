package jamo

// IsJamo reports whether r is a positional jamo (lead, vowel or tail),
// archaic letters and fillers included. HCJ is not positional jamo.
func IsJamo(r rune) bool {
	return lookup(spans, r).Positional()
}

// IsJamoModern reports whether r is a positional jamo used in modern Hangul.
func IsJamoModern(r rune) bool {
	return lookup(modernSpans, r).Positional()
}

// IsHCJ reports whether r lies in the Hangul Compatibility Jamo block.
func IsHCJ(r rune) bool {
	return r >= hcjFirst && r <= hcjLast
}

// IsHCJModern reports whether r is a modern HCJ consonant or vowel.
func IsHCJModern(r rune) bool {
	return r >= hcjFirst && r <= hcjModernLast
}

// IsHangulChar reports whether r is a precomposed Hangul syllable.
func IsHangulChar(r rune) bool {
	return r >= SyllableBase && r <= SyllableLast
}

// ClassOf classifies r. It never fails: characters outside the jamo blocks,
// the HCJ filler and syllables all report ClassNone.
func ClassOf(r rune) Class {
	return lookup(spans, r)
}

// GetJamoClass returns the role of a positional jamo. HCJ input is
// rejected because a compatibility consonant can serve as lead or tail.
func GetJamoClass(r rune) (Class, error) {
	class := ClassOf(r)
	switch {
	case class.Positional():
		return class, nil
	case IsHCJ(r):
		return ClassNone, invalid(r, "HCJ is role-ambiguous, use HCJ2J with an explicit role")
	default:
		return ClassNone, invalid(r, "could not determine jamo class")
	}
}
