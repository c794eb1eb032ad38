package jamo

import "golang.org/x/text/unicode/runenames"

// Short jamo names used to build syllable names (Unicode chapter 3.12).
var (
	leadShortNames  = []string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
	vowelShortNames = []string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
	tailShortNames  = []string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}
)

// Name returns the Unicode character name of r, for example
// "HANGUL CHOSEONG KIYEOK" or "HANGUL SYLLABLE HAN". Syllable names are
// derived from their jamo; everything else comes from the character
// database. Unassigned runes yield "".
func Name(r rune) string {
	if !IsHangulChar(r) {
		return runenames.Name(r)
	}
	offset := int(r - SyllableBase)
	tail := offset % tailSlots
	vowel := (offset / tailSlots) % VowelCount
	lead := offset / (VowelCount * tailSlots)
	return "HANGUL SYLLABLE " + leadShortNames[lead] + vowelShortNames[vowel] + tailShortNames[tail]
}
