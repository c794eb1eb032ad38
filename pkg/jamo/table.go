package jamo

import (
	"fmt"
	"strings"
)

// Codepoint layout of the modern Hangul blocks (Unicode 7.0).
const (
	SyllableBase = 0xAC00
	SyllableLast = 0xD7A3

	LeadBase  = 0x1100
	VowelBase = 0x1161
	TailBase  = 0x11A8

	LeadCount  = 19
	VowelCount = 21
	TailCount  = 27

	// tailSlots counts the "no tail" slot as well.
	tailSlots = TailCount + 1

	leadFiller  = 0x115F
	vowelFiller = 0x1160
)

// Class is the phonetic role a character plays, derived from its codepoint.
type Class uint8

const (
	ClassNone Class = iota
	ClassLead
	ClassVowel
	ClassTail
	ClassHCJConsonant
	ClassHCJVowel
)

func (c Class) String() string {
	switch c {
	case ClassLead:
		return "lead"
	case ClassVowel:
		return "vowel"
	case ClassTail:
		return "tail"
	case ClassHCJConsonant:
		return "hcj-consonant"
	case ClassHCJVowel:
		return "hcj-vowel"
	default:
		return "none"
	}
}

// Positional reports whether c is one of the three syllable slots.
func (c Class) Positional() bool {
	return c == ClassLead || c == ClassVowel || c == ClassTail
}

// ParseClass turns a role name into a Class. The empty string parses to
// ClassNone, which HCJ2J treats as "role not supplied".
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return ClassNone, nil
	case "lead", "initial", "leading", "choseong":
		return ClassLead, nil
	case "vowel", "medial", "jungseong":
		return ClassVowel, nil
	case "tail", "final", "trailing", "jongseong":
		return ClassTail, nil
	default:
		return ClassNone, fmt.Errorf("jamo: unknown role %q (want lead, vowel or tail)", name)
	}
}

type span struct {
	lo, hi rune
	class  Class
}

func (s span) contains(r rune) bool { return s.lo <= r && r <= s.hi }

// spans covers every positional and compatibility jamo, archaic included.
// Fillers U+115F and U+1160 belong to the lead and vowel runs.
var spans = []span{
	{0x1100, 0x115F, ClassLead},
	{0x1160, 0x11A7, ClassVowel},
	{0x11A8, 0x11FF, ClassTail},
	{0x3131, 0x314E, ClassHCJConsonant},
	{0x314F, 0x3163, ClassHCJVowel},
	{0x3165, 0x3186, ClassHCJConsonant},
	{0x3187, 0x318E, ClassHCJVowel},
	{0xA960, 0xA97C, ClassLead},
	{0xD7B0, 0xD7C6, ClassVowel},
	{0xD7CB, 0xD7FB, ClassTail},
}

var modernSpans = []span{
	{LeadBase, LeadBase + LeadCount - 1, ClassLead},
	{VowelBase, VowelBase + VowelCount - 1, ClassVowel},
	{TailBase, TailBase + TailCount - 1, ClassTail},
	{0x3131, 0x314E, ClassHCJConsonant},
	{0x314F, 0x3163, ClassHCJVowel},
}

const (
	hcjFirst      = 0x3131
	hcjLast       = 0x318E
	hcjModernLast = 0x3163
)

// HCJ letters in syllable order; hcjTails keeps slot 0 for "no tail" so
// that its indexes line up with the syllable arithmetic.
var (
	hcjLeads  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	hcjVowels = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	hcjTails  = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	hcjLeadIndex  = buildIndex(hcjLeads)
	hcjVowelIndex = buildIndex(hcjVowels)
	hcjTailIndex  = buildIndex(filterZero(hcjTails), 1)
)

func buildIndex(list []rune, offset ...int) map[rune]int {
	base := 0
	if len(offset) > 0 {
		base = offset[0]
	}
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i + base
	}
	return idx
}

func filterZero(list []rune) []rune {
	out := make([]rune, 0, len(list))
	for _, ch := range list {
		if ch != 0 {
			out = append(out, ch)
		}
	}
	return out
}

func lookup(table []span, r rune) Class {
	for _, s := range table {
		if s.contains(r) {
			return s.class
		}
	}
	return ClassNone
}

// modernIndex returns the slot index of a modern positional jamo within its
// role. Tail indexes start at 1; 0 is reserved for "no tail".
func modernIndex(r rune) (Class, int, bool) {
	switch {
	case r >= LeadBase && r < LeadBase+LeadCount:
		return ClassLead, int(r - LeadBase), true
	case r >= VowelBase && r < VowelBase+VowelCount:
		return ClassVowel, int(r - VowelBase), true
	case r >= TailBase && r < TailBase+TailCount:
		return ClassTail, int(r-TailBase) + 1, true
	}
	return ClassNone, 0, false
}

func positionalFor(class Class, index int) rune {
	switch class {
	case ClassLead:
		return LeadBase + rune(index)
	case ClassVowel:
		return VowelBase + rune(index)
	case ClassTail:
		return TailBase + rune(index) - 1
	}
	return 0
}

func hcjFor(class Class, index int) rune {
	switch class {
	case ClassLead:
		return hcjLeads[index]
	case ClassVowel:
		return hcjVowels[index]
	case ClassTail:
		return hcjTails[index]
	}
	return 0
}

// hcjIndex resolves an HCJ letter to its slot within role class.
func hcjIndex(r rune, class Class) (int, bool) {
	var (
		idx int
		ok  bool
	)
	switch class {
	case ClassLead:
		idx, ok = hcjLeadIndex[r]
	case ClassVowel:
		idx, ok = hcjVowelIndex[r]
	case ClassTail:
		idx, ok = hcjTailIndex[r]
	}
	return idx, ok
}
