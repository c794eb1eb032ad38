// Package ime turns keystrokes into Hangul syllables the way a two-set
// Korean input method does.
package ime

import (
	"fmt"

	"github.com/gg582/hanjamo/internal/common"
)

// Layout maps Latin keys to HCJ letters.
type Layout struct {
	name string
	keys map[rune]rune
}

var dubeolsik = Layout{
	name: "dubeolsik",
	keys: map[rune]rune{
		'q': 'ㅂ', 'Q': 'ㅃ',
		'w': 'ㅈ', 'W': 'ㅉ',
		'e': 'ㄷ', 'E': 'ㄸ',
		'r': 'ㄱ', 'R': 'ㄲ',
		't': 'ㅅ', 'T': 'ㅆ',
		'y': 'ㅛ', 'u': 'ㅕ', 'i': 'ㅑ',
		'o': 'ㅐ', 'O': 'ㅒ',
		'p': 'ㅔ', 'P': 'ㅖ',
		'a': 'ㅁ', 's': 'ㄴ', 'd': 'ㅇ', 'f': 'ㄹ', 'g': 'ㅎ',
		'h': 'ㅗ', 'j': 'ㅓ', 'k': 'ㅏ', 'l': 'ㅣ',
		'z': 'ㅋ', 'x': 'ㅌ', 'c': 'ㅊ', 'v': 'ㅍ',
		'b': 'ㅠ', 'n': 'ㅜ', 'm': 'ㅡ',
	},
}

func init() {
	// Shifted letters without a doubled form type the plain letter.
	for key, letter := range dubeolsik.keys {
		if key >= 'a' && key <= 'z' {
			upper := key - 'a' + 'A'
			if _, ok := dubeolsik.keys[upper]; !ok {
				dubeolsik.keys[upper] = letter
			}
		}
	}
}

func Dubeolsik() Layout { return dubeolsik }

// LayoutByName resolves a layout through common.ResolveLayout.
func LayoutByName(name string) (Layout, error) {
	resolved, err := common.ResolveLayout(name)
	if err != nil {
		return Layout{}, err
	}
	switch resolved {
	case "dubeolsik":
		return dubeolsik, nil
	}
	return Layout{}, fmt.Errorf("layout %q has no key table", resolved)
}

func (l Layout) Name() string { return l.name }

// Letter returns the HCJ letter typed by key.
func (l Layout) Letter(key rune) (rune, bool) {
	letter, ok := l.keys[key]
	return letter, ok
}
