package jamo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/runenames"

	"github.com/gg582/hanjamo/pkg/jamo"
)

func TestName(t *testing.T) {
	t.Parallel()

	cases := map[rune]string{
		'가': "HANGUL SYLLABLE GA",
		'한': "HANGUL SYLLABLE HAN",
		'아': "HANGUL SYLLABLE A",
		'힣': "HANGUL SYLLABLE HIH",
		'닭': "HANGUL SYLLABLE DALG",
		'ᄀ': "HANGUL CHOSEONG KIYEOK",
		'ᅡ': "HANGUL JUNGSEONG A",
		'ᆫ': "HANGUL JONGSEONG NIEUN",
		'ㄱ': "HANGUL LETTER KIYEOK",
		'A': "LATIN CAPITAL LETTER A",
	}
	for r, want := range cases {
		assert.Equal(t, want, jamo.Name(r), "%q", r)
	}
}

func TestPositionalNamesMatchLetters(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		positional, hcj string
		word            string
	}{
		{modernLeads, hcjLeads, "CHOSEONG"},
		{modernVowels, hcjVowels, "JUNGSEONG"},
		{modernTails, hcjTails, "JONGSEONG"},
	}
	for _, p := range pairs {
		letters := []rune(p.hcj)
		for i, r := range []rune(p.positional) {
			name := jamo.Name(r)
			suffix, ok := strings.CutPrefix(name, "HANGUL "+p.word+" ")
			if !assert.True(t, ok, "%q is named %q", r, name) {
				continue
			}
			assert.Equal(t, "HANGUL LETTER "+suffix, runenames.Name(letters[i]))
		}
	}
}
