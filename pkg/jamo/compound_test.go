package jamo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gg582/hanjamo/pkg/jamo"
)

func TestCombineAndSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role jamo.Class
		a, b rune
		want rune
	}{
		{jamo.ClassLead, 'ㄱ', 'ㄱ', 'ㄲ'},
		{jamo.ClassLead, 'ㅈ', 'ㅈ', 'ㅉ'},
		{jamo.ClassVowel, 'ㅗ', 'ㅏ', 'ㅘ'},
		{jamo.ClassVowel, 'ㅡ', 'ㅣ', 'ㅢ'},
		{jamo.ClassTail, 'ㄹ', 'ㄱ', 'ㄺ'},
		{jamo.ClassTail, 'ㅂ', 'ㅅ', 'ㅄ'},
	}
	for _, tc := range cases {
		got, ok := jamo.Combine(tc.role, tc.a, tc.b)
		require.True(t, ok, "%q+%q as %s", tc.a, tc.b, tc.role)
		assert.Equal(t, tc.want, got)

		a, b, ok := jamo.Split(tc.role, tc.want)
		require.True(t, ok)
		assert.Equal(t, []rune{tc.a, tc.b}, []rune{a, b})
	}

	_, ok := jamo.Combine(jamo.ClassLead, 'ㄹ', 'ㄱ')
	assert.False(t, ok)
	_, ok = jamo.Combine(jamo.ClassTail, 'ㄷ', 'ㄷ')
	assert.False(t, ok)
	_, _, ok = jamo.Split(jamo.ClassVowel, 'ㅏ')
	assert.False(t, ok)
	_, _, ok = jamo.Split(jamo.ClassNone, 'ㄲ')
	assert.False(t, ok)
}

func TestComposeJamo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, want rune
	}{
		{'ㄱ', 'ㄱ', 'ㄲ'},
		{'ㄱ', 'ㅅ', 'ㄳ'},
		{'ㄷ', 'ㄷ', 'ㄸ'},
		{'ㅜ', 'ㅓ', 'ㅝ'},
		{'ᄀ', 'ᄀ', 'ᄁ'},
		{'ᆨ', 'ᆺ', 'ᆪ'},
		{'ᆯ', 'ᇂ', 'ᆶ'},
		{'ᅩ', 'ᅡ', 'ᅪ'},
	}
	for _, tc := range cases {
		got, err := jamo.ComposeJamo(tc.a, tc.b)
		require.NoError(t, err, "%q+%q", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q+%q", tc.a, tc.b)
	}

	for _, pair := range [][2]rune{
		{'ᄀ', 'ᆨ'},
		{'ㄱ', 'ㅏ'},
		{'ᄂ', 'ᄂ'},
		{'a', 'b'},
		{'ᄀ', 'ㄱ'},
	} {
		_, err := jamo.ComposeJamo(pair[0], pair[1])
		assert.ErrorIs(t, err, jamo.ErrInvalidJamo, "%q+%q", pair[0], pair[1])
	}
}

func TestDecomposeJamo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   rune
		want []rune
	}{
		{'ㄲ', []rune{'ㄱ', 'ㄱ'}},
		{'ㄳ', []rune{'ㄱ', 'ㅅ'}},
		{'ㄸ', []rune{'ㄷ', 'ㄷ'}},
		{'ㅘ', []rune{'ㅗ', 'ㅏ'}},
		{'ᄁ', []rune{'ᄀ', 'ᄀ'}},
		{'ᆪ', []rune{'ᆨ', 'ᆺ'}},
		{'ᅱ', []rune{'ᅮ', 'ᅵ'}},
		{'ㄱ', []rune{'ㄱ'}},
		{'ᄀ', []rune{'ᄀ'}},
		{'a', []rune{'a'}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, jamo.DecomposeJamo(tc.in), "%q", tc.in)
	}
}
