package jamo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gg582/hanjamo/pkg/jamo"
)

func TestJamoToHCJ(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hcjLeads, jamo.J2HCJ(modernLeads))
	assert.Equal(t, hcjVowels, jamo.J2HCJ(modernVowels))
	assert.Equal(t, hcjTails, jamo.J2HCJ(modernTails))

	assert.Equal(t, "ㅎㅏㄴ", jamo.J2HCJ("한"))
	assert.Equal(t, "ㅎㅏㄴㄱㅜㄱㅇㅓ!", jamo.J2HCJ("한국어!"))
	assert.Equal(t, "ㅎㅏㄴ", jamo.J2HCJ("ᄒㅏᆫ"))
}

func TestJamoToHCJLeavesArchaic(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{0x1113, 0x115F, 0x1160, 0x11C3, 0xA960, 0xD7B0, 0x3165} {
		assert.Equal(t, string(r), jamo.J2HCJ(string(r)), "U+%04X", r)
	}
}

func TestHCJFold(t *testing.T) {
	t.Parallel()

	folded := 0
	for _, c := range hcjLeads + hcjTails {
		lead, errLead := jamo.HCJ2J(c, jamo.ClassLead)
		tail, errTail := jamo.HCJ2J(c, jamo.ClassTail)
		if errLead != nil || errTail != nil {
			continue
		}
		folded++
		assert.NotEqual(t, lead, tail)
		assert.Equal(t, string(c), jamo.J2HCJ(string(lead)))
		assert.Equal(t, jamo.J2HCJ(string(lead)), jamo.J2HCJ(string(tail)))
	}
	// Every lead except ㄸ, ㅃ and ㅉ also exists as a tail; each is seen twice.
	assert.Equal(t, 2*16, folded)
}

func TestJ2HCJIdempotent(t *testing.T) {
	t.Parallel()

	for r := rune(0); r <= 0xFFFF; r++ {
		once := jamo.J2HCJ(string(r))
		if twice := jamo.J2HCJ(once); twice != once {
			t.Fatalf("J2HCJ not idempotent on U+%04X: %q then %q", r, once, twice)
		}
	}
}

func TestHCJ2J(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hcj  rune
		role jamo.Class
		want rune
	}{
		{'ㅇ', jamo.ClassTail, 'ᆼ'},
		{'ㅇ', jamo.ClassLead, 'ᄋ'},
		{'ㄱ', jamo.ClassLead, 'ᄀ'},
		{'ㄳ', jamo.ClassTail, 'ᆪ'},
		{'ㅏ', jamo.ClassNone, 'ᅡ'},
		{'ㅢ', jamo.ClassVowel, 'ᅴ'},
	}
	for _, tc := range cases {
		got, err := jamo.HCJ2J(tc.hcj, tc.role)
		require.NoError(t, err, "%q as %s", tc.hcj, tc.role)
		assert.Equal(t, tc.want, got, "%q as %s", tc.hcj, tc.role)
	}

	for i, r := range []rune(hcjLeads) {
		got, err := jamo.HCJ2J(r, jamo.ClassLead)
		require.NoError(t, err)
		assert.Equal(t, []rune(modernLeads)[i], got)
	}
	for i, r := range []rune(hcjVowels) {
		got, err := jamo.HCJ2J(r, jamo.ClassVowel)
		require.NoError(t, err)
		assert.Equal(t, []rune(modernVowels)[i], got)
	}
	for i, r := range []rune(hcjTails) {
		got, err := jamo.HCJ2J(r, jamo.ClassTail)
		require.NoError(t, err)
		assert.Equal(t, []rune(modernTails)[i], got)
	}
}

func TestHCJ2JErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hcj  rune
		role jamo.Class
	}{
		{"consonant without role", 'ㄱ', jamo.ClassNone},
		{"cluster as lead", 'ㄳ', jamo.ClassLead},
		{"double as tail", 'ㄸ', jamo.ClassTail},
		{"vowel as tail", 'ㅏ', jamo.ClassTail},
		{"consonant as vowel", 'ㄱ', jamo.ClassVowel},
		{"non-positional role", 'ㄱ', jamo.ClassHCJConsonant},
		{"positional input", 'ᄀ', jamo.ClassLead},
		{"archaic hcj", 0x3165, jamo.ClassLead},
		{"latin", 'a', jamo.ClassLead},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := jamo.HCJ2J(tc.hcj, tc.role)
			require.ErrorIs(t, err, jamo.ErrInvalidJamo)
		})
	}
}

func TestHCJToJamo(t *testing.T) {
	t.Parallel()

	var got []rune
	for r, err := range jamo.HCJToJamo("ㄱ-ㄴ", jamo.ClassLead) {
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []rune{'ᄀ', '-', 'ᄂ'}, got)

	var (
		seen    []rune
		lastErr error
	)
	for r, err := range jamo.HCJToJamo("aㅏㄱㅏ", jamo.ClassNone) {
		seen = append(seen, r)
		lastErr = err
	}
	assert.Equal(t, []rune{'a', 'ᅡ', 'ㄱ'}, seen)
	require.ErrorIs(t, lastErr, jamo.ErrInvalidJamo)
}

func TestHCJToJamoRoleAppliesToConsonants(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		role jamo.Class
		want []rune
	}{
		{jamo.ClassTail, []rune{'ᆼ', 'ᅡ'}},
		{jamo.ClassLead, []rune{'ᄋ', 'ᅡ'}},
	} {
		var got []rune
		for r, err := range jamo.HCJToJamo("ㅇㅏ", tc.role) {
			require.NoError(t, err, tc.role)
			got = append(got, r)
		}
		assert.Equal(t, tc.want, got, tc.role)
	}

	var (
		seen    []rune
		lastErr error
	)
	for r, err := range jamo.HCJToJamo("ㅏㄸ", jamo.ClassTail) {
		seen = append(seen, r)
		lastErr = err
	}
	assert.Equal(t, []rune{'ᅡ', 'ㄸ'}, seen)
	require.ErrorIs(t, lastErr, jamo.ErrInvalidJamo)
}
