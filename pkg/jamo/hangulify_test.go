package jamo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gg582/hanjamo/pkg/jamo"
)

func TestHangulify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input, want string
	}{
		{"ㅇㅏㄴㄴㅕㅇ", "안녕"},
		{"ㅇㅏㄴㅕㅇ", "아녕"},
		{"ㄱㄱㅏ", "ㄱ가"},
		{"ㄱㅏㄳ", "갃"},
		{"ㄱㅏㄳㅏ", "갃ㅏ"},
		{"ㄱㅏㄸ", "가ㄸ"},
		{"ㄱㅏㄱㅏ", "가가"},
		{"ㄷㅏㄺㄱㅗㄱㅣ", "닭고기"},
		{"각ᅡ", "각ᅡ"},
		{"ᄒㅏᆫ", "한"},
		{"한국", "한국"},
		{"hello ㅎㅏ!", "hello 하!"},
		{"ㅏㅏ", "ㅏㅏ"},
		{"ㅎ", "ㅎ"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, jamo.Hangulify(tc.input), "%q", tc.input)
	}
}

func TestHangulifyInvertsH2J(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"안녕하세요", "Do you speak 한국어?", "값이 닭고기", "까와 뚫어"} {
		assert.Equal(t, s, jamo.Hangulify(jamo.H2J(s)))
	}
	for r := rune(jamo.SyllableBase); r <= jamo.SyllableLast; r++ {
		s := string(r) + "가"
		if got := jamo.Hangulify(jamo.H2J(s)); got != s {
			t.Fatalf("Hangulify(H2J(%q)) = %q", s, got)
		}
	}
}

func TestHangulifyInvertsJ2HCJ(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"안녕하세요", "값이 닭고기", "읽어요", "앉아"} {
		assert.Equal(t, s, jamo.Hangulify(jamo.J2HCJ(s)))
	}
	for r := rune(jamo.SyllableBase); r <= jamo.SyllableLast; r++ {
		for _, next := range []string{"", "아", "가", "까", "와"} {
			s := string(r) + next
			if got := jamo.Hangulify(jamo.J2HCJ(s)); got != s {
				t.Fatalf("Hangulify(J2HCJ(%q)) = %q", s, got)
			}
		}
	}
}

func TestHangulTransformStopsEarly(t *testing.T) {
	t.Parallel()

	var got []rune
	for r := range jamo.HangulTransform("ㅎㅏㄴㄱㅜㄱ") {
		got = append(got, r)
		break
	}
	assert.Equal(t, []rune{'한'}, got)
}
