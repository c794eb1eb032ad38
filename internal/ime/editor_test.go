package ime

import "testing"

func TestComposeAnnyeonghaseyo(t *testing.T) {
	e := NewEditor(Dubeolsik())
	for _, r := range "dkssudgktpdy" {
		if !e.TypeKey(r) {
			t.Fatalf("unexpected literal for %c", r)
		}
	}
	if got, want := e.FlushText(), "안녕하세요"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEditorBackspace(t *testing.T) {
	e := NewEditor(Dubeolsik())
	e.TypeKey('d')
	e.TypeKey('k')
	if got := e.Text(); got != "아" {
		t.Fatalf("unexpected composed text: %q", got)
	}
	e.Backspace()
	if got := e.Text(); got != "ㅇ" {
		t.Fatalf("backspace should drop the vowel, got %q", got)
	}
	e.Backspace()
	e.Backspace()
	if got := e.Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestEditorEnterResets(t *testing.T) {
	e := NewEditor(Dubeolsik())
	for _, r := range "gksrmf" {
		e.TypeKey(r)
	}
	if got := e.Enter(); got != "한글" {
		t.Fatalf("expected 한글, got %q", got)
	}
	if got := e.Text(); got != "" {
		t.Fatalf("editor should be empty after enter, got %q", got)
	}
}

func TestTypeKeys(t *testing.T) {
	cases := map[string]string{
		"dkssudgktpdy":         "안녕하세요",
		"gksrmf wkdls":         "한글 자인",
		"Rkclrk":               "까치가",
		"rkqt":                 "값",
		"dkssud\b\bgk":         "안하",
		"hello":                "ㅗ디ㅣㅐ",
		"tjdnf, 2024":          "서울, 2024",
		"dhksfy":               "완료",
		"":                     "",
		"dlsxjsptdptj TmrhdlT": "인터넷에서 쓰고있",
	}
	for keys, want := range cases {
		if got := TypeKeys(Dubeolsik(), keys); got != want {
			t.Fatalf("TypeKeys(%q) = %q, want %q", keys, got, want)
		}
	}
}

func TestLayoutByName(t *testing.T) {
	layout, err := LayoutByName("2beolsik")
	if err != nil || layout.Name() != "dubeolsik" {
		t.Fatalf("expected dubeolsik, got %q (%v)", layout.Name(), err)
	}
	if letter, ok := layout.Letter('K'); !ok || letter != 'ㅏ' {
		t.Fatalf("shifted k should type ㅏ, got %q", letter)
	}
	if letter, ok := layout.Letter('R'); !ok || letter != 'ㄲ' {
		t.Fatalf("shifted r should type ㄲ, got %q", letter)
	}
	if _, err := LayoutByName("colemak"); err == nil {
		t.Fatalf("expected unknown layout error")
	}
}

func TestTypeKeysBackspaceAfterShift(t *testing.T) {
	if got := TypeKeys(Dubeolsik(), "R\bsk"); got != "나" {
		t.Fatalf("backspace should drop the shifted ㄲ, got %q", got)
	}
	if got := TypeKeys(Dubeolsik(), "rr\bk"); got != "가" {
		t.Fatalf("backspace should split ㄱ+ㄱ, got %q", got)
	}
}
