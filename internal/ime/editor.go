package ime

import "strings"

// Editor is a single line of typed text: committed runes plus the
// syllable the composer is still working on.
type Editor struct {
	layout   Layout
	composer *Composer
	text     []rune
}

func NewEditor(layout Layout) *Editor {
	return &Editor{layout: layout, composer: NewComposer(), text: make([]rune, 0, 32)}
}

// TypeKey feeds a keystroke. It reports false when the key is not part of
// the layout; such keys are committed literally.
func (e *Editor) TypeKey(key rune) bool {
	letter, ok := e.layout.Letter(key)
	if !ok {
		e.AppendLiteral(key)
		return false
	}
	res := e.composer.Feed(letter)
	e.text = append(e.text, []rune(res.Commit)...)
	return true
}

func (e *Editor) AppendLiteral(r rune) {
	e.text = append(e.text, []rune(e.composer.Flush())...)
	e.text = append(e.text, r)
}

// Backspace undoes the last letter of the syllable in progress, or drops
// the last committed rune when nothing is being composed.
func (e *Editor) Backspace() {
	if _, ok := e.composer.Backspace(); ok {
		return
	}
	if len(e.text) > 0 {
		e.text = e.text[:len(e.text)-1]
	}
}

// Enter returns the finished line and clears the editor.
func (e *Editor) Enter() string {
	line := e.FlushText()
	e.text = e.text[:0]
	return line
}

// FlushText commits the syllable in progress and returns the whole line.
func (e *Editor) FlushText() string {
	e.text = append(e.text, []rune(e.composer.Flush())...)
	return string(e.text)
}

// Text renders the line without committing anything.
func (e *Editor) Text() string {
	var b strings.Builder
	b.Grow(len(e.text)*3 + 3)
	b.WriteString(string(e.text))
	b.WriteString(e.composer.Preedit())
	return b.String()
}

// TypeKeys replays keys through a fresh editor. '\b' and DEL act as
// backspace.
func TypeKeys(layout Layout, keys string) string {
	e := NewEditor(layout)
	for _, key := range keys {
		switch key {
		case '\b', 0x7f:
			e.Backspace()
		default:
			e.TypeKey(key)
		}
	}
	return e.FlushText()
}
