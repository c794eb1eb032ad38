package ime

import (
	"github.com/gg582/hanjamo/pkg/jamo"
)

// Result is what one keystroke produced: text that is final and the
// syllable still being edited.
type Result struct {
	Commit  string
	Preedit string
}

// Composer runs the two-set automaton over HCJ letters. It holds at most
// one syllable in progress.
type Composer struct {
	lead  rune
	vowel rune
	tail  rune

	// Set when the letter in that slot was combined from two keystrokes.
	// Backspace splits those and removes single-key letters whole, so a
	// shifted ㄲ goes in one step while ㄱ+ㄱ goes back to ㄱ.
	leadPair, vowelPair, tailPair bool
}

func NewComposer() *Composer {
	return &Composer{}
}

// Feed processes one HCJ letter. Anything else flushes the syllable in
// progress and is committed as is.
func (c *Composer) Feed(letter rune) Result {
	switch jamo.ClassOf(letter) {
	case jamo.ClassHCJVowel:
		if jamo.IsHCJModern(letter) {
			return c.handleVowel(letter)
		}
	case jamo.ClassHCJConsonant:
		if jamo.IsHCJModern(letter) {
			return c.handleConsonant(letter)
		}
	}
	return Result{Commit: c.Flush() + string(letter)}
}

// Backspace undoes the last keystroke of the syllable in progress.
func (c *Composer) Backspace() (string, bool) {
	switch {
	case c.tail != 0:
		c.tail = shrink(jamo.ClassTail, c.tail, &c.tailPair)
	case c.vowel != 0:
		c.vowel = shrink(jamo.ClassVowel, c.vowel, &c.vowelPair)
	case c.lead != 0:
		c.lead = shrink(jamo.ClassLead, c.lead, &c.leadPair)
	default:
		return "", false
	}
	return c.Preedit(), true
}

func shrink(role jamo.Class, r rune, pair *bool) rune {
	if !*pair {
		return 0
	}
	*pair = false
	if first, _, ok := jamo.Split(role, r); ok {
		return first
	}
	return 0
}

// Flush commits the syllable in progress and resets the automaton.
func (c *Composer) Flush() string {
	committed := c.Preedit()
	c.reset(0, 0)
	return committed
}

func (c *Composer) Empty() bool {
	return c.lead == 0 && c.vowel == 0
}

func (c *Composer) handleConsonant(letter rune) Result {
	if c.vowel == 0 {
		if c.lead == 0 {
			c.lead = letter
			return Result{Preedit: c.Preedit()}
		}
		if combined, ok := jamo.Combine(jamo.ClassLead, c.lead, letter); ok {
			c.lead, c.leadPair = combined, true
			return Result{Preedit: c.Preedit()}
		}
		return c.restart(letter, 0)
	}

	if c.lead == 0 || !canTail(letter) {
		return c.restart(letter, 0)
	}
	if c.tail == 0 {
		c.tail = letter
		return Result{Preedit: c.Preedit()}
	}
	if combined, ok := jamo.Combine(jamo.ClassTail, c.tail, letter); ok {
		c.tail, c.tailPair = combined, true
		return Result{Preedit: c.Preedit()}
	}
	return c.restart(letter, 0)
}

func (c *Composer) handleVowel(letter rune) Result {
	if c.vowel == 0 {
		c.vowel = letter
		return Result{Preedit: c.Preedit()}
	}

	if c.tail != 0 {
		// The tail moves to the new syllable; a cluster gives up only its
		// second letter.
		carry, carryPair := c.tail, c.tailPair
		c.tail, c.tailPair = 0, false
		if !canLead(carry) {
			if first, second, ok := jamo.Split(jamo.ClassTail, carry); ok {
				c.tail, carry, carryPair = first, second, false
			}
		}
		commit := c.Preedit()
		c.reset(carry, letter)
		c.leadPair = carryPair
		return Result{Commit: commit, Preedit: c.Preedit()}
	}

	if combined, ok := jamo.Combine(jamo.ClassVowel, c.vowel, letter); ok {
		c.vowel, c.vowelPair = combined, true
		return Result{Preedit: c.Preedit()}
	}
	return c.restart(0, letter)
}

// restart commits the current syllable and starts a new one.
func (c *Composer) restart(lead, vowel rune) Result {
	commit := c.Preedit()
	c.reset(lead, vowel)
	return Result{Commit: commit, Preedit: c.Preedit()}
}

func (c *Composer) reset(lead, vowel rune) {
	c.lead, c.vowel, c.tail = lead, vowel, 0
	c.leadPair, c.vowelPair, c.tailPair = false, false, false
}

// Preedit renders the syllable in progress.
func (c *Composer) Preedit() string {
	switch {
	case c.lead == 0 && c.vowel == 0:
		return ""
	case c.vowel == 0:
		return string(c.lead)
	case c.lead == 0:
		return string(c.vowel)
	}
	tail := jamo.NoTail
	if c.tail != 0 {
		tail = jamo.Char(c.tail)
	}
	syllable, err := jamo.J2H(jamo.Char(c.lead), jamo.Char(c.vowel), tail)
	if err != nil {
		return string([]rune{c.lead, c.vowel})
	}
	return string(syllable)
}

func canLead(letter rune) bool {
	_, err := jamo.HCJ2J(letter, jamo.ClassLead)
	return err == nil
}

func canTail(letter rune) bool {
	_, err := jamo.HCJ2J(letter, jamo.ClassTail)
	return err == nil
}
