package jamo

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidJamo matches every *InvalidJamoError under errors.Is.
var ErrInvalidJamo = errors.New("jamo: invalid jamo")

// InvalidJamoError reports a character that cannot play the role asked of it.
type InvalidJamoError struct {
	Codepoint int
	Reason    string
}

func (e *InvalidJamoError) Error() string {
	if e.Codepoint < 0 || e.Codepoint > utf8.MaxRune {
		return fmt.Sprintf("jamo: invalid codepoint %d: %s", e.Codepoint, e.Reason)
	}
	return fmt.Sprintf("jamo: could not parse U+%04X %q: %s", e.Codepoint, rune(e.Codepoint), e.Reason)
}

func (e *InvalidJamoError) Is(target error) bool {
	return target == ErrInvalidJamo
}

// Rune returns the offending character.
func (e *InvalidJamoError) Rune() rune {
	return rune(e.Codepoint)
}

func invalid(r rune, format string, args ...any) *InvalidJamoError {
	return &InvalidJamoError{Codepoint: int(r), Reason: fmt.Sprintf(format, args...)}
}
