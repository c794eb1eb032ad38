// Package server exposes the jamo conversions over a unix socket.
package server

import (
	"fmt"
	"strings"

	"github.com/gg582/hanjamo/internal/ime"
	"github.com/gg582/hanjamo/pkg/jamo"
)

// Operation names understood by Transcode.
const (
	OpH2J       = "h2j"
	OpJ2HCJ     = "j2hcj"
	OpHangulify = "hangulify"
	OpHCJ2J     = "hcj2j"
	OpType      = "type"
)

// Ops lists the operations in the order they are documented.
func Ops() []string {
	return []string{OpH2J, OpJ2HCJ, OpHangulify, OpHCJ2J + "[:role]", OpType + "[:layout]"}
}

// Transcode applies op to text. hcj2j takes its role after a colon, as in
// "hcj2j:tail".
func Transcode(op, text string) (string, error) {
	name, arg, _ := strings.Cut(op, ":")
	switch name {
	case OpH2J:
		return jamo.H2J(text), nil
	case OpJ2HCJ:
		return jamo.J2HCJ(text), nil
	case OpHangulify:
		return jamo.Hangulify(text), nil
	case OpHCJ2J:
		role, err := jamo.ParseClass(arg)
		if err != nil {
			return "", err
		}
		return hcj2j(text, role)
	case OpType:
		layout, err := ime.LayoutByName(arg)
		if err != nil {
			return "", err
		}
		return ime.TypeKeys(layout, text), nil
	default:
		return "", fmt.Errorf("unknown op %q (available: %s)", op, strings.Join(Ops(), ", "))
	}
}

func hcj2j(text string, role jamo.Class) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for r, err := range jamo.HCJToJamo(text, role) {
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
