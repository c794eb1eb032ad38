package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// isColorEnabled resolves --color for writer. In auto mode color is used
// only on a terminal and only when NO_COLOR is unset.
func isColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTerminal(writer)
	}
}

func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

type styles struct {
	Header  lipgloss.Style
	Char    lipgloss.Style
	Class   map[string]lipgloss.Style
	Dim     lipgloss.Style
	Border  lipgloss.Style
	Preedit lipgloss.Style
}

func newStyles(colorEnabled bool) styles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return styles{
			Header:  plain.Bold(true),
			Char:    plain,
			Class:   map[string]lipgloss.Style{},
			Dim:     plain,
			Border:  plain,
			Preedit: plain.Underline(true),
		}
	}
	return styles{
		Header: plain.Foreground(lipgloss.Color("11")).Bold(true),
		Char:   plain.Foreground(lipgloss.Color("14")).Bold(true),
		Class: map[string]lipgloss.Style{
			"lead":          plain.Foreground(lipgloss.Color("10")),
			"vowel":         plain.Foreground(lipgloss.Color("12")),
			"tail":          plain.Foreground(lipgloss.Color("13")),
			"hcj-consonant": plain.Foreground(lipgloss.Color("10")).Italic(true),
			"hcj-vowel":     plain.Foreground(lipgloss.Color("12")).Italic(true),
			"syllable":      plain.Foreground(lipgloss.Color("14")),
		},
		Dim:     plain.Foreground(lipgloss.Color("8")),
		Border:  plain.Foreground(lipgloss.Color("8")),
		Preedit: plain.Underline(true).Foreground(lipgloss.Color("14")),
	}
}

func (s styles) class(name string) lipgloss.Style {
	if style, ok := s.Class[name]; ok {
		return style
	}
	return s.Dim
}
