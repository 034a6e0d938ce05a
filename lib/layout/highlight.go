// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles Highlight applies to the token classes the
// scanner can identify without parsing: literals, numbers, tag heads,
// and structural delimiters.
type Theme struct {
	// Delimiter styles { } [ ] , and the key/value colon.
	Delimiter lipgloss.Style

	// String styles double-quoted text strings, quotes included.
	String lipgloss.Style

	// Bytes styles quote-delimited byte strings (h'...', b64'...').
	Bytes lipgloss.Style

	// Number styles numeric values, including floats and negatives.
	Number lipgloss.Style

	// Tag styles the number of a tagged value, e.g. the 24 in 24(...).
	Tag lipgloss.Style
}

// DefaultTheme returns the standard theme bound to renderer. The
// renderer decides the color profile, so styles degrade to plain text
// when the output is not a terminal.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	return Theme{
		Delimiter: renderer.NewStyle().Faint(true),
		String:    renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Bytes:     renderer.NewStyle().Foreground(lipgloss.Color("3")),
		Number:    renderer.NewStyle().Foreground(lipgloss.Color("6")),
		Tag:       renderer.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// Highlight applies the theme to diagnostic notation text. It uses
// the same literal-aware scan as Indent, so delimiter characters
// inside a string are styled as string content, never as structure.
// The text itself is not altered; only terminal escape sequences are
// added around spans.
func (t Theme) Highlight(text string) string {
	var out strings.Builder
	out.Grow(len(text) * 2)

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			end := literalEnd(text, i)
			out.WriteString(t.String.Render(text[i : end+1]))
			i = end

		case c == '\'':
			end := literalEnd(text, i)
			out.WriteString(t.Bytes.Render(text[i : end+1]))
			i = end

		case isDelimiter(c):
			out.WriteString(t.Delimiter.Render(string(c)))

		case isDigit(c) || (c == '-' && i+1 < len(text) && isDigit(text[i+1])):
			end := numberEnd(text, i)
			style := t.Number
			if end+1 < len(text) && text[end+1] == '(' {
				style = t.Tag
			}
			out.WriteString(style.Render(text[i : end+1]))
			i = end

		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// numberEnd returns the last index of the numeric token starting at
// text[start]. It accepts digits, the decimal point, and exponent
// notation. A sign is only part of the token directly after e or E.
func numberEnd(text string, start int) int {
	i := start
	for i+1 < len(text) {
		c := text[i+1]
		switch {
		case isDigit(c) || c == '.' || c == 'e' || c == 'E':
			i++
		case (c == '+' || c == '-') && (text[i] == 'e' || text[i] == 'E'):
			i++
		default:
			return i
		}
	}
	return i
}
