// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "strings"

// DefaultWidth is the number of spaces per indentation level.
const DefaultWidth = 2

// Indent inserts newlines and indentation into flat CBOR diagnostic
// notation. Each nesting level is indented by width spaces. A negative
// width is treated as zero.
//
// Every input character appears in the output in its original order;
// the only modification is inserted runs of a newline followed by
// spaces. Stripping those runs reproduces the input exactly.
func Indent(text string, width int) string {
	if width < 0 {
		width = 0
	}

	var out strings.Builder
	out.Grow(len(text) + len(text)/2)

	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]

		if c == '"' || c == '\'' {
			end := literalEnd(text, i)
			out.WriteString(text[i : end+1])
			i = end
			continue
		}

		// << and >> delimit embedded CBOR byte content. They are
		// consumed as single units so neither half is considered for
		// any other rule. They do not change the depth: the container
		// inside <<...>> indents relative to whatever holds the tag,
		// not the marker.
		if (c == '<' || c == '>') && i+1 < len(text) && text[i+1] == c {
			out.WriteByte(c)
			out.WriteByte(c)
			i++
			continue
		}

		switch c {
		case '{', '[':
			out.WriteByte(c)
			depth++
			lineBreak(&out, depth, width)
		case '}', ']':
			// Clamp at zero: a close with no matching open is emitted
			// at column zero instead of underflowing.
			if depth > 0 {
				depth--
			}
			lineBreak(&out, depth, width)
			out.WriteByte(c)
		case ',':
			out.WriteByte(c)
			lineBreak(&out, depth, width)
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

// literalEnd returns the index of the quote closing the literal that
// opens at text[start]. A backslash escapes the character after it, so
// an escaped quote does not close the span. When the input ends inside
// the literal, the last index of text is returned and the whole
// remainder is part of the span.
func literalEnd(text string, start int) int {
	quote := text[start]
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return len(text) - 1
}

func lineBreak(out *strings.Builder, depth, width int) {
	out.WriteByte('\n')
	for i := 0; i < depth*width; i++ {
		out.WriteByte(' ')
	}
}
