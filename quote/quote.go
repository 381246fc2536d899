// Package quote strips and re-adds markdown blockquote markers without
// losing track of source offsets.
package quote // import "gopkg.in/akavel/mdseq.v1/quote"

import (
	"strings"

	"gopkg.in/akavel/mdseq.v1/seq"
)

// Trim removes leading spaces, a '>' and one space after it from line. A
// line without a quote marker is returned as is.
func Trim(line seq.Sequence) seq.Sequence {
	trimmed := seq.TrimLeft(line, " ")
	if !seq.HasPrefix(trimmed, ">") {
		return line
	}
	return seq.TrimPrefix(trimmed.SubSequence(1, trimmed.Len()), " ")
}

// IsQuoted reports whether line starts a blockquote.
func IsQuoted(line seq.Sequence) bool {
	return seq.HasPrefix(seq.TrimLeft(line, " "), ">")
}

// Strip splits s into lines and trims one level of quoting from each.
func Strip(s seq.Sequence) []seq.Sequence {
	lines := seq.Lines(s)
	for i := range lines {
		lines[i] = Trim(lines[i])
	}
	return lines
}

// Requote puts prefix in front of every line.
func Requote(lines []seq.Sequence, prefix string) []seq.Sequence {
	out := make([]seq.Sequence, len(lines))
	for i, line := range lines {
		out[i] = seq.NewPrefixed(prefix, line)
	}
	return out
}

func Join(lines []seq.Sequence) string {
	buf := strings.Builder{}
	for _, line := range lines {
		buf.WriteString(line.String())
	}
	return buf.String()
}
