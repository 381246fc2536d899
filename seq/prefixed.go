package seq

import "strings"

// Prefixed is a literal prefix followed by a base sequence. The prefix runes
// have no source offsets; everything describing the source span (Base,
// StartOffset, EndOffset, SourceRange) comes from the base.
type Prefixed struct {
	prefix []rune
	base   Sequence
}

// statically ensure that certain interfaces are implemented by Prefixed
var _ Sequence = &Prefixed{}

// NewPrefixed puts prefix in front of the whole of base.
func NewPrefixed(prefix string, base Sequence) *Prefixed {
	return NewPrefixedRange(prefix, base, 0, base.Len())
}

// NewPrefixedRange puts prefix in front of base.SubSequence(start, end). Any
// NUL in prefix is replaced with U+FFFD.
func NewPrefixedRange(prefix string, base Sequence, start, end int) *Prefixed {
	prefix = strings.ReplaceAll(prefix, "\x00", "\uFFFD")
	return newPrefixed([]rune(prefix), base.SubSequence(start, end))
}

// newPrefixed takes ownership of an already sanitized prefix.
func newPrefixed(prefix []rune, base Sequence) *Prefixed {
	return &Prefixed{prefix: prefix, base: base}
}

// Prefix returns the synthetic part of p.
func (p *Prefixed) Prefix() string { return string(p.prefix) }

// Unprefixed returns the base part of p.
func (p *Prefixed) Unprefixed() Sequence { return p.base }

func (p *Prefixed) Len() int           { return len(p.prefix) + p.base.Len() }
func (p *Prefixed) Base() *Source      { return p.base.Base() }
func (p *Prefixed) StartOffset() int   { return p.base.StartOffset() }
func (p *Prefixed) EndOffset() int     { return p.base.EndOffset() }
func (p *Prefixed) SourceRange() Range { return p.base.SourceRange() }

func (p *Prefixed) RuneAt(i int) rune {
	if i < 0 || i >= p.Len() {
		outOfBounds(i, p.Len())
	}
	if i < len(p.prefix) {
		return p.prefix[i]
	}
	return p.base.RuneAt(i - len(p.prefix))
}

func (p *Prefixed) OffsetAt(i int) (int, bool) {
	if i < len(p.prefix) {
		return 0, false
	}
	return p.base.OffsetAt(i - len(p.prefix))
}

// SubSequence returns a plain base subsequence when [start, end) does not
// touch the prefix, and a new *Prefixed otherwise.
func (p *Prefixed) SubSequence(start, end int) Sequence {
	checkRange(start, end, p.Len())
	n := len(p.prefix)
	switch {
	case start >= n:
		return p.base.SubSequence(start-n, end-n)
	case end <= n:
		if end < start {
			outOfBounds(end, p.Len())
		}
		// Empty base, still anchored at the base's start.
		return newPrefixed(p.prefix[start:end:end], p.base.SubSequence(0, 0))
	default:
		return newPrefixed(p.prefix[start:n:n], p.base.SubSequence(0, end-n))
	}
}

func (p *Prefixed) String() string {
	return string(p.prefix) + p.base.String()
}

// Equal reports whether p and other have the same text.
func (p *Prefixed) Equal(other Sequence) bool { return Equal(p, other) }
