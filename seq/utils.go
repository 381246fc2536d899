package seq

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b have the same text, regardless of how they
// are split between prefixes and bases.
func Equal(a, b Sequence) bool {
	if same(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Len() == b.Len() && a.String() == b.String()
}

func same(a, b Sequence) bool {
	switch a := a.(type) {
	case *Prefixed:
		b, ok := b.(*Prefixed)
		return ok && a == b
	case *Sub:
		b, ok := b.(*Sub)
		return ok && a == b
	}
	return false
}

func EqualString(s Sequence, str string) bool {
	return s.String() == str
}

// Hash returns a hash of the text of s. Sequences that are Equal have the
// same Hash.
func Hash(s Sequence) uint64 {
	return xxhash.Sum64String(s.String())
}

func Runes(s Sequence) []rune {
	out := make([]rune, s.Len())
	for i := range out {
		out[i] = s.RuneAt(i)
	}
	return out
}

func IsEmpty(s Sequence) bool { return s.Len() == 0 }

// IsBlank reports whether s contains only whitespace.
func IsBlank(s Sequence) bool {
	for i, n := 0, s.Len(); i < n; i++ {
		if !unicode.IsSpace(s.RuneAt(i)) {
			return false
		}
	}
	return true
}

// Offset is the source position of a single rune. OK is false for runes
// that were not read from the source.
type Offset struct {
	Pos int
	OK  bool
}

func Offsets(s Sequence) []Offset {
	out := make([]Offset, s.Len())
	for i := range out {
		out[i].Pos, out[i].OK = s.OffsetAt(i)
	}
	return out
}

func HasPrefix(s Sequence, prefix string) bool {
	i, n := 0, s.Len()
	for _, r := range prefix {
		if i >= n || s.RuneAt(i) != r {
			return false
		}
		i++
	}
	return true
}

func HasSuffix(s Sequence, suffix string) bool {
	rs := []rune(suffix)
	off := s.Len() - len(rs)
	if off < 0 {
		return false
	}
	for i, r := range rs {
		if s.RuneAt(off+i) != r {
			return false
		}
	}
	return true
}

// IndexRune returns the index of the first r in s at or after from, or -1.
func IndexRune(s Sequence, r rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i, n := from, s.Len(); i < n; i++ {
		if s.RuneAt(i) == r {
			return i
		}
	}
	return -1
}

func TrimLeft(s Sequence, cutset string) Sequence {
	i, n := 0, s.Len()
	for i < n && strings.ContainsRune(cutset, s.RuneAt(i)) {
		i++
	}
	return s.SubSequence(i, n)
}

func TrimRight(s Sequence, cutset string) Sequence {
	n := s.Len()
	for n > 0 && strings.ContainsRune(cutset, s.RuneAt(n-1)) {
		n--
	}
	return s.SubSequence(0, n)
}

func Trim(s Sequence, cutset string) Sequence {
	return TrimRight(TrimLeft(s, cutset), cutset)
}

// TrimPrefix returns s without the leading prefix. If s doesn't start with
// prefix, s is returned unchanged.
func TrimPrefix(s Sequence, prefix string) Sequence {
	if !HasPrefix(s, prefix) {
		return s
	}
	return s.SubSequence(len([]rune(prefix)), s.Len())
}

// Lines splits s after each '\n'. The newline stays with its line. A
// trailing empty line is not returned.
func Lines(s Sequence) []Sequence {
	var lines []Sequence
	begin, n := 0, s.Len()
	for begin < n {
		i := IndexRune(s, '\n', begin)
		if i == -1 {
			lines = append(lines, s.SubSequence(begin, n))
			break
		}
		lines = append(lines, s.SubSequence(begin, i+1))
		begin = i + 1
	}
	return lines
}

// Split slices s into all subsequences separated by sep. An empty s yields a
// single empty subsequence, like strings.Split.
func Split(s Sequence, sep rune) []Sequence {
	var parts []Sequence
	begin := 0
	for {
		i := IndexRune(s, sep, begin)
		if i == -1 {
			return append(parts, s.SubSequence(begin, s.Len()))
		}
		parts = append(parts, s.SubSequence(begin, i))
		begin = i + 1
	}
}
