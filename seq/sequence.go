// Package seq provides immutable rune sequences that remember where each of
// their runes came from in an original source buffer.
//
// All indexes and lengths are counted in runes. A source offset is a rune
// index into the Source a sequence was ultimately cut from.
package seq // import "gopkg.in/akavel/mdseq.v1/seq"

import "fmt"

// Sequence is a read-only, source-mapped run of text.
//
// RuneAt and SubSequence panic with a *BoundsError when given an index or
// range outside of [0, Len()].
type Sequence interface {
	Len() int
	RuneAt(i int) rune
	SubSequence(start, end int) Sequence

	// OffsetAt returns the offset in Base() of the rune at index i. The
	// result is false if the rune does not come from the source, e.g. it
	// was injected as a prefix.
	OffsetAt(i int) (int, bool)

	Base() *Source
	StartOffset() int
	EndOffset() int
	SourceRange() Range

	String() string
}

// Range is a half-open span [Start, End) of source offsets.
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) Len() int      { return r.End - r.Start }
func (r Range) IsEmpty() bool { return r.End <= r.Start }

func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// BoundsError reports an index or range bound that fell outside a sequence.
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("seq: index out of range [%d] with length %d", e.Index, e.Len)
}

func outOfBounds(i, n int) {
	panic(&BoundsError{Index: i, Len: n})
}

// Catch runs f and returns the *BoundsError it panicked with, if any. Other
// panics are propagated.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if be, ok := r.(*BoundsError); ok {
			err = be
			return
		}
		panic(r)
	}()
	f()
	return nil
}

// checkRange validates start before end, like the bounds checks on slicing.
func checkRange(start, end, n int) {
	if start < 0 || start > n {
		outOfBounds(start, n)
	}
	if end > n {
		outOfBounds(end, n)
	}
}
