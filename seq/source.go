package seq

// Source is an original text buffer that sequences are cut from. It is never
// modified after NewSource returns.
type Source struct {
	text  string
	runes []rune
}

func NewSource(text string) *Source {
	return &Source{text: text, runes: []rune(text)}
}

func (s *Source) Len() int       { return len(s.runes) }
func (s *Source) String() string { return s.text }

func (s *Source) RuneAt(i int) rune {
	if i < 0 || i >= len(s.runes) {
		outOfBounds(i, len(s.runes))
	}
	return s.runes[i]
}

// Slice returns the source text covered by r.
func (s *Source) Slice(r Range) string {
	checkRange(r.Start, r.End, len(s.runes))
	if r.End < r.Start {
		outOfBounds(r.End, len(s.runes))
	}
	return string(s.runes[r.Start:r.End])
}

// Sequence returns the whole source as a Sequence.
func (s *Source) Sequence() *Sub {
	return &Sub{src: s, start: 0, end: len(s.runes)}
}

// Sub is a window [start, end) over a Source. Every rune of a Sub maps to a
// source offset.
type Sub struct {
	src        *Source
	start, end int
}

// statically ensure that certain interfaces are implemented by Sub
var _ Sequence = &Sub{}

func (s *Sub) Len() int           { return s.end - s.start }
func (s *Sub) Base() *Source      { return s.src }
func (s *Sub) StartOffset() int   { return s.start }
func (s *Sub) EndOffset() int     { return s.end }
func (s *Sub) SourceRange() Range { return Range{s.start, s.end} }
func (s *Sub) String() string     { return string(s.src.runes[s.start:s.end]) }

func (s *Sub) RuneAt(i int) rune {
	if i < 0 || i >= s.Len() {
		outOfBounds(i, s.Len())
	}
	return s.src.runes[s.start+i]
}

func (s *Sub) OffsetAt(i int) (int, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	}
	return s.start + i, true
}

func (s *Sub) SubSequence(start, end int) Sequence {
	n := s.Len()
	checkRange(start, end, n)
	if end < start {
		outOfBounds(end, n)
	}
	return &Sub{src: s.src, start: s.start + start, end: s.start + end}
}
