package seq

import (
	"io"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Reader reads the UTF-8 encoding of a Sequence.
type Reader struct {
	s    Sequence
	i    int
	tail []byte // unread bytes of a rune split across Read calls
}

// statically ensure that certain interfaces are implemented by Reader
var (
	_ io.Reader     = &Reader{}
	_ io.RuneReader = &Reader{}
)

func NewReader(s Sequence) *Reader {
	return &Reader{s: s}
}

func (r *Reader) ReadRune() (ch rune, size int, err error) {
	if len(r.tail) > 0 {
		// NOTE(akavel): mixing Read and ReadRune mid-rune yields RuneError
		r.tail = nil
		return utf8.RuneError, 1, nil
	}
	if r.i >= r.s.Len() {
		return 0, 0, io.EOF
	}
	ch = r.s.RuneAt(r.i)
	r.i++
	return ch, utf8.RuneLen(ch), nil
}

func (r *Reader) Read(buf []byte) (int, error) {
	n := copy(buf, r.tail)
	r.tail = r.tail[n:]
	var enc [utf8.UTFMax]byte
	for n < len(buf) && r.i < r.s.Len() {
		w := utf8.EncodeRune(enc[:], r.s.RuneAt(r.i))
		r.i++
		c := copy(buf[n:], enc[:w])
		n += c
		if c < w {
			r.tail = append([]byte(nil), enc[c:w]...)
		}
	}
	if n == 0 && len(buf) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// FindSubmatch matches re against s and returns the subsequences of s for
// the whole match and each group. Groups that did not participate in the
// match are nil. A nil result means no match.
func FindSubmatch(s Sequence, re *regexp2.Regexp) ([]Sequence, error) {
	m, err := re.FindRunesMatch(Runes(s))
	if err != nil || m == nil {
		return nil, err
	}
	groups := m.Groups()
	result := make([]Sequence, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		result[i] = s.SubSequence(g.Index, g.Index+g.Length)
	}
	return result, nil
}

func Match(s Sequence, re *regexp2.Regexp) (bool, error) {
	return re.MatchRunes(Runes(s))
}

// FindAll returns the subsequences of s covered by successive
// non-overlapping matches of re.
func FindAll(s Sequence, re *regexp2.Regexp) ([]Sequence, error) {
	var all []Sequence
	m, err := re.FindRunesMatch(Runes(s))
	for m != nil && err == nil {
		all = append(all, s.SubSequence(m.Index, m.Index+m.Length))
		m, err = re.FindNextMatch(m)
	}
	return all, err
}
