package seq

import "github.com/rivo/uniseg"

// Graphemes splits s into user-perceived characters. Each cluster is a
// subsequence of s, so it keeps its source offsets.
func Graphemes(s Sequence) []Sequence {
	if s.Len() == 0 {
		return nil
	}
	g := uniseg.NewGraphemes(s.String())
	out := make([]Sequence, 0, s.Len())
	i := 0
	for g.Next() {
		n := len(g.Runes())
		out = append(out, s.SubSequence(i, i+n))
		i += n
	}
	return out
}
