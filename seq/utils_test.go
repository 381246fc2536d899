package seq

import (
	"io"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/dlclark/regexp2"
	"github.com/kylelemons/godebug/diff"
)

func strs(ss []Sequence) []string {
	var out []string
	for _, s := range ss {
		if s == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, s.String())
	}
	return out
}

func ranges(ss []Sequence) []Range {
	var out []Range
	for _, s := range ss {
		out = append(out, s.SourceRange())
	}
	return out
}

func TestSub(test *testing.T) {
	src := NewSource("Ala ma kota, a kot ma Alę;")
	s := src.Sequence().SubSequence(4, 11)
	if s.String() != "ma kota" {
		test.Errorf("got %q", s)
	}
	if off, ok := s.OffsetAt(3); !ok || off != 7 {
		test.Errorf("OffsetAt(3): got %d,%v", off, ok)
	}
	if _, ok := s.OffsetAt(7); ok {
		test.Errorf("OffsetAt past end reported ok")
	}
	if src.Slice(s.SourceRange()) != "ma kota" {
		test.Errorf("Slice: got %q", src.Slice(s.SourceRange()))
	}
	if NewSource("Alę").Len() != 3 || NewSource("Alę").RuneAt(2) != 'ę' {
		test.Errorf("Source not counted in runes")
	}
	mustPanic(test, "Sub.RuneAt", 7, func() { s.RuneAt(7) })
	mustPanic(test, "Sub.SubSequence", 8, func() { s.SubSequence(0, 8) })
	mustPanic(test, "Sub.SubSequence reversed", 1, func() { s.SubSequence(2, 1) })
	mustPanic(test, "Source.RuneAt", -1, func() { src.RuneAt(-1) })
}

func TestRange(test *testing.T) {
	cases := []struct {
		r        Range
		expected string
		len      int
	}{
		{NewRange(3, 3), "3", 0},
		{NewRange(3, 7), "3..7", 4},
	}
	for _, c := range cases {
		if c.r.String() != c.expected || c.r.Len() != c.len || c.r.IsEmpty() != (c.len == 0) {
			test.Errorf("%#v: got %q len %d", c.r, c.r.String(), c.r.Len())
		}
	}
	if !NewRange(0, 10).Contains(NewRange(3, 7)) || NewRange(3, 7).Contains(NewRange(0, 10)) {
		test.Errorf("Contains wrong")
	}
}

func TestTrim(test *testing.T) {
	p := NewPrefixed("  ", baseOf("x y  \n"))
	cases := []struct {
		s        Sequence
		expected string
		r        Range
	}{
		{TrimLeft(p, " "), "x y  \n", NewRange(2, 8)},
		{TrimRight(p, " \n"), "  x y", NewRange(2, 5)},
		{Trim(p, " \n"), "x y", NewRange(2, 5)},
		{TrimPrefix(p, "  x"), " y  \n", NewRange(3, 8)},
		{TrimPrefix(p, "nope"), "  x y  \n", NewRange(2, 8)},
		{Trim(NewPrefixed("   ", baseOf("")), " "), "", NewRange(2, 2)},
	}
	for i, c := range cases {
		if c.s.String() != c.expected || c.s.SourceRange() != c.r {
			test.Errorf("case %d: want %q %v got %q %v", i, c.expected, c.r, c.s, c.s.SourceRange())
		}
	}
}

func TestPredicates(test *testing.T) {
	p := NewPrefixed("> ", baseOf("quote"))
	if !HasPrefix(p, "> q") || HasPrefix(p, "> x") || !HasPrefix(p, "") {
		test.Errorf("HasPrefix wrong")
	}
	if HasPrefix(p, "> quotes") {
		test.Errorf("HasPrefix longer than s")
	}
	if !HasSuffix(p, "ote") || HasSuffix(p, "x> quote") || !HasSuffix(p, "> quote") {
		test.Errorf("HasSuffix wrong")
	}
	if IndexRune(p, 'o', 0) != 4 || IndexRune(p, 'o', 5) != -1 || IndexRune(p, ' ', -3) != 1 {
		test.Errorf("IndexRune wrong")
	}
	if !IsBlank(NewPrefixed(" \t", baseOf("\n"))) || IsBlank(p) {
		test.Errorf("IsBlank wrong")
	}
	if !IsEmpty(p.SubSequence(3, 3)) || IsEmpty(p) {
		test.Errorf("IsEmpty wrong")
	}
}

func TestLines(test *testing.T) {
	src := NewSource("> one\n>two\n\nlast")
	lines := Lines(src.Sequence())
	expected := []string{"> one\n", ">two\n", "\n", "last"}
	if got := strs(lines); !reflect.DeepEqual(got, expected) {
		test.Errorf("expected vs. got DIFF:\n%s",
			diff.Diff(spew.Sdump(expected), spew.Sdump(got)))
	}
	if got := ranges(lines); !reflect.DeepEqual(got, []Range{{0, 6}, {6, 11}, {11, 12}, {12, 16}}) {
		test.Errorf("got ranges %v", got)
	}
	if Lines(NewSource("").Sequence()) != nil {
		test.Errorf("empty input should have no lines")
	}
	if got := strs(Lines(NewSource("a\n").Sequence())); !reflect.DeepEqual(got, []string{"a\n"}) {
		test.Errorf("got %q", got)
	}
}

func TestSplit(test *testing.T) {
	p := NewPrefixed("a,", baseOf("b,,c"))
	expected := []string{"a", "b", "", "c"}
	if got := strs(Split(p, ',')); !reflect.DeepEqual(got, expected) {
		test.Errorf("want %q got %q", expected, got)
	}
	if got := strs(Split(baseOf(""), ',')); !reflect.DeepEqual(got, []string{""}) {
		test.Errorf("empty: got %q", got)
	}
}

func TestReader(test *testing.T) {
	p := NewPrefixed("» ", baseOf("żółw"))
	all, err := io.ReadAll(NewReader(p))
	if err != nil {
		test.Fatal(err)
	}
	if string(all) != "» żółw" {
		test.Errorf("got %q", all)
	}

	// one byte at a time splits multi-byte runes across calls
	r := NewReader(p)
	var buf []byte
	one := make([]byte, 1)
	for {
		n, err := r.Read(one)
		buf = append(buf, one[:n]...)
		if err == io.EOF {
			break
		}
	}
	if string(buf) != "» żółw" {
		test.Errorf("bytewise: got %q", buf)
	}

	rr := NewReader(p)
	var runes []rune
	for {
		ch, size, err := rr.ReadRune()
		if err == io.EOF {
			break
		}
		if size == 0 {
			test.Fatalf("zero size rune")
		}
		runes = append(runes, ch)
	}
	if string(runes) != "» żółw" {
		test.Errorf("runewise: got %q", string(runes))
	}
}

func TestFindSubmatch(test *testing.T) {
	p := NewPrefixed("> ", baseOf("[żółw](http://x)"))
	re := regexp2.MustCompile(`\[(\w+)\]\((\w+)://(\w+)\)(z)?`, regexp2.None)
	m, err := FindSubmatch(p, re)
	if err != nil {
		test.Fatal(err)
	}
	expected := []string{"[żółw](http://x)", "żółw", "http", "x", "<nil>"}
	if got := strs(m); !reflect.DeepEqual(got, expected) {
		test.Errorf("expected vs. got DIFF:\n%s",
			diff.Diff(spew.Sdump(expected), spew.Sdump(got)))
	}
	if m[1].SourceRange() != NewRange(3, 7) {
		test.Errorf("group 1 range: got %v", m[1].SourceRange())
	}

	m, err = FindSubmatch(p, regexp2.MustCompile(`nope`, regexp2.None))
	if err != nil || m != nil {
		test.Errorf("no match: got %v, %v", m, err)
	}

	ok, err := Match(p, regexp2.MustCompile(`^> \[`, regexp2.None))
	if err != nil || !ok {
		test.Errorf("Match: got %v, %v", ok, err)
	}

	// a match that includes prefix runes
	m, _ = FindSubmatch(p, regexp2.MustCompile(` \[`, regexp2.None))
	if _, ok := m[0].OffsetAt(0); ok || m[0].String() != " [" {
		test.Errorf("prefix match: got %q", m[0])
	}
}

func TestFindAll(test *testing.T) {
	src := NewSource("a1 b22 c333")
	all, err := FindAll(src.Sequence(), regexp2.MustCompile(`\d+`, regexp2.None))
	if err != nil {
		test.Fatal(err)
	}
	if got := strs(all); !reflect.DeepEqual(got, []string{"1", "22", "333"}) {
		test.Errorf("got %q", got)
	}
	if got := ranges(all); !reflect.DeepEqual(got, []Range{{1, 2}, {4, 6}, {8, 11}}) {
		test.Errorf("got ranges %v", got)
	}
}

func TestGraphemes(test *testing.T) {
	// "e" + combining acute accent is one grapheme of two runes
	p := NewPrefixed("> ", baseOf("e\u0301x"))
	g := Graphemes(p)
	expected := []string{">", " ", "e\u0301", "x"}
	if got := strs(g); !reflect.DeepEqual(got, expected) {
		test.Errorf("want %q got %q", expected, got)
	}
	if g[2].SourceRange() != NewRange(2, 4) {
		test.Errorf("cluster range: got %v", g[2].SourceRange())
	}
	if Graphemes(baseOf("")) != nil {
		test.Errorf("empty: want nil")
	}
}
