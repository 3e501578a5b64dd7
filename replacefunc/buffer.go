package replacefunc

import "unicode"

// Buffer is the mutable text region the engine works on.
// All offsets are rune offsets.
type Buffer interface {
	// Search returns the start of the first case-insensitive match of
	// pattern at or after from.
	Search(pattern string, from int) (int, bool)
	Delete(start, end int)
	Insert(pos int, s string)
	Len() int
}

// Span is a half-open rune range [Start, End).
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// TextBuffer is a Buffer backed by a rune slice.
type TextBuffer struct {
	runes []rune
}

func NewTextBuffer(text string) *TextBuffer {
	return &TextBuffer{runes: []rune(text)}
}

func (b *TextBuffer) Len() int { return len(b.runes) }

func (b *TextBuffer) String() string { return string(b.runes) }

func (b *TextBuffer) Search(pattern string, from int) (int, bool) {
	return indexFold(b.runes, []rune(pattern), from)
}

func (b *TextBuffer) Delete(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start >= end {
		return
	}
	b.runes = append(b.runes[:start], b.runes[end:]...)
}

func (b *TextBuffer) Insert(pos int, s string) {
	if s == "" {
		return
	}
	pos = b.clamp(pos)
	ins := []rune(s)
	out := make([]rune, 0, len(b.runes)+len(ins))
	out = append(out, b.runes[:pos]...)
	out = append(out, ins...)
	out = append(out, b.runes[pos:]...)
	b.runes = out
}

func (b *TextBuffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.runes) {
		return len(b.runes)
	}
	return pos
}

// Find lists every non-overlapping case-insensitive match of pattern in text.
func Find(text, pattern string) []Span {
	p := []rune(pattern)
	if len(p) == 0 {
		return nil
	}
	t := []rune(text)
	var spans []Span
	for from := 0; ; {
		i, ok := indexFold(t, p, from)
		if !ok {
			return spans
		}
		spans = append(spans, Span{Start: i, End: i + len(p)})
		from = i + len(p)
	}
}

// indexFold never wraps: a start at or past the end finds nothing.
func indexFold(text, pattern []rune, from int) (int, bool) {
	if len(pattern) == 0 || from < 0 || from >= len(text) {
		return 0, false
	}
	for i := from; i+len(pattern) <= len(text); i++ {
		if matchFoldAt(text, pattern, i) {
			return i, true
		}
	}
	return 0, false
}

func matchFoldAt(text, pattern []rune, at int) bool {
	for j, pr := range pattern {
		if !equalFoldRune(text[at+j], pr) {
			return false
		}
	}
	return true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	// walk the simple folding orbit of a, same as strings.EqualFold
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
