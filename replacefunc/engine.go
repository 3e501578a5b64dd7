// Package replacefunc holds the bulk replace engine: an ordered list of
// key/value pairs applied to a text buffer with case-insensitive matching.
package replacefunc

import (
	"sort"
	"unicode/utf8"
)

// Mode selects which side of a pair is searched for.
type Mode int

const (
	Forward Mode = iota // search Key, insert Value
	Reverse             // search Value, insert Key
)

func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Result reports what a bulk replace did to the buffer.
// Spans index the final buffer text.
type Result struct {
	Count int
	Spans []Span
}

// Apply replaces every case-insensitive occurrence of each pair's Key with
// its Value, pair by pair in list order.
func Apply(pairs PairList, buf Buffer) Result {
	return ApplyMode(pairs, buf, Forward)
}

// ApplyReverse is Apply with Key and Value swapped. Running it over the
// output of Apply does not necessarily restore the original text when keys
// and values overlap.
func ApplyReverse(pairs PairList, buf Buffer) Result {
	return ApplyMode(pairs, buf, Reverse)
}

func ApplyMode(pairs PairList, buf Buffer, mode Mode) Result {
	var res Result
	for _, p := range pairs.pairs {
		search, insert := p.Key, p.Value
		if mode == Reverse {
			search, insert = p.Value, p.Key
		}
		replacePair(buf, search, insert, &res)
	}
	return res
}

func replacePair(buf Buffer, search, insert string, res *Result) {
	if search == "" {
		return
	}
	if tb, ok := buf.(*TextBuffer); ok {
		replaceRunes(tb, []rune(search), []rune(insert), res)
		return
	}
	searchLen := utf8.RuneCountInString(search)
	insertLen := utf8.RuneCountInString(insert)
	pos := 0
	for {
		start, ok := buf.Search(search, pos)
		if !ok {
			return
		}
		end := start + searchLen
		buf.Delete(start, end)
		buf.Insert(start, insert)
		res.Spans = ShiftSpans(res.Spans, start, end, insertLen-searchLen)
		if insertLen > 0 {
			res.Spans = append(res.Spans, Span{Start: start, End: start + insertLen})
		}
		res.Count++
		pos = start + insertLen
	}
}

// replaceRunes does what the Search/Delete/Insert loop does in one pass
// over the text. Matches are found in the original text; each match ends
// where the next search starts.
func replaceRunes(b *TextBuffer, search, insert []rune, res *Result) {
	var matches []int
	for from := 0; ; {
		i, ok := indexFold(b.runes, search, from)
		if !ok {
			break
		}
		matches = append(matches, i)
		from = i + len(search)
	}
	if len(matches) == 0 {
		return
	}
	delta := len(insert) - len(search)

	out := make([]rune, 0, len(b.runes)+len(matches)*delta)
	prev := 0
	for _, m := range matches {
		out = append(out, b.runes[prev:m]...)
		out = append(out, insert...)
		prev = m + len(search)
	}
	out = append(out, b.runes[prev:]...)
	b.runes = out

	kept := res.Spans[:0]
	for _, sp := range res.Spans {
		// k matches end at or before the span and shift it
		k := sort.Search(len(matches), func(j int) bool {
			return matches[j]+len(search) > sp.Start
		})
		if k < len(matches) && matches[k] < sp.End {
			continue
		}
		kept = append(kept, Span{Start: sp.Start + k*delta, End: sp.End + k*delta})
	}
	res.Spans = kept
	if len(insert) > 0 {
		for j, m := range matches {
			start := m + j*delta
			res.Spans = append(res.Spans, Span{Start: start, End: start + len(insert)})
		}
	}
	res.Count += len(matches)
}

// ShiftSpans keeps spans aligned after [start, end) was replaced by text
// delta runes longer. Spans cut by the edit are dropped. The input slice is
// reused.
func ShiftSpans(spans []Span, start, end, delta int) []Span {
	out := spans[:0]
	for _, s := range spans {
		switch {
		case s.End <= start:
			out = append(out, s)
		case s.Start >= end:
			out = append(out, Span{Start: s.Start + delta, End: s.End + delta})
		}
	}
	return out
}
