package replacefunc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(kv ...string) PairList {
	var ps []Pair
	for i := 0; i+1 < len(kv); i += 2 {
		ps = append(ps, Pair{Key: kv[i], Value: kv[i+1]})
	}
	return NewPairList(ps...)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		pairs PairList
		text  string
		want  string
		count int
	}{
		{"mixed case", pairs("foo", "bar"), "foo FOO foobar", "bar bar barbar", 3},
		{"no pairs", pairs(), "foo FOO foobar", "foo FOO foobar", 0},
		{"no match", pairs("qux", "bar"), "foo", "foo", 0},
		{"empty text", pairs("foo", "bar"), "", "", 0},
		{"later pair sees earlier insert", pairs("a", "b", "b", "c"), "a", "c", 2},
		{"value contains key", pairs("foo", "foofoo"), "foo foo", "foofoo foofoo", 2},
		{"shorter value", pairs("hello", "hi"), "Hello, HELLO world", "hi, hi world", 2},
		{"unicode fold", pairs("äpfel", "apples"), "ÄPFEL und Äpfel", "apples und apples", 2},
		{"multiline", pairs("cat", "dog"), "cat\nCat\n\ncAt", "dog\ndog\n\ndog", 3},
		{"duplicates", pairs("a", "b", "a", "c"), "aa", "bb", 2},
		{"regex metacharacters are literal", pairs("a.c", "x"), "abc a.c", "abc x", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewTextBuffer(tt.text)
			res := Apply(tt.pairs, buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.count, res.Count)
		})
	}
}

func TestApplyHighlightsInsertedSpans(t *testing.T) {
	buf := NewTextBuffer("foo FOO foobar")
	res := Apply(pairs("foo", "bar"), buf)
	assert.Equal(t, []Span{{0, 3}, {4, 7}, {8, 11}}, res.Spans)
	for _, s := range res.Spans {
		assert.Equal(t, "bar", string([]rune(buf.String())[s.Start:s.End]))
	}
}

func TestApplyShiftsEarlierSpans(t *testing.T) {
	buf := NewTextBuffer("ab")
	res := Apply(pairs("b", "BBB", "a", "zz"), buf)
	require.Equal(t, "zzBBB", buf.String())
	assert.Equal(t, 2, res.Count)
	assert.ElementsMatch(t, []Span{{0, 2}, {2, 5}}, res.Spans)
}

func TestApplyDropsOverwrittenSpans(t *testing.T) {
	buf := NewTextBuffer("a")
	res := Apply(pairs("a", "b", "b", "c"), buf)
	assert.Equal(t, []Span{{0, 1}}, res.Spans)
}

func TestApplyLeavesNoOriginalOccurrences(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"THE THE the tHe",
		"nothing to see",
	}
	list := pairs("the", "a", "fox", "cat", "dog", "emu")
	for _, text := range texts {
		buf := NewTextBuffer(text)
		Apply(list, buf)
		out := strings.ToLower(buf.String())
		for _, p := range list.Pairs() {
			assert.NotContains(t, out, p.Key, "text %q", text)
		}
	}
}

func TestApplyReverse(t *testing.T) {
	buf := NewTextBuffer("BAR bar baz")
	res := ApplyReverse(pairs("foo", "bar"), buf)
	assert.Equal(t, "foo foo baz", buf.String())
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []Span{{0, 3}, {4, 7}}, res.Spans)
}

func TestReverseIsNotAnInverse(t *testing.T) {
	list := pairs("a", "b")
	buf := NewTextBuffer("ab")
	Apply(list, buf)
	require.Equal(t, "bb", buf.String())
	ApplyReverse(list, buf)
	assert.Equal(t, "aa", buf.String())
}

func TestApplySkipsEmptySearch(t *testing.T) {
	list := NewPairList(Pair{Key: "", Value: "x"})
	buf := NewTextBuffer("abc")
	res := Apply(list, buf)
	assert.Equal(t, "abc", buf.String())
	assert.Zero(t, res.Count)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "reverse", Reverse.String())
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestShiftSpans(t *testing.T) {
	tests := []struct {
		name              string
		spans             []Span
		start, end, delta int
		want              []Span
	}{
		{"before edit kept", []Span{{0, 2}}, 5, 6, 3, []Span{{0, 2}}},
		{"touching start kept", []Span{{0, 5}}, 5, 5, 2, []Span{{0, 5}}},
		{"after edit shifted", []Span{{6, 8}}, 2, 4, -1, []Span{{5, 7}}},
		{"insert at span start shifts", []Span{{3, 5}}, 3, 3, 2, []Span{{5, 7}}},
		{"overlap dropped", []Span{{0, 4}, {6, 9}}, 3, 7, 0, []Span{}},
		{"inside dropped", []Span{{2, 8}}, 4, 5, 1, []Span{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShiftSpans(append([]Span(nil), tt.spans...), tt.start, tt.end, tt.delta)
			assert.Equal(t, tt.want, append([]Span{}, got...))
		})
	}
}

// stepBuffer hides the TextBuffer type so the engine goes through the
// Search/Delete/Insert calls of the Buffer interface.
type stepBuffer struct {
	tb *TextBuffer
}

func (b stepBuffer) Search(pattern string, from int) (int, bool) { return b.tb.Search(pattern, from) }
func (b stepBuffer) Delete(start, end int)                       { b.tb.Delete(start, end) }
func (b stepBuffer) Insert(pos int, s string)                    { b.tb.Insert(pos, s) }
func (b stepBuffer) Len() int                                    { return b.tb.Len() }

func TestApplyOnePassMatchesBufferCalls(t *testing.T) {
	tests := []struct {
		name  string
		pairs PairList
		text  string
	}{
		{"grow and shrink", pairs("b", "BBB", "a", "zz", "zb", "q"), "ab ba abab"},
		{"value contains key", pairs("foo", "foofoo", "o", "0"), "foo FOO"},
		{"chain", pairs("a", "b", "b", "c", "c", "dd"), "abcabc"},
		{"cut earlier spans", pairs("x", "yy", "yyy", "z"), "xx yx"},
		{"unicode", pairs("ß", "ss", "SS", "ẞ"), "Straße STRASSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{Forward, Reverse} {
				fast := NewTextBuffer(tt.text)
				fastRes := ApplyMode(tt.pairs, fast, mode)
				slow := stepBuffer{tb: NewTextBuffer(tt.text)}
				slowRes := ApplyMode(tt.pairs, slow, mode)

				assert.Equal(t, slow.tb.String(), fast.String(), mode.String())
				assert.Equal(t, slowRes.Count, fastRes.Count, mode.String())
				assert.Equal(t, slowRes.Spans, fastRes.Spans, mode.String())
			}
		})
	}
}

func TestApplyLargeDocument(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 5000)
	buf := NewTextBuffer(text)
	res := Apply(pairs("the", "a", "dog", "cat"), buf)
	assert.Equal(t, 15000, res.Count)
	assert.Len(t, res.Spans, 15000)
	assert.Equal(t, strings.Repeat("a quick brown fox jumps over a lazy cat\n", 5000), buf.String())
}
