package editorfunc

import (
	"fmt"
	"sort"
	"strings"

	"textscrub/replacefunc"
	"textscrub/themefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type cellStyle int

const (
	styleNone cellStyle = iota
	styleCursor
	styleSelection
	styleReplace
	styleFind
)

func (e *TextEditor) tagFor(st cellStyle) string {
	p := e.palette
	switch st {
	case styleCursor:
		return colorTag(p.Background, p.Cursor)
	case styleSelection:
		return colorTag(p.SelectionFg, p.SelectionBg)
	case styleReplace:
		return colorTag(p.ReplaceFg, p.ReplaceBg)
	case styleFind:
		return colorTag(p.FindFg, p.FindBg)
	}
	return "[-:-]"
}

func colorTag(fg, bg tcell.Color) string {
	return fmt.Sprintf("[%s:%s]", themefunc.Tag(fg), themefunc.Tag(bg))
}

// spanCursor answers "is off inside a span" for increasing offsets.
type spanCursor struct {
	spans []replacefunc.Span
	i     int
}

func newSpanCursor(spans []replacefunc.Span) *spanCursor {
	sorted := append([]replacefunc.Span(nil), spans...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Start < sorted[b].Start })
	return &spanCursor{spans: sorted}
}

func (c *spanCursor) contains(off int) bool {
	for c.i < len(c.spans) && c.spans[c.i].End <= off {
		c.i++
	}
	return c.i < len(c.spans) && off >= c.spans[c.i].Start
}

// renderState carries the highlight cursors through one redraw.
type renderState struct {
	sel     replacefunc.Span
	replace *spanCursor
	find    *spanCursor
}

func (e *TextEditor) newRenderState() *renderState {
	rs := &renderState{
		replace: newSpanCursor(e.replaceSpans),
		find:    newSpanCursor(e.findSpans),
	}
	if start, end, ok := e.selectionRange(); ok {
		rs.sel = replacefunc.Span{Start: start, End: end}
	}
	return rs
}

func (e *TextEditor) styleAt(off, x, y int, rs *renderState) cellStyle {
	// both cursors advance on every call so offsets stay increasing
	inReplace := rs.replace.contains(off)
	inFind := rs.find.contains(off)
	switch {
	case y == e.cursorY && x == e.cursorX:
		return styleCursor
	case off >= rs.sel.Start && off < rs.sel.End:
		return styleSelection
	case inReplace:
		return styleReplace
	case inFind:
		return styleFind
	}
	return styleNone
}

// renderLine returns one line with colour tags for cursor, selection and
// highlights. lineStart is the rune offset of the line in the document.
func (e *TextEditor) renderLine(y, lineStart int, rs *renderState) string {
	runes := []rune(e.content[y])
	var out, seg strings.Builder
	cur := styleNone
	for x := 0; x <= len(runes); x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		} else if y != e.cursorY || x != e.cursorX {
			break
		}
		st := e.styleAt(lineStart+x, x, y, rs)
		if st != cur {
			out.WriteString(tview.Escape(seg.String()))
			seg.Reset()
			out.WriteString(e.tagFor(st))
			cur = st
		}
		seg.WriteRune(r)
	}
	out.WriteString(tview.Escape(seg.String()))
	if cur != styleNone {
		out.WriteString("[-:-]")
	}
	return out.String()
}

// redraw updates the TextView with highlighted content and cursor.
func (e *TextEditor) redraw() {
	e.calculateHeight()
	row, col := e.GetScrollOffset()
	rs := e.newRenderState()
	var out strings.Builder
	lineStart := 0
	for y, line := range e.content {
		if y > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(e.renderLine(y, lineStart, rs))
		lineStart += runeLen(line) + 1
	}
	e.Clear()
	e.Write([]byte(out.String()))
	e.ScrollTo(row, col)
}
