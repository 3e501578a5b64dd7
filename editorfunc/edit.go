package editorfunc

import (
	"errors"
	"strings"

	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/replacefunc"
)

var ErrNoFileName = errors.New("no file name set")

// offset converts a line/column position to a rune offset in Text().
func (e *TextEditor) offset(x, y int) int {
	off := 0
	for i := 0; i < y && i < len(e.content); i++ {
		off += runeLen(e.content[i]) + 1
	}
	return off + x
}

// position converts a rune offset back to column and line.
func (e *TextEditor) position(off int) (x, y int) {
	for y = 0; y < len(e.content); y++ {
		n := runeLen(e.content[y])
		if off <= n || y == len(e.content)-1 {
			return clamp(off, 0, n), y
		}
		off -= n + 1
	}
	return 0, 0
}

func (e *TextEditor) cursorOffset() int {
	return e.offset(e.cursorX, e.cursorY)
}

func (e *TextEditor) length() int {
	n := len(e.content) - 1
	for _, l := range e.content {
		n += runeLen(l)
	}
	return n
}

// edit replaces the rune range [start, end) with insert. Highlights after
// the edit move with the text; highlights cut by it are dropped.
func (e *TextEditor) edit(start, end int, insert string) {
	runes := []rune(e.Text())
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	text := string(runes[:start]) + insert + string(runes[end:])
	e.content = strings.Split(text, "\n")
	delta := runeLen(insert) - (end - start)
	e.replaceSpans = replacefunc.ShiftSpans(e.replaceSpans, start, end, delta)
	e.findSpans = replacefunc.ShiftSpans(e.findSpans, start, end, delta)
	e.dirty = true
}

// change runs fn and records an undo step if it altered the content.
func (e *TextEditor) change(fn func()) {
	beforeContent := make([]string, len(e.content))
	copy(beforeContent, e.content)
	beforeX, beforeY := e.cursorX, e.cursorY

	fn()

	if !equalStringSlices(beforeContent, e.content) {
		e.recordEdit(beforeContent, e.content, beforeX, beforeY, e.cursorX, e.cursorY)
		e.dirty = true
		e.updateTitle()
	}
}

// InsertText inserts text at the cursor, replacing the selection.
func (e *TextEditor) InsertText(text string) {
	e.change(func() { e.insertText(text) })
	e.ensureCursorVisible()
	e.redraw()
}

func (e *TextEditor) insertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if e.selection.active {
		e.deleteSelection()
	}
	off := e.cursorOffset()
	e.edit(off, off, text)
	e.cursorX, e.cursorY = e.position(off + runeLen(text))
}

// selectionRange returns the selection as normalised rune offsets.
func (e *TextEditor) selectionRange() (start, end int, ok bool) {
	if !e.selection.active {
		return 0, 0, false
	}
	start = e.offset(e.selection.startX, e.selection.startY)
	end = e.offset(e.selection.endX, e.selection.endY)
	if start > end {
		start, end = end, start
	}
	return start, end, start != end
}

// SelectedText returns the currently selected text
func (e *TextEditor) SelectedText() string {
	start, end, ok := e.selectionRange()
	if !ok {
		return ""
	}
	return string([]rune(e.Text())[start:end])
}

// deleteSelection deletes the selected text and returns it.
func (e *TextEditor) deleteSelection() string {
	start, end, ok := e.selectionRange()
	e.selection.active = false
	if !ok {
		return ""
	}
	deleted := string([]rune(e.Text())[start:end])
	e.edit(start, end, "")
	e.cursorX, e.cursorY = e.position(start)
	return deleted
}

// Select marks the rune range [start, end) and puts the cursor at end.
func (e *TextEditor) Select(start, end int) {
	n := e.length()
	start, end = clamp(start, 0, n), clamp(end, 0, n)
	e.selection.startX, e.selection.startY = e.position(start)
	e.selection.endX, e.selection.endY = e.position(end)
	e.selection.active = start != end
	e.cursorX, e.cursorY = e.selection.endX, e.selection.endY
	e.redraw()
}

// SelectAll selects the whole document and reports its word count.
func (e *TextEditor) SelectAll() int {
	e.Select(0, e.length())
	e.cursorX, e.cursorY = 0, 0
	e.ScrollTo(0, 0)
	words := len(strings.Fields(e.Text()))
	e.SetStatus(i18nfunc.N("status.selected_words", words))
	e.redraw()
	return words
}

// Copy puts the selection on the clipboard.
func (e *TextEditor) Copy() error {
	text := e.SelectedText()
	if text == "" {
		return nil
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.SetErrorStatus(i18nfunc.T("status.clipboard_error", map[string]interface{}{"Error": err}))
		return err
	}
	e.SetStatus(i18nfunc.T("status.copied", nil))
	return nil
}

// Cut moves the selection to the clipboard.
func (e *TextEditor) Cut() error {
	text := e.SelectedText()
	if text == "" {
		return nil
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.SetErrorStatus(i18nfunc.T("status.clipboard_error", map[string]interface{}{"Error": err}))
		return err
	}
	e.change(func() { e.deleteSelection() })
	e.SetStatus(i18nfunc.T("status.cut", nil))
	e.redraw()
	return nil
}

// Paste inserts the clipboard at the cursor, replacing the selection.
func (e *TextEditor) Paste() error {
	text, err := e.clipboard.ReadAll()
	if err != nil {
		e.SetErrorStatus(i18nfunc.T("status.clipboard_error", map[string]interface{}{"Error": err}))
		return err
	}
	if text == "" {
		return nil
	}
	e.InsertText(text)
	return nil
}

// FindAll highlights every case-insensitive match of term and moves the
// cursor to the end of the first one. Previous highlights are cleared.
func (e *TextEditor) FindAll(term string) int {
	e.replaceSpans = nil
	e.findSpans = nil
	if term == "" {
		e.redraw()
		return 0
	}
	e.findSpans = replacefunc.Find(e.Text(), term)
	if len(e.findSpans) > 0 {
		e.selection.active = false
		e.cursorX, e.cursorY = e.position(e.findSpans[0].End)
		e.ensureCursorVisible()
	}
	e.SetStatus(i18nfunc.N("status.found", len(e.findSpans)))
	e.redraw()
	return len(e.findSpans)
}

// FindNext moves the cursor past the next match after the cursor, wrapping
// to the start of the document once.
func (e *TextEditor) FindNext(term string) bool {
	if term == "" {
		return false
	}
	buf := replacefunc.NewTextBuffer(e.Text())
	pos, ok := buf.Search(term, e.cursorOffset())
	if !ok {
		pos, ok = buf.Search(term, 0)
	}
	if !ok {
		e.SetStatus(i18nfunc.T("status.not_found", map[string]interface{}{"Term": term}))
		e.redraw()
		return false
	}
	e.selection.active = false
	e.cursorX, e.cursorY = e.position(pos + runeLen(term))
	e.ensureCursorVisible()
	matchX, matchY := e.position(pos)
	e.SetStatus(i18nfunc.T("status.moved_to_match", map[string]interface{}{
		"Line": matchY + 1,
		"Col":  matchX + 1,
	}))
	e.redraw()
	return true
}

// ApplyReplace runs the bulk replace engine over the whole document as one
// undo step and highlights the inserted text.
func (e *TextEditor) ApplyReplace(pairs replacefunc.PairList, mode replacefunc.Mode) replacefunc.Result {
	var res replacefunc.Result
	e.change(func() {
		buf := replacefunc.NewTextBuffer(e.Text())
		res = replacefunc.ApplyMode(pairs, buf, mode)
		if res.Count > 0 {
			e.content = strings.Split(buf.String(), "\n")
		}
	})
	e.findSpans = nil
	e.replaceSpans = res.Spans
	e.selection.active = false
	e.cursorY = clamp(e.cursorY, 0, len(e.content)-1)
	e.cursorX = clamp(e.cursorX, 0, runeLen(e.content[e.cursorY]))

	msg := "status.replaced"
	if mode == replacefunc.Reverse {
		msg = "status.replaced_reverse"
	}
	e.SetStatus(i18nfunc.N(msg, res.Count))
	logfunc.Component("editor").Info().
		Str("mode", mode.String()).
		Int("pairs", pairs.Len()).
		Int("replacements", res.Count).
		Msg("bulk replace")
	e.redraw()
	return res
}

// ReplaceBulk replaces each pair's key with its value and returns the count.
func (e *TextEditor) ReplaceBulk(pairs replacefunc.PairList) int {
	return e.ApplyReplace(pairs, replacefunc.Forward).Count
}

// ReplaceBulkReverse replaces each pair's value with its key.
func (e *TextEditor) ReplaceBulkReverse(pairs replacefunc.PairList) int {
	return e.ApplyReplace(pairs, replacefunc.Reverse).Count
}

// Helper function to compare string slices
func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// recordEdit records an edit action for undo/redo
func (e *TextEditor) recordEdit(beforeContent []string, afterContent []string, beforeX, beforeY, afterX, afterY int) {
	action := EditAction{
		beforeContent: make([]string, len(beforeContent)),
		afterContent:  make([]string, len(afterContent)),
		beforeCursorX: beforeX,
		beforeCursorY: beforeY,
		afterCursorX:  afterX,
		afterCursorY:  afterY,
	}
	copy(action.beforeContent, beforeContent)
	copy(action.afterContent, afterContent)
	e.undoStack = append(e.undoStack, action)
	// Clear redo stack when a new edit is made
	e.redoStack = nil
}

// Undo reverts the last edit action
func (e *TextEditor) Undo() bool {
	if len(e.undoStack) == 0 {
		e.SetStatus(i18nfunc.T("status.nothing_undo", nil))
		return false
	}

	lastIdx := len(e.undoStack) - 1
	action := e.undoStack[lastIdx]
	e.undoStack = e.undoStack[:lastIdx]
	e.redoStack = append(e.redoStack, action)

	e.restore(action.beforeContent, action.beforeCursorX, action.beforeCursorY)
	e.SetStatus(i18nfunc.T("status.undo", nil))
	return true
}

// Redo reapplies the last undone action
func (e *TextEditor) Redo() bool {
	if len(e.redoStack) == 0 {
		e.SetStatus(i18nfunc.T("status.nothing_redo", nil))
		return false
	}

	lastIdx := len(e.redoStack) - 1
	action := e.redoStack[lastIdx]
	e.redoStack = e.redoStack[:lastIdx]
	e.undoStack = append(e.undoStack, action)

	e.restore(action.afterContent, action.afterCursorX, action.afterCursorY)
	e.SetStatus(i18nfunc.T("status.redo", nil))
	return true
}

func (e *TextEditor) restore(content []string, x, y int) {
	e.content = make([]string, len(content))
	copy(e.content, content)
	e.cursorY = clamp(y, 0, len(e.content)-1)
	e.cursorX = clamp(x, 0, runeLen(e.content[e.cursorY]))
	e.selection.active = false
	e.replaceSpans = nil
	e.findSpans = nil
	e.dirty = true
	e.updateTitle()
	e.ensureCursorVisible()
	e.redraw()
}
