package editorfunc

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (e *TextEditor) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (consumed bool) {
	x, y := event.Position()
	left, top, _, _ := e.GetInnerRect()
	innerX, innerY := x-left, y-top

	// Get current scroll offset and adjust innerY
	row, col := e.GetScrollOffset()
	adjustedY := row + innerY
	if adjustedY < 0 || adjustedY >= len(e.content) {
		return false
	}
	cursorX := clamp(col+innerX, 0, runeLen(e.content[adjustedY]))

	switch action {
	case tview.MouseLeftDown:
		e.mouseDown = true
		e.selection = Selection{startX: cursorX, startY: adjustedY, endX: cursorX, endY: adjustedY, active: true}
		e.cursorX, e.cursorY = cursorX, adjustedY
	case tview.MouseMove:
		if !e.mouseDown {
			return false
		}
		e.selection.endX, e.selection.endY = cursorX, adjustedY
		e.cursorX, e.cursorY = cursorX, adjustedY
	case tview.MouseLeftUp:
		e.mouseDown = false
		if e.selection.startX == cursorX && e.selection.startY == adjustedY {
			e.selection.active = false
		} else {
			e.selection.endX, e.selection.endY = cursorX, adjustedY
		}
		e.cursorX, e.cursorY = cursorX, adjustedY
	default:
		return false
	}
	e.FillStatusBar()
	e.redraw()
	return true
}

// SetMouseSupport attaches the click and drag selection handler.
func (e *TextEditor) SetMouseSupport() {
	e.TextView.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		e.handleMouse(action, event)
		return action, event
	})
}

// handleInput processes key events for editing. Keys the editor does not
// know are passed on so the application can bind them.
func (e *TextEditor) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlZ:
		e.Undo()
		return nil
	case tcell.KeyCtrlY:
		e.Redo()
		return nil
	case tcell.KeyCtrlC:
		e.Copy()
		return nil
	case tcell.KeyCtrlX:
		e.Cut()
		return nil
	case tcell.KeyCtrlV:
		e.Paste()
		return nil
	case tcell.KeyCtrlA:
		e.SelectAll()
		return nil
	case tcell.KeyInsert:
		// Shift+Insert pastes, plain Insert copies
		if event.Modifiers()&tcell.ModShift != 0 {
			e.Paste()
		} else {
			e.Copy()
		}
		return nil
	}

	if e.move(event) {
		e.ensureCursorVisible()
		e.FillStatusBar()
		e.redraw()
		return nil
	}

	handled := true
	e.change(func() {
		switch event.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if e.selection.active {
				e.deleteSelection()
				return
			}
			off := e.cursorOffset()
			if off > 0 {
				e.edit(off-1, off, "")
				e.cursorX, e.cursorY = e.position(off - 1)
			}
		case tcell.KeyDelete:
			if e.selection.active {
				e.deleteSelection()
				return
			}
			off := e.cursorOffset()
			if off < e.length() {
				e.edit(off, off+1, "")
			}
		case tcell.KeyEnter:
			e.insertText("\n")
		case tcell.KeyTab:
			e.insertText(strings.Repeat(" ", tabWidth))
		case tcell.KeyRune:
			e.insertText(string(event.Rune()))
		default:
			handled = false
		}
	})
	if !handled {
		return event
	}
	e.ensureCursorVisible()
	e.FillStatusBar()
	e.redraw()
	return nil
}

// move handles cursor keys, extending the selection when Shift is held.
func (e *TextEditor) move(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
		tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn:
	default:
		return false
	}

	shift := event.Modifiers()&tcell.ModShift != 0
	if shift && !e.selection.active {
		e.selection = Selection{startX: e.cursorX, startY: e.cursorY, active: true}
	} else if !shift {
		e.selection.active = false
	}

	pageSize := e.height - 1
	if pageSize < 1 {
		pageSize = 1
	}
	switch event.Key() {
	case tcell.KeyUp:
		if e.cursorY > 0 {
			e.cursorY--
		}
	case tcell.KeyDown:
		if e.cursorY < len(e.content)-1 {
			e.cursorY++
		}
	case tcell.KeyLeft:
		if off := e.cursorOffset(); off > 0 {
			e.cursorX, e.cursorY = e.position(off - 1)
		}
	case tcell.KeyRight:
		if off := e.cursorOffset(); off < e.length() {
			e.cursorX, e.cursorY = e.position(off + 1)
		}
	case tcell.KeyHome:
		e.cursorX = 0
	case tcell.KeyEnd:
		e.cursorX = runeLen(e.content[e.cursorY])
	case tcell.KeyPgUp:
		e.cursorY = clamp(e.cursorY-pageSize, 0, len(e.content)-1)
	case tcell.KeyPgDn:
		e.cursorY = clamp(e.cursorY+pageSize, 0, len(e.content)-1)
	}
	e.cursorX = clamp(e.cursorX, 0, runeLen(e.content[e.cursorY]))

	if e.selection.active {
		e.selection.endX, e.selection.endY = e.cursorX, e.cursorY
	}
	return true
}
