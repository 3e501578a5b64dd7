package editorfunc

import (
	"fmt"

	"textscrub/i18nfunc"
	"textscrub/themefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StatusBar is the one-line message area under the editor.
// It has to be added to the layout next to the editor, see pagesfunc.
type StatusBar struct {
	*tview.TextView
	errorColor tcell.Color
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(false).
		SetWrap(false)
	tv.SetBackgroundColor(tcell.ColorDefault)
	tv.SetTextColor(tcell.ColorWhite)
	return &StatusBar{TextView: tv, errorColor: tcell.ColorRed}
}

// SetStatus sets the status message in the status bar.
func (sb *StatusBar) SetStatus(msg string) {
	sb.Clear()
	sb.Write([]byte(tview.Escape(msg)))
}

func (sb *StatusBar) SetErrorStatus(msg string) {
	sb.Clear()
	fmt.Fprintf(sb, "[%s::]%s[-::-]", themefunc.Tag(sb.errorColor), tview.Escape(msg))
}

// Status returns the current message without colour tags.
func (sb *StatusBar) Status() string {
	return sb.GetText(true)
}

// SetStatus sets the status message in the editor's status bar.
func (e *TextEditor) SetStatus(msg string) {
	if e.statusBar != nil {
		e.statusBar.SetStatus(msg)
	}
}

// SetErrorStatus sets an error message in the editor's status bar, formatting it as an error.
func (e *TextEditor) SetErrorStatus(msg string) {
	if e.statusBar != nil {
		e.statusBar.SetErrorStatus(msg)
	}
}

// GetStatusBar returns the status bar widget.
func (e *TextEditor) GetStatusBar() *StatusBar {
	return e.statusBar
}

// FillStatusBar updates the status bar with current editor state (e.g., line/column).
func (e *TextEditor) FillStatusBar() {
	if e.statusBar == nil {
		return
	}
	e.statusBar.Clear()
	fmt.Fprintf(e.statusBar, "[::b]%s[::-] %d [::b]%s[::-] %d   [::b]%s[::-] %d",
		i18nfunc.T("status.line", nil), e.cursorY+1,
		i18nfunc.T("status.col", nil), e.cursorX+1,
		i18nfunc.T("status.lines", nil), len(e.content))
}
