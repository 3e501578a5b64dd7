package editorfunc

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"textscrub/i18nfunc"
	"textscrub/logfunc"
	"textscrub/replacefunc"
	"textscrub/themefunc"

	"github.com/atotto/clipboard"
	"github.com/rivo/tview"
)

const tabWidth = 4

// Clipboard is the system clipboard as seen by the editor.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// EditAction represents a single edit operation that can be undone/redone
type EditAction struct {
	beforeContent []string
	afterContent  []string
	beforeCursorX int
	beforeCursorY int
	afterCursorX  int
	afterCursorY  int
}

// Selection represents a text selection range
type Selection struct {
	startX, startY int
	endX, endY     int
	active         bool
}

// TextEditor is a tview-based plain text editor.
type TextEditor struct {
	*tview.TextView
	height       int // number of visible lines in the editor area (calculated dynamically)
	content      []string
	cursorX      int // rune index within the current line
	cursorY      int
	fileName     string
	crlf         bool
	dirty        bool
	statusBar    *StatusBar
	clipboard    Clipboard
	palette      themefunc.Palette
	undoStack    []EditAction
	redoStack    []EditAction
	selection    Selection
	mouseDown    bool
	replaceSpans []replacefunc.Span
	findSpans    []replacefunc.Span
}

// readInitialContentFromFile reads the content of the given fileName.
// If the file cannot be read, it returns the provided initialContent.
func readInitialContentFromFile(fileName, initialContent string) (string, error) {
	if fileName == "" {
		return initialContent, nil
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return initialContent, err
	}
	return string(data), nil
}

// NewTextEditor creates a new TextEditor, loading fileName if given.
func NewTextEditor(fileName string) *TextEditor {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(false).
		SetWrap(false)
	editor := &TextEditor{
		TextView:  tv,
		content:   []string{""},
		statusBar: NewStatusBar(),
		clipboard: systemClipboard{},
		palette:   themefunc.PaletteFor(themefunc.Standard),
	}
	editor.SetBorder(true)
	editor.SetInputCapture(editor.handleInput)
	editor.SetStatus(i18nfunc.T("status.ready", nil))

	if fileName != "" {
		text, err := readInitialContentFromFile(fileName, "")
		if err != nil {
			// keep the name so Save creates the file
			editor.SetErrorStatus(i18nfunc.T("status.open_error", map[string]interface{}{"Error": err}))
		}
		editor.setContent(text)
		editor.fileName = fileName
	}
	editor.updateTitle()
	editor.redraw()
	return editor
}

// SetClipboard replaces the system clipboard.
func (e *TextEditor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

// SetTheme recolours the editor and its status bar.
func (e *TextEditor) SetTheme(p themefunc.Palette) {
	e.palette = p
	e.SetBackgroundColor(p.Background)
	e.SetTextColor(p.Foreground)
	e.SetBorderColor(p.MenuFg)
	e.SetTitleColor(p.MenuFg)
	e.statusBar.SetBackgroundColor(p.MenuBg)
	e.statusBar.SetTextColor(p.MenuFg)
	e.statusBar.errorColor = p.StatusErrorFg
	e.redraw()
}

func (e *TextEditor) updateTitle() {
	title := ""
	if e.fileName != "" {
		title += e.fileName + " "
	}
	if e.dirty {
		title += "* "
	}
	title += i18nfunc.T("editor.title_hint", nil)
	e.SetTitle(title)
}

// Text returns the whole document.
func (e *TextEditor) Text() string {
	return strings.Join(e.content, "\n")
}

// SetText replaces the document, dropping undo history and highlights.
func (e *TextEditor) SetText(text string) {
	e.setContent(text)
	e.redraw()
}

func (e *TextEditor) setContent(text string) {
	e.crlf = strings.Contains(text, "\r\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	e.content = strings.Split(text, "\n")
	e.cursorX, e.cursorY = 0, 0
	e.selection.active = false
	e.undoStack = nil
	e.redoStack = nil
	e.replaceSpans = nil
	e.findSpans = nil
	e.dirty = false
	e.ScrollTo(0, 0)
}

// FileName returns the current file name
func (e *TextEditor) FileName() string {
	return e.fileName
}

// SetFileName sets the current file name
func (e *TextEditor) SetFileName(fileName string) {
	e.fileName = fileName
	e.updateTitle()
}

// Dirty reports unsaved changes.
func (e *TextEditor) Dirty() bool {
	return e.dirty
}

// Cursor returns the cursor as rune column and line, both 0-based.
func (e *TextEditor) Cursor() (x, y int) {
	return e.cursorX, e.cursorY
}

// SetCursor moves the cursor, clamped to the document.
func (e *TextEditor) SetCursor(x, y int) {
	e.cursorY = clamp(y, 0, len(e.content)-1)
	e.cursorX = clamp(x, 0, runeLen(e.content[e.cursorY]))
	e.selection.active = false
	e.ensureCursorVisible()
	e.redraw()
}

// ReplaceHighlights returns the spans inserted by the last bulk replace.
func (e *TextEditor) ReplaceHighlights() []replacefunc.Span {
	return append([]replacefunc.Span(nil), e.replaceSpans...)
}

// FindHighlights returns the spans marked by the last Find All.
func (e *TextEditor) FindHighlights() []replacefunc.Span {
	return append([]replacefunc.Span(nil), e.findSpans...)
}

// ClearHighlights removes find and replace markers.
func (e *TextEditor) ClearHighlights() {
	e.replaceSpans = nil
	e.findSpans = nil
	e.redraw()
}

// NewFile empties the editor.
func (e *TextEditor) NewFile() {
	e.setContent("")
	e.fileName = ""
	e.updateTitle()
	e.SetStatus(i18nfunc.T("status.new_file", nil))
	e.redraw()
}

// OpenFile loads content from the specified file into the editor
func (e *TextEditor) OpenFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		e.SetErrorStatus(i18nfunc.T("status.open_error", map[string]interface{}{"Error": err}))
		return fmt.Errorf("error opening file: %w", err)
	}

	e.setContent(string(data))
	e.fileName = fileName
	e.updateTitle()
	e.SetStatus(i18nfunc.T("status.editing", map[string]interface{}{"Path": fileName}))
	logfunc.Component("editor").Info().Str("file", fileName).Int("lines", len(e.content)).Msg("file opened")
	e.redraw()
	return nil
}

// SaveFile saves the current content to the file
func (e *TextEditor) SaveFile() error {
	if e.fileName == "" {
		e.SetErrorStatus(i18nfunc.T("status.no_file_name", nil))
		return ErrNoFileName
	}
	text := e.Text()
	if e.crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if err := os.WriteFile(e.fileName, []byte(text), 0644); err != nil {
		e.SetErrorStatus(i18nfunc.T("status.save_error", map[string]interface{}{"Error": err}))
		logfunc.Component("editor").Error().Err(err).Str("file", e.fileName).Msg("save failed")
		return fmt.Errorf("error saving file: %w", err)
	}
	e.dirty = false
	e.updateTitle()
	e.SetStatus(i18nfunc.T("status.saved", map[string]interface{}{"Path": e.fileName}))
	logfunc.Component("editor").Info().Str("file", e.fileName).Msg("file saved")
	return nil
}

// SaveFileAs saves under a new name, keeping the old name on failure.
func (e *TextEditor) SaveFileAs(fileName string) error {
	old := e.fileName
	e.fileName = fileName
	if err := e.SaveFile(); err != nil {
		e.fileName = old
		return err
	}
	return nil
}

// calculateHeight updates the height field to the number of visible lines in the editor area.
func (e *TextEditor) calculateHeight() {
	_, _, _, height := e.GetInnerRect()
	e.height = height
}

func (e *TextEditor) ensureCursorVisible() {
	_, _, width, height := e.GetInnerRect()
	if height <= 0 || width <= 0 {
		return
	}
	row, col := e.GetScrollOffset()
	if e.cursorY < row {
		row = e.cursorY
	} else if e.cursorY >= row+height {
		row = e.cursorY - height + 1
	}
	if e.cursorX < col {
		col = e.cursorX
	} else if e.cursorX >= col+width {
		col = e.cursorX - width + 1
	}
	e.ScrollTo(row, col)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
