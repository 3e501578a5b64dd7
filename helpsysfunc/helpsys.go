package helpsysfunc

import (
	"strings"

	"textscrub/i18nfunc"
	"textscrub/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Action names a command that can be bound to a key or picked from help.
type Action string

const (
	ActionNew         Action = "new"
	ActionOpen        Action = "open"
	ActionSave        Action = "save"
	ActionSaveAs      Action = "saveas"
	ActionExit        Action = "exit"
	ActionUndo        Action = "undo"
	ActionRedo        Action = "redo"
	ActionCut         Action = "cut"
	ActionCopy        Action = "copy"
	ActionPaste       Action = "paste"
	ActionSelectAll   Action = "selectall"
	ActionFind        Action = "find"
	ActionFindNext    Action = "findnext"
	ActionBulkDialog  Action = "bulk"
	ActionReplaceBulk Action = "replace"
	ActionReverse     Action = "reverse"
	ActionHistory     Action = "history"
	ActionMenu        Action = "menu"
	ActionHelp        Action = "help"
)

// Hotkey binds a key to an action. Keys handled inside the editor widget
// have Global set to false; they are listed in help but not dispatched by
// the main screen.
type Hotkey struct {
	Key      tcell.Key
	Label    string
	Action   Action
	Global   bool
	IsHeader bool // Used for grouping in the help dialog
}

var hotkeys = []Hotkey{
	{Label: "help.group.file", IsHeader: true},
	{Key: tcell.KeyCtrlN, Label: "Ctrl+N", Action: ActionNew, Global: true},
	{Key: tcell.KeyCtrlO, Label: "Ctrl+O", Action: ActionOpen, Global: true},
	{Key: tcell.KeyCtrlS, Label: "Ctrl+S", Action: ActionSave, Global: true},
	{Key: tcell.KeyCtrlQ, Label: "Ctrl+Q", Action: ActionExit, Global: true},
	{Label: "help.group.edit", IsHeader: true},
	{Key: tcell.KeyCtrlZ, Label: "Ctrl+Z", Action: ActionUndo},
	{Key: tcell.KeyCtrlY, Label: "Ctrl+Y", Action: ActionRedo},
	{Key: tcell.KeyCtrlX, Label: "Ctrl+X", Action: ActionCut},
	{Key: tcell.KeyCtrlC, Label: "Ctrl+C / Insert", Action: ActionCopy},
	{Key: tcell.KeyCtrlV, Label: "Ctrl+V / Shift+Insert", Action: ActionPaste},
	{Key: tcell.KeyCtrlA, Label: "Ctrl+A", Action: ActionSelectAll},
	{Label: "help.group.search", IsHeader: true},
	{Key: tcell.KeyCtrlF, Label: "Ctrl+F", Action: ActionFind, Global: true},
	{Key: tcell.KeyF3, Label: "F3", Action: ActionFindNext, Global: true},
	{Key: tcell.KeyCtrlB, Label: "Ctrl+B", Action: ActionBulkDialog, Global: true},
	{Key: tcell.KeyCtrlR, Label: "Ctrl+R", Action: ActionReplaceBulk, Global: true},
	{Key: tcell.KeyCtrlG, Label: "Ctrl+G", Action: ActionReverse, Global: true},
	{Key: tcell.KeyCtrlT, Label: "Ctrl+T", Action: ActionHistory, Global: true},
	{Label: "help.group.other", IsHeader: true},
	{Key: tcell.KeyF10, Label: "F10", Action: ActionMenu, Global: true},
	{Key: tcell.KeyF1, Label: "F1", Action: ActionHelp, Global: true},
}

// Hotkeys returns the key table in display order, group headers included.
func Hotkeys() []Hotkey {
	return append([]Hotkey(nil), hotkeys...)
}

// Lookup finds the global action bound to key.
func Lookup(key tcell.Key) (Action, bool) {
	for _, h := range hotkeys {
		if h.Global && !h.IsHeader && h.Key == key {
			return h.Action, true
		}
	}
	return "", false
}

// Describe returns the translated description of an action.
func Describe(a Action) string {
	return i18nfunc.T("action."+string(a), nil)
}

var currentDialog tview.Primitive

// ShowHelp lists the hotkeys. Picking an entry closes help and runs the
// action through run.
func ShowHelp(run func(Action)) {
	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)

	entries := Hotkeys()
	for _, h := range entries {
		if h.IsHeader {
			list.AddItem("[red::]"+tview.Escape(i18nfunc.T(h.Label, nil))+"[-::]", "", 0, nil)
			continue
		}
		desc := strings.ReplaceAll(Describe(h.Action), "]", "[[]")
		list.AddItem(tview.Escape(h.Label), desc, 0, nil)
	}

	list.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		h := entries[index]
		if h.IsHeader {
			return
		}
		closeDialog()
		if run != nil {
			run(h.Action)
		}
	})

	list.SetBorder(true).SetTitle(i18nfunc.T("help.title", nil))

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			closeDialog()
			return nil
		}
		return event
	})

	showDialog(list)
}

// showDialog displays a dialog with the given content
func showDialog(content tview.Primitive) {
	modal := tview.NewFlex().
		AddItem(content, 0, 1, true)

	currentDialog = modal
	statefunc.ShowDialog(statefunc.MainFlex, modal)
}

// closeDialog closes the current dialog and restores the previous view
func closeDialog() {
	if currentDialog != nil {
		currentDialog = nil
		statefunc.ShowPreviousVisual()
	}
}
