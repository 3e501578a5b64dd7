package pagesfunc

import (
	"textscrub/helpsysfunc"
	"textscrub/replacefunc"
)

// runAction executes a menu entry or hotkey on the main screen.
func runAction(a helpsysfunc.Action) {
	switch a {
	case helpsysfunc.ActionNew:
		Editor.NewFile()
	case helpsysfunc.ActionOpen:
		showOpenFileDialog(startDir(), OpenPath)
	case helpsysfunc.ActionSave:
		SaveCurrent()
	case helpsysfunc.ActionSaveAs:
		showSaveAsDialog()
	case helpsysfunc.ActionExit:
		Quit()
	case helpsysfunc.ActionUndo:
		Editor.Undo()
	case helpsysfunc.ActionRedo:
		Editor.Redo()
	case helpsysfunc.ActionCut:
		Editor.Cut()
	case helpsysfunc.ActionCopy:
		Editor.Copy()
	case helpsysfunc.ActionPaste:
		Editor.Paste()
	case helpsysfunc.ActionSelectAll:
		Editor.SelectAll()
	case helpsysfunc.ActionFind:
		mainMenu.openFindBar()
	case helpsysfunc.ActionFindNext:
		mainMenu.findNext()
	case helpsysfunc.ActionBulkDialog:
		showBulkReplaceDialog()
	case helpsysfunc.ActionReplaceBulk:
		RunReplace(replacefunc.Forward)
	case helpsysfunc.ActionReverse:
		RunReplace(replacefunc.Reverse)
	case helpsysfunc.ActionHistory:
		showHistoryPage()
	case helpsysfunc.ActionMenu:
		mainMenu.toggleFocus()
	case helpsysfunc.ActionHelp:
		helpsysfunc.ShowHelp(runAction)
	}
}
