package uifunc

import (
	"textscrub/i18nfunc"
	"textscrub/statefunc"

	"github.com/rivo/tview"
)

// Confirm asks a yes/no question over the current screen.
func Confirm(text string, callback func(bool)) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{i18nfunc.T("button.yes", nil), i18nfunc.T("button.no", nil)})
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowPreviousVisual()
		callback(buttonIndex == 0)
	})
	statefunc.ShowDialog(statefunc.Root(), dialog)
}

// Message shows text with an OK button and returns to the previous screen.
func Message(text string) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{i18nfunc.T("button.ok", nil)})
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowPreviousVisual()
	})
	statefunc.ShowDialog(statefunc.Root(), dialog)
}
